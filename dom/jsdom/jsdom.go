//go:build js || wasm
// +build js wasm

// Package jsdom implements the dom interfaces on top of the browser DOM.
package jsdom

import (
	"sync"
	"syscall/js"

	"github.com/vcrobe/nojs-confirm/dom"
	"github.com/vcrobe/nojs-confirm/events"
)

// Compile-time assertions that the wrappers implement the dom interfaces.
var (
	_ dom.Document = (*Document)(nil)
	_ dom.Element  = (*Element)(nil)
	_ dom.Event    = (*Event)(nil)
)

// Document wraps the global `document` object.
type Document struct {
	v js.Value
}

// Global returns the page's document.
func Global() *Document {
	return &Document{v: js.Global().Get("document")}
}

func (d *Document) GetElementByID(id string) dom.Element {
	return wrap(d.v.Call("getElementById", id))
}

func (d *Document) QuerySelector(selector string) dom.Element {
	return querySelector(d.v, selector)
}

// OnReady runs fn once the markup has been parsed. If parsing already
// finished, fn runs immediately.
func (d *Document) OnReady(fn func()) {
	if d.v.Get("readyState").String() != "loading" {
		fn()
		return
	}

	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		d.v.Call("removeEventListener", events.DOMContentLoaded, cb)
		cb.Release()
		fn()
		return nil
	})
	d.v.Call("addEventListener", events.DOMContentLoaded, cb)
}

// Element wraps a DOM element.
type Element struct {
	v js.Value
}

// Value exposes the underlying js.Value.
func (e *Element) Value() js.Value {
	return e.v
}

func (e *Element) GetAttribute(name string) (string, bool) {
	attr := e.v.Call("getAttribute", name)
	if attr.IsNull() || attr.IsUndefined() {
		return "", false
	}
	return attr.String(), true
}

func (e *Element) SetAttribute(name, value string) {
	e.v.Call("setAttribute", name, value)
}

func (e *Element) TextContent() string {
	text := e.v.Get("textContent")
	if !text.Truthy() {
		return ""
	}
	return text.String()
}

func (e *Element) SetTextContent(text string) {
	e.v.Set("textContent", text)
}

func (e *Element) QuerySelector(selector string) dom.Element {
	return querySelector(e.v, selector)
}

func (e *Element) AddEventListener(eventType string, h dom.Handler) dom.Subscription {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			h(&Event{v: js.Undefined()})
			return nil
		}
		h(&Event{v: args[0]})
		return nil
	})
	e.v.Call("addEventListener", eventType, cb)

	var once sync.Once
	return dom.SubscriptionFunc(func() {
		once.Do(func() {
			e.v.Call("removeEventListener", eventType, cb)
			cb.Release()
		})
	})
}

// Event wraps a DOM event object.
type Event struct {
	v js.Value
}

func (ev *Event) Type() string {
	if !ev.v.Truthy() {
		return ""
	}
	return ev.v.Get("type").String()
}

func (ev *Event) RelatedTarget() dom.Element {
	if !ev.v.Truthy() {
		return nil
	}
	return wrap(ev.v.Get("relatedTarget"))
}

// querySelector calls querySelector on v. The browser throws a SyntaxError on
// an invalid selector; that is reported as "no element" instead.
func querySelector(v js.Value, selector string) (el dom.Element) {
	defer func() {
		if r := recover(); r != nil {
			el = nil
		}
	}()
	return wrap(v.Call("querySelector", selector))
}

// wrap returns nil for null and undefined so callers can compare against nil.
func wrap(v js.Value) dom.Element {
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return &Element{v: v}
}
