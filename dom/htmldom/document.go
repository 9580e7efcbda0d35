// Package htmldom implements the dom interfaces over a parsed HTML tree.
//
// It lets the binder run outside the browser: markup is parsed with
// golang.org/x/net/html, selectors are matched with cascadia and events are
// dispatched synchronously, in listener registration order.
package htmldom

import (
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/pkg/errors"
	"golang.org/x/net/html"

	"github.com/vcrobe/nojs-confirm/console"
	"github.com/vcrobe/nojs-confirm/dom"
	"github.com/vcrobe/nojs-confirm/events"
)

// Compile-time assertions that the in-memory types implement the dom interfaces.
var (
	_ dom.Document = (*Document)(nil)
	_ dom.Element  = (*Element)(nil)
	_ dom.Event    = (*Event)(nil)
)

// Document is a parsed page with its registered listeners.
type Document struct {
	root      *html.Node
	elements  map[*html.Node]*Element
	listeners map[*html.Node][]*listener
	nextID    int
}

type listener struct {
	id        int
	eventType string
	handler   dom.Handler
}

// Parse reads a full HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parse html")
	}
	return &Document{
		root:      root,
		elements:  make(map[*html.Node]*Element),
		listeners: make(map[*html.Node][]*listener),
	}, nil
}

// ParseString is Parse for an in-memory string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

func (d *Document) GetElementByID(id string) dom.Element {
	if id == "" {
		return nil
	}
	n := findNode(d.root, func(n *html.Node) bool {
		v, ok := attr(n, "id")
		return ok && v == id
	})
	return d.wrap(n)
}

func (d *Document) QuerySelector(selector string) dom.Element {
	return d.wrap(d.query(d.root, selector))
}

// Render writes the current tree as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// Dispatch fires an event of the given type on target. Listeners run
// synchronously; related may be nil.
func (d *Document) Dispatch(target dom.Element, eventType string, related dom.Element) error {
	el, ok := target.(*Element)
	if !ok || el == nil || el.doc != d {
		return errors.New("dispatch target does not belong to this document")
	}

	ev := &Event{eventType: eventType, related: related}
	// Copy so listeners may unsubscribe while being dispatched.
	ls := append([]*listener(nil), d.listeners[el.node]...)
	for _, l := range ls {
		if l.eventType == eventType {
			l.handler(ev)
		}
	}
	return nil
}

// Click emulates the modal widget's data API: a toggle element with
// data-bs-toggle="modal" opens the modal named by data-bs-target (or href),
// firing show.bs.modal on it with the toggle as related target.
func (d *Document) Click(toggle dom.Element) error {
	if toggle == nil {
		return errors.New("click on nil element")
	}
	if v, _ := toggle.GetAttribute("data-bs-toggle"); v != "modal" {
		return errors.New("element is not a modal toggle")
	}

	target, ok := toggle.GetAttribute("data-bs-target")
	if !ok {
		target, ok = toggle.GetAttribute("href")
	}
	if !ok || target == "" {
		return errors.New("modal toggle has no target")
	}

	modal := d.QuerySelector(target)
	if modal == nil {
		return errors.Errorf("modal %q not found", target)
	}
	return d.Dispatch(modal, events.ShowModal, toggle)
}

func (d *Document) addListener(n *html.Node, eventType string, h dom.Handler) dom.Subscription {
	d.nextID++
	id := d.nextID
	d.listeners[n] = append(d.listeners[n], &listener{id: id, eventType: eventType, handler: h})

	return dom.SubscriptionFunc(func() {
		ls := d.listeners[n]
		for i, l := range ls {
			if l.id == id {
				d.listeners[n] = append(ls[:i:i], ls[i+1:]...)
				break
			}
		}
		if len(d.listeners[n]) == 0 {
			delete(d.listeners, n)
		}
	})
}

// query returns the first descendant of n matching selector. An invalid
// selector finds nothing, as in the browser after the SyntaxError is caught.
func (d *Document) query(n *html.Node, selector string) *html.Node {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		console.Warn("invalid selector", selector+":", err.Error())
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if m := sel.MatchFirst(c); m != nil {
			return m
		}
	}
	return nil
}

// wrap keeps one Element per node so that elements compare equal across lookups.
func (d *Document) wrap(n *html.Node) dom.Element {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	if el, ok := d.elements[n]; ok {
		return el
	}
	el := &Element{doc: d, node: n}
	d.elements[n] = el
	return el
}

// findNode walks the tree in document order.
func findNode(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if m := findNode(c, match); m != nil {
			return m
		}
	}
	return nil
}

func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}
