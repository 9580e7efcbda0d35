package htmldom

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/vcrobe/nojs-confirm/dom"
)

// Element is a node of a parsed Document.
type Element struct {
	doc  *Document
	node *html.Node
}

// Node exposes the underlying html node.
func (e *Element) Node() *html.Node {
	return e.node
}

func (e *Element) GetAttribute(name string) (string, bool) {
	return attr(e.node, strings.ToLower(name))
}

func (e *Element) SetAttribute(name, value string) {
	name = strings.ToLower(name)
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

func (e *Element) TextContent() string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.node)
	return sb.String()
}

func (e *Element) SetTextContent(text string) {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	if text != "" {
		e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

func (e *Element) QuerySelector(selector string) dom.Element {
	return e.doc.wrap(e.doc.query(e.node, selector))
}

func (e *Element) AddEventListener(eventType string, h dom.Handler) dom.Subscription {
	return e.doc.addListener(e.node, eventType, h)
}

// Event is the payload of Document.Dispatch.
type Event struct {
	eventType string
	related   dom.Element
}

func (ev *Event) Type() string {
	return ev.eventType
}

func (ev *Event) RelatedTarget() dom.Element {
	return ev.related
}
