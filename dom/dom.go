// Package dom describes the small slice of the page that the delete
// confirmation binder reads and writes.
//
// This package has NO build tags, making it available to both WASM and native
// test builds. The browser implementation lives in dom/jsdom, the in-memory one
// in dom/htmldom.
package dom

// Document is the page root.
type Document interface {
	// GetElementByID returns the element with the given id, or nil.
	GetElementByID(id string) Element

	// QuerySelector returns the first element matching the CSS selector, or nil.
	QuerySelector(selector string) Element
}

// Element is a single node of the page.
type Element interface {
	// GetAttribute reports the attribute value and whether it is present.
	GetAttribute(name string) (string, bool)
	SetAttribute(name, value string)

	TextContent() string
	// SetTextContent replaces all children with a single text node.
	SetTextContent(text string)

	// QuerySelector searches the element's descendants.
	QuerySelector(selector string) Element

	// AddEventListener subscribes h to events of the given type dispatched on the element.
	AddEventListener(eventType string, h Handler) Subscription
}

// Event is the payload handed to a Handler.
type Event interface {
	Type() string

	// RelatedTarget is the element that caused the event, or nil.
	RelatedTarget() Element
}

// Handler receives dispatched events. It runs synchronously within the dispatch.
type Handler func(ev Event)

// Subscription is a live listener registration.
type Subscription interface {
	// Release removes the listener. Calling it more than once is a no-op.
	Release()
}

// SubscriptionFunc adapts a plain function to Subscription.
type SubscriptionFunc func()

func (f SubscriptionFunc) Release() { f() }
