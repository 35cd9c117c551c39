package dom

import (
	"reflect"

	"golang.org/x/net/html"
)

// Event is what handlers receive on dispatch.
type Event struct {
	Type   string
	Target *html.Node
	Doc    *Document
}

// Handler is an event callback.
type Handler func(*Event)

type handlerEntry struct {
	fn Handler
	id uintptr
}

func handlerID(h Handler) uintptr {
	return reflect.ValueOf(h).Pointer()
}

// On appends h to the named event's handler sequence on every element.
// The per-element table is created lazily on first registration; the same
// handler may be registered more than once and will then fire more than
// once.
func (c *Collection) On(event string, h Handler) *Collection {
	if h == nil {
		return c
	}
	entry := handlerEntry{fn: h, id: handlerID(h)}
	for _, n := range c.nodes {
		events, ok := c.doc.handlers[n]
		if !ok {
			events = make(map[string][]handlerEntry)
			c.doc.handlers[n] = events
		}
		events[event] = append(events[event], entry)
	}
	return c
}

// Off clears the whole handler sequence for the event on every element.
// The table entry itself stays; later dispatches find an empty sequence
// and do nothing.
func (c *Collection) Off(event string) *Collection {
	for _, n := range c.nodes {
		if events, ok := c.doc.handlers[n]; ok {
			events[event] = nil
		}
	}
	return c
}

// OffHandler removes every occurrence of exactly h (function identity)
// from the event's sequence on every element, keeping the relative order
// of the remainder.
func (c *Collection) OffHandler(event string, h Handler) *Collection {
	if h == nil {
		return c
	}
	id := handlerID(h)
	for _, n := range c.nodes {
		events, ok := c.doc.handlers[n]
		if !ok {
			continue
		}
		seq := events[event]
		kept := seq[:0]
		for _, entry := range seq {
			if entry.id != id {
				kept = append(kept, entry)
			}
		}
		events[event] = kept
	}
	return c
}

// Dispatch fires the named event on n, invoking its handlers in
// registration order. Ordering is guaranteed per element and event only.
func (d *Document) Dispatch(n *html.Node, event string) {
	events, ok := d.handlers[n]
	if !ok {
		return
	}
	evt := &Event{Type: event, Target: n, Doc: d}
	for _, entry := range events[event] {
		entry.fn(evt)
	}
}

// Dispatch fires the event on every element of the collection.
func (c *Collection) Dispatch(event string) *Collection {
	for _, n := range c.nodes {
		c.doc.Dispatch(n, event)
	}
	return c
}

// Handlers reports how many handlers are registered for the element's
// event. Mostly useful for inspection and tests.
func (d *Document) Handlers(n *html.Node, event string) int {
	if events, ok := d.handlers[n]; ok {
		return len(events[event])
	}
	return 0
}
