// Package dom is a small jQuery-flavoured convenience layer over parsed
// HTML trees (golang.org/x/net/html). A Document owns the node tree plus
// the per-element bookkeeping (event handlers, data entries, ready
// callbacks); Collections are built from selectors, markup, nodes or
// nested lists and carry the chainable operations.
package dom

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Document wraps a parsed HTML tree. Handler and data tables are keyed by
// the node pointer itself, so auxiliary state lives and dies with the
// document rather than being grafted onto the nodes.
type Document struct {
	root *html.Node

	handlers map[*html.Node]map[string][]handlerEntry
	data     map[*html.Node]map[string]interface{}

	ready    bool
	readyFns []func()
}

func newDocument(root *html.Node) *Document {
	return &Document{
		root:     root,
		handlers: make(map[*html.Node]map[string][]handlerEntry),
		data:     make(map[*html.Node]map[string]interface{}),
	}
}

// Parse reads a complete HTML document. The returned Document is already
// loaded, so ready callbacks registered on it run immediately.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	d := newDocument(root)
	d.ready = true
	return d, nil
}

// ParseString is Parse over an in-memory document.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// NewPending creates a document whose content is still being produced.
// Ready callbacks queue up until MarkReady is called.
func NewPending(root *html.Node) *Document {
	return newDocument(root)
}

// Root returns the document node.
func (d *Document) Root() *html.Node {
	return d.root
}

// Ready registers fn to run once the document is loaded. On an already
// loaded document fn runs at once; otherwise callbacks fire in
// registration order when MarkReady is called.
func (d *Document) Ready(fn func()) {
	if fn == nil {
		return
	}
	if d.ready {
		fn()
		return
	}
	d.readyFns = append(d.readyFns, fn)
}

// MarkReady flips a pending document to loaded and drains the ready queue.
// Calling it again is a no-op.
func (d *Document) MarkReady() {
	if d.ready {
		return
	}
	d.ready = true
	fns := d.readyFns
	d.readyFns = nil
	for _, fn := range fns {
		fn()
	}
}

// IsReady reports whether the document has finished loading.
func (d *Document) IsReady() bool {
	return d.ready
}
