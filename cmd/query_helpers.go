package cmd

import (
	"fmt"

	"golang.org/x/net/html"

	"dominik/dom"
)

// queryElements resolves a selector against the whole document. The
// selector engine panics on syntax errors; this wrapper turns that into a
// normal error so shell commands can report it and carry on.
func queryElements(doc *dom.Document, selector string) (nodes []*html.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			nodes = nil
			err = fmt.Errorf("invalid selector %q: %v", selector, r)
		}
	}()
	return doc.Query(dom.Str(selector)).Nodes(), nil
}

// scopedQueryElements is queryElements under a single element.
func scopedQueryElements(doc *dom.Document, scope *html.Node, selector string) (nodes []*html.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			nodes = nil
			err = fmt.Errorf("invalid selector %q: %v", selector, r)
		}
	}()
	return doc.Query(dom.Node(scope)).Query(dom.Str(selector)).Nodes(), nil
}
