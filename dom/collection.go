package dom

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// Collection is an ordered sequence of nodes bound to the document that
// produced it. Order reflects argument order, then document order within
// each selector's matches; duplicates are kept.
type Collection struct {
	doc   *Document
	nodes []*html.Node
}

// Document returns the owning document.
func (c *Collection) Document() *Document {
	return c.doc
}

// Nodes returns the underlying node sequence.
func (c *Collection) Nodes() []*html.Node {
	return c.nodes
}

// Len returns the number of elements.
func (c *Collection) Len() int {
	return len(c.nodes)
}

// Get returns the node at index i, or nil when out of bounds.
func (c *Collection) Get(i int) *html.Node {
	if i < 0 || i >= len(c.nodes) {
		return nil
	}
	return c.nodes[i]
}

// First returns the first node, or nil for an empty collection.
func (c *Collection) First() *html.Node {
	return c.Get(0)
}

// Find returns a new collection with every receiver element's descendant
// matches for sel, receiver order then match order.
func (c *Collection) Find(sel string) *Collection {
	return &Collection{doc: c.doc, nodes: matchSelector(c.nodes, sel)}
}

// Each calls fn once per element and returns the receiver.
func (c *Collection) Each(fn func(i int, n *html.Node)) *Collection {
	for i, n := range c.nodes {
		fn(i, n)
	}
	return c
}

// MapNodes collects fn's results into a plain slice.
func (c *Collection) MapNodes(fn func(i int, n *html.Node) interface{}) []interface{} {
	out := make([]interface{}, 0, len(c.nodes))
	for i, n := range c.nodes {
		out = append(out, fn(i, n))
	}
	return out
}

// Filter returns a new collection of the elements fn reported true for.
func (c *Collection) Filter(fn func(i int, n *html.Node) bool) *Collection {
	out := &Collection{doc: c.doc}
	for i, n := range c.nodes {
		if fn(i, n) {
			out.nodes = append(out.nodes, n)
		}
	}
	return out
}

// Text returns the rendered text of the first element, empty string for
// an empty collection.
func (c *Collection) Text() string {
	n := c.First()
	if n == nil {
		return ""
	}
	var sb strings.Builder
	collectText(n, &sb)
	return sb.String()
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, sb)
	}
}

// SetText replaces every element's content with a single text node.
func (c *Collection) SetText(s string) *Collection {
	for _, n := range c.nodes {
		removeChildren(n)
		n.AppendChild(&html.Node{Type: html.TextNode, Data: s})
	}
	return c
}

// Empty clears every element's content.
func (c *Collection) Empty() *Collection {
	for _, n := range c.nodes {
		removeChildren(n)
	}
	return c
}

func removeChildren(n *html.Node) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
}

// Remove detaches every element from its parent. Detached elements stay
// in the collection and can be re-inserted.
func (c *Collection) Remove() *Collection {
	for _, n := range c.nodes {
		detach(n)
	}
	return c
}

// Html renders the first element's inner markup, empty string when the
// collection is empty.
func (c *Collection) Html() string {
	n := c.First()
	if n == nil {
		return ""
	}
	var buf bytes.Buffer
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if err := html.Render(&buf, child); err != nil {
			return ""
		}
	}
	return buf.String()
}

// OuterHtml renders the first element itself.
func (c *Collection) OuterHtml() string {
	n := c.First()
	if n == nil {
		return ""
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}

// Data reads a custom data entry from the first element, nil when absent
// or the collection is empty.
func (c *Collection) Data(name string) interface{} {
	n := c.First()
	if n == nil {
		return nil
	}
	entries, ok := c.doc.data[n]
	if !ok {
		return nil
	}
	return entries[name]
}

// SetData writes a custom data entry on every element.
func (c *Collection) SetData(name string, value interface{}) *Collection {
	for _, n := range c.nodes {
		entries, ok := c.doc.data[n]
		if !ok {
			entries = make(map[string]interface{})
			c.doc.data[n] = entries
		}
		entries[name] = value
	}
	return c
}

// AddClass adds each named class to every element's class list.
func (c *Collection) AddClass(names ...string) *Collection {
	for _, n := range c.nodes {
		classes := classList(n)
		for _, name := range names {
			if !containsClass(classes, name) {
				classes = append(classes, name)
			}
		}
		setClassList(n, classes)
	}
	return c
}

// RemoveClass removes each named class from every element.
func (c *Collection) RemoveClass(names ...string) *Collection {
	for _, n := range c.nodes {
		classes := classList(n)
		kept := classes[:0]
		for _, cls := range classes {
			if !containsClass(names, cls) {
				kept = append(kept, cls)
			}
		}
		setClassList(n, kept)
	}
	return c
}

// ToggleClass flips each named class on every element.
func (c *Collection) ToggleClass(names ...string) *Collection {
	for _, n := range c.nodes {
		classes := classList(n)
		for _, name := range names {
			if containsClass(classes, name) {
				kept := classes[:0]
				for _, cls := range classes {
					if cls != name {
						kept = append(kept, cls)
					}
				}
				classes = kept
			} else {
				classes = append(classes, name)
			}
		}
		setClassList(n, classes)
	}
	return c
}

// HasClass reports whether the first element carries the class; false for
// an empty collection.
func (c *Collection) HasClass(name string) bool {
	n := c.First()
	if n == nil {
		return false
	}
	return containsClass(classList(n), name)
}

func classList(n *html.Node) []string {
	raw, _ := GetAttr(n, "class")
	return strings.Fields(raw)
}

func containsClass(classes []string, name string) bool {
	for _, cls := range classes {
		if cls == name {
			return true
		}
	}
	return false
}

func setClassList(n *html.Node, classes []string) {
	setAttr(n, "class", strings.Join(classes, " "))
}
