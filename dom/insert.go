package dom

import "golang.org/x/net/html"

// Insertion dispatches on the payload shape, and deliberately not
// uniformly: a Node payload lands on the first element of the receiver
// only (no-op when empty), a List recurses per member in order, while a
// markup Str payload is parsed fresh for and inserted at EVERY element of
// the receiver.

// Append inserts the payload at the end of the target's children.
func (c *Collection) Append(a Arg) *Collection {
	return c.insert(a, posAppend)
}

// Prepend inserts the payload at the start of the target's children.
func (c *Collection) Prepend(a Arg) *Collection {
	return c.insert(a, posPrepend)
}

// Before inserts the payload immediately preceding the target.
func (c *Collection) Before(a Arg) *Collection {
	return c.insert(a, posBefore)
}

// After inserts the payload immediately following the target.
func (c *Collection) After(a Arg) *Collection {
	return c.insert(a, posAfter)
}

type insertPos int

const (
	posAppend insertPos = iota
	posPrepend
	posBefore
	posAfter
)

// inserter pins, per target, the sibling all payload nodes are inserted
// in front of. Capturing the anchor up front keeps multi-node payloads in
// payload order; inserting "before FirstChild" per node would reverse
// them.
type inserter struct {
	pos     insertPos
	anchors map[*html.Node]*html.Node
	pinned  map[*html.Node]bool
}

func (c *Collection) insert(a Arg, pos insertPos) *Collection {
	ins := &inserter{
		pos:     pos,
		anchors: make(map[*html.Node]*html.Node),
		pinned:  make(map[*html.Node]bool),
	}
	ins.resolve(c, a)
	return c
}

func (ins *inserter) resolve(c *Collection, a Arg) {
	switch v := a.(type) {
	case nodeArg:
		if target := c.First(); target != nil && v.n != nil {
			ins.place(target, v.n)
		}
	case listArg:
		for _, member := range v {
			ins.resolve(c, member)
		}
	case strArg:
		for _, target := range c.nodes {
			// fresh parse per target; a node can only live in one place
			for _, n := range parseMarkupLoose(string(v)) {
				ins.place(target, n)
			}
		}
	}
}

func (ins *inserter) place(target, n *html.Node) {
	if !ins.pinned[target] {
		ins.pinned[target] = true
		switch ins.pos {
		case posPrepend:
			ins.anchors[target] = target.FirstChild
		case posBefore:
			ins.anchors[target] = target
		case posAfter:
			ins.anchors[target] = target.NextSibling
		}
	}
	detach(n)
	switch ins.pos {
	case posAppend:
		target.AppendChild(n)
	case posPrepend:
		target.InsertBefore(n, ins.anchors[target])
	case posBefore, posAfter:
		if target.Parent != nil {
			target.Parent.InsertBefore(n, ins.anchors[target])
		}
	}
}

// parseMarkupLoose parses an insertion payload. Unlike the builder's
// markup detection it adopts whatever the fragment yields, text nodes
// included, since an insertion string has no selector fallback.
func parseMarkupLoose(s string) []*html.Node {
	if nodes := parseMarkup(s); nodes != nil {
		return nodes
	}
	if s == "" {
		return nil
	}
	return []*html.Node{{Type: html.TextNode, Data: s}}
}

// detach unlinks n from its parent and siblings, leaving it free to be
// inserted elsewhere.
func detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
		return
	}
	// fragment-parse output can carry sibling links without a parent
	n.PrevSibling = nil
	n.NextSibling = nil
}
