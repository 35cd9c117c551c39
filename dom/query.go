package dom

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Arg is one argument to the collection builder. The accepted shapes are
// fixed by the constructors below: Str (selector or markup), Node, List
// and Ready. Resolution walks the arguments left to right and
// concatenates whatever each one contributes.
type Arg interface {
	isArg()
}

type strArg string
type nodeArg struct{ n *html.Node }
type listArg []Arg
type readyArg func()

func (strArg) isArg()   {}
func (nodeArg) isArg()  {}
func (listArg) isArg()  {}
func (readyArg) isArg() {}

// Str builds a string argument. It is first tried as markup; when the
// fragment parse yields no elements it is matched as a selector against
// every context element.
func Str(s string) Arg { return strArg(s) }

// Node wraps an existing node, appended to the result as-is.
func Node(n *html.Node) Arg { return nodeArg{n} }

// List groups arguments; members resolve recursively, in order.
func List(args ...Arg) Arg { return listArg(args) }

// Ready registers fn as a document-ready callback. It contributes no
// elements to the collection.
func Ready(fn func()) Arg { return readyArg(fn) }

// Query builds a collection scoped to the whole document. With no
// arguments the result holds the context elements themselves (here, the
// document node).
func (d *Document) Query(args ...Arg) *Collection {
	return build(d, []*html.Node{d.root}, args)
}

// Query on a collection is the sub-query form: identical resolution, but
// selectors are matched only within the receiver's elements.
func (c *Collection) Query(args ...Arg) *Collection {
	return build(c.doc, c.nodes, args)
}

func build(doc *Document, context []*html.Node, args []Arg) *Collection {
	out := &Collection{doc: doc}
	if len(args) == 0 {
		out.nodes = append(out.nodes, context...)
		return out
	}
	for _, a := range args {
		resolve(doc, context, a, out)
	}
	return out
}

func resolve(doc *Document, context []*html.Node, a Arg, out *Collection) {
	switch v := a.(type) {
	case strArg:
		s := string(v)
		if nodes := parseMarkup(s); nodes != nil {
			out.nodes = append(out.nodes, nodes...)
			return
		}
		out.nodes = append(out.nodes, matchSelector(context, s)...)
	case nodeArg:
		if v.n != nil {
			out.nodes = append(out.nodes, v.n)
		}
	case listArg:
		for _, member := range v {
			resolve(doc, context, member, out)
		}
	case readyArg:
		doc.Ready(v)
	}
}

// parseMarkup runs s through a scratch <div> fragment parse. The parsed
// children are adopted (detached, order preserved) when at least one of
// them is an element; otherwise nil is returned and the caller falls back
// to selector matching.
func parseMarkup(s string) []*html.Node {
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(s), ctx)
	if err != nil {
		return nil
	}
	hasElement := false
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			hasElement = true
			break
		}
	}
	if !hasElement {
		return nil
	}
	for _, n := range nodes {
		detach(n)
	}
	return nodes
}

// matchSelector matches sel under every context element, context order
// first, document order within each subtree. The context node itself is
// never part of the result. Invalid selector syntax panics, same as the
// underlying engine's Must form.
func matchSelector(context []*html.Node, sel string) []*html.Node {
	matcher := cascadia.MustCompile(sel)
	var out []*html.Node
	for _, ctx := range context {
		for _, m := range matcher.MatchAll(ctx) {
			if m == ctx {
				continue
			}
			out = append(out, m)
		}
	}
	return out
}
