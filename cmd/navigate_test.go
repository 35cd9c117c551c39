package cmd

import (
	"testing"

	"dominik/dom"
)

func TestElementSiblingHelpers(t *testing.T) {
	resetDocGlobals(t, `<body><ul id="l">
		<li id="a">a</li>
		<li id="b">b</li>
		<li id="c">c</li>
	</ul></body>`)

	a := mustQueryOne(t, "#a")
	b := mustQueryOne(t, "#b")
	c := mustQueryOne(t, "#c")
	list := mustQueryOne(t, "#l")

	if got := nextElementSibling(a); got != b {
		t.Errorf("nextElementSibling(a) = %v, want b", got)
	}
	if got := nextElementSibling(c); got != nil {
		t.Errorf("nextElementSibling(c) should be nil, got %v", got)
	}
	if got := prevElementSibling(c); got != b {
		t.Errorf("prevElementSibling(c) = %v, want b", got)
	}
	if got := prevElementSibling(a); got != nil {
		t.Errorf("prevElementSibling(a) should be nil, got %v", got)
	}
	if got := firstElementChild(list); got != a {
		t.Errorf("firstElementChild(list) = %v, want a", got)
	}
	if got := firstElementChild(a); got != nil {
		t.Errorf("firstElementChild(a) should be nil for a leaf, got %v", got)
	}
	if got := parentElement(a); got != list {
		t.Errorf("parentElement(a) = %v, want list", got)
	}
}

func TestQueryElementsRejectsBadSelector(t *testing.T) {
	resetDocGlobals(t, `<body><p>x</p></body>`)

	if _, err := queryElements(Doc, "p["); err == nil {
		t.Fatalf("expected error for malformed selector")
	}
	nodes, err := queryElements(Doc, "p")
	if err != nil {
		t.Fatalf("valid selector errored: %v", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("expected 1 match, got %d", len(nodes))
	}
}

func TestScopedQueryElements(t *testing.T) {
	resetDocGlobals(t, `<body><div id="scope"><span>in</span></div><span>out</span></body>`)

	scope := mustQueryOne(t, "#scope")
	nodes, err := scopedQueryElements(Doc, scope, "span")
	if err != nil {
		t.Fatalf("scoped query: %v", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("expected 1 scoped match, got %d", len(nodes))
	}
	if text := Doc.Query(dom.Node(nodes[0])).Text(); text != "in" {
		t.Fatalf("scoped query matched outside the scope: %q", text)
	}
}
