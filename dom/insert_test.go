package dom

import (
	"testing"

	"golang.org/x/net/html"
)

func childTexts(n *html.Node) []string {
	var out []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		col := &Collection{nodes: []*html.Node{c}}
		out = append(out, col.Text())
	}
	return out
}

func detachedElem(t *testing.T, doc *Document, markup string) *html.Node {
	t.Helper()
	col := doc.Query(Str(markup))
	if col.Len() == 0 {
		t.Fatalf("failed to build element from %q", markup)
	}
	return col.Get(0)
}

func TestAppendNodeTargetsFirstElementOnly(t *testing.T) {
	doc := mustParse(t, `<div id="a"></div><div id="b"></div>`)
	col := doc.Query(Str("div"))

	col.Append(Node(detachedElem(t, doc, "<i>x</i>")))

	if got := doc.Query(Str("#a")).Find("i").Len(); got != 1 {
		t.Errorf("expected node appended to the first element, found %d", got)
	}
	if got := doc.Query(Str("#b")).Find("i").Len(); got != 0 {
		t.Errorf("expected second element untouched, found %d", got)
	}
}

func TestAppendMarkupFansOutToEveryElement(t *testing.T) {
	doc := mustParse(t, `<div id="a"></div><div id="b"></div>`)
	col := doc.Query(Str("div"))

	col.Append(Str("<i>x</i>"))

	for _, id := range []string{"#a", "#b"} {
		if got := doc.Query(Str(id)).Find("i").Len(); got != 1 {
			t.Errorf("%s: expected markup inserted, found %d", id, got)
		}
	}
}

func TestAppendOnEmptyCollectionIsNoOp(t *testing.T) {
	doc := mustParse(t, `<div id="a"></div>`)
	n := detachedElem(t, doc, "<i>x</i>")

	doc.Query(Str("#missing")).Append(Node(n))
	if n.Parent != nil {
		t.Errorf("expected payload to stay detached")
	}
}

func TestPrependListPreservesOrder(t *testing.T) {
	doc := mustParse(t, `<div id="a"><span>old</span></div>`)
	col := doc.Query(Str("#a"))

	x := detachedElem(t, doc, "<i>x</i>")
	y := detachedElem(t, doc, "<i>y</i>")
	col.Prepend(List(Node(x), Node(y)))

	want := []string{"x", "y", "old"}
	got := childTexts(col.Get(0))
	if len(got) != len(want) {
		t.Fatalf("expected children %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected children %v, got %v", want, got)
		}
	}
}

func TestBeforeAndAfterPlacement(t *testing.T) {
	doc := mustParse(t, `<div id="p"><span id="mid">m</span></div>`)
	mid := doc.Query(Str("#mid"))

	mid.Before(Str("<i>b</i>"))
	mid.After(Str("<i>a1</i><i>a2</i>"))

	parent := doc.Query(Str("#p")).Get(0)
	want := []string{"b", "m", "a1", "a2"}
	got := childTexts(parent)
	if len(got) != len(want) {
		t.Fatalf("expected children %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected children %v, got %v", want, got)
		}
	}
}

func TestAfterMarkupFansOutToEveryElement(t *testing.T) {
	doc := mustParse(t, `<ul><li id="x">x</li><li id="y">y</li></ul>`)

	doc.Query(Str("li")).After(Str("<li>n</li>"))

	items := doc.Query(Str("li"))
	want := []string{"x", "n", "y", "n"}
	if items.Len() != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), items.Len())
	}
	for i, w := range want {
		if got := elemText(items.Get(i)); got != w {
			t.Errorf("item %d: expected %q, got %q", i, w, got)
		}
	}
}

func TestInsertMovesAttachedNode(t *testing.T) {
	doc := mustParse(t, `<div id="a"><i id="m">m</i></div><div id="b"></div>`)

	moved := doc.Query(Str("#m")).Get(0)
	doc.Query(Str("#b")).Append(Node(moved))

	if doc.Query(Str("#a")).Find("i").Len() != 0 {
		t.Errorf("expected node moved out of its old parent")
	}
	if doc.Query(Str("#b")).Find("i").Len() != 1 {
		t.Errorf("expected node attached to the new parent")
	}
}
