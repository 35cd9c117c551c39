package dom

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func TestGetAndNodes(t *testing.T) {
	doc := mustParse(t, `<p>1</p><p>2</p>`)
	col := doc.Query(Str("p"))

	if col.Get(-1) != nil || col.Get(2) != nil {
		t.Errorf("expected nil for out-of-range indexes")
	}
	nodes := col.Nodes()
	if len(nodes) != col.Len() {
		t.Fatalf("expected Nodes to return the whole sequence")
	}
	for i := range nodes {
		if nodes[i] != col.Get(i) {
			t.Errorf("Nodes()[%d] differs from Get(%d)", i, i)
		}
	}
}

func TestFindConcatenatesReceiverOrder(t *testing.T) {
	doc := mustParse(t, `<div id="a"><s>a1</s><s>a2</s></div><div id="b"><s>b1</s></div>`)

	col := doc.Query(Str("#b"), Str("#a")).Find("s")
	want := []string{"b1", "a1", "a2"}
	if col.Len() != len(want) {
		t.Fatalf("expected %d matches, got %d", len(want), col.Len())
	}
	for i, w := range want {
		if got := elemText(col.Get(i)); got != w {
			t.Errorf("match %d: expected %q, got %q", i, w, got)
		}
	}
}

func TestEachMapFilter(t *testing.T) {
	doc := mustParse(t, `<p>a</p><p>b</p><p>c</p>`)
	col := doc.Query(Str("p"))

	var visited []int
	if got := col.Each(func(i int, n *html.Node) { visited = append(visited, i) }); got != col {
		t.Errorf("expected Each to return the receiver")
	}
	if len(visited) != 3 || visited[2] != 2 {
		t.Errorf("expected Each to visit all indexes in order, got %v", visited)
	}

	texts := col.MapNodes(func(i int, n *html.Node) interface{} {
		return elemText(n)
	})
	if len(texts) != 3 || texts[0] != "a" || texts[2] != "c" {
		t.Errorf("unexpected MapNodes result %v", texts)
	}

	odd := col.Filter(func(i int, n *html.Node) bool { return i%2 == 1 })
	if odd.Len() != 1 || elemText(odd.Get(0)) != "b" {
		t.Errorf("expected Filter to keep only index 1")
	}
}

func TestTextGetterAndSetter(t *testing.T) {
	doc := mustParse(t, `<p><b>bo</b>ld</p><p>two</p>`)
	col := doc.Query(Str("p"))

	if got := col.Text(); got != "bold" {
		t.Errorf("expected rendered text of first element, got %q", got)
	}

	col.SetText("new")
	for i := 0; i < col.Len(); i++ {
		one := doc.Query(Node(col.Get(i)))
		if got := one.Text(); got != "new" {
			t.Errorf("element %d: expected text %q, got %q", i, "new", got)
		}
	}
	if doc.Query(Str("b")).Len() != 0 {
		t.Errorf("expected SetText to drop the old children")
	}
}

func TestEmptyAndRemove(t *testing.T) {
	doc := mustParse(t, `<div id="a"><i>x</i></div><div id="b"></div>`)

	doc.Query(Str("#a")).Empty()
	if doc.Query(Str("#a")).Find("i").Len() != 0 {
		t.Errorf("expected Empty to clear the children")
	}

	col := doc.Query(Str("div"))
	col.Remove()
	if doc.Query(Str("div")).Len() != 0 {
		t.Errorf("expected Remove to detach all elements from the tree")
	}
	if col.Len() != 2 {
		t.Errorf("expected detached elements to stay in the collection")
	}
}

func TestHtmlRendering(t *testing.T) {
	doc := mustParse(t, `<div id="a"><b>x</b></div>`)
	col := doc.Query(Str("#a"))

	if got := col.Html(); got != "<b>x</b>" {
		t.Errorf("expected inner markup, got %q", got)
	}
	if got := col.OuterHtml(); !strings.Contains(got, `<div id="a">`) {
		t.Errorf("expected outer markup to include the element, got %q", got)
	}
}

func TestDataSideTable(t *testing.T) {
	doc := mustParse(t, `<p>1</p><p>2</p>`)
	col := doc.Query(Str("p"))

	if col.Data("k") != nil {
		t.Errorf("expected nil before any SetData")
	}
	col.SetData("k", 42)
	if got := col.Data("k"); got != 42 {
		t.Errorf("expected data 42, got %#v", got)
	}
	second := doc.Query(Node(col.Get(1)))
	if got := second.Data("k"); got != 42 {
		t.Errorf("expected SetData to reach every element, got %#v", got)
	}
}

func TestClassOperations(t *testing.T) {
	doc := mustParse(t, `<p class="x"></p><p></p>`)
	col := doc.Query(Str("p"))

	col.AddClass("a")
	col.AddClass("a") // idempotent
	for i := 0; i < col.Len(); i++ {
		classes := classList(col.Get(i))
		seen := 0
		for _, cls := range classes {
			if cls == "a" {
				seen++
			}
		}
		if seen != 1 {
			t.Errorf("element %d: expected class a exactly once, classes %v", i, classes)
		}
	}

	if !col.HasClass("x") {
		t.Errorf("expected HasClass to consult the first element")
	}
	col.RemoveClass("x")
	if col.HasClass("x") {
		t.Errorf("expected RemoveClass to strip x")
	}

	col.ToggleClass("t")
	if !col.HasClass("t") {
		t.Errorf("expected ToggleClass to add a missing class")
	}
	col.ToggleClass("t")
	if col.HasClass("t") {
		t.Errorf("expected ToggleClass to remove a present class")
	}

	empty := doc.Query(Str("#missing"))
	if empty.HasClass("a") {
		t.Errorf("expected HasClass false on empty collection")
	}
}
