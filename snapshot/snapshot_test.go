package snapshot

import (
	"strings"
	"testing"

	"dominik/dom"
)

func fixtureDoc(t *testing.T) *dom.Document {
	t.Helper()
	doc, err := dom.ParseString(`<body><div id="d"><h1>Title</h1><p>Some  text</p></div></body>`)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

func fixtureNode(t *testing.T, doc *dom.Document) *dom.Collection {
	t.Helper()
	col := doc.Query(dom.Str("#d"))
	if col.Len() != 1 {
		t.Fatalf("fixture selector matched %d nodes", col.Len())
	}
	return col
}

func TestCaptureHTML(t *testing.T) {
	doc := fixtureDoc(t)
	node := fixtureNode(t, doc).First()

	res, err := Capture(doc, node, Options{Format: "html"})
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if res.MimeType != "text/html" {
		t.Errorf("unexpected mime type %q", res.MimeType)
	}
	if !strings.Contains(string(res.Data), "<h1>Title</h1>") {
		t.Errorf("html capture missing heading: %s", res.Data)
	}
}

func TestCaptureText(t *testing.T) {
	doc := fixtureDoc(t)
	node := fixtureNode(t, doc).First()

	res, err := Capture(doc, node, Options{Format: "text"})
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if res.MimeType != "text/plain" {
		t.Errorf("unexpected mime type %q", res.MimeType)
	}
	text := string(res.Data)
	if !strings.Contains(text, "Title") || !strings.Contains(text, "Some  text") {
		t.Errorf("text capture incomplete: %q", text)
	}
	if !strings.HasSuffix(text, "\n") {
		t.Errorf("text capture should end with a newline")
	}
}

func TestCaptureDefaultsToHTML(t *testing.T) {
	doc := fixtureDoc(t)
	node := fixtureNode(t, doc).First()

	res, err := Capture(doc, node, Options{})
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if res.MimeType != "text/html" {
		t.Errorf("empty format should default to html, got %q", res.MimeType)
	}
}

func TestCaptureRejectsBadInput(t *testing.T) {
	doc := fixtureDoc(t)
	node := fixtureNode(t, doc).First()

	if _, err := Capture(nil, node, Options{}); err == nil {
		t.Errorf("expected error for nil document")
	}
	if _, err := Capture(doc, nil, Options{}); err == nil {
		t.Errorf("expected error for nil node")
	}
	if _, err := Capture(doc, node, Options{Format: "pdf"}); err == nil {
		t.Errorf("expected error for unsupported format")
	}
}

func TestSanitizeComponent(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"  padded  ", "padded"},
		{`a/b\c:d`, "a_b_c_d"},
		{"with space", "with_space"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := SanitizeComponent(tc.in); got != tc.want {
			t.Errorf("SanitizeComponent(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBuildFilename(t *testing.T) {
	got := BuildFilename("div", "text/html", FileNamingOptions{})
	if got != "div.html" {
		t.Errorf("plain name = %q, want div.html", got)
	}

	got = BuildFilename("div", "text/plain", FileNamingOptions{Prefix: "page", Suffix: "v2"})
	if got != "page_div_v2.txt" {
		t.Errorf("prefixed name = %q, want page_div_v2.txt", got)
	}

	got = BuildFilename("ignored", "text/markdown", FileNamingOptions{ExplicitName: "notes.md"})
	if got != "notes.md" {
		t.Errorf("explicit name = %q, want notes.md", got)
	}

	got = BuildFilename("", "application/octet-stream", FileNamingOptions{})
	if got != "snapshot" {
		t.Errorf("fallback name = %q, want snapshot", got)
	}

	got = BuildFilename("report", "text/html", FileNamingOptions{IncludeTimestamp: true, TimestampFormat: "2006"})
	if !strings.HasSuffix(got, "_report.html") {
		t.Errorf("timestamped name = %q, want *_report.html", got)
	}
}
