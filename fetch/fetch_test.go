package fetch

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dominik/dom"
)

func testClient() *Client {
	c := NewClient()
	c.Backoff = 0
	return c
}

func TestLoadRetriesOnServerErrors(t *testing.T) {
	wantAttempts := 3
	calls := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < wantAttempts {
			w.WriteHeader(500)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintln(w, `<html><body><h1>Recovered</h1></body></html>`)
	}))
	defer srv.Close()

	client := testClient()
	client.MaxRetries = wantAttempts

	doc, err := client.Load(srv.URL)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if calls != wantAttempts {
		t.Errorf("expected %d attempts, got %d", wantAttempts, calls)
	}
	if text := doc.Query(dom.Str("h1")).Text(); text != "Recovered" {
		t.Errorf("unexpected heading text %q", text)
	}
}

func TestLoadFailsOnClientError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(404)
	}))
	defer srv.Close()

	client := testClient()
	if _, err := client.Load(srv.URL); err == nil {
		t.Fatalf("expected error for 404 response")
	}
	if calls != 1 {
		t.Errorf("4xx responses must not be retried, got %d attempts", calls)
	}
}

func TestLoadSetsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		fmt.Fprintln(w, `<html><body></body></html>`)
	}))
	defer srv.Close()

	client := testClient()
	client.UserAgent = "test-agent/1.0"
	if _, err := client.Load(srv.URL); err != nil {
		t.Fatalf("load: %v", err)
	}
	if gotUA != "test-agent/1.0" {
		t.Errorf("expected custom user agent, got %q", gotUA)
	}
}

func TestLoadDecodesDeclaredCharset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		// 0xE9 is é in latin-1
		w.Write([]byte("<html><body><p>caf\xe9</p></body></html>"))
	}))
	defer srv.Close()

	doc, err := testClient().Load(srv.URL)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if text := doc.Query(dom.Str("p")).Text(); text != "café" {
		t.Errorf("charset not decoded, got %q", text)
	}
}

func TestLinks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, `<html><body>
			<a href="/one">First  link</a>
			<a href="/two">Second</a>
			<a>no href</a>
		</body></html>`)
	}))
	defer srv.Close()

	links, err := testClient().Links(srv.URL)
	if err != nil {
		t.Fatalf("links: %v", err)
	}
	if len(links) != 2 {
		t.Fatalf("expected 2 links, got %d", len(links))
	}
	if links[0].Href != "/one" || links[0].Text != "First link" {
		t.Errorf("unexpected first link: %+v", links[0])
	}
	if links[1].Href != "/two" {
		t.Errorf("unexpected second link: %+v", links[1])
	}
}

func TestHeadings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, `<html><body><h1>Top</h1><p>x</p><h2>  Sub  heading </h2><h3></h3></body></html>`)
	}))
	defer srv.Close()

	headings, err := testClient().Headings(srv.URL)
	if err != nil {
		t.Fatalf("headings: %v", err)
	}
	want := []string{"Top", "Sub heading"}
	if len(headings) != len(want) {
		t.Fatalf("expected %d headings, got %d: %v", len(want), len(headings), headings)
	}
	for i := range want {
		if headings[i] != want[i] {
			t.Errorf("heading %d = %q, want %q", i, headings[i], want[i])
		}
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient()
	if c.MaxRetries != 3 {
		t.Errorf("unexpected MaxRetries %d", c.MaxRetries)
	}
	if c.Backoff != 2*time.Second {
		t.Errorf("unexpected Backoff %v", c.Backoff)
	}
	if c.client == nil || c.client.Jar == nil {
		t.Errorf("http client or cookie jar missing")
	}
}
