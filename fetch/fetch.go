// Package fetch retrieves HTML documents over HTTP and parses them into
// in-memory DOM documents.
package fetch

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"dominik/dom"
)

// Client fetches pages with retries and a cookie jar. The zero value is
// not usable, construct one with NewClient.
type Client struct {
	MaxRetries int
	Backoff    time.Duration
	UserAgent  string
	client     *http.Client
}

func NewClient() *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		MaxRetries: 3,
		Backoff:    2 * time.Second,
		UserAgent:  "Mozilla/5.0 (compatible; DominikBot/1.0; +https://example.com)",
		client:     &http.Client{Jar: jar, Timeout: 30 * time.Second},
	}
}

func (c *Client) get(rawURL string) (*http.Response, error) {
	var resp *http.Response
	var err error
	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		req, reqErr := http.NewRequest("GET", rawURL, nil)
		if reqErr != nil {
			return nil, reqErr
		}
		req.Header.Set("User-Agent", c.UserAgent)
		resp, err = c.client.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode == http.StatusOK {
			return resp, nil
		}
		resp.Body.Close()
		if resp.StatusCode >= 500 && attempt < c.MaxRetries {
			time.Sleep(c.Backoff * (1 << attempt))
			continue
		}
		return nil, fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}
	return nil, fmt.Errorf("no attempts made for %s", rawURL)
}

// Load fetches rawURL and parses the body into a document, honoring the
// charset declared in the Content-Type header or the markup itself.
func (c *Client) Load(rawURL string) (*dom.Document, error) {
	resp, err := c.get(rawURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("charset detection: %w", err)
	}
	return dom.Parse(reader)
}

// Link is an anchor found on a fetched page.
type Link struct {
	Href string
	Text string
}

// Links fetches rawURL and returns its anchors, skipping ones without an
// href.
func (c *Client) Links(rawURL string) ([]Link, error) {
	resp, err := c.get(rawURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}
	var links []Link
	doc.Find("a").Each(func(i int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || href == "" {
			return
		}
		links = append(links, Link{Href: href, Text: clean(s.Text())})
	})
	return links, nil
}

// Headings fetches rawURL and returns its heading texts in document
// order.
func (c *Client) Headings(rawURL string) ([]string, error) {
	resp, err := c.get(rawURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}
	var headings []string
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(i int, s *goquery.Selection) {
		if text := clean(s.Text()); text != "" {
			headings = append(headings, text)
		}
	})
	return headings, nil
}

func clean(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
