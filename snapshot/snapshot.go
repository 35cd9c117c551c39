// Package snapshot renders parts of a document into saveable artifacts.
package snapshot

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/net/html"

	"dominik/dom"
)

// Result describes the outcome of a capture operation.
type Result struct {
	Data     []byte
	MimeType string
}

// Options controls what Capture renders.
type Options struct {
	// Format is one of html, text. Defaults to html.
	Format string
}

// Capture renders node n of doc in the requested format and returns raw
// bytes plus mime type.
func Capture(doc *dom.Document, n *html.Node, opts Options) (*Result, error) {
	if doc == nil {
		return nil, errors.New("capture: document is nil")
	}
	if n == nil {
		return nil, errors.New("capture: node is nil")
	}

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "html"
	}

	col := doc.Query(dom.Node(n))
	switch format {
	case "html":
		return &Result{Data: []byte(col.OuterHtml()), MimeType: "text/html"}, nil
	case "text":
		return &Result{Data: []byte(strings.TrimSpace(col.Text()) + "\n"), MimeType: "text/plain"}, nil
	default:
		return nil, fmt.Errorf("capture: unsupported format %q", format)
	}
}

// FileNamingOptions controls how saved snapshots are named on disk.
type FileNamingOptions struct {
	ExplicitName     string
	Prefix           string
	Suffix           string
	IncludeTimestamp bool
	TimestampFormat  string
}

var filenameSanitizer = strings.NewReplacer(
	"<", "_",
	">", "_",
	":", "_",
	"\"", "_",
	"/", "_",
	"\\", "_",
	"|", "_",
	"?", "_",
	"*", "_",
	" ", "_",
)

// SanitizeComponent removes filesystem-hostile characters but allows
// empty results.
func SanitizeComponent(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(filenameSanitizer.Replace(trimmed))
}

// ExtensionForMIME maps the mime types Capture produces to file
// extensions. Unknown types map to "".
func ExtensionForMIME(mimeType string) string {
	switch strings.ToLower(strings.TrimSpace(mimeType)) {
	case "text/html":
		return "html"
	case "text/plain":
		return "txt"
	case "text/markdown":
		return "md"
	}
	return ""
}

// BuildFilename assembles a filename from base, the result's mime type
// and the naming options.
func BuildFilename(base, mimeType string, opts FileNamingOptions) string {
	name := base
	if strings.TrimSpace(opts.ExplicitName) != "" {
		name = opts.ExplicitName
	}

	ext := filepath.Ext(name)
	if ext == "" {
		if mapped := ExtensionForMIME(mimeType); mapped != "" {
			ext = "." + mapped
		}
	}

	trimmed := strings.TrimSuffix(name, ext)
	components := make([]string, 0, 4)

	if prefix := SanitizeComponent(opts.Prefix); prefix != "" {
		components = append(components, prefix)
	}

	if opts.IncludeTimestamp {
		format := strings.TrimSpace(opts.TimestampFormat)
		if format == "" {
			format = "2006-01-02_150405"
		}
		if ts := SanitizeComponent(time.Now().Format(format)); ts != "" {
			components = append(components, ts)
		}
	}

	if cleaned := SanitizeComponent(trimmed); cleaned != "" {
		components = append(components, cleaned)
	}

	if suffix := SanitizeComponent(opts.Suffix); suffix != "" {
		components = append(components, suffix)
	}

	if len(components) == 0 {
		components = append(components, "snapshot")
	}

	return strings.Join(components, "_") + ext
}
