package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/net/html"

	"dominik/dom"
)

// convertTreeToMarkdown walks the element subtree and emits a
// standards-compliant Markdown document.
func convertTreeToMarkdown(doc *dom.Document, root *html.Node) string {
	var sb strings.Builder

	text := func(n *html.Node) string {
		return strings.TrimSpace(doc.Query(dom.Node(n)).Text())
	}
	attr := func(n *html.Node, name string) string {
		if v, ok := dom.GetAttr(n, name); ok {
			return v
		}
		return ""
	}

	var walk func(n *html.Node, depth int)
	walk = func(n *html.Node, depth int) {
		if n.Type != html.ElementNode {
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c, depth)
			}
			return
		}
		switch n.Data {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			level := int(n.Data[1] - '0')
			sb.WriteString(strings.Repeat("#", level) + " " + text(n) + "\n\n")
			return
		case "p":
			if t := text(n); t != "" {
				sb.WriteString(t + "\n\n")
			}
			return
		case "a":
			href := attr(n, "href")
			label := text(n)
			if label == "" {
				label = href
			}
			if href != "" {
				sb.WriteString("[" + label + "](" + href + ")\n\n")
			} else if label != "" {
				sb.WriteString(label + "\n\n")
			}
			return
		case "img":
			alt := attr(n, "alt")
			if src := attr(n, "src"); src != "" {
				sb.WriteString("![" + alt + "](" + src + ")\n\n")
			}
			return
		case "li":
			sb.WriteString(strings.Repeat("  ", depth) + "- " + text(n) + "\n")
			return
		case "ul", "ol":
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c, depth+1)
			}
			sb.WriteString("\n")
			return
		case "script", "style", "head":
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, depth)
		}
	}
	walk(root, -1)

	return strings.TrimSpace(sb.String()) + "\n"
}

// outlineMarkdown reduces the subtree to its heading skeleton.
func outlineMarkdown(doc *dom.Document, root *html.Node) string {
	var sb strings.Builder
	headings := doc.Query(dom.Node(root)).Query(dom.Str("h1, h2, h3, h4, h5, h6"))
	headings.Each(func(i int, n *html.Node) {
		level := int(n.Data[1] - '0')
		t := strings.TrimSpace(doc.Query(dom.Node(n)).Text())
		sb.WriteString(strings.Repeat("#", level) + " " + t + "\n")
	})
	if sb.Len() == 0 {
		return "(no headings)\n"
	}
	return sb.String()
}

var outlineOnly bool

var MarkdownCmd = &cobra.Command{
	Use:     "markdown",
	Aliases: []string{"md"},
	Short:   "Render the current element as Markdown",
	Run: func(cmd *cobra.Command, args []string) {
		if !hasDocument() || !hasCurrentElement() {
			return
		}
		if outlineOnly {
			fmt.Print(outlineMarkdown(Doc, CurrentElement))
			return
		}
		fmt.Print(convertTreeToMarkdown(Doc, CurrentElement))
	},
}

// OutlineCmd is the heading skeleton as its own command, the markdown
// command with --outline baked in.
var OutlineCmd = &cobra.Command{
	Use:   "outline",
	Short: "Print the heading outline of the current element",
	Run: func(cmd *cobra.Command, args []string) {
		if !hasDocument() || !hasCurrentElement() {
			return
		}
		fmt.Print(outlineMarkdown(Doc, CurrentElement))
	},
}

func init() {
	MarkdownCmd.Flags().BoolVar(&outlineOnly, "outline", false, "Emit only the heading outline")
	RootCmd.AddCommand(MarkdownCmd)
	RootCmd.AddCommand(OutlineCmd)
}
