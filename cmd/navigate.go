package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/net/html"

	"dominik/dom"
)

func nextElementSibling(n *html.Node) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

func prevElementSibling(n *html.Node) *html.Node {
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

func firstElementChild(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

func parentElement(n *html.Node) *html.Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return p
		}
	}
	return nil
}

var NextCmd = &cobra.Command{
	Use:   "next",
	Short: "Navigate to the next sibling element",
	Run: func(cmd *cobra.Command, args []string) {
		if !hasCurrentElement() {
			return
		}
		nextElement := nextElementSibling(CurrentElement)
		if nextElement == nil {
			fmt.Println("Error: no next sibling element.")
			return
		}
		CurrentElement = nextElement
		fmt.Println("Navigated to the next element.")
		ReportElement(CurrentElement)
	},
}

func hasCurrentElement() bool {
	if CurrentElement == nil {
		fmt.Println("Error: CurrentElement is not defined. Please load a document or navigate to an element first.")
		return false
	}
	return true
}

var WalkCmd = &cobra.Command{
	Use:   "walk [steps]",
	Short: "Walk to the next element for a number of steps",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		steps, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Println("Error: Invalid number of steps.")
			return
		}
		for i := 0; i < steps; i++ {
			NextCmd.Run(cmd, []string{})
		}
	},
}

var PrevCmd = &cobra.Command{
	Use:   "prev",
	Short: "Navigate to the previous sibling element",
	Run: func(cmd *cobra.Command, args []string) {
		if !hasCurrentElement() {
			return
		}
		prevElement := prevElementSibling(CurrentElement)
		if prevElement == nil {
			fmt.Println("Error: no previous sibling element.")
			return
		}
		CurrentElement = prevElement
		fmt.Println("Navigated to the previous element.")
		ReportElement(CurrentElement)
	},
}

var ParentCmd = &cobra.Command{
	Use:   "parent",
	Short: "Navigate to the parent element",
	Run: func(cmd *cobra.Command, args []string) {
		if !hasCurrentElement() {
			return
		}
		parent := parentElement(CurrentElement)
		if parent == nil {
			fmt.Println("Error: no parent element.")
			return
		}
		CurrentElement = parent
		ReportElement(CurrentElement)
	},
}

var ChildCmd = &cobra.Command{
	Use:   "child",
	Short: "Navigate to the first child element",
	Run: func(cmd *cobra.Command, args []string) {
		if !hasCurrentElement() {
			return
		}
		child := firstElementChild(CurrentElement)
		if child == nil {
			fmt.Println("Error: no child element.")
			return
		}
		CurrentElement = child
		ReportElement(CurrentElement)
	},
}

// ListCmd re-lists the current search results and marks the focused one.
var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the current element list",
	Run: func(cmd *cobra.Command, args []string) {
		if len(elementList) == 0 {
			fmt.Println("No element list; run search first.")
			return
		}
		for i, n := range elementList {
			marker := " "
			if i == currentIndex {
				marker = "*"
			}
			col := Doc.Query(dom.Node(n))
			fmt.Printf("%s [%d] %s %.60s\n", marker, i, n.Data, col.Text())
		}
	},
}

func init() {
	RootCmd.AddCommand(NextCmd)
	RootCmd.AddCommand(PrevCmd)
	RootCmd.AddCommand(WalkCmd)
	RootCmd.AddCommand(ParentCmd)
	RootCmd.AddCommand(ChildCmd)
	RootCmd.AddCommand(ListCmd)
}
