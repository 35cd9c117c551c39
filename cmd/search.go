package cmd

import (
	"fmt"
	"strings"

	survey "github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"

	"dominik/dom"
)

var searchScoped bool

var SearchCmd = &cobra.Command{
	Use:     "search [selector]",
	Aliases: []string{"q", "query"},
	Short:   "Search the document with a CSS selector",
	Long:    `Search resolves the selector against the document (or, with --scoped, within the current element only) and makes the matches the navigable element list.`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !hasDocument() {
			return
		}
		selector := args[0]
		var (
			matches []*html.Node
			err     error
		)
		if searchScoped && CurrentElement != nil {
			matches, err = scopedQueryElements(Doc, CurrentElement, selector)
		} else {
			matches, err = queryElements(Doc, selector)
		}
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		if len(matches) == 0 {
			fmt.Printf("no elements found for selector %s\n", selector)
			return
		}
		elementList = matches
		currentIndex = 0
		CurrentElement = elementList[currentIndex]
		fmt.Printf("found %d elements for selector %q\n", len(matches), selector)
		ReportElement(CurrentElement)
	},
}

var PickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick the focused element from the current list interactively",
	Run: func(cmd *cobra.Command, args []string) {
		if len(elementList) == 0 {
			fmt.Println("No element list; run search first.")
			return
		}
		if !StdoutIsTerminal() {
			fmt.Println("Error: pick needs a terminal; use next/prev instead.")
			return
		}
		options := make([]string, len(elementList))
		for i, n := range elementList {
			text := strings.TrimSpace(Doc.Query(dom.Node(n)).Text())
			options[i] = fmt.Sprintf("[%d] %s %.60s", i, n.Data, text)
		}
		var selection string
		prompt := &survey.Select{
			Message: "Select an element to focus",
			Options: options,
		}
		if err := survey.AskOne(prompt, &selection); err != nil {
			fmt.Println("Error:", err)
			return
		}
		for i, opt := range options {
			if opt == selection {
				currentIndex = i
				CurrentElement = elementList[i]
				break
			}
		}
		ReportElement(CurrentElement)
	},
}

func init() {
	SearchCmd.Flags().BoolVarP(&searchScoped, "scoped", "s", false, "Search within the current element only")
	RootCmd.AddCommand(SearchCmd)
	RootCmd.AddCommand(PickCmd)
}
