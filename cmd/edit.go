package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dominik/dom"
)

// The insertion commands take raw markup; it is parsed fresh for the
// current element, so repeated insertions never share nodes.

func insertionCmd(use, short string, apply func(col *dom.Collection, markup string)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [markup]",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if !hasDocument() || !hasCurrentElement() {
				return
			}
			markup := strings.Join(args, " ")
			apply(Doc.Query(dom.Node(CurrentElement)), markup)
			ReportElement(CurrentElement)
		},
	}
}

var AppendCmd = insertionCmd("append", "Insert markup at the end of the current element's children",
	func(col *dom.Collection, markup string) { col.Append(dom.Str(markup)) })

var PrependCmd = insertionCmd("prepend", "Insert markup at the start of the current element's children",
	func(col *dom.Collection, markup string) { col.Prepend(dom.Str(markup)) })

var BeforeCmd = insertionCmd("before", "Insert markup immediately before the current element",
	func(col *dom.Collection, markup string) { col.Before(dom.Str(markup)) })

var AfterCmd = insertionCmd("after", "Insert markup immediately after the current element",
	func(col *dom.Collection, markup string) { col.After(dom.Str(markup)) })

var TextCmd = &cobra.Command{
	Use:   "text [value]",
	Short: "Get or set the text content of the current element",
	Run: func(cmd *cobra.Command, args []string) {
		if !hasDocument() || !hasCurrentElement() {
			return
		}
		col := Doc.Query(dom.Node(CurrentElement))
		if len(args) == 0 {
			fmt.Println(strings.TrimSpace(col.Text()))
			return
		}
		col.SetText(strings.Join(args, " "))
		ReportElement(CurrentElement)
	},
}

var EmptyCmd = &cobra.Command{
	Use:   "empty",
	Short: "Clear the content of the current element",
	Run: func(cmd *cobra.Command, args []string) {
		if !hasDocument() || !hasCurrentElement() {
			return
		}
		Doc.Query(dom.Node(CurrentElement)).Empty()
		ReportElement(CurrentElement)
	},
}

var RmCmd = &cobra.Command{
	Use:   "rm",
	Short: "Detach the current element from the document",
	Run: func(cmd *cobra.Command, args []string) {
		if !hasDocument() || !hasCurrentElement() {
			return
		}
		if Interactive && StdoutIsTerminal() {
			if !AskForConfirmation("Detach the current element? (y/n) ") {
				fmt.Println("aborted")
				return
			}
		}
		parent := parentElement(CurrentElement)
		Doc.Query(dom.Node(CurrentElement)).Remove()
		fmt.Println("element detached")
		if parent != nil {
			CurrentElement = parent
			ReportElement(CurrentElement)
		} else {
			CurrentElement = nil
		}
	},
}

var WidthCmd = &cobra.Command{
	Use:   "width [value]",
	Short: "Get or set the width of the current element",
	Run: func(cmd *cobra.Command, args []string) {
		if !hasDocument() || !hasCurrentElement() {
			return
		}
		col := Doc.Query(dom.Node(CurrentElement))
		if len(args) == 0 {
			fmt.Println(col.Width())
			return
		}
		col.SetWidth(args[0])
		fmt.Println(col.Width())
	},
}

var HeightCmd = &cobra.Command{
	Use:   "height [value]",
	Short: "Get or set the height of the current element",
	Run: func(cmd *cobra.Command, args []string) {
		if !hasDocument() || !hasCurrentElement() {
			return
		}
		col := Doc.Query(dom.Node(CurrentElement))
		if len(args) == 0 {
			fmt.Println(col.Height())
			return
		}
		col.SetHeight(args[0])
		fmt.Println(col.Height())
	},
}

func init() {
	RootCmd.AddCommand(AppendCmd)
	RootCmd.AddCommand(PrependCmd)
	RootCmd.AddCommand(BeforeCmd)
	RootCmd.AddCommand(AfterCmd)
	RootCmd.AddCommand(TextCmd)
	RootCmd.AddCommand(EmptyCmd)
	RootCmd.AddCommand(RmCmd)
	RootCmd.AddCommand(WidthCmd)
	RootCmd.AddCommand(HeightCmd)
}
