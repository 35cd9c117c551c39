package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"dominik/dom"
)

// Dispatch runs the named event on the current element through the
// document's handler tables, recording it in the dispatch log.
func dispatchEvent(event string) {
	col := Doc.Query(dom.Node(CurrentElement))
	handlers := Doc.Handlers(CurrentElement, event)
	col.Dispatch(event)

	msg := fmt.Sprintf("dispatched %q on %s (%d handlers)", event, CurrentElement.Data, handlers)
	dispatchLog.Add(msg)
	if ShowDispatches {
		fmt.Fprintln(os.Stderr, msg)
	}
}

var ClickCmd = &cobra.Command{
	Use:   "click",
	Short: "Click on the current element",
	Long:  `Click dispatches a click event to the handlers registered on the current element. Without registered handlers this is a silent no-op.`,
	Run: func(cmd *cobra.Command, args []string) {
		if !hasDocument() || !hasCurrentElement() {
			return
		}
		dispatchEvent("click")
	},
}

var FireCmd = &cobra.Command{
	Use:   "fire [event]",
	Short: "Dispatch an arbitrary event on the current element",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !hasDocument() || !hasCurrentElement() {
			return
		}
		dispatchEvent(args[0])
	},
}

var OnCmd = &cobra.Command{
	Use:   "on [event]",
	Short: "Register a logging handler for an event on the current element",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !hasDocument() || !hasCurrentElement() {
			return
		}
		event := args[0]
		Doc.Query(dom.Node(CurrentElement)).On(event, func(e *dom.Event) {
			fmt.Printf("event %q fired on %s\n", e.Type, e.Target.Data)
		})
		fmt.Printf("handler registered for %q (%d total)\n", event, Doc.Handlers(CurrentElement, event))
	},
}

var OffCmd = &cobra.Command{
	Use:   "off [event]",
	Short: "Remove all handlers for an event on the current element",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !hasDocument() || !hasCurrentElement() {
			return
		}
		event := args[0]
		Doc.Query(dom.Node(CurrentElement)).Off(event)
		fmt.Printf("handlers cleared for %q\n", event)
	},
}

var TypeCmd = &cobra.Command{
	Use:   "type",
	Short: "Type text into the current element",
	Long:  `Type sets the value attribute of the current element and dispatches an input event, the closest thing an offline document has to typing.`,
	Run: func(cmd *cobra.Command, args []string) {
		if !hasDocument() || !hasCurrentElement() {
			return
		}
		if len(args) < 1 {
			fmt.Println("Error: No text provided for typing")
			return
		}
		text := strings.Join(args, " ")
		text = strings.TrimSpace(text)
		if l := len(text); l >= 2 {
			if (text[0] == '"' && text[l-1] == '"') || (text[0] == '\'' && text[l-1] == '\'') {
				text = text[1 : l-1]
			}
		}
		Doc.Query(dom.Node(CurrentElement)).SetAttr("value", text)
		dispatchEvent("input")
	},
}

func init() {
	RootCmd.AddCommand(ClickCmd)
	RootCmd.AddCommand(FireCmd)
	RootCmd.AddCommand(OnCmd)
	RootCmd.AddCommand(OffCmd)
	RootCmd.AddCommand(TypeCmd)
}
