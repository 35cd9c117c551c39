package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"dominik/dom"
)

var ClassCmd = &cobra.Command{
	Use:   "class add|del|toggle|has name...",
	Short: "Manipulate the class list of the current element",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if !hasDocument() || !hasCurrentElement() {
			return
		}
		col := Doc.Query(dom.Node(CurrentElement))
		op, names := args[0], args[1:]
		switch op {
		case "add":
			col.AddClass(names...)
		case "del", "rm", "remove":
			col.RemoveClass(names...)
		case "toggle":
			col.ToggleClass(names...)
		case "has":
			for _, name := range names {
				fmt.Printf("%s: %t\n", name, col.HasClass(name))
			}
			return
		default:
			fmt.Println("Error: unknown class operation:", op)
			return
		}
		if raw := col.Attr("class"); raw != nil {
			fmt.Printf("class=%q\n", raw)
		} else {
			fmt.Println("class attribute empty")
		}
	},
}

func init() {
	RootCmd.AddCommand(ClassCmd)
}
