package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ysmood/gson"

	"dominik/dom"
)

// Box prints the in-memory box model of the current element.
func Box(col *dom.Collection) {
	box := map[string]interface{}{
		"width":       col.Width(),
		"height":      col.Height(),
		"outerWidth":  col.OuterWidth(),
		"outerHeight": col.OuterHeight(),
		"offset":      col.Offset(),
		"position":    col.Position(),
	}
	fmt.Println("box: ", gson.New(box).JSON("", "  "))
}

var BoxCmd = &cobra.Command{
	Use:   "box",
	Short: "Get the box of the current element",
	Run: func(cmd *cobra.Command, args []string) {
		if !hasCurrentElement() {
			return
		}
		Box(Doc.Query(dom.Node(CurrentElement)))
	},
}

var HtmlCmd = &cobra.Command{
	Use:   "html",
	Short: "Print the markup of the current element",
	Run: func(cmd *cobra.Command, args []string) {
		if !hasCurrentElement() {
			return
		}
		fmt.Println(Doc.Query(dom.Node(CurrentElement)).OuterHtml())
	},
}

func init() {
	RootCmd.AddCommand(BoxCmd)
	RootCmd.AddCommand(HtmlCmd)
}
