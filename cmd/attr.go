package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ysmood/gson"

	"dominik/dom"
)

var (
	attrsHyphenate bool
	attrsPrune     bool
)

var AttrCmd = &cobra.Command{
	Use:   "attr name[:type] [value]",
	Short: "Get or set an attribute on the current element",
	Long:  `With one argument, attr reads the attribute from the current element, cast per the optional :type suffix (string, bool, int, float). With two arguments it sets the attribute verbatim.`,
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		if !hasDocument() || !hasCurrentElement() {
			return
		}
		col := Doc.Query(dom.Node(CurrentElement))
		if len(args) == 2 {
			name, _ := dom.SplitDescriptor(args[0])
			col.SetAttr(name, args[1])
			fmt.Printf("set %s=%q\n", name, args[1])
			return
		}
		value := col.Attr(args[0])
		if value == nil {
			fmt.Println("(null)")
			return
		}
		fmt.Printf("%v\n", value)
	},
}

var AttrsCmd = &cobra.Command{
	Use:   "attrs name[:type]...",
	Short: "Read several attributes of the current element as a map",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !hasDocument() || !hasCurrentElement() {
			return
		}
		m := Doc.Query(dom.Node(CurrentElement)).Attrs(args, attrsHyphenate)
		if attrsPrune {
			m = m.Prune()
		}
		fmt.Println(gson.New(m).JSON("", "  "))
	},
}

var DataCmd = &cobra.Command{
	Use:   "data name [value]",
	Short: "Get or set a custom data entry on the current element",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		if !hasDocument() || !hasCurrentElement() {
			return
		}
		col := Doc.Query(dom.Node(CurrentElement))
		if len(args) == 2 {
			col.SetData(args[0], args[1])
			fmt.Printf("set data %s=%q\n", args[0], args[1])
			return
		}
		value := col.Data(args[0])
		if value == nil {
			fmt.Println("(null)")
			return
		}
		fmt.Printf("%v\n", value)
	},
}

func init() {
	AttrsCmd.Flags().BoolVar(&attrsHyphenate, "hyphenate", false, "Convert camelCase names to kebab-case before reading")
	AttrsCmd.Flags().BoolVar(&attrsPrune, "prune", false, "Drop attributes that are not present")
	RootCmd.AddCommand(AttrCmd)
	RootCmd.AddCommand(AttrsCmd)
	RootCmd.AddCommand(DataCmd)
}
