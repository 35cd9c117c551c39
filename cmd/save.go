package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"dominik/internal/appdirs"
	"dominik/snapshot"
)

var (
	saveFormat string
	saveOutput string
	saveName   string
)

var saveSnapshotFunc = snapshot.Capture

var SaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the current element to disk",
	Long:  `Save renders the current element as HTML, plain text or markdown and writes it to the downloads directory (or --output).`,
	Run: func(cmd *cobra.Command, args []string) {
		if !hasDocument() || !hasCurrentElement() {
			return
		}

		format := strings.ToLower(strings.TrimSpace(saveFormat))
		var result *snapshot.Result
		switch format {
		case "markdown", "md":
			md := convertTreeToMarkdown(Doc, CurrentElement)
			result = &snapshot.Result{Data: []byte(md), MimeType: "text/markdown"}
		default:
			res, err := saveSnapshotFunc(Doc, CurrentElement, snapshot.Options{Format: format})
			if err != nil {
				fmt.Println("Error:", err)
				return
			}
			result = res
		}

		dir := saveOutput
		if dir == "" {
			dir = defaultDownloadsDir()
		}
		if err := appdirs.EnsureDir(dir); err != nil {
			fmt.Println("Error creating output directory:", err)
			return
		}

		base := CurrentElement.Data
		filename := snapshot.BuildFilename(base, result.MimeType, snapshot.FileNamingOptions{
			ExplicitName:     saveName,
			IncludeTimestamp: saveName == "",
		})
		path := filepath.Join(dir, filename)
		if err := os.WriteFile(path, result.Data, 0644); err != nil {
			fmt.Println("Error writing snapshot:", err)
			return
		}
		fmt.Printf("Saved %d bytes (%s) to %s\n", len(result.Data), result.MimeType, path)
	},
}

func init() {
	SaveCmd.Flags().StringVarP(&saveFormat, "format", "f", "html", "Output format: html, text, markdown")
	SaveCmd.Flags().StringVarP(&saveOutput, "output", "o", "", "Directory to write the snapshot to")
	SaveCmd.Flags().StringVar(&saveName, "name", "", "Explicit filename for the snapshot")
	RootCmd.AddCommand(SaveCmd)
}
