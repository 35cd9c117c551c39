package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	survey "github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

var (
	evlogSave        bool
	evlogSaveAll     bool
	evlogInteractive bool
	evlogOutputDir   string
)

var evlogCmd = &cobra.Command{
	Use:   "events",
	Short: "Inspect and save the event dispatch log",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := dispatchLog.Entries()
		if len(entries) == 0 {
			fmt.Fprintln(os.Stderr, "no events dispatched yet")
			return nil
		}

		printEvlogEntries(entries)

		if !evlogSave {
			return nil
		}

		selected, err := selectEntriesForSave(entries)
		if err != nil {
			return err
		}
		if len(selected) == 0 {
			fmt.Fprintln(os.Stderr, "no entries selected for saving")
			return nil
		}

		path, n, err := saveEventEntriesToDisk(selected, evlogOutputDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "saved %d entries to %s\n", n, path)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(evlogCmd)

	evlogCmd.Flags().BoolVar(&evlogSave, "save", false, "Save selected entries to disk")
	evlogCmd.Flags().BoolVar(&evlogSaveAll, "all", false, "When saving, include all entries without prompting")
	evlogCmd.Flags().BoolVar(&evlogInteractive, "interactive", StdoutIsTerminal(), "When saving, prompt for entries to persist")
	evlogCmd.Flags().StringVar(&evlogOutputDir, "output", defaultLogsDir(), "Directory to write the event log")
}

func printEvlogEntries(entries []string) {
	tw := tabwriter.NewWriter(os.Stdout, 4, 2, 2, ' ', 0)
	defer tw.Flush()
	fmt.Fprintln(tw, "INDEX\tEVENT")
	for idx, entry := range entries {
		fmt.Fprintf(tw, "%d\t%s\n", idx, entry)
	}
}

func selectEntriesForSave(entries []string) ([]string, error) {
	if evlogSaveAll || !evlogInteractive {
		return entries, nil
	}

	options := make([]string, len(entries))
	for i, entry := range entries {
		options[i] = fmt.Sprintf("[%d] %s", i, entry)
	}
	selectedIdx := []int{}
	prompt := &survey.MultiSelect{
		Message: "Select event entries to save",
		Options: options,
	}
	if err := survey.AskOne(prompt, &selectedIdx, survey.WithValidator(survey.Required)); err != nil {
		return nil, err
	}
	selected := make([]string, 0, len(selectedIdx))
	for _, idx := range selectedIdx {
		if idx >= 0 && idx < len(entries) {
			selected = append(selected, entries[idx])
		}
	}
	return selected, nil
}

func saveEventEntriesToDisk(entries []string, dir string) (string, int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", 0, fmt.Errorf("create output directory: %w", err)
	}
	name := fmt.Sprintf("events-%s.log", time.Now().Format("2006-01-02_150405"))
	path := filepath.Join(dir, name)
	data := strings.Join(entries, "\n") + "\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return "", 0, fmt.Errorf("write event log: %w", err)
	}
	return path, len(entries), nil
}
