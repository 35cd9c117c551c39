package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	shellquote "github.com/kballard/go-shellquote"

	"dominik/cmd"
	"dominik/internal/appdirs"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if !cmd.Interactive || !cmd.StdoutIsTerminal() {
		return
	}

	histFile := ""
	if path, err := appdirs.HistoryFile(); err == nil {
		if err := appdirs.EnsureDir(filepath.Dir(path)); err == nil {
			histFile = path
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "dominik> ",
		HistoryFile: histFile,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error starting shell:", err)
		os.Exit(1)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			break
		}
		args, err := shellquote.Split(line)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		cmd.RootCmd.SetArgs(args)
		if err := cmd.RootCmd.Execute(); err != nil {
			fmt.Println("Error:", err)
		}
	}
}
