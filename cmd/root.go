package cmd

import (
	"bufio"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/net/html"
	"golang.org/x/term"

	"dominik/dom"
	"dominik/fetch"
)

func GetUserInput(prompt string) string {
	reader := bufio.NewReader(os.Stdin)
	fmt.Fprint(os.Stderr, prompt)
	text, _ := reader.ReadString('\n')
	return text
}

func AskForConfirmation(prompt string) bool {
	response := GetUserInput(prompt)
	if response == "" {
		return false
	}
	firstChar := strings.ToLower(string(response[0]))
	return firstChar == "y"
}

// StdoutIsTerminal reports whether stdout is attached to a terminal, used
// to decide whether interactive prompts make sense.
func StdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var ShowDispatches bool
var Interactive bool
var Verbose bool

// EventLog records event dispatches made through the shell so they can be
// reviewed and saved later.
type EventLog struct {
	mu   sync.Mutex
	logs []string
}

func (l *EventLog) Add(log string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logs = append(l.logs, log)
}

func (l *EventLog) Display() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, log := range l.logs {
		fmt.Println(log)
	}
}

func (l *EventLog) Entries() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.logs))
	copy(out, l.logs)
	return out
}

var Doc *dom.Document
var CurrentElement *html.Node
var elementList []*html.Node
var currentIndex int
var lastTarget string
var dispatchLog = &EventLog{}

var RootCmd = &cobra.Command{
	Use:   "dominik",
	Short: "A command-line tool for querying and manipulating HTML documents",
	Long:  `Dominik is a command-line tool that lets you walk, query and rewrite HTML documents without a browser. Documents are loaded from local files or URLs into an in-memory DOM; you can then search with CSS selectors, read and set attributes, move elements around, and dispatch events to registered handlers.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// interactive mode is the point of invoking the root command
		Interactive = true

		target := args[0]
		doc, err := LoadTarget(target)
		if err != nil {
			fmt.Println("Error loading document:", err)
			return
		}
		Doc = doc

		headings, err := queryElements(Doc, "h1, h2, h3, h4, h5, h6")
		if err != nil {
			if Verbose {
				fmt.Println("Error finding headings:", err)
			}
			headings = nil
		}
		// setup navigable heading list
		elementList = headings

		if len(elementList) > 0 {
			currentIndex = 0
			CurrentElement = elementList[currentIndex]
		} else {
			body, err := queryElements(Doc, "body")
			if err != nil || len(body) == 0 {
				fmt.Println("Document seems to have no body")
				return
			}
			CurrentElement = body[0]
		}
	},
}

func isValidURL(str string) bool {
	u, err := url.Parse(str)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// LoadTarget reads target into a fresh document. A URL is fetched over
// HTTP, anything else is treated as a local file path.
func LoadTarget(target string) (*dom.Document, error) {
	lastTarget = target
	if isValidURL(target) {
		doc, err := fetch.NewClient().Load(target)
		if err != nil {
			return nil, err
		}
		if Verbose {
			fmt.Fprintln(os.Stderr, "fetched:", target)
		}
		return doc, nil
	}
	f, err := os.Open(target)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dom.Parse(f)
}

func hasDocument() bool {
	if Doc == nil {
		fmt.Println("Error: no document loaded. Load a file or URL first.")
		return false
	}
	return true
}

func ReportElement(n *html.Node) {
	if Doc == nil || n == nil {
		return
	}
	col := Doc.Query(dom.Node(n))
	childrenCount := col.Find("*").Len()
	text := strings.TrimSpace(col.Text())

	// Limit the text to maxChars characters
	limitedText := fmt.Sprintf("%.50s", text)

	fmt.Printf("%s, %d children, %s\n", strings.ToUpper(n.Data), childrenCount, limitedText)
}

var ClearCmd = &cobra.Command{
	Use:     "clear",
	Aliases: []string{"cls"},
	Short:   "Clear the terminal screen",
	Long:    `This command will clear the terminal screen.`,
	Run: func(cmd *cobra.Command, args []string) {
		if runtime.GOOS == "windows" {
			cmd := exec.Command("cmd", "/c", "cls")
			cmd.Stdout = os.Stdout
			cmd.Run()
		} else {
			cmd := exec.Command("clear")
			cmd.Stdout = os.Stdout
			cmd.Run()
		}
	},
}

// LoadCmd replaces the current document, mainly for use inside the
// interactive shell where the root command has already run.
var LoadCmd = &cobra.Command{
	Use:   "load [file-or-url]",
	Short: "Load a document from a file or URL",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc, err := LoadTarget(args[0])
		if err != nil {
			fmt.Println("Error loading document:", err)
			return
		}
		Doc = doc
		elementList = nil
		currentIndex = 0
		CurrentElement = nil
		if body, err := queryElements(Doc, "body"); err == nil && len(body) > 0 {
			CurrentElement = body[0]
		}
		fmt.Println("Document loaded.")
	},
}

var ReloadCmd = &cobra.Command{
	Use:   "reload",
	Short: "Reload the current document",
	Long:  `This command discards the in-memory document and re-reads it from its source, dropping any modifications made in this session.`,
	Run: func(cmd *cobra.Command, args []string) {
		if lastTarget == "" {
			fmt.Println("Error: nothing loaded yet")
			return
		}
		doc, err := LoadTarget(lastTarget)
		if err != nil {
			fmt.Println("Error reloading document:", err)
			return
		}
		Doc = doc
		elementList = nil
		currentIndex = 0
		CurrentElement = nil
		if body, err := queryElements(Doc, "body"); err == nil && len(body) > 0 {
			CurrentElement = body[0]
		}
		fmt.Println("Document reloaded successfully.")
	},
}

var ExitCmd = &cobra.Command{
	Use:     "exit",
	Aliases: []string{"q", "Q", "bye"},
	Short:   "Exit the application",
	Long:    `This command will exit the application.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Goodbye!")
		Doc = nil
		CurrentElement = nil
		os.Exit(0)
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&ShowDispatches, "show-dispatches", "n", false, "Echo event dispatches as they happen")
	RootCmd.PersistentFlags().BoolVarP(&Interactive, "interactive", "i", false, "Enable interactive mode")
	RootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "v", false, "Enable verbose mode")

	RootCmd.AddCommand(ClearCmd)
	RootCmd.AddCommand(ExitCmd)
	RootCmd.AddCommand(LoadCmd)
	RootCmd.AddCommand(ReloadCmd)
}
