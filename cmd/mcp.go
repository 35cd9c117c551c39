package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
)

// path to the MCP debug log file, override with --log
var mcpLogPath string

// mcpCmd is the cobra subcommand which starts the MCP server.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run Dominik in MCP-server mode over stdio",
	Run:   runMCP,
}

func init() {
	RootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().StringVarP(&mcpLogPath, "log", "l", "dominik-mcp.log", "path to the MCP debug log file")

	// cobra's own help/errors must not pollute the stdio protocol
	mcpCmd.SetOut(os.Stderr)
	mcpCmd.SetErr(os.Stderr)
}

func decodeArgs(raw json.RawMessage) map[string]interface{} {
	args := map[string]interface{}{}
	if len(raw) > 0 {
		json.Unmarshal(raw, &args)
	}
	return args
}

func optionalIndex(args map[string]interface{}) *int {
	if v, ok := args["index"].(float64); ok {
		idx := int(v)
		return &idx
	}
	return nil
}

func runMCP(cmd *cobra.Command, args []string) {
	// stdout carries the protocol; all logging goes to stderr
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	f, err := os.OpenFile(mcpLogPath,
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: cannot open mcp log %q: %v\n", mcpLogPath, err)
	} else {
		mw := io.MultiWriter(os.Stderr, f)
		log.SetOutput(mw)
		defer f.Close()
	}

	server := NewServer(os.Stdin, os.Stdout)

	logged := func(name string, fn func(map[string]interface{}) (string, error)) Handler {
		return func(raw json.RawMessage) (interface{}, error) {
			log.Printf("-> tool=%s raw args=%s", name, string(raw))
			msg, err := fn(decodeArgs(raw))
			if err != nil {
				log.Printf("x %s error: %v", name, err)
				return nil, err
			}
			log.Printf("ok %s response=%q", name, msg)
			return msg, nil
		}
	}

	server.RegisterTool("load_file", logged("load_file", func(a map[string]interface{}) (string, error) {
		return mcpLoad(mcp.ExtractString(a, "path"))
	}))
	server.RegisterTool("load_url", logged("load_url", func(a map[string]interface{}) (string, error) {
		return mcpLoad(mcp.ExtractString(a, "url"))
	}))
	server.RegisterTool("get_html", logged("get_html", func(a map[string]interface{}) (string, error) {
		return mcpHTML()
	}))
	server.RegisterTool("search", logged("search", func(a map[string]interface{}) (string, error) {
		return mcpSearch(mcp.ExtractString(a, "selector"))
	}))
	server.RegisterTool("next", logged("next", func(a map[string]interface{}) (string, error) {
		return mcpNext(optionalIndex(a))
	}))
	server.RegisterTool("prev", logged("prev", func(a map[string]interface{}) (string, error) {
		return mcpPrev(optionalIndex(a))
	}))
	server.RegisterTool("parent", logged("parent", func(a map[string]interface{}) (string, error) {
		return mcpParent()
	}))
	server.RegisterTool("child", logged("child", func(a map[string]interface{}) (string, error) {
		return mcpChild()
	}))
	server.RegisterTool("attr", logged("attr", func(a map[string]interface{}) (string, error) {
		return mcpAttr(mcp.ExtractString(a, "name"))
	}))
	server.RegisterTool("set_attr", logged("set_attr", func(a map[string]interface{}) (string, error) {
		return mcpSetAttr(mcp.ExtractString(a, "name"), mcp.ExtractString(a, "value"))
	}))
	server.RegisterTool("text", logged("text", func(a map[string]interface{}) (string, error) {
		return mcpText()
	}))
	server.RegisterTool("click", logged("click", func(a map[string]interface{}) (string, error) {
		return mcpClick()
	}))

	done := make(chan struct{})
	server.RegisterTool("shutdown", func(_ json.RawMessage) (interface{}, error) {
		log.Printf("-> tool=shutdown")
		close(done)
		return "shutting down", nil
	})

	go func() {
		if err := server.Serve(); err != nil {
			log.Printf("server.Serve() error: %v", err)
		} else {
			log.Printf("server.Serve() exited cleanly")
		}
	}()

	<-done
}
