package cmd

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"dominik/dom"
)

var (
	port      int
	basicAuth bool
)

var serverCmd = &cobra.Command{
	Use:     "server",
	Aliases: []string{"serve"},
	Short:   "Serve the current document over HTTP",
	Long:  `Server renders the in-memory document, modifications included, on every request. Useful for eyeballing edits in a real browser.`,
	Run: func(cmd *cobra.Command, args []string) {
		if !hasDocument() {
			return
		}
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if basicAuth {
				auth := r.Header.Get("Authorization")
				if auth == "" {
					w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
					http.Error(w, "Unauthorized.", http.StatusUnauthorized)
					return
				}

				payload, _ := base64.StdEncoding.DecodeString(strings.TrimPrefix(auth, "Basic "))
				pair := strings.SplitN(string(payload), ":", 2)

				if len(pair) != 2 || !(pair[0] == "user" && pair[1] == "pass") {
					http.Error(w, "Unauthorized.", http.StatusUnauthorized)
					return
				}
			}

			markup, err := withDoc(func() (string, error) {
				return Doc.Query(dom.Node(Doc.Root())).OuterHtml(), nil
			})
			if err != nil {
				http.Error(w, err.Error(), http.StatusServiceUnavailable)
				return
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			fmt.Fprint(w, markup)
		})

		http.Handle("/", handler)

		addr := fmt.Sprintf(":%d", port)
		fmt.Printf("Starting server on %s\n", addr)
		if err := http.ListenAndServe(addr, nil); err != nil {
			panic(err)
		}
	},
}

func init() {
	serverCmd.Flags().IntVarP(&port, "port", "p", 8080, "Port to run the server on")
	serverCmd.Flags().BoolVarP(&basicAuth, "basic-auth", "a", false, "Require basic auth")
	RootCmd.AddCommand(serverCmd)
}
