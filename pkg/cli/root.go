// Package cli implements the jsond command-line interface.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jsond",
	Short: "Zero-config JSON REST API server",
	Long: `jsond serves a full REST API over a JSON snapshot.

Point it at a JSON file (or URL) whose top-level keys are collection names
and it serves generic CRUD and query endpoints over them, no code required:

  GET    /posts?author=alice&_sort=date&_order=desc&_page=2&_limit=10
  GET    /posts/1
  POST   /posts
  PUT    /posts/1
  PATCH  /posts/1
  DELETE /posts/1

Mutations live in memory only and are lost on restart.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare invocation serves with defaults.
		return runServe(&serveFlagVals)
	},
}

func init() {
	initServeCmd()
	initVersionCmd()
	// The root command accepts the serve flags so "jsond --port 4000" works.
	registerServeFlags(rootCmd, &serveFlagVals)
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
