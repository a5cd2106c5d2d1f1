// Command alconna-demo exercises the grammar engine end to end: it builds
// a small sample command tree, analyses a line of input against it, and
// can dump/reload that tree as a YAML snapshot.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	logPath string
)

var rootCmd = &cobra.Command{
	Use:   "alconna-demo",
	Short: "Demo CLI for the alconna command-grammar engine",
	Long: `alconna-demo builds a small sample command tree and drives it
through the analyser, to exercise tokenisation, pattern matching, option
dispatch, and snapshot round-tripping from the command line.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "path to analysis audit log (default: ~/.alconna/audit.jsonl)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
