package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arclet-go/alconna/snapshot"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump the sample greet command tree as a YAML snapshot",
	RunE:  runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	data, err := snapshot.Dump(sampleTree())
	if err != nil {
		return fmt.Errorf("dump snapshot: %w", err)
	}

	if isInteractive() {
		fmt.Fprintln(os.Stderr, "# greet command tree snapshot")
	}
	_, err = os.Stdout.Write(data)
	return err
}

// isInteractive reports whether stdout is a terminal, mirroring the
// teacher's approval.IsInteractive check on stdin.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
