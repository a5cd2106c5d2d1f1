package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/arclet-go/alconna/analyser"
	"github.com/arclet-go/alconna/internal/alconnacfg"
	"github.com/arclet-go/alconna/internal/alconnalog"
	"github.com/arclet-go/alconna/token"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] -- <line...>",
	Short: "Analyse a line against the sample greet command",
	Long: `Analyse the words after -- as a single command line against the
built-in "greet" sample tree and print the resulting record.

Example:
  alconna-demo run -- greet Alice 30 --loud
  alconna-demo run -- greet Bob schedule 9am`,
	RunE: runAnalyse,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runAnalyse(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no input provided; usage: alconna-demo run -- <line...>")
	}

	cfg := alconnacfg.Default()
	tree := sampleTree()

	units := make([]token.Unit, len(args))
	for i, a := range args {
		units[i] = token.Unit{Kind: token.KindText, Text: a}
	}

	a := analyser.New()
	rec := a.Analyse(tree, analyser.Input{
		Units:     units,
		Separator: cfg.Separator,
		Options:   token.Options{Strict: cfg.Strict},
	})

	if path, err := logPathOrDefault(); err == nil {
		if logger, lerr := alconnalog.New(path); lerr == nil {
			defer logger.Close()
			_ = logger.Log(alconnalog.Event{
				Timestamp: time.Now().UTC().Format(time.RFC3339),
				Command:   strings.Join(args, " "),
				Raw:       args,
				Matched:   rec.Matched,
				Header:    fmt.Sprint(rec.Header),
				ErrorInfo: rec.ErrorInfo,
				HelpText:  rec.HelpText,
			})
		}
	}

	if rec.HelpText != "" {
		fmt.Println(rec.HelpText)
		return nil
	}
	if !rec.Matched {
		fmt.Printf("no match: %s\n", rec.ErrorInfo)
		return nil
	}

	fmt.Printf("matched header: %v\n", rec.Header)
	fmt.Printf("main args: %v\n", rec.MainArgs)
	fmt.Printf("options: %v\n", rec.Options)
	for name, sub := range rec.SubCommands {
		fmt.Printf("subcommand %s: args=%v options=%v\n", name, sub.MainArgs, sub.Options)
	}
	return nil
}

func logPathOrDefault() (string, error) {
	if logPath != "" {
		return logPath, nil
	}
	dir, err := alconnacfg.ConfigDir()
	if err != nil {
		return "", err
	}
	return dir + "/audit.jsonl", nil
}
