package analyser

import (
	"testing"
	"time"

	"github.com/arclet-go/alconna/args"
	"github.com/arclet-go/alconna/command"
	"github.com/arclet-go/alconna/pattern"
	"github.com/arclet-go/alconna/token"
)

func units(words ...string) []token.Unit {
	out := make([]token.Unit, len(words))
	for i, w := range words {
		out[i] = token.Unit{Kind: token.KindText, Text: w}
	}
	return out
}

func greetTree(t *testing.T) *command.Root {
	t.Helper()
	mainArgs := args.MustNew(
		args.SlotSpec{Name: "name", Pattern: pattern.MustRegex(`\w+`, pattern.RAW, "", nil)},
	)
	loud := command.MustNewOption("--loud", []string{"-l"}, args.SlotList{})
	help := command.MustNewOption("--help", []string{"-h"}, args.SlotList{})
	scheduleArgs := args.MustNew(
		args.SlotSpec{Name: "when", Pattern: pattern.MustRegex(`\S+`, pattern.RAW, "", nil)},
	)
	schedule := command.MustNewSubcommand("schedule", scheduleArgs, nil)
	header := command.NewHeader(command.Head("greet"))
	return command.MustNewRoot("greet", header, mainArgs, loud, help, schedule)
}

func TestAnalyse_BasicMatch(t *testing.T) {
	a := New()
	rec := a.Analyse(greetTree(t), Input{Units: units("greet", "Alice"), Separator: " "})
	if !rec.Matched {
		t.Fatalf("expected a match, got error: %s", rec.ErrorInfo)
	}
	if rec.MainArgs["name"] != "Alice" {
		t.Fatalf("expected name=Alice, got %#v", rec.MainArgs["name"])
	}
}

func TestAnalyse_HeaderMismatch(t *testing.T) {
	a := New()
	rec := a.Analyse(greetTree(t), Input{Units: units("bye", "Alice"), Separator: " "})
	if rec.Matched || rec.HeadMatched {
		t.Fatal("expected a header mismatch to fail before matching")
	}
}

func TestAnalyse_OptionDispatch(t *testing.T) {
	a := New()
	rec := a.Analyse(greetTree(t), Input{Units: units("greet", "Alice", "--loud"), Separator: " "})
	if !rec.Matched {
		t.Fatalf("expected a match, got error: %s", rec.ErrorInfo)
	}
	if _, ok := rec.Options["--loud"]; !ok {
		t.Fatal("expected --loud to be recorded in Options")
	}
}

func TestAnalyse_HelpShortCircuits(t *testing.T) {
	a := New()
	rec := a.Analyse(greetTree(t), Input{Units: units("greet", "Alice", "--help"), Separator: " "})
	if rec.HelpText == "" {
		t.Fatal("expected --help to short-circuit with help text")
	}
}

// TestAnalyse_HelpBeforeMainArgsShortCircuits guards against main-arg
// consumption swallowing a known option's name before the body loop ever
// sees it: "greet --help" must reach the --help short-circuit, not have
// "--help" consumed as the "name" slot's literal text.
func TestAnalyse_HelpBeforeMainArgsShortCircuits(t *testing.T) {
	a := New()
	rec := a.Analyse(greetTree(t), Input{Units: units("greet", "--help"), Separator: " "})
	if rec.HelpText == "" {
		t.Fatal("expected --help to short-circuit before main args are consumed")
	}
	if rec.MainArgs["name"] == "--help" {
		t.Fatal("expected --help to never be consumed as the name slot")
	}
}

func TestAnalyse_MultiOccurrencePromotion(t *testing.T) {
	a := New()
	rec := a.Analyse(greetTree(t), Input{Units: units("greet", "Alice", "--loud", "--loud"), Separator: " "})
	if !rec.Matched {
		t.Fatalf("expected a match, got error: %s", rec.ErrorInfo)
	}
	list, ok := rec.Options["--loud"].([]any)
	if !ok {
		t.Fatalf("expected repeated --loud to promote to a list, got %T", rec.Options["--loud"])
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 occurrences, got %d", len(list))
	}
}

func TestAnalyse_Subcommand(t *testing.T) {
	a := New()
	rec := a.Analyse(greetTree(t), Input{Units: units("greet", "Alice", "schedule", "9am"), Separator: " "})
	if !rec.Matched {
		t.Fatalf("expected a match, got error: %s", rec.ErrorInfo)
	}
	sub, ok := rec.SubCommands["schedule"]
	if !ok {
		t.Fatal("expected a \"schedule\" sub-result")
	}
	if sub.MainArgs["when"] != "9am" {
		t.Fatalf("expected when=9am, got %#v", sub.MainArgs["when"])
	}
}

func TestAnalyse_RequiredSlotMissingYieldsArgumentMissing(t *testing.T) {
	mainArgs := args.MustNew(
		args.SlotSpec{Name: "name", Pattern: pattern.MustRegex(`\w+`, pattern.RAW, "", nil), Default: pattern.Empty{}},
	)
	header := command.NewHeader(command.Head("greet"))
	tree := command.MustNewRoot("greet", header, mainArgs)

	a := New()
	rec := a.Analyse(tree, Input{Units: units("greet"), Separator: " "})
	if rec.Matched {
		t.Fatal("expected a required slot with no atom left to fail")
	}
	if rec.ErrorInfo == "" {
		t.Fatal("expected ErrorInfo to be set")
	}
}

// TestAnalyse_Terminates is the termination property from spec.md §8: a
// bounded input must always return, never loop, even when every dispatch
// branch (main args, option, sub-command) fires in one call.
func TestAnalyse_Terminates(t *testing.T) {
	done := make(chan *struct{ matched bool })
	go func() {
		a := New()
		rec := a.Analyse(greetTree(t), Input{Units: units("greet", "Alice", "--loud", "schedule", "9am"), Separator: " "})
		done <- &struct{ matched bool }{rec.Matched}
	}()
	select {
	case r := <-done:
		if !r.matched {
			t.Fatal("expected a match")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Analyse did not terminate within 2s")
	}
}
