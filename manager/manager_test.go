package manager

import (
	"testing"

	"github.com/arclet-go/alconna/analyser"
	"github.com/arclet-go/alconna/args"
	"github.com/arclet-go/alconna/command"
	"github.com/arclet-go/alconna/pattern"
	"github.com/arclet-go/alconna/token"
)

func buildTree(t *testing.T) *command.Root {
	t.Helper()
	mainArgs := args.MustNew(args.SlotSpec{Name: "name", Pattern: pattern.MustRegex(`\w+`, pattern.RAW, "", nil)})
	return command.MustNewRoot("greet", command.NewHeader(command.Head("greet")), mainArgs)
}

func unitsOf(words ...string) []token.Unit {
	out := make([]token.Unit, len(words))
	for i, w := range words {
		out[i] = token.Unit{Kind: token.KindText, Text: w}
	}
	return out
}

func TestManager_RegisterAndAnalyse(t *testing.T) {
	m := New()
	if err := m.Register(buildTree(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec := m.Analyse("greet", analyser.Input{Units: unitsOf("greet", "Alice"), Separator: " "})
	if !rec.Matched {
		t.Fatalf("expected a match, got: %s", rec.ErrorInfo)
	}
}

func TestManager_DisabledCommandFailsClosed(t *testing.T) {
	m := New()
	m.Register(buildTree(t))
	m.Disable("greet")
	rec := m.Analyse("greet", analyser.Input{Units: unitsOf("greet", "Alice"), Separator: " "})
	if rec.Matched {
		t.Fatal("expected a disabled command to never match")
	}
}

func TestManager_UnknownCommandFailsClosed(t *testing.T) {
	m := New()
	rec := m.Analyse("nope", analyser.Input{Units: unitsOf("nope"), Separator: " "})
	if rec.Matched {
		t.Fatal("expected an unregistered command to never match")
	}
}

// TestManager_ShortcutIdempotence: expanding a shortcut and re-running the
// same expansion must yield the same result twice — the idempotence
// property from spec.md §8.
func TestManager_ShortcutIdempotence(t *testing.T) {
	m := New()
	m.Register(buildTree(t))
	if err := m.AddShortcut("greet", "hi", Shortcut{Expansion: unitsOf("greet")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	run := func() *struct {
		matched bool
		name    any
	} {
		rec := m.Analyse("greet", analyser.Input{Units: unitsOf("hi", "Bob"), Separator: " "})
		return &struct {
			matched bool
			name    any
		}{rec.Matched, rec.MainArgs["name"]}
	}

	first := run()
	second := run()
	if !first.matched || !second.matched {
		t.Fatal("expected the shortcut expansion to match both times")
	}
	if first.name != second.name {
		t.Fatalf("expected idempotent results, got %v then %v", first.name, second.name)
	}
}

func TestManager_ReEnableRestoresCommand(t *testing.T) {
	m := New()
	m.Register(buildTree(t))
	m.Disable("greet")
	m.Enable("greet")
	rec := m.Analyse("greet", analyser.Input{Units: unitsOf("greet", "Alice"), Separator: " "})
	if !rec.Matched {
		t.Fatal("expected re-enabling a command to restore analysis")
	}
}
