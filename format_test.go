package alconna

import (
	"testing"

	"github.com/arclet-go/alconna/analyser"
	"github.com/arclet-go/alconna/args"
	"github.com/arclet-go/alconna/pattern"
	"github.com/arclet-go/alconna/token"
)

func words(ws ...string) []token.Unit {
	out := make([]token.Unit, len(ws))
	for i, w := range ws {
		out[i] = token.Unit{Kind: token.KindText, Text: w}
	}
	return out
}

// TestScenarioLPUserPerm reproduces "lp user {target} perm set {perm}
// {default}" matched against "lp user AAA perm set admin": the literal path
// segments "user", "perm", "set" are required but dropped, target and perm
// land in main args, and the unfilled {default} object surfaces its own
// bool default under the sub-command result.
func TestScenarioLPUserPerm(t *testing.T) {
	de := args.MustNew(
		args.SlotSpec{Name: "de", Pattern: pattern.MustRegex(`true|false`, pattern.REGEX_TRANSFORM, "", func(s string) (any, error) {
			return s == "true", nil
		}), Default: pattern.Value{V: true}},
	)

	tree, err := Format("lp", "lp user {target} perm set {perm} {default}", map[string]FormatSlot{
		"target":  {Pattern: pattern.MustRegex(`\w+`, pattern.RAW, "", nil)},
		"perm":    {Pattern: pattern.MustRegex(`\w+`, pattern.RAW, "", nil)},
		"default": {Pattern: args.Object("default", de), Default: pattern.None{}},
	})
	if err != nil {
		t.Fatalf("Format returned an error: %v", err)
	}

	a := analyser.New()
	rec := a.Analyse(tree, analyser.Input{
		Units:     words("lp", "user", "AAA", "perm", "set", "admin"),
		Separator: " ",
	})
	if !rec.Matched {
		t.Fatalf("expected a match, got error: %s", rec.ErrorInfo)
	}

	if rec.MainArgs["target"] != "AAA" {
		t.Fatalf("expected target=AAA, got %#v", rec.MainArgs["target"])
	}
	if rec.MainArgs["perm"] != "admin" {
		t.Fatalf("expected perm=admin, got %#v", rec.MainArgs["perm"])
	}
	for k := range rec.MainArgs {
		if len(k) > 0 && k[0] == '\x00' {
			t.Fatalf("expected no internal literal-slot key to leak, found %q", k)
		}
	}

	def, ok := rec.SubCommands["default"]
	if !ok {
		t.Fatal("expected an unfilled {default} placeholder to surface as a sub-command result")
	}
	if enabled, ok := def.MainArgs["de"].(bool); !ok || !enabled {
		t.Fatalf("expected sub_commands.default.de = true, got %#v", def.MainArgs["de"])
	}
}

// TestFormat_RejectsUnknownSlot guards the template-validation path: a
// placeholder with no matching FormatSlot is a caller error, not something
// Format should silently drop.
func TestFormat_RejectsUnknownSlot(t *testing.T) {
	_, err := Format("lp", "lp {missing}", map[string]FormatSlot{})
	if err == nil {
		t.Fatal("expected an error for an unresolved placeholder")
	}
}

// TestFormat_LiteralWordMustMatch checks that a bare template word is
// enforced, not merely decorative: typing the wrong literal fails analysis.
func TestFormat_LiteralWordMustMatch(t *testing.T) {
	tree, err := Format("greet", "greet to {name}", map[string]FormatSlot{
		"name": {Pattern: pattern.MustRegex(`\w+`, pattern.RAW, "", nil)},
	})
	if err != nil {
		t.Fatalf("Format returned an error: %v", err)
	}

	a := analyser.New()
	rec := a.Analyse(tree, analyser.Input{Units: words("greet", "at", "Alice"), Separator: " "})
	if rec.Matched {
		t.Fatal("expected the wrong literal word to fail analysis")
	}
}
