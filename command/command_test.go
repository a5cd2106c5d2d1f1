package command

import (
	"testing"

	"github.com/arclet-go/alconna/args"
	"github.com/arclet-go/alconna/pattern"
	"github.com/arclet-go/alconna/token"
)

func TestNewOption_RejectsIllegalName(t *testing.T) {
	_, err := NewOption("!bad", nil, args.SlotList{})
	if err == nil {
		t.Fatal("expected an error for a name starting with '!'")
	}
}

func TestNewOption_DetectsHelpFlagByName(t *testing.T) {
	o := MustNewOption("--help", nil, args.SlotList{})
	if !o.HelpFlag {
		t.Fatal("expected --help to be detected as the help flag")
	}
}

func TestNewOption_DetectsHelpFlagByAlias(t *testing.T) {
	o := MustNewOption("--verbose-help", []string{"-h"}, args.SlotList{})
	if !o.HelpFlag {
		t.Fatal("expected -h alias to be detected as the help flag")
	}
}

func TestRoot_FindChild_ExactBeatsPrefix(t *testing.T) {
	short := MustNewOption("-v", nil, args.SlotList{})
	long := MustNewOption("-verbose", nil, args.SlotList{})
	root := MustNewRoot("app", NewHeader(Head("app")), args.SlotList{}, short, long)

	opt, sub := root.FindChild("-v")
	if sub != nil || opt != short {
		t.Fatalf("expected exact match to win over prefix match, got opt=%v sub=%v", opt, sub)
	}
}

func TestRoot_FindChild_PrefixFallback(t *testing.T) {
	verbose := MustNewOption("-verbose", nil, args.SlotList{})
	root := MustNewRoot("app", NewHeader(Head("app")), args.SlotList{}, verbose)

	opt, _ := root.FindChild("-verbose-extra")
	if opt != verbose {
		t.Fatal("expected a declared option to prefix-match a longer unrecognised token")
	}
}

func TestHeaderMatcher_PrefixesExtendLiteralHeads(t *testing.T) {
	h := NewHeader(Head("cmd")).WithPrefixes("!", "/")
	cases := []string{"cmd", "!cmd", "/cmd"}
	for _, text := range cases {
		if !h.Match(token.Atom{IsText: true, Text: text}) {
			t.Errorf("expected %q to match the header", text)
		}
	}
	if h.Match(token.Atom{IsText: true, Text: "#cmd"}) {
		t.Fatal("expected an unregistered prefix to be rejected")
	}
}

func TestAppendChild_PreservesExistingChildren(t *testing.T) {
	root := MustNewRoot("app", NewHeader(Head("app")), args.SlotList{}, MustNewOption("-a", nil, args.SlotList{}))
	grown, err := AppendChild(root, MustNewOption("-b", nil, args.SlotList{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(grown.Options) != 2 {
		t.Fatalf("expected 2 options after append, got %d", len(grown.Options))
	}
}

func TestMerge_SlotLists(t *testing.T) {
	a := args.MustNew(args.SlotSpec{Name: "x", Pattern: pattern.AnyOne()})
	b := args.MustNew(args.SlotSpec{Name: "y", Pattern: pattern.AnyOne()})
	merged := Merge(a, b)
	if merged.Len() != 2 {
		t.Fatalf("expected 2 slots, got %d", merged.Len())
	}
}
