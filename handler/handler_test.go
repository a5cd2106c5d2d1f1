package handler

import (
	"testing"

	"github.com/arclet-go/alconna/pattern"
	"github.com/arclet-go/alconna/token"
)

func newStream(t *testing.T, text string) *token.Stream {
	t.Helper()
	s, err := token.Tokenize([]token.Unit{{Kind: token.KindText, Text: text}}, " ", token.Options{})
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	return s
}

func TestRegexHandler_OmittedOnLiteralMatch(t *testing.T) {
	s := newStream(t, "verbose")
	ctx := &Context{Stream: s, Registry: Default()}
	peeked, _ := s.Next(" ", true)
	acc := map[string]any{}
	p := pattern.MustRegex("verbose", pattern.RAW, "", nil)
	if err := RegexHandler(ctx, peeked, "v", p, pattern.None{}, 1, " ", acc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !pattern.IsOmitted(acc["v"]) {
		t.Fatalf("expected Omitted sentinel, got %#v", acc["v"])
	}
}

func TestRegexHandler_RejectFallsBackToDefault(t *testing.T) {
	s := newStream(t, "notanumber")
	ctx := &Context{Stream: s, Registry: Default()}
	peeked, _ := s.Next(" ", true)
	acc := map[string]any{}
	p := pattern.MustRegex(`\d+`, pattern.RAW, "", nil)
	if err := RegexHandler(ctx, peeked, "n", p, pattern.Value{V: 0}, 1, " ", acc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if acc["n"] != 0 {
		t.Fatalf("expected default value 0, got %#v", acc["n"])
	}
	if s.RestCount(" ") != 1 {
		t.Fatal("rejected atom must be put back on the stream")
	}
}

func TestRegexHandler_RejectWithEmptyDefaultFails(t *testing.T) {
	s := newStream(t, "notanumber")
	ctx := &Context{Stream: s, Registry: Default()}
	peeked, _ := s.Next(" ", true)
	acc := map[string]any{}
	p := pattern.MustRegex(`\d+`, pattern.RAW, "", nil)
	err := RegexHandler(ctx, peeked, "n", p, pattern.Empty{}, 1, " ", acc)
	if err == nil {
		t.Fatal("expected ParamsUnmatched error")
	}
}

func TestMultiHandler_ArityBound(t *testing.T) {
	// nargs=3: a Multi slot followed by 2 more required slots, 5 atoms
	// available. The handler's arity formula bounds how many atoms Multi
	// may keep for itself as RestCount - remainingSlots + 1, with RestCount
	// taken after the peeked atom was popped (4 - 2 + 1 = 3), leaving one
	// atom on the stream for each of the 2 later slots.
	s := newStream(t, "a b c d e")
	acc := map[string]any{}
	ctx := &Context{Stream: s, Registry: Default()}
	peeked, _ := s.Next(" ", true)
	mp := pattern.Multi(pattern.AnyOne())
	if err := MultiHandler(ctx, peeked, "items", mp, pattern.None{}, 3, " ", acc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items, ok := acc["items"].([]any)
	if !ok {
		t.Fatalf("expected a []any, got %T", acc["items"])
	}
	leftover := s.RestCount(" ")
	if len(items)+leftover != 5 {
		t.Fatalf("expected every atom accounted for between Multi and the stream, got %d items + %d leftover", len(items), leftover)
	}
	if leftover != 2 {
		t.Fatalf("expected the arity formula to leave 2 atoms on the stream, got %d", leftover)
	}
}

func TestMultiHandler_StopsAtKnownChild(t *testing.T) {
	s := newStream(t, "a b --loud")
	acc := map[string]any{}
	ctx := &Context{
		Stream:   s,
		Registry: Default(),
		IsKnownChild: func(text string) bool {
			return text == "--loud"
		},
	}
	peeked, _ := s.Next(" ", true)
	mp := pattern.Multi(pattern.AnyOne())
	if err := MultiHandler(ctx, peeked, "items", mp, pattern.None{}, 1, " ", acc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items := acc["items"].([]any)
	if len(items) != 2 {
		t.Fatalf("expected 2 items before the known child, got %d: %v", len(items), items)
	}
	next, ok := s.Next(" ", true)
	if !ok || next.Text != "--loud" {
		t.Fatalf("expected --loud to remain on the stream, got %+v, %v", next, ok)
	}
}

func TestAntiHandler_RejectsWhenInnerMatches(t *testing.T) {
	s := newStream(t, "42")
	acc := map[string]any{}
	ctx := &Context{Stream: s, Registry: Default()}
	peeked, _ := s.Next(" ", true)
	ap := pattern.Anti(pattern.MustRegex(`\d+`, pattern.RAW, "", nil))
	err := AntiHandler(ctx, peeked, "n", ap, pattern.Empty{}, 1, " ", acc)
	if err == nil {
		t.Fatal("expected Anti to reject an atom its inner pattern matches")
	}
}

func TestAntiHandler_AcceptsWhenInnerRejects(t *testing.T) {
	s := newStream(t, "notanumber")
	acc := map[string]any{}
	ctx := &Context{Stream: s, Registry: Default()}
	peeked, _ := s.Next(" ", true)
	ap := pattern.Anti(pattern.MustRegex(`^\d+$`, pattern.RAW, "", nil))
	if err := AntiHandler(ctx, peeked, "n", ap, pattern.Empty{}, 1, " ", acc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if acc["n"] != "notanumber" {
		t.Fatalf("expected the literal atom text, got %#v", acc["n"])
	}
}

func TestSequenceHandler_ParsesListLiteral(t *testing.T) {
	s := newStream(t, "[1,2,3]")
	acc := map[string]any{}
	ctx := &Context{Stream: s, Registry: Default()}
	peeked, _ := s.Next(" ", true)
	sp := pattern.Sequence(pattern.MustRegex(`\d+`, pattern.RAW, "", nil))
	if err := SequenceHandler(ctx, peeked, "nums", sp, pattern.Empty{}, 1, " ", acc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nums := acc["nums"].([]any)
	if len(nums) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(nums))
	}
}
