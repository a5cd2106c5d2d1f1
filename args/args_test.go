package args

import (
	"testing"

	"github.com/arclet-go/alconna/pattern"
)

func TestNew_PrefixDesugaring(t *testing.T) {
	list := MustNew(
		SlotSpec{Name: "*tags", Pattern: pattern.AnyOne()},
		SlotSpec{Name: "!path", Pattern: pattern.MustRegex(`/tmp/.*`, pattern.RAW, "", nil)},
	)
	tags, ok := list.Get("tags")
	if !ok {
		t.Fatal("expected slot \"tags\" after stripping '*'")
	}
	if _, isMulti := tags.Pattern.(*pattern.MultiPattern); !isMulti {
		t.Fatalf("expected tags pattern to be wrapped in Multi, got %T", tags.Pattern)
	}

	path, ok := list.Get("path")
	if !ok {
		t.Fatal("expected slot \"path\" after stripping '!'")
	}
	if _, isAnti := path.Pattern.(*pattern.AntiPattern); !isAnti {
		t.Fatalf("expected path pattern to be wrapped in Anti, got %T", path.Pattern)
	}
}

func TestNew_DuplicateNameRejected(t *testing.T) {
	_, err := New(
		SlotSpec{Name: "a", Pattern: pattern.AnyOne()},
		SlotSpec{Name: "a", Pattern: pattern.AnyOne()},
	)
	if err == nil {
		t.Fatal("expected an error for duplicate slot name")
	}
}

func TestNew_NilDefaultBecomesNone(t *testing.T) {
	list := MustNew(SlotSpec{Name: "a", Pattern: pattern.AnyOne()})
	slot, _ := list.Get("a")
	if _, isNone := slot.Default.(pattern.None); !isNone {
		t.Fatalf("expected a nil Default to resolve to None{}, got %T", slot.Default)
	}
}

func TestMerge_RightBiasedAtOriginalPosition(t *testing.T) {
	a := MustNew(
		SlotSpec{Name: "x", Pattern: pattern.AnyOne(), Default: pattern.Value{V: 1}},
		SlotSpec{Name: "y", Pattern: pattern.AnyOne()},
	)
	b := MustNew(
		SlotSpec{Name: "x", Pattern: pattern.AnyOne(), Default: pattern.Value{V: 2}},
		SlotSpec{Name: "z", Pattern: pattern.AnyOne()},
	)
	merged := Merge(a, b)
	if merged.Len() != 3 {
		t.Fatalf("expected 3 slots after merge, got %d", merged.Len())
	}
	if merged.Names()[0] != "x" {
		t.Fatalf("expected x to stay at its original position, got order %v", merged.Names())
	}
	x, _ := merged.Get("x")
	if v, ok := x.Default.(pattern.Value); !ok || v.V != 2 {
		t.Fatalf("expected b's value for x to win, got %+v", x.Default)
	}
}

func TestObjectRoundTrip(t *testing.T) {
	inner := MustNew(SlotSpec{Name: "a", Pattern: pattern.AnyOne()})
	obj := Object("point", inner)
	if obj.Name != "point" {
		t.Fatalf("expected name %q, got %q", "point", obj.Name)
	}
	got := SlotsOf(obj)
	if got.Len() != 1 {
		t.Fatalf("expected 1 slot round-tripped through ObjectPattern, got %d", got.Len())
	}
}
