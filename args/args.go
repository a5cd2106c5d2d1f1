// Package args implements the slot list: an ordered, named mapping from
// slot name to (pattern, default), with modifier-prefix desugaring on the
// declared name (`*` wraps in Multi, `!` wraps in Anti).
package args

import (
	"strings"

	"github.com/arclet-go/alconna/alerr"
	"github.com/arclet-go/alconna/pattern"
)

// Slot is one named, ordered position in a slot list.
type Slot struct {
	Name    string
	Pattern pattern.Pattern
	Default pattern.Default
}

// SlotList is an ordered mapping from slot name to (pattern, default).
// Names are unique within the list.
type SlotList struct {
	slots []Slot
	index map[string]int
}

// SlotSpec is the raw, pre-desugaring declaration of one slot, as the
// caller writes it: `*tags` or `!path` in Name trigger Multi/Anti wrapping
// of Pattern. A nil Default defaults to None{}.
type SlotSpec struct {
	Name    string
	Pattern pattern.Pattern
	Default pattern.Default
}

// New builds a SlotList from raw specs, applying name-prefix desugaring and
// validating uniqueness. Desugaring order matches the source behaviour:
// a name may carry at most one modifier prefix.
func New(specs ...SlotSpec) (SlotList, error) {
	list := SlotList{index: map[string]int{}}
	for _, spec := range specs {
		slot, err := resolve(spec)
		if err != nil {
			return SlotList{}, err
		}
		if slot.Name == "" {
			return SlotList{}, alerr.NewInvalidParam("slot name must not be empty")
		}
		if _, dup := list.index[slot.Name]; dup {
			return SlotList{}, alerr.NewInvalidParam("duplicate slot name %q", slot.Name)
		}
		list.index[slot.Name] = len(list.slots)
		list.slots = append(list.slots, slot)
	}
	return list, nil
}

// MustNew is New but panics on error — for slot lists declared as Go
// literals, where a malformed spec is a programmer error caught
// immediately.
func MustNew(specs ...SlotSpec) SlotList {
	list, err := New(specs...)
	if err != nil {
		panic(err)
	}
	return list
}

func resolve(spec SlotSpec) (Slot, error) {
	name := spec.Name
	pat := spec.Pattern
	def := spec.Default
	if def == nil {
		def = pattern.None{}
	}

	switch {
	case strings.HasPrefix(name, "*"):
		name = strings.TrimPrefix(name, "*")
		if _, isMulti := pat.(*pattern.MultiPattern); !isMulti {
			pat = pattern.Multi(pat)
		}
	case strings.HasPrefix(name, "!"):
		name = strings.TrimPrefix(name, "!")
		if _, isAnti := pat.(*pattern.AntiPattern); !isAnti {
			pat = pattern.Anti(pat)
		}
	}
	if pat == nil {
		return Slot{}, alerr.NewInvalidParam("slot %q has no pattern", spec.Name)
	}
	return Slot{Name: name, Pattern: pat, Default: def}, nil
}

// Len returns the number of slots.
func (l SlotList) Len() int { return len(l.slots) }

// At returns the slot at position i in declaration order.
func (l SlotList) At(i int) Slot { return l.slots[i] }

// Get looks up a slot by name.
func (l SlotList) Get(name string) (Slot, bool) {
	i, ok := l.index[name]
	if !ok {
		return Slot{}, false
	}
	return l.slots[i], true
}

// Names returns slot names in declaration order.
func (l SlotList) Names() []string {
	names := make([]string, len(l.slots))
	for i, s := range l.slots {
		names[i] = s.Name
	}
	return names
}

// Merge combines a and b into a new SlotList. It is right-biased: when both
// lists declare the same name, b's slot wins, but the position is a's
// original position if the name already existed in a, else appended in b's
// order. This mirrors Args.__merge__ in the Python source (base.py), which
// is a plain dict.update — later values replace earlier ones.
func Merge(a, b SlotList) SlotList {
	out := SlotList{index: map[string]int{}}
	for _, s := range a.slots {
		out.index[s.Name] = len(out.slots)
		out.slots = append(out.slots, s)
	}
	for _, s := range b.slots {
		if i, exists := out.index[s.Name]; exists {
			out.slots[i] = s
			continue
		}
		out.index[s.Name] = len(out.slots)
		out.slots = append(out.slots, s)
	}
	return out
}

// Object re-exports pattern.NewObject so callers building an ObjectPattern
// slot don't need to reach into package pattern directly with an `any`
// slots argument.
func Object(name string, slots SlotList) *pattern.ObjectPattern {
	return pattern.NewObject(name, slots)
}

// SlotsOf type-asserts an ObjectPattern's Slots back to a SlotList. Panics
// if obj.Slots is not a SlotList (as when obj was built via
// pattern.NewObject with some other value); nothing checks this at
// construction time.
func SlotsOf(obj *pattern.ObjectPattern) SlotList {
	return obj.Slots.(SlotList)
}
