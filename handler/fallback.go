package handler

import (
	"github.com/arclet-go/alconna/alerr"
	"github.com/arclet-go/alconna/pattern"
)

// RejectOrDefault implements the shared "on handler failure" fallback rule
// from spec.md §4.2: a Value default is recorded and the slot is
// considered satisfied; a None default means the slot was optional and
// nothing is recorded; an Empty default means the slot was required and
// the atom's presence-but-mismatch is a ParamsUnmatched (the stream still
// had data, it just didn't fit this slot, as opposed to ArgumentMissing,
// which is reserved for an exhausted stream).
func RejectOrDefault(acc map[string]any, slotName string, def pattern.Default, badText string) error {
	switch d := def.(type) {
	case pattern.Value:
		acc[slotName] = d.V
		return nil
	case pattern.Empty:
		return alerr.NewParamsUnmatched("param %q is incorrect for slot %q", badText, slotName)
	default: // pattern.None
		return nil
	}
}
