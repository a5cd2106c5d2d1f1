package handler

import (
	"github.com/arclet-go/alconna/pattern"
	"github.com/arclet-go/alconna/token"
)

// MultiHandler implements the Multi pattern-variant's arity protocol,
// ported from multi_arg_handler in arg_handlers.py: the remaining slot
// count after this one bounds how many atoms Multi may keep for itself,
// so that later required slots still get a chance at the tail of the
// stream. On a mid-run rejection, Multi puts the rejecting atom back and
// surrenders up to remaining_slots of its own most-recently accepted
// atoms, so a later slot can claim them.
func MultiHandler(ctx *Context, peeked token.Atom, slotName string, pat pattern.Pattern, def pattern.Default, nargs int, sep string, acc map[string]any) error {
	mp := pat.(*pattern.MultiPattern)

	remainingSlots := nargs - len(acc) - 1
	if remainingSlots < 0 {
		remainingSlots = 0
	}
	available := ctx.Stream.RestCount(sep) - remainingSlots + 1
	if available < 0 {
		available = 0
	}
	ctx.Stream.Reduce(peeked)

	var result []any
	var consumed []token.Atom

	giveBack := func(rejected token.Atom, hadRejected bool) {
		k := remainingSlots
		if k > len(result) {
			k = len(result)
		}
		if k > 0 {
			ctx.Stream.Reduce(consumed[len(consumed)-k])
			result = result[:len(result)-k]
			consumed = consumed[:len(consumed)-k]
			return
		}
		if hadRejected {
			ctx.Stream.Reduce(rejected)
		}
	}

	for i := 0; i < available; i++ {
		atom, ok := ctx.Stream.Next(sep, true)
		if !ok {
			break
		}
		if atom.IsText && ctx.IsKnownChild != nil && ctx.IsKnownChild(atom.Text) {
			ctx.Stream.Reduce(atom)
			break
		}
		val, matched := matchOne(atom, mp.Inner)
		if !matched {
			giveBack(atom, true)
			if len(result) == 0 {
				return RejectOrDefault(acc, slotName, def, atom.String())
			}
			break
		}
		result = append(result, val)
		consumed = append(consumed, atom)
	}

	acc[slotName] = result
	return nil
}

// AntiHandler implements the Anti pattern-variant: matches exactly one atom
// that Inner would reject, ported from anti_arg_handler in
// arg_handlers.py.
func AntiHandler(ctx *Context, peeked token.Atom, slotName string, pat pattern.Pattern, def pattern.Default, nargs int, sep string, acc map[string]any) error {
	ap := pat.(*pattern.AntiPattern)
	if _, innerMatched := matchOne(peeked, ap.Inner); !innerMatched {
		acc[slotName] = atomValue(peeked)
		return nil
	}
	ctx.Stream.Reduce(peeked)
	return RejectOrDefault(acc, slotName, def, peeked.String())
}

// UnionHandler implements the Union pattern-variant: matches if any inner
// pattern matches, inverted as a whole when AntiFlag is set.
func UnionHandler(ctx *Context, peeked token.Atom, slotName string, pat pattern.Pattern, def pattern.Default, nargs int, sep string, acc map[string]any) error {
	up := pat.(*pattern.UnionPattern)
	matched := false
	var val any
	for _, inner := range up.Inner {
		if v, ok := matchOne(peeked, inner); ok {
			matched = true
			val = v
			break
		}
	}
	if up.AntiFlag {
		matched = !matched
	}
	if matched {
		if val == nil {
			val = atomValue(peeked)
		}
		acc[slotName] = val
		return nil
	}
	ctx.Stream.Reduce(peeked)
	return RejectOrDefault(acc, slotName, def, peeked.String())
}
