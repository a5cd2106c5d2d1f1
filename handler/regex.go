package handler

import (
	"github.com/arclet-go/alconna/pattern"
	"github.com/arclet-go/alconna/token"
)

// RegexHandler implements the Regex pattern-variant contract, ported from
// common_arg_handler in arg_handlers.py: find the pattern's match within
// peeked's text, record Omitted when the atom's literal text equals the
// pattern's source (a flag-literal carries no new information beyond
// "present"), apply Transform when the pattern class calls for it, else
// record the captured submatch verbatim.
func RegexHandler(ctx *Context, peeked token.Atom, slotName string, pat pattern.Pattern, def pattern.Default, nargs int, sep string, acc map[string]any) error {
	rp := pat.(*pattern.RegexPattern)
	if !peeked.IsText {
		ctx.Stream.Reduce(peeked)
		return RejectOrDefault(acc, slotName, def, peeked.String())
	}
	captured, ok := rp.Find(peeked.Text)
	if !ok {
		ctx.Stream.Reduce(peeked)
		return RejectOrDefault(acc, slotName, def, peeked.Text)
	}
	if peeked.Text == rp.Source {
		acc[slotName] = pattern.Omitted{}
		return nil
	}
	if rp.Class == pattern.REGEX_TRANSFORM && rp.Transform != nil {
		v, err := rp.Transform(captured)
		if err != nil {
			ctx.Stream.Reduce(peeked)
			return RejectOrDefault(acc, slotName, def, peeked.Text)
		}
		acc[slotName] = v
		return nil
	}
	acc[slotName] = captured
	return nil
}

// AnyOneHandler implements the AnyOne pattern-variant: it matches whatever
// atom is peeked, text or not.
func AnyOneHandler(ctx *Context, peeked token.Atom, slotName string, pat pattern.Pattern, def pattern.Default, nargs int, sep string, acc map[string]any) error {
	acc[slotName] = atomValue(peeked)
	return nil
}

// AllHandler implements the All pattern-variant: it consumes peeked plus
// every remaining atom in the stream, recording them as an ordered list.
// It is meant for a slot list's final slot only; nothing rejects a tree
// that places one elsewhere, and any later slot then finds the stream
// empty.
func AllHandler(ctx *Context, peeked token.Atom, slotName string, pat pattern.Pattern, def pattern.Default, nargs int, sep string, acc map[string]any) error {
	values := []any{atomValue(peeked)}
	for {
		atom, ok := ctx.Stream.Next(sep, true)
		if !ok {
			break
		}
		values = append(values, atomValue(atom))
	}
	acc[slotName] = values
	return nil
}

// ElementClassHandler implements the ElementClass pattern-variant: it
// matches one non-text atom whose kind equals the declared class.
func ElementClassHandler(ctx *Context, peeked token.Atom, slotName string, pat pattern.Pattern, def pattern.Default, nargs int, sep string, acc map[string]any) error {
	ep := pat.(*pattern.ElementClassPattern)
	if ep.Matches(peeked) {
		acc[slotName] = peeked
		return nil
	}
	ctx.Stream.Reduce(peeked)
	return RejectOrDefault(acc, slotName, def, peeked.String())
}
