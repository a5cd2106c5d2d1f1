package handler

import (
	"github.com/arclet-go/alconna/args"
	"github.com/arclet-go/alconna/pattern"
	"github.com/arclet-go/alconna/token"
)

// SequenceHandler implements the Sequence pattern-variant: peeked's text is
// parsed as a bracketed list literal, then each entry is element-type
// checked against Elem.
func SequenceHandler(ctx *Context, peeked token.Atom, slotName string, pat pattern.Pattern, def pattern.Default, nargs int, sep string, acc map[string]any) error {
	sp := pat.(*pattern.SequencePattern)
	if !peeked.IsText {
		ctx.Stream.Reduce(peeked)
		return RejectOrDefault(acc, slotName, def, peeked.String())
	}
	items, ok := parseListLiteral(peeked.Text)
	if !ok {
		ctx.Stream.Reduce(peeked)
		return RejectOrDefault(acc, slotName, def, peeked.Text)
	}
	values := make([]any, 0, len(items))
	for _, item := range items {
		v, matched := matchOne(token.Atom{IsText: true, Text: item}, sp.Elem)
		if !matched {
			ctx.Stream.Reduce(peeked)
			return RejectOrDefault(acc, slotName, def, item)
		}
		values = append(values, v)
	}
	acc[slotName] = values
	return nil
}

// MappingHandler implements the Mapping pattern-variant: peeked's text is
// parsed as a braced "k:v" literal, then each key and value is
// element-type checked against KeyPat/ValPat respectively.
func MappingHandler(ctx *Context, peeked token.Atom, slotName string, pat pattern.Pattern, def pattern.Default, nargs int, sep string, acc map[string]any) error {
	mp := pat.(*pattern.MappingPattern)
	if !peeked.IsText {
		ctx.Stream.Reduce(peeked)
		return RejectOrDefault(acc, slotName, def, peeked.String())
	}
	pairs, ok := parseMapLiteral(peeked.Text)
	if !ok {
		ctx.Stream.Reduce(peeked)
		return RejectOrDefault(acc, slotName, def, peeked.Text)
	}
	values := make(map[any]any, len(pairs))
	for _, kv := range pairs {
		key, keyOk := matchOne(token.Atom{IsText: true, Text: kv[0]}, mp.KeyPat)
		if !keyOk {
			ctx.Stream.Reduce(peeked)
			return RejectOrDefault(acc, slotName, def, kv[0])
		}
		val, valOk := matchOne(token.Atom{IsText: true, Text: kv[1]}, mp.ValPat)
		if !valOk {
			ctx.Stream.Reduce(peeked)
			return RejectOrDefault(acc, slotName, def, kv[1])
		}
		values[key] = val
	}
	acc[slotName] = values
	return nil
}

// ObjectHandler implements the Object pattern-variant: it puts peeked back
// and recursively consumes the object's own slot list starting from that
// position, via the callback the analyser installed on Context so package
// handler never needs to import package analyser.
func ObjectHandler(ctx *Context, peeked token.Atom, slotName string, pat pattern.Pattern, def pattern.Default, nargs int, sep string, acc map[string]any) error {
	op := pat.(*pattern.ObjectPattern)
	ctx.Stream.Reduce(peeked)
	sub, err := ctx.ConsumeSlots(args.SlotsOf(op), sep)
	if err != nil {
		ctx.Stream.Reduce(peeked)
		return RejectOrDefault(acc, slotName, def, peeked.String())
	}
	acc[slotName] = sub
	return nil
}
