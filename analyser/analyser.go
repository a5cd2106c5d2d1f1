// Package analyser implements the single-pass, backtracking-free analysis
// of a tokenised input against a command tree: a header phase, a main
// slot-list consumption, and a body phase that dispatches each remaining
// atom to a known option or sub-command, terminating in a result.Record.
package analyser

import (
	"github.com/arclet-go/alconna/alerr"
	"github.com/arclet-go/alconna/args"
	"github.com/arclet-go/alconna/command"
	"github.com/arclet-go/alconna/handler"
	"github.com/arclet-go/alconna/pattern"
	"github.com/arclet-go/alconna/result"
	"github.com/arclet-go/alconna/token"
)

// Input is the raw, pre-tokenisation request handed to Analyse.
type Input struct {
	Units     []token.Unit
	Separator string
	Options   token.Options
}

// ShortcutResolver resolves a header mismatch against a registered
// shortcut, returning a replacement unit sequence to retry once. Package
// manager installs this; analyser never imports manager, avoiding a cycle.
type ShortcutResolver func(tree *command.Root, units []token.Unit) ([]token.Unit, bool)

// Analyser drives one command tree's analysis. It is safe for concurrent
// use across independent Analyse calls: all mutable state (the token
// stream, the accumulator maps) lives on the call's stack, not on
// Analyser itself (SPEC_FULL.md §5).
type Analyser struct {
	Registry  *handler.Registry
	Shortcuts ShortcutResolver
}

// New builds an Analyser using the default handler registry.
func New() *Analyser {
	return &Analyser{Registry: handler.Default()}
}

// Analyse runs one full analysis of input against tree, returning a
// success or failure Record. It never panics on malformed input; every
// failure mode is represented in the returned Record's ErrorInfo.
func (a *Analyser) Analyse(tree *command.Root, input Input) *result.Record {
	rec := result.New()

	stream, err := token.Tokenize(input.Units, input.Separator, input.Options)
	if err != nil {
		rec.ErrorInfo = err.Error()
		return rec
	}

	if !a.matchHeader(tree, stream) && a.Shortcuts != nil {
		if expansion, ok := a.Shortcuts(tree, input.Units); ok {
			if retried, rerr := token.Tokenize(expansion, input.Separator, input.Options); rerr == nil && a.matchHeader(tree, retried) {
				stream = retried
			}
		}
	}

	headAtom, headOK := a.peekedHeader(tree, stream)
	if !headOK {
		rec.ErrorInfo = "header not matched"
		rec.ErrorData = stream.RecoverRaw()
		return rec
	}
	rec.HeadMatched = true
	rec.Header = headAtom.String()

	isKnownChild := func(text string) bool {
		o, s := tree.FindChild(text)
		return o != nil || s != nil
	}

	mainArgsConsumed := false

	for !stream.Exhausted() {
		peeked, ok := stream.Next(tree.Separator, false)
		if !ok {
			break
		}
		if !peeked.IsText {
			stream.Next(tree.Separator, true)
			rec.ErrorInfo = alerr.NewParamsUnmatched("unexpected element %s", peeked.String()).Error()
			rec.ErrorData = stream.RecoverRaw()
			return rec
		}

		opt, sub := tree.FindChild(peeked.Text)
		if opt == nil && sub == nil {
			// Mirrors the reference analysis loop: an atom that is not a
			// known option or sub-command feeds the main slot list, but
			// only once and only if main args are still absent.
			if mainArgsConsumed {
				rec.ErrorInfo = alerr.NewParamsUnmatched("unrecognised token %q", peeked.Text).Error()
				rec.ErrorData = stream.RecoverRaw()
				return rec
			}
			mainArgs, err := a.consumeSlots(stream, tree.MainArgs, tree.Separator, isKnownChild)
			if err != nil {
				a.fail(rec, err, stream)
				return rec
			}
			rec.MainArgs = mainArgs
			mainArgsConsumed = true
			continue
		}

		stream.Next(tree.Separator, true)
		switch {
		case opt != nil:
			if opt.HelpFlag {
				rec.HelpText = renderHelp(tree)
				return rec
			}
			values, err := a.consumeSlots(stream, opt.Args, opt.Separator, isKnownChild)
			if err != nil {
				a.fail(rec, err, stream)
				return rec
			}
			values, err = invokeAction(opt.Action, values)
			if err != nil {
				rec.ErrorInfo = err.Error()
				rec.ErrorData = stream.RecoverRaw()
				return rec
			}
			rec.SetOption(opt.Name, values)
		case sub != nil:
			subIsKnownChild := func(text string) bool {
				return sub.OptionByNameOrAlias(text) != nil
			}
			subMain, err := a.consumeSlots(stream, sub.Args, sub.Separator, subIsKnownChild)
			if err != nil {
				a.fail(rec, err, stream)
				return rec
			}
			subResult := &result.SubResult{MainArgs: subMain, Options: map[string]any{}}
			if err := a.drainSubcommandOptions(stream, sub, subResult, subIsKnownChild); err != nil {
				a.fail(rec, err, stream)
				return rec
			}
			subMain, err = invokeAction(sub.Action, subMain)
			if err != nil {
				rec.ErrorInfo = err.Error()
				rec.ErrorData = stream.RecoverRaw()
				return rec
			}
			subResult.MainArgs = subMain
			rec.SubCommands[sub.Name] = subResult
		}
	}

	// Guards against the case where every atom was consumed by options or
	// sub-commands (or there were none at all) without main args ever
	// being reached: defaults and ArgumentMissing still need to fire.
	if !mainArgsConsumed {
		mainArgs, err := a.consumeSlots(stream, tree.MainArgs, tree.Separator, isKnownChild)
		if err != nil {
			a.fail(rec, err, stream)
			return rec
		}
		rec.MainArgs = mainArgs
	}

	promoteObjectSlots(tree.MainArgs, rec)

	finalArgs, err := invokeAction(tree.Action, rec.MainArgs)
	if err != nil {
		rec.ErrorInfo = err.Error()
		return rec
	}
	rec.MainArgs = finalArgs
	rec.Matched = true
	return rec
}

func (a *Analyser) drainSubcommandOptions(stream *token.Stream, sub *command.Subcommand, into *result.SubResult, isKnownChild func(string) bool) error {
	for !stream.Exhausted() {
		atom, ok := stream.Next(sub.Separator, false)
		if !ok {
			return nil
		}
		if !atom.IsText {
			return nil
		}
		opt := sub.OptionByNameOrAlias(atom.Text)
		if opt == nil {
			return nil
		}
		stream.Next(sub.Separator, true) // now actually pop it
		values, err := a.consumeSlots(stream, opt.Args, opt.Separator, isKnownChild)
		if err != nil {
			return err
		}
		values, err = invokeAction(opt.Action, values)
		if err != nil {
			return err
		}
		if prior, exists := into.Options[opt.Name]; exists {
			if list, isList := prior.([]any); isList {
				into.Options[opt.Name] = append(list, values)
			} else {
				into.Options[opt.Name] = []any{prior, values}
			}
			continue
		}
		into.Options[opt.Name] = values
	}
	return nil
}

func (a *Analyser) matchHeader(tree *command.Root, stream *token.Stream) bool {
	atom, ok := stream.Next(tree.Separator, false)
	return ok && tree.Header.Match(atom)
}

func (a *Analyser) peekedHeader(tree *command.Root, stream *token.Stream) (token.Atom, bool) {
	atom, ok := stream.Next(tree.Separator, false)
	if !ok || !tree.Header.Match(atom) {
		return token.Atom{}, false
	}
	stream.Next(tree.Separator, true)
	return atom, true
}

func (a *Analyser) fail(rec *result.Record, err error, stream *token.Stream) {
	rec.ErrorInfo = err.Error()
	rec.ErrorData = stream.RecoverRaw()
}

func invokeAction(action *command.Action, values map[string]any) (map[string]any, error) {
	if action == nil {
		return values, nil
	}
	if action.IsAsync() {
		// Analyse has no async path: an Action carrying only an Async
		// callable is not invoked, and values pass through unchanged.
		return values, nil
	}
	return action.InvokeSync(values)
}

// consumeSlots consumes list from stream, dispatching each slot to its
// pattern's registered handler. isKnownChild lets Multi's arity protocol
// stop before swallowing an option or sub-command name that belongs to the
// enclosing node rather than to this slot list.
func (a *Analyser) consumeSlots(stream *token.Stream, list args.SlotList, sep string, isKnownChild func(string) bool) (map[string]any, error) {
	acc := map[string]any{}
	n := list.Len()

	ctx := &handler.Context{
		Stream:       stream,
		Registry:     a.Registry,
		IsKnownChild: isKnownChild,
	}
	ctx.ConsumeSlots = func(nested args.SlotList, nestedSep string) (map[string]any, error) {
		return a.consumeSlots(stream, nested, nestedSep, isKnownChild)
	}

	for i := 0; i < n; i++ {
		slot := list.At(i)
		peeked, has := stream.Next(sep, true)
		if !has {
			if obj, isObj := slot.Pattern.(*pattern.ObjectPattern); isObj {
				// The stream has nothing left for this slot at all, but a
				// nested Object still has its own slot list with its own
				// defaults (e.g. a bool slot defaulting true): recurse so
				// those surface instead of treating the whole object as
				// simply absent.
				sub, err := a.consumeSlots(stream, args.SlotsOf(obj), sep, isKnownChild)
				if err != nil {
					return acc, err
				}
				acc[slot.Name] = sub
				continue
			}
			if err := missingOrDefault(acc, slot.Name, slot.Default); err != nil {
				return acc, err
			}
			continue
		}
		fn, ok := a.Registry.Lookup(slot.Pattern.Kind())
		if !ok {
			return acc, alerr.NewInvalidParam("no handler registered for slot %q", slot.Name)
		}
		if err := fn(ctx, peeked, slot.Name, slot.Pattern, slot.Default, n, sep, acc); err != nil {
			return acc, err
		}
	}
	return acc, nil
}

func missingOrDefault(acc map[string]any, name string, def pattern.Default) error {
	switch d := def.(type) {
	case pattern.Value:
		acc[name] = d.V
		return nil
	case pattern.Empty:
		return alerr.NewArgumentMissing("slot %q requires a value", name)
	default: // pattern.None
		return nil
	}
}

// promoteObjectSlots moves any main-arg value produced by an Object-pattern
// slot out of rec.MainArgs and into rec.SubCommands, matching the way an
// Object's nested fields read as a sub-command's own args rather than flat
// entries alongside ordinary main args.
func promoteObjectSlots(list args.SlotList, rec *result.Record) {
	for i := 0; i < list.Len(); i++ {
		slot := list.At(i)
		if _, isObj := slot.Pattern.(*pattern.ObjectPattern); !isObj {
			continue
		}
		v, ok := rec.MainArgs[slot.Name]
		if !ok {
			continue
		}
		sub, ok := v.(map[string]any)
		if !ok {
			continue
		}
		delete(rec.MainArgs, slot.Name)
		rec.SubCommands[slot.Name] = &result.SubResult{MainArgs: sub, Options: map[string]any{}}
	}
}

func renderHelp(tree *command.Root) string {
	help := tree.Name
	for _, name := range tree.Order() {
		help += " " + name
	}
	return help
}
