// Package alconna is the command-grammar engine's top-level convenience
// surface: Format builds a small command tree from a bounded string
// template, for callers who want one slot list without hand-assembling
// args.SlotSpec values.
package alconna

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/arclet-go/alconna/alerr"
	"github.com/arclet-go/alconna/args"
	"github.com/arclet-go/alconna/command"
	"github.com/arclet-go/alconna/pattern"
)

// FormatSlot names the pattern and default a {placeholder} in a Format
// template resolves to. A slot whose Pattern is an *pattern.ObjectPattern
// (built with args.Object) reads back as its own sub-command in the
// analysed result rather than as a flat main-arg entry.
type FormatSlot struct {
	Pattern pattern.Pattern
	Default pattern.Default
}

// literalSlotPrefix names the internal slots Format synthesises for a
// template's bare words. A NUL byte can never occur in a caller-supplied
// slot name, so these can never collide with one.
const literalSlotPrefix = "\x00lit"

// Format builds a single-header command tree named name, whose head is the
// template's first whitespace-separated word. Each remaining word is either
// a "{name}" placeholder, resolved against slots, or a bare literal word
// that must appear verbatim at that position but never surfaces in the
// analysed result. For example, "lp user {target} perm set {perm}
// {default}" requires the literal path segments "user", "perm", "set" while
// only target, perm, and default become slots.
//
// Format is deliberately bounded: it recognises only bare "{identifier}"
// placeholders and bare literal words directly between separators, not
// nested brackets, optional groups, or repetition. It is a convenience
// constructor for the common case, not a grammar compiler. A template
// needing anything richer should build its command.Root directly.
func Format(name, template string, slots map[string]FormatSlot) (*command.Root, error) {
	words := strings.Fields(template)
	if len(words) == 0 {
		return nil, alerr.NewInvalidParam("template must not be empty")
	}

	head := words[0]
	var specs []args.SlotSpec
	for i, word := range words[1:] {
		if slotName, ok := placeholderName(word); ok {
			fs, known := slots[slotName]
			if !known {
				return nil, alerr.NewInvalidParam("template references unknown slot %q", slotName)
			}
			specs = append(specs, args.SlotSpec{Name: slotName, Pattern: fs.Pattern, Default: fs.Default})
			continue
		}
		literal, err := pattern.Regex("^"+regexp.QuoteMeta(word)+"$", pattern.RAW, "", nil, "")
		if err != nil {
			return nil, err
		}
		specs = append(specs, args.SlotSpec{
			Name:    fmt.Sprintf("%s%d", literalSlotPrefix, i),
			Pattern: literal,
			Default: pattern.Empty{},
		})
	}

	mainArgs, err := args.New(specs...)
	if err != nil {
		return nil, err
	}
	header := command.NewHeader(command.Head(head))
	root, err := command.NewRoot(name, header, mainArgs)
	if err != nil {
		return nil, err
	}
	action, err := command.NewSyncAction(stripLiteralSlots)
	if err != nil {
		return nil, err
	}
	return root.With(command.WithAction(action)), nil
}

// stripLiteralSlots deletes the synthetic literal-word entries Format adds
// to the main slot list before a result ever reaches a caller.
func stripLiteralSlots(values map[string]any) (map[string]any, error) {
	for k := range values {
		if strings.HasPrefix(k, literalSlotPrefix) {
			delete(values, k)
		}
	}
	return values, nil
}

func placeholderName(word string) (string, bool) {
	if len(word) < 3 || word[0] != '{' || word[len(word)-1] != '}' {
		return "", false
	}
	return word[1 : len(word)-1], true
}
