// Package snapshot implements a structure-only YAML serialisation of a
// command tree: headers, slot lists, and the pattern algebra, so a tree
// built once can be persisted and rebuilt elsewhere. A regex pattern's
// source, class and type mark are recorded; its Alias is not, and a
// reloaded pattern has an empty Alias.
// Actions are callables and are never part of a snapshot — a caller
// reattaches them after Load, the same way the Python source's
// __getstate__/__setstate__ never touches ArgAction.
package snapshot

import (
	"gopkg.in/yaml.v3"

	"github.com/arclet-go/alconna/alerr"
	"github.com/arclet-go/alconna/command"
)

// PatternSnap is the serialisable form of one pattern.Pattern value.
type PatternSnap struct {
	Kind     string         `yaml:"kind"`
	Regex    string         `yaml:"regex,omitempty"`
	Class    int            `yaml:"class,omitempty"`
	Mark     string         `yaml:"mark,omitempty"`
	ElemKind string         `yaml:"elem_kind,omitempty"`
	Inner    *PatternSnap   `yaml:"inner,omitempty"`
	Union    []*PatternSnap `yaml:"union,omitempty"`
	AntiFlag bool           `yaml:"anti_flag,omitempty"`
	Elem     *PatternSnap   `yaml:"elem,omitempty"`
	Key      *PatternSnap   `yaml:"key,omitempty"`
	Val      *PatternSnap   `yaml:"val,omitempty"`
	Object   *ObjectSnap    `yaml:"object,omitempty"`
}

// ObjectSnap is the serialisable form of an ObjectPattern.
type ObjectSnap struct {
	Name  string     `yaml:"name"`
	Slots []SlotSnap `yaml:"slots"`
}

// DefaultSnap is the serialisable form of a pattern.Default.
type DefaultSnap struct {
	Kind  string `yaml:"kind"` // none | empty | value
	Value any    `yaml:"value,omitempty"`
}

// SlotSnap is the serialisable form of one args.Slot.
type SlotSnap struct {
	Name    string      `yaml:"name"`
	Pattern PatternSnap `yaml:"pattern"`
	Default DefaultSnap `yaml:"default"`
}

// HeaderSnap is the serialisable form of a command.HeaderMatcher.
type HeaderSnap struct {
	Heads    []HeadAtomSnap `yaml:"heads"`
	Prefixes []string       `yaml:"prefixes,omitempty"`
}

// HeadAtomSnap is the serialisable form of one command.HeadAtom.
type HeadAtomSnap struct {
	Text     string `yaml:"text,omitempty"`
	ElemKind string `yaml:"elem_kind,omitempty"`
	IsElem   bool   `yaml:"is_elem,omitempty"`
}

// OptionSnap is the serialisable form of one command.Option.
type OptionSnap struct {
	Name      string     `yaml:"name"`
	Aliases   []string   `yaml:"aliases,omitempty"`
	Args      []SlotSnap `yaml:"args,omitempty"`
	Separator string     `yaml:"separator"`
	HelpFlag  bool       `yaml:"help_flag,omitempty"`
}

// SubcommandSnap is the serialisable form of one command.Subcommand.
type SubcommandSnap struct {
	Name      string       `yaml:"name"`
	Args      []SlotSnap   `yaml:"args,omitempty"`
	Options   []OptionSnap `yaml:"options,omitempty"`
	Separator string       `yaml:"separator"`
}

// RootSnap is the serialisable form of an entire command.Root tree.
type RootSnap struct {
	Name        string           `yaml:"name"`
	Header      HeaderSnap       `yaml:"header"`
	MainArgs    []SlotSnap       `yaml:"main_args,omitempty"`
	Options     []OptionSnap     `yaml:"options,omitempty"`
	Subcommands []SubcommandSnap `yaml:"subcommands,omitempty"`
	Separator   string           `yaml:"separator"`
}

// Dump renders tree as YAML.
func Dump(tree *command.Root) ([]byte, error) {
	return yaml.Marshal(rootToSnap(tree))
}

// Load parses YAML produced by Dump back into a command.Root. Actions are
// never present in the snapshot; callers that need them reattach via
// command.WithAction after Load.
func Load(data []byte) (*command.Root, error) {
	var snap RootSnap
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, alerr.NewInvalidParam("malformed snapshot: %v", err)
	}
	return snap.toRoot()
}
