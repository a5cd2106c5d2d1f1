// Package command implements the command tree: a root command node with a
// header matcher, a main slot list, and named children (options /
// sub-commands), each of which is itself a node. The tree is immutable once
// built and safely shared by reference among concurrent analyses.
package command

import (
	"regexp"

	"github.com/arclet-go/alconna/alerr"
	"github.com/arclet-go/alconna/args"
)

// illegalNameLeading rejects command/option/subcommand names that start
// with punctuation a shell or the analyser itself would otherwise treat
// specially, ported from CommandNode.__init__'s name regex in base.py.
var illegalNameLeading = regexp.MustCompile("^[`~?/.,<>;':\"|!@#$%^&*()_+=\\[\\]}{]")

func validateName(name string) error {
	if name == "" {
		return alerr.NewInvalidParam("name must not be empty")
	}
	if illegalNameLeading.MatchString(name) {
		return alerr.NewInvalidParam("name %q starts with an illegal character", name)
	}
	return nil
}

// Child is implemented by *Option and *Subcommand: the node types a Root or
// Subcommand can dispatch to by peeked name/alias.
type Child interface {
	childName() string
	aliases() []string
}

// Option is a leaf node: a flag with optional aliases and its own slot
// list.
type Option struct {
	Name      string
	Aliases   []string
	Args      args.SlotList
	Separator string
	Action    *Action
	HelpFlag  bool // when true, matching this option short-circuits analysis (SPEC_FULL.md §9)
}

func (o *Option) childName() string { return o.Name }
func (o *Option) aliases() []string { return o.Aliases }

// NodeOption configures an Option or Subcommand at construction time.
type NodeOption func(sep *string, action **Action)

// WithSeparator overrides a node's default separator (a single space).
func WithSeparator(sep string) NodeOption {
	return func(s *string, _ **Action) { *s = sep }
}

// WithAction attaches an Action to a node.
func WithAction(a *Action) NodeOption {
	return func(_ *string, act **Action) { *act = a }
}

// NewOption builds an Option, validating its name and alias forms.
func NewOption(name string, aliases []string, slots args.SlotList, opts ...NodeOption) (*Option, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	for _, alias := range aliases {
		if err := validateName(alias); err != nil {
			return nil, err
		}
	}
	sep := " "
	var action *Action
	for _, opt := range opts {
		opt(&sep, &action)
	}
	helpFlag := name == "--help"
	for _, a := range aliases {
		if a == "-h" {
			helpFlag = true
		}
	}
	return &Option{Name: name, Aliases: aliases, Args: slots, Separator: sep, Action: action, HelpFlag: helpFlag}, nil
}

// MustNewOption is NewOption but panics on error.
func MustNewOption(name string, aliases []string, slots args.SlotList, opts ...NodeOption) *Option {
	o, err := NewOption(name, aliases, slots, opts...)
	if err != nil {
		panic(err)
	}
	return o
}

// Subcommand's depth is fixed at two: it holds option children only, and
// never nests another Subcommand (spec.md §3.3).
type Subcommand struct {
	Name      string
	Args      args.SlotList
	Options   []*Option
	Separator string
	Action    *Action
}

func (s *Subcommand) childName() string { return s.Name }
func (s *Subcommand) aliases() []string { return nil }

// OptionByNameOrAlias looks up a child option by exact name or alias.
func (s *Subcommand) OptionByNameOrAlias(token string) *Option {
	return findOption(s.Options, token)
}

// NewSubcommand builds a Subcommand, validating its name and all option
// children.
func NewSubcommand(name string, slots args.SlotList, options []*Option, opts ...NodeOption) (*Subcommand, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	sep := " "
	var action *Action
	for _, opt := range opts {
		opt(&sep, &action)
	}
	return &Subcommand{Name: name, Args: slots, Options: options, Separator: sep, Action: action}, nil
}

// MustNewSubcommand is NewSubcommand but panics on error.
func MustNewSubcommand(name string, slots args.SlotList, options []*Option, opts ...NodeOption) *Subcommand {
	s, err := NewSubcommand(name, slots, options, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Root is the top of a command tree: a header matcher, the main slot list,
// and ordered children (options and/or subcommands). Depth below Root is at
// most two (Root -> Subcommand -> Option), matching spec.md §3.3.
type Root struct {
	Name        string
	Header      HeaderMatcher
	MainArgs    args.SlotList
	Options     []*Option
	Subcommands []*Subcommand
	Separator   string
	Action      *Action
	order       []string // child names in declaration order, for prefix-match tie-breaking
}

// NewRoot builds a Root command tree. children may be *Option or
// *Subcommand values, in the declaration order that governs prefix-alias
// tie-breaking (SPEC_FULL.md §9 / spec.md Open Questions).
func NewRoot(name string, header HeaderMatcher, mainArgs args.SlotList, children ...Child) (*Root, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if len(header.Heads) == 0 {
		return nil, alerr.NewInvalidParam("header must name at least one acceptable head atom")
	}
	r := &Root{Name: name, Header: header, MainArgs: mainArgs, Separator: " "}
	for _, c := range children {
		switch v := c.(type) {
		case *Option:
			r.Options = append(r.Options, v)
		case *Subcommand:
			r.Subcommands = append(r.Subcommands, v)
		default:
			return nil, alerr.NewInvalidParam("unsupported child type %T", c)
		}
		r.order = append(r.order, c.childName())
	}
	return r, nil
}

// MustNewRoot is NewRoot but panics on error.
func MustNewRoot(name string, header HeaderMatcher, mainArgs args.SlotList, children ...Child) *Root {
	r, err := NewRoot(name, header, mainArgs, children...)
	if err != nil {
		panic(err)
	}
	return r
}

// With attaches a separator/action to a built Root, returning the same
// instance (Root is meant to be built once via NewRoot then frozen).
func (r *Root) With(opts ...NodeOption) *Root {
	sep, action := r.Separator, r.Action
	for _, opt := range opts {
		opt(&sep, &action)
	}
	r.Separator, r.Action = sep, action
	return r
}

// Order returns the names of the root's children (options and subcommands
// interleaved) in the order they were passed to NewRoot.
func (r *Root) Order() []string { return r.order }

// FindChild resolves a peeked text against this root's children using the
// prefix-alias matching rule from spec.md §4.2 step 1 and the Open
// Questions note: a child's own name/alias equality wins first; failing
// that, the FIRST option in declaration order whose alias (or name) is a
// prefix of the peeked text wins (sub-commands are only matched exactly)
// — this can over-match when one option's
// alias is a prefix of another's name, which is the documented, pinned
// source behaviour, not a bug.
func (r *Root) FindChild(text string) (opt *Option, sub *Subcommand) {
	for _, name := range r.order {
		if o := exactOption(r.Options, name, text); o != nil {
			return o, nil
		}
		if s := exactSubcommand(r.Subcommands, name, text); s != nil {
			return nil, s
		}
	}
	for _, name := range r.order {
		if o := prefixOption(r.Options, name, text); o != nil {
			return o, nil
		}
	}
	return nil, nil
}

func exactOption(opts []*Option, name, text string) *Option {
	for _, o := range opts {
		if o.Name != name {
			continue
		}
		if o.Name == text {
			return o
		}
		for _, a := range o.Aliases {
			if a == text {
				return o
			}
		}
	}
	return nil
}

func exactSubcommand(subs []*Subcommand, name, text string) *Subcommand {
	for _, s := range subs {
		if s.Name == name && s.Name == text {
			return s
		}
	}
	return nil
}

func prefixOption(opts []*Option, name, text string) *Option {
	for _, o := range opts {
		if o.Name != name {
			continue
		}
		for _, alias := range append([]string{o.Name}, o.Aliases...) {
			if len(alias) > 0 && len(text) >= len(alias) && text[:len(alias)] == alias {
				return o
			}
		}
	}
	return nil
}

func findOption(opts []*Option, token string) *Option {
	for _, o := range opts {
		if o.Name == token {
			return o
		}
		for _, a := range o.Aliases {
			if a == token {
				return o
			}
		}
	}
	return nil
}

// Merge returns the right-biased union of two slot lists — the internal
// contract named in spec.md §9, exposed even though the builder/ergonomic
// operator surface that would normally call it is out of scope.
func Merge(a, b args.SlotList) args.SlotList {
	return args.Merge(a, b)
}

// AppendChild returns a copy of root with child appended after its existing
// children — the internal contract named in spec.md §9. The copy keeps
// root's separator and action; existing options are re-added before
// existing subcommands.
func AppendChild(root *Root, child Child) (*Root, error) {
	children := make([]Child, 0, len(root.Options)+len(root.Subcommands)+1)
	for _, o := range root.Options {
		children = append(children, o)
	}
	for _, s := range root.Subcommands {
		children = append(children, s)
	}
	children = append(children, child)
	grown, err := NewRoot(root.Name, root.Header, root.MainArgs, children...)
	if err != nil {
		return nil, err
	}
	grown.Separator, grown.Action = root.Separator, root.Action
	return grown, nil
}
