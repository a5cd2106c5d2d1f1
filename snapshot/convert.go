package snapshot

import (
	"github.com/arclet-go/alconna/alerr"
	"github.com/arclet-go/alconna/args"
	"github.com/arclet-go/alconna/command"
	"github.com/arclet-go/alconna/pattern"
)

func patternToSnap(p pattern.Pattern) PatternSnap {
	switch v := p.(type) {
	case *pattern.RegexPattern:
		mark := string(v.Mark)
		return PatternSnap{Kind: "regex", Regex: v.Source, Class: int(v.Class), Mark: mark}
	case pattern.AnyOnePattern:
		return PatternSnap{Kind: "any_one"}
	case pattern.AllPattern:
		return PatternSnap{Kind: "all"}
	case *pattern.ElementClassPattern:
		return PatternSnap{Kind: "element_class", ElemKind: v.ElemKind}
	case *pattern.MultiPattern:
		inner := patternToSnap(v.Inner)
		return PatternSnap{Kind: "multi", Inner: &inner}
	case *pattern.AntiPattern:
		inner := patternToSnap(v.Inner)
		return PatternSnap{Kind: "anti", Inner: &inner}
	case *pattern.UnionPattern:
		union := make([]*PatternSnap, len(v.Inner))
		for i, ip := range v.Inner {
			s := patternToSnap(ip)
			union[i] = &s
		}
		return PatternSnap{Kind: "union", Union: union, AntiFlag: v.AntiFlag}
	case *pattern.SequencePattern:
		elem := patternToSnap(v.Elem)
		return PatternSnap{Kind: "sequence", Elem: &elem}
	case *pattern.MappingPattern:
		key := patternToSnap(v.KeyPat)
		val := patternToSnap(v.ValPat)
		return PatternSnap{Kind: "mapping", Key: &key, Val: &val}
	case *pattern.ObjectPattern:
		slots := args.SlotsOf(v)
		snapSlots := make([]SlotSnap, slots.Len())
		for i := 0; i < slots.Len(); i++ {
			snapSlots[i] = slotToSnap(slots.At(i))
		}
		return PatternSnap{Kind: "object", Object: &ObjectSnap{Name: v.Name, Slots: snapSlots}}
	default:
		return PatternSnap{Kind: "unknown"}
	}
}

func (s PatternSnap) toPattern() (pattern.Pattern, error) {
	switch s.Kind {
	case "regex":
		// Transform is a function value and cannot round-trip through YAML;
		// a reloaded REGEX_TRANSFORM pattern falls back to recording the
		// captured text verbatim until the caller reattaches a Transform.
		return pattern.Regex(s.Regex, pattern.TokenClass(s.Class), pattern.TypeMark(s.Mark), nil, "")
	case "any_one":
		return pattern.AnyOne(), nil
	case "all":
		return pattern.All(), nil
	case "element_class":
		return pattern.ElementClass(s.ElemKind), nil
	case "multi":
		if s.Inner == nil {
			return nil, alerr.NewInvalidParam("multi pattern missing inner")
		}
		inner, err := s.Inner.toPattern()
		if err != nil {
			return nil, err
		}
		return pattern.Multi(inner), nil
	case "anti":
		if s.Inner == nil {
			return nil, alerr.NewInvalidParam("anti pattern missing inner")
		}
		inner, err := s.Inner.toPattern()
		if err != nil {
			return nil, err
		}
		return pattern.Anti(inner), nil
	case "union":
		inner := make([]pattern.Pattern, len(s.Union))
		for i, u := range s.Union {
			p, err := u.toPattern()
			if err != nil {
				return nil, err
			}
			inner[i] = p
		}
		return pattern.Union(s.AntiFlag, inner...), nil
	case "sequence":
		if s.Elem == nil {
			return nil, alerr.NewInvalidParam("sequence pattern missing elem")
		}
		elem, err := s.Elem.toPattern()
		if err != nil {
			return nil, err
		}
		return pattern.Sequence(elem), nil
	case "mapping":
		if s.Key == nil || s.Val == nil {
			return nil, alerr.NewInvalidParam("mapping pattern missing key/val")
		}
		key, err := s.Key.toPattern()
		if err != nil {
			return nil, err
		}
		val, err := s.Val.toPattern()
		if err != nil {
			return nil, err
		}
		return pattern.Mapping(key, val), nil
	case "object":
		if s.Object == nil {
			return nil, alerr.NewInvalidParam("object pattern missing body")
		}
		specs := make([]args.SlotSpec, len(s.Object.Slots))
		for i, ss := range s.Object.Slots {
			spec, err := ss.toSpec()
			if err != nil {
				return nil, err
			}
			specs[i] = spec
		}
		slots, err := args.New(specs...)
		if err != nil {
			return nil, err
		}
		return args.Object(s.Object.Name, slots), nil
	default:
		return nil, alerr.NewInvalidParam("unknown pattern kind %q in snapshot", s.Kind)
	}
}

func defaultToSnap(d pattern.Default) DefaultSnap {
	switch v := d.(type) {
	case pattern.Empty:
		return DefaultSnap{Kind: "empty"}
	case pattern.Value:
		return DefaultSnap{Kind: "value", Value: v.V}
	default:
		return DefaultSnap{Kind: "none"}
	}
}

func (s DefaultSnap) toDefault() pattern.Default {
	switch s.Kind {
	case "empty":
		return pattern.Empty{}
	case "value":
		return pattern.Value{V: s.Value}
	default:
		return pattern.None{}
	}
}

func slotToSnap(slot args.Slot) SlotSnap {
	return SlotSnap{Name: slot.Name, Pattern: patternToSnap(slot.Pattern), Default: defaultToSnap(slot.Default)}
}

func (s SlotSnap) toSpec() (args.SlotSpec, error) {
	p, err := s.Pattern.toPattern()
	if err != nil {
		return args.SlotSpec{}, err
	}
	return args.SlotSpec{Name: s.Name, Pattern: p, Default: s.Default.toDefault()}, nil
}

func slotsToSnap(list args.SlotList) []SlotSnap {
	out := make([]SlotSnap, list.Len())
	for i := 0; i < list.Len(); i++ {
		out[i] = slotToSnap(list.At(i))
	}
	return out
}

func snapsToSlots(snaps []SlotSnap) (args.SlotList, error) {
	specs := make([]args.SlotSpec, len(snaps))
	for i, s := range snaps {
		spec, err := s.toSpec()
		if err != nil {
			return args.SlotList{}, err
		}
		specs[i] = spec
	}
	return args.New(specs...)
}

func headerToSnap(h command.HeaderMatcher) HeaderSnap {
	heads := make([]HeadAtomSnap, len(h.Heads))
	for i, head := range h.Heads {
		heads[i] = headAtomToSnap(head)
	}
	return HeaderSnap{Heads: heads, Prefixes: h.Prefixes}
}

func optionToSnap(o *command.Option) OptionSnap {
	return OptionSnap{
		Name:      o.Name,
		Aliases:   o.Aliases,
		Args:      slotsToSnap(o.Args),
		Separator: o.Separator,
		HelpFlag:  o.HelpFlag,
	}
}

func (s OptionSnap) toOption() (*command.Option, error) {
	slots, err := snapsToSlots(s.Args)
	if err != nil {
		return nil, err
	}
	return command.NewOption(s.Name, s.Aliases, slots, command.WithSeparator(s.Separator))
}

func subcommandToSnap(s *command.Subcommand) SubcommandSnap {
	opts := make([]OptionSnap, len(s.Options))
	for i, o := range s.Options {
		opts[i] = optionToSnap(o)
	}
	return SubcommandSnap{Name: s.Name, Args: slotsToSnap(s.Args), Options: opts, Separator: s.Separator}
}

func (s SubcommandSnap) toSubcommand() (*command.Subcommand, error) {
	slots, err := snapsToSlots(s.Args)
	if err != nil {
		return nil, err
	}
	opts := make([]*command.Option, len(s.Options))
	for i, o := range s.Options {
		built, err := o.toOption()
		if err != nil {
			return nil, err
		}
		opts[i] = built
	}
	return command.NewSubcommand(s.Name, slots, opts, command.WithSeparator(s.Separator))
}

func rootToSnap(r *command.Root) RootSnap {
	opts := make([]OptionSnap, len(r.Options))
	for i, o := range r.Options {
		opts[i] = optionToSnap(o)
	}
	subs := make([]SubcommandSnap, len(r.Subcommands))
	for i, s := range r.Subcommands {
		subs[i] = subcommandToSnap(s)
	}
	return RootSnap{
		Name:        r.Name,
		Header:      headerToSnap(r.Header),
		MainArgs:    slotsToSnap(r.MainArgs),
		Options:     opts,
		Subcommands: subs,
		Separator:   r.Separator,
	}
}

func (s RootSnap) toRoot() (*command.Root, error) {
	mainArgs, err := snapsToSlots(s.MainArgs)
	if err != nil {
		return nil, err
	}
	var children []command.Child
	for _, o := range s.Options {
		opt, err := o.toOption()
		if err != nil {
			return nil, err
		}
		children = append(children, opt)
	}
	for _, sc := range s.Subcommands {
		sub, err := sc.toSubcommand()
		if err != nil {
			return nil, err
		}
		children = append(children, sub)
	}
	header, err := s.Header.toHeader()
	if err != nil {
		return nil, err
	}
	root, err := command.NewRoot(s.Name, header, mainArgs, children...)
	if err != nil {
		return nil, err
	}
	return root.With(command.WithSeparator(s.Separator)), nil
}

func headAtomToSnap(h command.HeadAtom) HeadAtomSnap {
	if h.ElemKind != "" {
		return HeadAtomSnap{ElemKind: h.ElemKind, IsElem: true}
	}
	return HeadAtomSnap{Text: h.Text}
}

func (s HeadAtomSnap) toHeadAtom() command.HeadAtom {
	if s.IsElem {
		return command.HeadElement(s.ElemKind)
	}
	return command.Head(s.Text)
}

func (s HeaderSnap) toHeader() (command.HeaderMatcher, error) {
	if len(s.Heads) == 0 {
		return command.HeaderMatcher{}, alerr.NewInvalidParam("header snapshot has no heads")
	}
	heads := make([]command.HeadAtom, len(s.Heads))
	for i, h := range s.Heads {
		heads[i] = h.toHeadAtom()
	}
	return command.NewHeader(heads...).WithPrefixes(s.Prefixes...), nil
}
