package handler

import (
	"github.com/arclet-go/alconna/pattern"
	"github.com/arclet-go/alconna/token"
)

// matchOne attempts a single-atom match of inner against atom, independent
// of any slot-list bookkeeping (defaults, nargs, acc). It backs the
// handlers that recurse into an inner pattern one atom at a time: Multi,
// Anti, and Union.
func matchOne(atom token.Atom, inner pattern.Pattern) (any, bool) {
	switch p := inner.(type) {
	case *pattern.RegexPattern:
		if !atom.IsText {
			return nil, false
		}
		captured, ok := p.Find(atom.Text)
		if !ok {
			return nil, false
		}
		if atom.Text == p.Source {
			return pattern.Omitted{}, true
		}
		if p.Class == pattern.REGEX_TRANSFORM && p.Transform != nil {
			v, err := p.Transform(captured)
			if err != nil {
				return nil, false
			}
			return v, true
		}
		return captured, true
	case pattern.AnyOnePattern:
		return atomValue(atom), true
	case *pattern.ElementClassPattern:
		if p.Matches(atom) {
			return atom, true
		}
		return nil, false
	case *pattern.AntiPattern:
		if _, ok := matchOne(atom, p.Inner); ok {
			return nil, false
		}
		return atomValue(atom), true
	case *pattern.UnionPattern:
		matched := false
		var val any
		for _, ip := range p.Inner {
			if v, ok := matchOne(atom, ip); ok {
				matched = true
				val = v
				break
			}
		}
		if p.AntiFlag {
			matched = !matched
		}
		if !matched {
			return nil, false
		}
		if val == nil {
			val = atomValue(atom)
		}
		return val, true
	default:
		return nil, false
	}
}

func atomValue(atom token.Atom) any {
	if atom.IsText {
		return atom.Text
	}
	return atom
}
