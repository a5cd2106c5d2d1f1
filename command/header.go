package command

import "github.com/arclet-go/alconna/token"

// HeadAtom is one acceptable first atom for a command: either a literal
// string or a non-text element kind.
type HeadAtom struct {
	Text     string
	ElemKind string
	isElem   bool
}

// Head builds a literal-string head atom.
func Head(text string) HeadAtom { return HeadAtom{Text: text} }

// HeadElement builds a non-text-element head atom matched by kind.
func HeadElement(kind string) HeadAtom { return HeadAtom{ElemKind: kind, isElem: true} }

func (h HeadAtom) matches(a token.Atom) bool {
	if h.isElem {
		return !a.IsText && a.Kind == h.ElemKind
	}
	return a.IsText && a.Text == h.Text
}

// HeaderMatcher is a non-empty ordered set of acceptable head atoms, plus an
// optional prefix list allowing e.g. "!cmd" and "/cmd" to match the same
// command when its head is "cmd".
type HeaderMatcher struct {
	Heads    []HeadAtom
	Prefixes []string
}

// NewHeader builds a HeaderMatcher from one or more acceptable heads.
func NewHeader(heads ...HeadAtom) HeaderMatcher {
	return HeaderMatcher{Heads: heads}
}

// WithPrefixes returns a copy of h with the given prefix list attached.
func (h HeaderMatcher) WithPrefixes(prefixes ...string) HeaderMatcher {
	h.Prefixes = prefixes
	return h
}

// Match reports whether atom is an acceptable first atom, either directly
// or via a registered prefix applied to a literal head's text.
func (h HeaderMatcher) Match(a token.Atom) bool {
	for _, head := range h.Heads {
		if head.matches(a) {
			return true
		}
		if head.isElem || !a.IsText {
			continue
		}
		for _, prefix := range h.Prefixes {
			if prefix+head.Text == a.Text {
				return true
			}
		}
	}
	return false
}
