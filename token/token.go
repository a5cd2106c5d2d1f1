// Package token tokenises a heterogeneous input (text fragments and opaque
// elements) into an indexed, addressable stream of atoms, and exposes the
// next/reduce/rest_count/recover_raw protocol the analyser drives.
package token

import "fmt"

// KindText marks a unit/atom produced by splitting a text fragment. Any
// other Kind value names a non-text element's concrete kind (e.g. "image",
// "mention") as supplied by the caller.
const KindText = "__text__"

// Unit is one element of the raw, pre-tokenisation input sequence: either a
// text fragment (Kind == KindText, Text holds the raw string) or an opaque
// non-text element (Kind holds its concrete kind, Text is ignored).
type Unit struct {
	Kind string
	Text string
}

// Atom is one indivisible token in the tokenised stream: either a string
// (after quote-aware splitting of a text unit) or a non-text element
// identified by its Kind. Atoms are addressable by two indices: CurrentIndex
// (which unit) and ContentIndex (position within that unit's split list).
type Atom struct {
	IsText       bool
	Text         string
	Kind         string
	CurrentIndex int
	ContentIndex int
}

func (a Atom) String() string {
	if a.IsText {
		return a.Text
	}
	return fmt.Sprintf("<%s>", a.Kind)
}

// Options configures tokenisation.
type Options struct {
	// FilterOut names non-text kinds to drop silently.
	FilterOut map[string]bool
	// Strict, when true, fails with alerr.UnexpectedElement on any non-text
	// atom whose kind is not in Allow (and not in FilterOut).
	Strict bool
	// Allow names the non-text kinds accepted in strict mode. Ignored when
	// Strict is false.
	Allow map[string]bool
}
