// Package pattern implements the argument value-pattern algebra: the closed
// variant set of matchers a slot can carry (regex patterns with typed
// transforms, type-class wildcards, variadic collectors, negations, unions,
// and structured containers), each with a deterministic match semantics.
//
// Dispatch on the concrete variant is handled by package handler, not by
// Pattern itself — Multi's arity protocol in particular needs the
// analyser's running slot-consumption state, which Pattern has no access
// to. Pattern only reports its Kind; single-atom matching also lives in
// package handler, which uses RegexPattern.Find and
// ElementClassPattern.Matches and drives a wrapper's Inner pattern itself.
package pattern

import (
	"regexp"

	"github.com/arclet-go/alconna/token"
)

// Kind discriminates the closed pattern-variant set, used as the handler
// registry's dispatch key (package handler).
type Kind int

const (
	KindRegex Kind = iota
	KindAnyOne
	KindAll
	KindElementClass
	KindMulti
	KindAnti
	KindUnion
	KindSequence
	KindMapping
	KindObject
)

// Pattern is a matcher for one logical argument value.
type Pattern interface {
	Kind() Kind
}

// TokenClass distinguishes how a RegexPattern's match result is produced.
type TokenClass int

const (
	// RAW records the match as Find reports it (the first capture group if
	// the expression has one, else the whole match), with no transform.
	RAW TokenClass = iota
	// REGEX_MATCH records the regex's first capture group (or the whole
	// match if there is none), with no further transform.
	REGEX_MATCH
	// REGEX_TRANSFORM additionally applies Transform to a successful match.
	REGEX_TRANSFORM
)

// Transform converts a captured string into a target-type value.
type Transform func(string) (any, error)

// TypeMark names the resulting semantic type of a RegexPattern. It is
// carried through snapshot round-tripping; matching does not consult it.
type TypeMark string

// RegexPattern matches a single text atom against a regular expression.
type RegexPattern struct {
	Source    string
	Class     TokenClass
	Mark      TypeMark
	Transform Transform
	Alias     string

	compiled *regexp.Regexp
}

func (p *RegexPattern) Kind() Kind { return KindRegex }

// Regex builds a RegexPattern. src is compiled eagerly so construction-time
// errors surface immediately rather than at first match.
func Regex(src string, class TokenClass, mark TypeMark, transform Transform, alias string) (*RegexPattern, error) {
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, err
	}
	return &RegexPattern{
		Source:    src,
		Class:     class,
		Mark:      mark,
		Transform: transform,
		Alias:     alias,
		compiled:  re,
	}, nil
}

// MustRegex is Regex but panics on a malformed expression — intended for
// patterns declared as Go literals, where a bad regex is a programmer
// error caught immediately, not a runtime condition.
func MustRegex(src string, class TokenClass, mark TypeMark, transform Transform) *RegexPattern {
	p, err := Regex(src, class, mark, transform, "")
	if err != nil {
		panic(err)
	}
	return p
}

// Find reports whether text matches the pattern and, if so, the captured
// substring (the first submatch if present, else the whole match).
func (p *RegexPattern) Find(text string) (string, bool) {
	loc := p.compiled.FindStringSubmatch(text)
	if loc == nil {
		return "", false
	}
	if len(loc) > 1 && loc[1] != "" {
		return loc[1], true
	}
	return loc[0], true
}

// AnyOnePattern is the wildcard that matches exactly one atom of any kind.
type AnyOnePattern struct{}

func (AnyOnePattern) Kind() Kind { return KindAnyOne }

// AnyOne returns the any-one wildcard pattern.
func AnyOne() AnyOnePattern { return AnyOnePattern{} }

// AllPattern is the terminal wildcard that matches all remaining atoms as a
// list.
type AllPattern struct{}

func (AllPattern) Kind() Kind { return KindAll }

// All returns the all-remaining wildcard pattern.
func All() AllPattern { return AllPattern{} }

// ElementClassPattern matches one non-text atom whose concrete kind equals
// a declared kind.
type ElementClassPattern struct {
	ElemKind string
}

func (*ElementClassPattern) Kind() Kind { return KindElementClass }

// ElementClass builds an ElementClassPattern for the given non-text kind.
func ElementClass(kind string) *ElementClassPattern {
	return &ElementClassPattern{ElemKind: kind}
}

// Matches reports whether atom is a non-text atom of the declared kind.
func (e *ElementClassPattern) Matches(a token.Atom) bool {
	return !a.IsText && a.Kind == e.ElemKind
}

// MultiPattern wraps an inner pattern; matches a variable-length sequence
// of Inner-matching atoms, bounded by the remaining slot count (the arity
// protocol lives in package handler, driven by the analyser).
type MultiPattern struct {
	Inner Pattern
}

func (*MultiPattern) Kind() Kind { return KindMulti }

// Multi builds a MultiPattern wrapping inner.
func Multi(inner Pattern) *MultiPattern {
	return &MultiPattern{Inner: inner}
}

// AntiPattern wraps an inner pattern; matches exactly one atom that Inner
// would reject. Negation is total: success of Inner on an atom means
// AntiPattern rejects it.
type AntiPattern struct {
	Inner Pattern
}

func (*AntiPattern) Kind() Kind { return KindAnti }

// Anti builds an AntiPattern wrapping inner.
func Anti(inner Pattern) *AntiPattern {
	return &AntiPattern{Inner: inner}
}

// UnionPattern wraps a finite set of inner patterns; matches if any inner
// pattern matches. AntiFlag inverts the whole set when set.
type UnionPattern struct {
	Inner    []Pattern
	AntiFlag bool
}

func (*UnionPattern) Kind() Kind { return KindUnion }

// Union builds a UnionPattern over inner, inverted as a whole when anti is
// true.
func Union(anti bool, inner ...Pattern) *UnionPattern {
	return &UnionPattern{Inner: inner, AntiFlag: anti}
}

// SequencePattern matches a text atom parsed as a list literal, then
// element-type checks each entry against Elem.
type SequencePattern struct {
	Elem Pattern
}

func (*SequencePattern) Kind() Kind { return KindSequence }

// Sequence builds a SequencePattern over elem.
func Sequence(elem Pattern) *SequencePattern {
	return &SequencePattern{Elem: elem}
}

// MappingPattern matches a text atom parsed as a dict literal, then
// element-type checks each key/value pair.
type MappingPattern struct {
	KeyPat Pattern
	ValPat Pattern
}

func (*MappingPattern) Kind() Kind { return KindMapping }

// Mapping builds a MappingPattern over key/value element patterns.
func Mapping(key, val Pattern) *MappingPattern {
	return &MappingPattern{KeyPat: key, ValPat: val}
}

// ObjectPattern is a named aggregate matching a sequence of sub-patterns
// into a record. Slots is declared as `any` here (rather than importing
// package args) to avoid an import cycle — package args constructs
// ObjectPattern values via NewObject, which performs the type assertion.
type ObjectPattern struct {
	Name  string
	Slots any
}

func (*ObjectPattern) Kind() Kind { return KindObject }

// NewObject builds an ObjectPattern. slots should be an args.SlotList;
// package args re-exports this as Object for ergonomic construction.
func NewObject(name string, slots any) *ObjectPattern {
	return &ObjectPattern{Name: name, Slots: slots}
}
