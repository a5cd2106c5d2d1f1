// Package handler implements the per-pattern-variant match handlers and the
// pluggable registry that dispatches to them by pattern kind.
package handler

import (
	"github.com/arclet-go/alconna/args"
	"github.com/arclet-go/alconna/pattern"
	"github.com/arclet-go/alconna/token"
)

// Stream is the subset of *token.Stream a handler needs: peek/pop the next
// atom, put one back, and measure how much is left. *token.Stream satisfies
// this directly.
type Stream interface {
	Next(sep string, pop bool) (token.Atom, bool)
	Reduce(token.Atom)
	RestCount(sep string) int
}

// Context carries everything a handler needs beyond its own arguments:
// the token stream, the registry (for Object's recursive slot consumption),
// a callback to consume a nested slot list, and a callback reporting
// whether a text token names a known child at the current tree level (used
// by Multi to stop before swallowing an option/subcommand name).
type Context struct {
	Stream       Stream
	Registry     *Registry
	ConsumeSlots func(list args.SlotList, sep string) (map[string]any, error)
	IsKnownChild func(text string) bool
}

// Func is the contract every pattern-variant handler implements: given the
// already-peeked atom, attempt to consume it (and possibly more from the
// stream) against pat, recording into acc[slotName] on success. On
// rejection the handler must restore the stream to its pre-call position
// (reduce-on-reject) and either fall back to def or return an error.
type Func func(ctx *Context, peeked token.Atom, slotName string, pat pattern.Pattern, def pattern.Default, nargs int, sep string, acc map[string]any) error

// Registry is a process-wide mapping from pattern-variant discriminator to
// handler function. Registration is additive: registering a handler for a
// kind replaces any prior handler for that kind.
type Registry struct {
	byKind map[pattern.Kind]Func
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{byKind: map[pattern.Kind]Func{}}
}

// Register installs fn as the handler for kind, replacing any prior
// handler.
func (r *Registry) Register(kind pattern.Kind, fn Func) {
	r.byKind[kind] = fn
}

// Lookup returns the handler registered for kind, if any.
func (r *Registry) Lookup(kind pattern.Kind) (Func, bool) {
	fn, ok := r.byKind[kind]
	return fn, ok
}

// Clone returns a shallow copy of r, so callers can extend the default
// registry without mutating it.
func (r *Registry) Clone() *Registry {
	out := NewRegistry()
	for k, v := range r.byKind {
		out.byKind[k] = v
	}
	return out
}

var defaultRegistry = NewRegistry()

func init() {
	defaultRegistry.Register(pattern.KindRegex, RegexHandler)
	defaultRegistry.Register(pattern.KindAnyOne, AnyOneHandler)
	defaultRegistry.Register(pattern.KindAll, AllHandler)
	defaultRegistry.Register(pattern.KindElementClass, ElementClassHandler)
	defaultRegistry.Register(pattern.KindMulti, MultiHandler)
	defaultRegistry.Register(pattern.KindAnti, AntiHandler)
	defaultRegistry.Register(pattern.KindUnion, UnionHandler)
	defaultRegistry.Register(pattern.KindSequence, SequenceHandler)
	defaultRegistry.Register(pattern.KindMapping, MappingHandler)
	defaultRegistry.Register(pattern.KindObject, ObjectHandler)
}

// Default returns the package-level registry populated with the built-in
// handlers. Callers that need to extend or override a handler should start
// from Default().Clone().
func Default() *Registry {
	return defaultRegistry
}
