package pattern

// Default is one of the three closed sentinel variants a slot's absence can
// carry: None (optional, substitute nothing), Empty (required — absence is
// itself an error signal), or a concrete value. Omitted is a fourth sentinel
// that is never a *default* but a *matched value*: it is recorded when an
// atom's text equals a regex pattern's literal source, meaning "matched but
// carries no new information" (see handler.RegexHandler).
type Default interface {
	isDefault()
}

// None means the slot is optional; absence substitutes nothing.
type None struct{}

func (None) isDefault() {}

// Empty means the slot is required; its absence is itself the error signal.
type Empty struct{}

func (Empty) isDefault() {}

// Value wraps a concrete default value.
type Value struct {
	V any
}

func (Value) isDefault() {}

// Omitted is the sentinel recorded as a *matched value* (not a default) when
// an atom's literal text equals the pattern's source — e.g. a boolean-flag
// argument like "--verbose verbose" where the word itself carries no new
// information beyond "present". Callers should treat it as truthy.
type Omitted struct{}

// IsOmitted reports whether a matched value is the Omitted sentinel.
func IsOmitted(v any) bool {
	_, ok := v.(Omitted)
	return ok
}
