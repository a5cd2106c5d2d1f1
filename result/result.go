// Package result defines the analyser's output structure: which header
// matched, the main slot values, the option map, the sub-command map, and
// error info on failure.
package result

import "github.com/arclet-go/alconna/token"

// SubResult is the record stored under Record.SubCommands[name]: the
// sub-command's own slot values plus its matched options.
type SubResult struct {
	MainArgs map[string]any
	Options  map[string]any
}

// Record is the analyser's output: a success record or a typed failure.
type Record struct {
	HeadMatched bool
	Matched     bool
	Header      any
	MainArgs    map[string]any
	Options     map[string]any
	SubCommands map[string]*SubResult
	ErrorInfo   string
	ErrorData   []token.Unit
	HelpText    string
}

// New returns an empty, not-yet-matched Record with initialised maps.
func New() *Record {
	return &Record{
		MainArgs:    map[string]any{},
		Options:     map[string]any{},
		SubCommands: map[string]*SubResult{},
	}
}

// SetOption records value under name, implementing the multi-occurrence
// promotion rule: the first occurrence stays a scalar; the second combines
// the prior value and the new one into a two-element list; subsequent
// occurrences append.
func (r *Record) SetOption(name string, value any) {
	prior, exists := r.Options[name]
	if !exists {
		r.Options[name] = value
		return
	}
	if list, isList := prior.([]any); isList {
		r.Options[name] = append(list, value)
		return
	}
	r.Options[name] = []any{prior, value}
}

// Get returns the value stored under name, looking in MainArgs first and
// then in Options. Dotted paths are not resolved, so sub-command values
// must be read from SubCommands directly.
func (r *Record) Get(name string) (any, bool) {
	if v, ok := r.MainArgs[name]; ok {
		return v, true
	}
	v, ok := r.Options[name]
	return v, ok
}
