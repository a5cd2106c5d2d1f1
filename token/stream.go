package token

import "github.com/arclet-go/alconna/alerr"

// Stream is the tokeniser's owned, mutable cursor over a map of unit index
// to its split atoms. It is the only shared-mutable resource inside one
// analysis and must be accessed exclusively from that analysis's thread of
// control (see the concurrency model in SPEC_FULL.md §5).
type Stream struct {
	units   []Unit
	raw     map[int][]string // text units, split
	order   []int            // unit indices in original order, text or not
	nonText map[int]Unit     // non-text units by index

	cursorUnit    int
	cursorContent int
	lastAtom      *Atom // most recently popped atom; Reduce does not consult it
}

// Tokenize splits a raw input sequence into an addressable atom stream.
func Tokenize(units []Unit, sep string, opts Options) (*Stream, error) {
	s := &Stream{
		units:   units,
		raw:     map[int][]string{},
		nonText: map[int]Unit{},
	}

	sawText := false
	for i, u := range units {
		if u.Kind == KindText {
			words := splitWords(u.Text, sep)
			if len(words) == 0 {
				continue
			}
			s.raw[i] = words
			s.order = append(s.order, i)
			sawText = true
			continue
		}
		if opts.FilterOut[u.Kind] {
			continue
		}
		if opts.Strict && !opts.Allow[u.Kind] {
			return nil, &alerr.UnexpectedElement{Kind: u.Kind}
		}
		s.nonText[i] = u
		s.order = append(s.order, i)
	}

	if !sawText {
		return nil, &alerr.NullTextMessage{}
	}
	return s, nil
}

// Next returns the next atom in the stream honouring sep for text units. If
// pop is false the cursor does not advance (a peek). ok is false once the
// stream is exhausted.
func (s *Stream) Next(sep string, pop bool) (Atom, bool) {
	unitIdx, contentIdx := s.cursorUnit, s.cursorContent
	for unitIdx < len(s.order) {
		idx := s.order[unitIdx]
		if words, isText := s.raw[idx]; isText {
			if contentIdx >= len(words) {
				unitIdx++
				contentIdx = 0
				continue
			}
			atom := Atom{
				IsText:       true,
				Text:         words[contentIdx],
				CurrentIndex: idx,
				ContentIndex: contentIdx,
			}
			if pop {
				s.cursorUnit = unitIdx
				s.cursorContent = contentIdx + 1
				s.lastAtom = &atom
			}
			return atom, true
		}
		u := s.nonText[idx]
		atom := Atom{
			IsText:       false,
			Kind:         u.Kind,
			CurrentIndex: idx,
			ContentIndex: 0,
		}
		if pop {
			s.cursorUnit = unitIdx + 1
			s.cursorContent = 0
			s.lastAtom = &atom
		}
		return atom, true
	}
	return Atom{}, false
}

// Reduce puts an atom back. It must be symmetric with the most recent Next
// call that popped — handlers that reject an atom must return it via Reduce
// before doing anything else, so the stream index is restored exactly to
// where it was before the call (the reduce-symmetry property).
func (s *Stream) Reduce(a Atom) {
	s.findCursorFor(a)
}

func (s *Stream) findCursorFor(a Atom) {
	for i, idx := range s.order {
		if idx == a.CurrentIndex {
			s.cursorUnit = i
			s.cursorContent = a.ContentIndex
			return
		}
	}
}

// RestCount reports how many atoms remain in the stream from the current
// cursor position, honouring sep.
func (s *Stream) RestCount(sep string) int {
	count := 0
	unitIdx, contentIdx := s.cursorUnit, s.cursorContent
	for unitIdx < len(s.order) {
		idx := s.order[unitIdx]
		if words, isText := s.raw[idx]; isText {
			if contentIdx < len(words) {
				count += len(words) - contentIdx
			}
			unitIdx++
			contentIdx = 0
			continue
		}
		count++
		unitIdx++
		contentIdx = 0
	}
	return count
}

// Exhausted reports whether every atom in the stream has been consumed.
func (s *Stream) Exhausted() bool {
	return s.RestCount(" ") == 0
}

// RecoverRaw reconstructs the full original unit sequence, for error
// reporting — independent of how much of the stream has been consumed.
func (s *Stream) RecoverRaw() []Unit {
	out := make([]Unit, len(s.units))
	copy(out, s.units)
	return out
}
