package idgen

import "fmt"

// Sequence mints zero-padded identifiers like "LIB-000001". Each
// instance owns its own counter; there is no package-level state, so
// the coordinator that constructs a Sequence fully controls the IDs it
// hands out.
type Sequence struct {
	prefix string
	width  int
	next   uint64
}

// NewSequence creates a sequence that starts at 1. A non-positive width
// falls back to 6 digits.
func NewSequence(prefix string, width int) *Sequence {
	if width <= 0 {
		width = 6
	}
	return &Sequence{prefix: prefix, width: width, next: 1}
}

// Next returns the next identifier and advances the counter.
func (s *Sequence) Next() string {
	id := s.Peek()
	s.next++
	return id
}

// Peek returns the identifier Next would mint, without advancing.
func (s *Sequence) Peek() string {
	return fmt.Sprintf("%s-%0*d", s.prefix, s.width, s.next)
}
