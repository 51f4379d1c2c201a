// Package draw picks which fortune is shown next.
package draw

import (
	"math/rand/v2"

	"github.com/arcanaland/omikuji/internal/fortune"
)

// None is the index of an empty or cleared board.
const None = -1

// Selector chooses random indexes into a fortune list.
type Selector struct {
	// intn returns a uniform integer in [0, n). Injected for deterministic tests.
	intn func(n int) int
}

// NewSelector creates a Selector. If intn is nil, math/rand/v2 is used.
func NewSelector(intn func(n int) int) *Selector {
	if intn == nil {
		intn = rand.IntN
	}
	return &Selector{intn: intn}
}

// First picks any index for the initial draw, or None when length is zero.
func (s *Selector) First(length int) int {
	if length <= 0 {
		return None
	}
	return s.intn(length)
}

// Next picks an index in [0, length) different from exclude.
// With fewer than two candidates it always returns 0.
func (s *Selector) Next(length, exclude int) int {
	if length <= 1 {
		return 0
	}

	candidate := s.intn(length)
	for candidate == exclude {
		candidate = s.intn(length)
	}
	return candidate
}

// Board holds the fortune currently on display.
type Board struct {
	fortunes []fortune.Fortune
	selector *Selector
	current  int
}

// NewBoard creates a board and makes the initial draw.
func NewBoard(fortunes []fortune.Fortune, selector *Selector) *Board {
	if selector == nil {
		selector = NewSelector(nil)
	}
	return &Board{
		fortunes: fortunes,
		selector: selector,
		current:  selector.First(len(fortunes)),
	}
}

// Draw replaces the current fortune with a different one.
func (b *Board) Draw() {
	if len(b.fortunes) == 0 {
		return
	}
	b.current = b.selector.Next(len(b.fortunes), b.current)
}

// Clear hides the current fortune.
func (b *Board) Clear() {
	b.current = None
}

// Index returns the current index, or None.
func (b *Board) Index() int {
	return b.current
}

// Len returns the number of fortunes on the board.
func (b *Board) Len() int {
	return len(b.fortunes)
}

// Current returns the fortune on display, if any.
func (b *Board) Current() (fortune.Fortune, bool) {
	if b.current < 0 || b.current >= len(b.fortunes) {
		return fortune.Fortune{}, false
	}
	return b.fortunes[b.current], true
}
