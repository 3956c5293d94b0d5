// Copyright 2026 The Seqdiff Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cursor wraps an ordered sequence so that stepping through it carries along a
// zero-based offset, and provides the common-prefix primitive that the solver uses to skip
// matching runs without rescanning from the start.
package cursor

// Cursor walks seq from front to back. It does not copy seq.
type Cursor[E any] struct {
	seq []E
	pos int
}

// New returns a cursor positioned at the start of seq.
func New[E any](seq []E) Cursor[E] {
	return Cursor[E]{seq: seq}
}

// Offset returns the number of elements already advanced past. For a cursor over a plain slice
// this coincides with the underlying position, but the two are conceptually distinct: Offset is
// always a zero-based count, usable directly as a Change offset.
func (c Cursor[E]) Offset() int {
	return c.pos
}

// Done reports whether the cursor has reached the end of seq.
func (c Cursor[E]) Done() bool {
	return c.pos >= len(c.seq)
}

// Peek returns the element the cursor is currently on. Peek must not be called when Done.
func (c Cursor[E]) Peek() E {
	return c.seq[c.pos]
}

// Advance returns a cursor stepped one position forward. Advance must not be called when Done.
func (c Cursor[E]) Advance() Cursor[E] {
	c.pos++
	return c
}

// CommonPrefix advances a and b in lock-step for as long as eq holds between their current
// elements and neither has reached its end, and returns the advanced cursors. It never steps
// past the end of either side, and performs no buffering of its own.
func CommonPrefix[A, B any](a Cursor[A], b Cursor[B], eq func(x A, y B) bool) (Cursor[A], Cursor[B]) {
	for !a.Done() && !b.Done() && eq(a.Peek(), b.Peek()) {
		a = a.Advance()
		b = b.Advance()
	}
	return a, b
}
