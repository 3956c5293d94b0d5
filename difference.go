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

package seqdiff

import (
	"cmp"
	"errors"
	"iter"
	"slices"
)

// ErrMalformedDifference is returned by FromChanges when the supplied changes violate the
// invariants of a Difference: two removes (or two inserts) sharing an offset, or an association
// that is not symmetric.
var ErrMalformedDifference = errors.New("seqdiff: malformed difference")

// Difference is a validated, immutable collection of insert and remove changes describing a
// state transition from a base sequence to a target sequence.
//
// A Difference satisfies three invariants:
//
//  1. All Remove offsets are pairwise distinct.
//  2. All Insert offsets are pairwise distinct.
//  3. Associations are symmetric: if a Remove at offset r is associated with i, then exactly one
//     Insert at offset i exists and is associated with r, and vice versa.
//
// There is no in-place mutation API: InferMoves returns a new Difference rather than modifying
// its receiver.
type Difference[E any] struct {
	removals   []Change[E] // sorted ascending by Offset
	insertions []Change[E] // sorted ascending by Offset
}

// Removals returns the Remove changes, sorted ascending by base offset.
func (d Difference[E]) Removals() []Change[E] {
	return slices.Clone(d.removals)
}

// Insertions returns the Insert changes, sorted ascending by final offset.
func (d Difference[E]) Insertions() []Change[E] {
	return slices.Clone(d.insertions)
}

// Len returns the total number of changes in d.
func (d Difference[E]) Len() int {
	return len(d.removals) + len(d.insertions)
}

// All iterates every change in d's public order: all removes in descending base-offset order,
// then all inserts in ascending final-offset order.
//
// This order is chosen so that applying the changes one at a time, with point mutations, to a
// mutable copy of a compatible base reproduces the target: consuming removes highest-offset
// first never invalidates the offset of a remove or insert still to come, and by the time
// inserts are applied every remaining offset is already expressed in final-sequence terms.
func (d Difference[E]) All() iter.Seq[Change[E]] {
	return func(yield func(Change[E]) bool) {
		for i := len(d.removals) - 1; i >= 0; i-- {
			if !yield(d.removals[i]) {
				return
			}
		}
		for _, c := range d.insertions {
			if !yield(c) {
				return
			}
		}
	}
}

// FromChanges validates an arbitrary collection of changes against the invariants of a
// Difference and returns the corresponding value. It fails with ErrMalformedDifference if the
// invariants do not hold; no partial Difference is returned in that case.
func FromChanges[E any](changes []Change[E]) (Difference[E], error) {
	var removals, insertions []Change[E]
	for _, c := range changes {
		switch c.Kind {
		case Remove:
			removals = append(removals, c)
		case Insert:
			insertions = append(insertions, c)
		default:
			return Difference[E]{}, ErrMalformedDifference
		}
	}

	sortByOffset := func(cs []Change[E]) bool {
		slices.SortFunc(cs, func(a, b Change[E]) int { return cmp.Compare(a.Offset, b.Offset) })
		for i := 1; i < len(cs); i++ {
			if cs[i].Offset == cs[i-1].Offset {
				return false
			}
		}
		return true
	}
	if !sortByOffset(removals) || !sortByOffset(insertions) {
		return Difference[E]{}, ErrMalformedDifference
	}

	removeAt := make(map[int]Change[E], len(removals))
	for _, c := range removals {
		removeAt[c.Offset] = c
	}
	insertAt := make(map[int]Change[E], len(insertions))
	for _, c := range insertions {
		insertAt[c.Offset] = c
	}
	for _, r := range removals {
		if r.AssociatedWith == NoAssociation {
			continue
		}
		ins, ok := insertAt[r.AssociatedWith]
		if !ok || ins.AssociatedWith != r.Offset {
			return Difference[E]{}, ErrMalformedDifference
		}
	}
	for _, ins := range insertions {
		if ins.AssociatedWith == NoAssociation {
			continue
		}
		rem, ok := removeAt[ins.AssociatedWith]
		if !ok || rem.AssociatedWith != ins.Offset {
			return Difference[E]{}, ErrMalformedDifference
		}
	}

	return Difference[E]{removals: removals, insertions: insertions}, nil
}

// InferMoves returns a new Difference in which every Remove/Insert pair carrying the same,
// otherwise-unique element value has been associated with each other, recording a "move". Offsets
// and elements are unchanged; only AssociatedWith fields differ from d.
//
// InferMoves is a free function rather than a method because it needs E to be comparable while
// Difference itself is defined over any E; Go does not allow a generic method to narrow its
// receiver's type constraint.
func InferMoves[E comparable](d Difference[E]) Difference[E] {
	removeCount := make(map[E]int, len(d.removals))
	for _, c := range d.removals {
		removeCount[c.Element]++
	}
	insertCount := make(map[E]int, len(d.insertions))
	for _, c := range d.insertions {
		insertCount[c.Element]++
	}

	removeOffset := make(map[E]int, len(d.removals))
	for _, c := range d.removals {
		if removeCount[c.Element] == 1 {
			removeOffset[c.Element] = c.Offset
		}
	}
	insertOffset := make(map[E]int, len(d.insertions))
	for _, c := range d.insertions {
		if insertCount[c.Element] == 1 {
			insertOffset[c.Element] = c.Offset
		}
	}

	removals := slices.Clone(d.removals)
	for i, c := range removals {
		removals[i].AssociatedWith = NoAssociation
		if removeCount[c.Element] == 1 && insertCount[c.Element] == 1 {
			removals[i].AssociatedWith = insertOffset[c.Element]
		}
	}
	insertions := slices.Clone(d.insertions)
	for i, c := range insertions {
		insertions[i].AssociatedWith = NoAssociation
		if insertCount[c.Element] == 1 && removeCount[c.Element] == 1 {
			insertions[i].AssociatedWith = removeOffset[c.Element]
		}
	}

	return Difference[E]{removals: removals, insertions: insertions}
}

// Equal reports whether a and b contain the same Changes as multisets, associations included.
// Because the solver is deterministic and minimal, two Differences produced by [Of] or [OfFunc]
// from sequences with equivalent state transitions always compare Equal.
//
// Equal is a free function for the same reason as InferMoves.
func Equal[E comparable](a, b Difference[E]) bool {
	if len(a.removals) != len(b.removals) || len(a.insertions) != len(b.insertions) {
		return false
	}
	return multiset(a.removals, b.removals) && multiset(a.insertions, b.insertions)
}

func multiset[E comparable](a, b []Change[E]) bool {
	counts := make(map[Change[E]]int, len(a))
	for _, c := range a {
		counts[c]++
	}
	for _, c := range b {
		counts[c]--
	}
	for _, n := range counts {
		if n != 0 {
			return false
		}
	}
	return true
}
