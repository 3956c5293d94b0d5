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
	"seqdiff.dev/seqdiff/internal/changelist"
	"seqdiff.dev/seqdiff/internal/myers"
)

// Of computes the minimal Difference that, applied to base, produces target.
func Of[E comparable](base, target []E) Difference[E] {
	return OfFunc(base, target, func(a, b E) bool { return a == b })
}

// OfFunc computes the minimal Difference that, applied to base, produces target, using eq to
// decide whether two elements are equivalent. eq must be pure, reflexive, symmetric, and
// transitive; it is called only to compare a base element against a target element.
func OfFunc[E any](base, target []E, eq func(a, b E) bool) Difference[E] {
	if EqualSequences[E](sliceSequence[E](base), sliceSequence[E](target), eq) {
		return Difference[E]{}
	}
	path := myers.Solve(base, target, eq)
	ranges := changelist.From(path)
	return build(base, target, ranges)
}

// build translates a classified range list into a Difference, assigning base offsets to removes
// and target offsets to inserts.
func build[E any](base, target []E, ranges []changelist.Range) Difference[E] {
	var removals, insertions []Change[E]
	for _, r := range ranges {
		switch r.Kind {
		case changelist.Removed:
			for x := r.X0; x < r.X1; x++ {
				removals = append(removals, Change[E]{
					Kind:           Remove,
					Offset:         x,
					Element:        base[x],
					AssociatedWith: NoAssociation,
				})
			}
		case changelist.Inserted:
			for y := r.Y0; y < r.Y1; y++ {
				insertions = append(insertions, Change[E]{
					Kind:           Insert,
					Offset:         y,
					Element:        target[y],
					AssociatedWith: NoAssociation,
				})
			}
		}
	}
	return Difference[E]{removals: removals, insertions: insertions}
}
