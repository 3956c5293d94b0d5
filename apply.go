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

import "errors"

// ErrIncompatibleBase is returned by Apply when base does not have the shape diff expects: a
// remove offset falls outside base, removes remain unconsumed once base is exhausted, or an
// insert offset lies beyond what base can reach.
var ErrIncompatibleBase = errors.New("seqdiff: base incompatible with difference")

// Apply reconstructs the target sequence by applying diff to base in a single forward pass.
// Compatibility with base is checked positionally — by offset, not by comparing elements — so
// Apply works for any E, including types with no equality of their own.
//
// Apply does not mutate base; it returns a newly allocated slice.
func Apply[E any](base []E, diff Difference[E]) ([]E, error) {
	removals := diff.removals     // ascending by Offset
	insertions := diff.insertions // ascending by Offset

	result := make([]E, 0, max(0, len(base)-len(removals)+len(insertions)))

	var bi, ri, ii, oi int
	for bi < len(base) || ii < len(insertions) {
		for ii < len(insertions) && insertions[ii].Offset == oi {
			result = append(result, insertions[ii].Element)
			oi++
			ii++
		}
		if bi >= len(base) {
			if ii < len(insertions) {
				// base is exhausted but the next insertion's offset is still ahead of oi:
				// there is nothing left to advance oi with, so it can never be reached.
				return nil, ErrIncompatibleBase
			}
			break
		}
		if ri < len(removals) && removals[ri].Offset == bi {
			bi++
			ri++
			continue
		}
		result = append(result, base[bi])
		bi++
		oi++
	}

	if ri < len(removals) {
		return nil, ErrIncompatibleBase
	}
	return result, nil
}
