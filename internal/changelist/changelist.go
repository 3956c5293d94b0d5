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

// Package changelist interprets the waypoint path produced by the solver as a sequence of
// removed, inserted, and matched ranges.
package changelist

import "seqdiff.dev/seqdiff/internal/myers"

// Kind identifies the variant of a Range.
type Kind int

const (
	Matched Kind = iota
	Removed
	Inserted
)

// Range describes one contiguous run between two consecutive waypoints.
//
//   - Removed: base[X0:X1] was deleted.
//   - Inserted: target[Y0:Y1] was inserted.
//   - Matched: base[X0:X1] and target[Y0:Y1] are the same run of elements (X1-X0 == Y1-Y0).
type Range struct {
	Kind   Kind
	X0, X1 int
	Y0, Y1 int
}

// From translates a path into its sequence of ranges.
func From(path myers.Path) []Range {
	if len(path) < 2 {
		return nil
	}
	ranges := make([]Range, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		a, b := path[i], path[i+1]
		switch {
		case b.X > a.X && b.Y == a.Y:
			ranges = append(ranges, Range{Kind: Removed, X0: a.X, X1: b.X})
		case b.Y > a.Y && b.X == a.X:
			ranges = append(ranges, Range{Kind: Inserted, Y0: a.Y, Y1: b.Y})
		default:
			ranges = append(ranges, Range{Kind: Matched, X0: a.X, X1: b.X, Y0: a.Y, Y1: b.Y})
		}
	}
	return ranges
}
