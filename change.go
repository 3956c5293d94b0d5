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

// Kind describes which variant a Change is.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind
type Kind int

const (
	Remove Kind = iota // A deletion from the base sequence.
	Insert             // An insertion into the target sequence.
)

// NoAssociation is the value of Change.AssociatedWith when a change has not been associated with
// a complementary change by InferMoves.
const NoAssociation = -1

// Change is a single edit: a removal from the base state or an insertion into the final state.
//
// For a Remove, Offset is the position of Element in the base sequence. For an Insert, Offset is
// the position of Element in the final (post-patch) sequence.
//
// AssociatedWith is the offset of a complementary change — a Remove's association points at an
// Insert offset and vice versa — or NoAssociation if this change has not been associated with
// one. It is metadata produced by InferMoves and never affects what Apply materializes.
type Change[E any] struct {
	Kind           Kind
	Offset         int
	Element        E
	AssociatedWith int
}
