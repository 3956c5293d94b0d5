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

// Package codec serializes and deserializes [seqdiff.Difference] values as an ordered list of
// tagged change records, independent of the sequence types that produced them.
//
// codec depends only on seqdiff's public API; it has no knowledge of how a Difference was built
// and reconstructs one exclusively through [seqdiff.FromChanges], so a round trip through Encode
// and Decode is always validated the same way a freshly built Difference would be.
package codec

import (
	"encoding/json"
	"fmt"

	"seqdiff.dev/seqdiff"
)

// record is the wire shape of a single change: {kind, offset, element, associated_with}, with
// associated_with omitted rather than present-but-sentinel when there is no association.
type record[E any] struct {
	Kind           string `json:"kind"`
	Offset         int    `json:"offset"`
	Element        E      `json:"element"`
	AssociatedWith *int   `json:"associated_with,omitempty"`
}

// Encode renders d as its ordered JSON change-record list, in d's public iteration order
// (removes descending by offset, then inserts ascending by offset).
func Encode[E any](d seqdiff.Difference[E]) ([]byte, error) {
	records := make([]record[E], 0, d.Len())
	for c := range d.All() {
		r := record[E]{Offset: c.Offset, Element: c.Element}
		switch c.Kind {
		case seqdiff.Remove:
			r.Kind = "remove"
		case seqdiff.Insert:
			r.Kind = "insert"
		default:
			return nil, fmt.Errorf("codec: unknown change kind %v", c.Kind)
		}
		if c.AssociatedWith != seqdiff.NoAssociation {
			w := c.AssociatedWith
			r.AssociatedWith = &w
		}
		records = append(records, r)
	}
	return json.Marshal(records)
}

// Decode parses a JSON change-record list and validates it into a Difference via
// [seqdiff.FromChanges]. It fails with [seqdiff.ErrMalformedDifference] under the same conditions
// FromChanges does, with a JSON error if data is not well-formed JSON, and with a codec error if a
// record's kind is neither "insert" nor "remove".
func Decode[E any](data []byte) (seqdiff.Difference[E], error) {
	var records []record[E]
	if err := json.Unmarshal(data, &records); err != nil {
		return seqdiff.Difference[E]{}, err
	}

	changes := make([]seqdiff.Change[E], 0, len(records))
	for _, r := range records {
		var kind seqdiff.Kind
		switch r.Kind {
		case "remove":
			kind = seqdiff.Remove
		case "insert":
			kind = seqdiff.Insert
		default:
			return seqdiff.Difference[E]{}, fmt.Errorf("codec: unknown change kind %q", r.Kind)
		}
		associatedWith := seqdiff.NoAssociation
		if r.AssociatedWith != nil {
			associatedWith = *r.AssociatedWith
		}
		changes = append(changes, seqdiff.Change[E]{
			Kind:           kind,
			Offset:         r.Offset,
			Element:        r.Element,
			AssociatedWith: associatedWith,
		})
	}
	return seqdiff.FromChanges(changes)
}
