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

package codec

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seqdiff.dev/seqdiff"
)

func TestRoundTrip(t *testing.T) {
	d := seqdiff.InferMoves(seqdiff.Of([]int{1, 2, 3}, []int{3, 1, 2}))

	data, err := Encode(d)
	if err != nil {
		t.Fatalf("Encode() err = %v", err)
	}

	got, err := Decode[int](data)
	if err != nil {
		t.Fatalf("Decode() err = %v", err)
	}
	if !seqdiff.Equal(d, got) {
		t.Errorf("round trip changed the difference:\noriginal: %+v\ndecoded:  %+v", d, got)
	}
}

func TestEncodeSchema(t *testing.T) {
	d := seqdiff.Of([]byte("XABCD"), []byte("XYCD"))

	data, err := Encode(d)
	if err != nil {
		t.Fatalf("Encode() err = %v", err)
	}

	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal() err = %v", err)
	}
	if len(raw) != 3 {
		t.Fatalf("got %d records, want 3", len(raw))
	}
	for _, rec := range raw {
		if _, ok := rec["associated_with"]; ok {
			t.Errorf("record %+v carries associated_with despite no association", rec)
		}
		if _, ok := rec["kind"].(string); !ok {
			t.Errorf("record %+v missing string kind", rec)
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	data := []byte(`[
		{"kind":"remove","offset":1,"element":0},
		{"kind":"remove","offset":1,"element":1}
	]`)
	if _, err := Decode[int](data); err == nil {
		t.Fatal("Decode() succeeded on changes with a duplicate remove offset")
	}
}

func TestDecodeAssociation(t *testing.T) {
	data := []byte(`[
		{"kind":"remove","offset":2,"element":3,"associated_with":0},
		{"kind":"insert","offset":0,"element":3,"associated_with":2}
	]`)
	d, err := Decode[int](data)
	if err != nil {
		t.Fatalf("Decode() err = %v", err)
	}
	want := []seqdiff.Change[int]{
		{Kind: seqdiff.Remove, Offset: 2, Element: 3, AssociatedWith: 0},
	}
	if diff := cmp.Diff(want, d.Removals()); diff != "" {
		t.Errorf("Removals() mismatch (-want +got):\n%s", diff)
	}
}
