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

package cursor

import "testing"

func eqRune(a, b rune) bool { return a == b }

func TestCommonPrefix(t *testing.T) {
	tests := []struct {
		name       string
		a, b       string
		wantA, wantB int
	}{
		{"identical", "abc", "abc", 3, 3},
		{"empty-a", "", "abc", 0, 0},
		{"empty-b", "abc", "", 0, 0},
		{"no-overlap", "abc", "xyz", 0, 0},
		{"partial", "abcd", "abx", 2, 2},
		{"a-shorter", "ab", "abcd", 2, 2},
		{"b-shorter", "abcd", "ab", 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ca := New([]rune(tt.a))
			cb := New([]rune(tt.b))
			ca, cb = CommonPrefix(ca, cb, eqRune)
			if ca.Offset() != tt.wantA || cb.Offset() != tt.wantB {
				t.Errorf("CommonPrefix(%q, %q) = (%d, %d), want (%d, %d)",
					tt.a, tt.b, ca.Offset(), cb.Offset(), tt.wantA, tt.wantB)
			}
		})
	}
}

func TestCursorDoneAndPeek(t *testing.T) {
	c := New([]int{1, 2, 3})
	var got []int
	for !c.Done() {
		got = append(got, c.Peek())
		c = c.Advance()
	}
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	if !c.Done() {
		t.Fatalf("expected cursor to be done after exhausting the sequence")
	}
}
