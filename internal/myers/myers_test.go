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

package myers

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func eqByte(a, b byte) bool { return a == b }

func solve(x, y string) Path {
	return Solve([]byte(x), []byte(y), eqByte)
}

// cost reports the number of non-diagonal (insert/delete) elements described by a path.
func cost(p Path) int {
	n := 0
	for i := 0; i+1 < len(p); i++ {
		a, b := p[i], p[i+1]
		switch segmentKind(a, b) {
		case segDelete:
			n += b.X - a.X
		case segInsert:
			n += b.Y - a.Y
		}
	}
	return n
}

func TestSolveIdentical(t *testing.T) {
	p := solve("abc", "abc")
	want := Path{{0, 0}, {3, 3}}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("Solve mismatch (-want +got):\n%s", diff)
	}
}

func TestSolveEmptyBoth(t *testing.T) {
	p := solve("", "")
	want := Path{{0, 0}}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("Solve mismatch (-want +got):\n%s", diff)
	}
}

func TestSolveAllInsert(t *testing.T) {
	p := solve("", "abc")
	want := Path{{0, 0}, {0, 3}}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("Solve mismatch (-want +got):\n%s", diff)
	}
}

func TestSolveAllDelete(t *testing.T) {
	p := solve("abc", "")
	want := Path{{0, 0}, {3, 0}}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("Solve mismatch (-want +got):\n%s", diff)
	}
}

func TestSolveScenario1(t *testing.T) {
	// a = "XABCD", b = "XYCD": removes A@1, B@2, insert Y@1, then match C, D.
	p := solve("XABCD", "XYCD")
	want := Path{{0, 0}, {1, 1}, {3, 1}, {3, 2}, {5, 4}}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("Solve mismatch (-want +got):\n%s", diff)
	}
}

func TestSolveMinimality(t *testing.T) {
	tests := []struct {
		x, y string
		want int
	}{
		{"XABCD", "XYCD", 3},
		{"abc", "abc", 0},
		{"", "123", 3},
		{"123", "", 3},
		{"kitten", "sitting", 5},
		{"ABCABBA", "CBABAC", 5},
	}
	for _, tt := range tests {
		p := solve(tt.x, tt.y)
		if got := cost(p); got != tt.want {
			t.Errorf("cost(Solve(%q, %q)) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestSolveDeterministic(t *testing.T) {
	x, y := "ABCABBA", "CBABAC"
	first := solve(x, y)
	for i := 0; i < 5; i++ {
		if diff := cmp.Diff(first, solve(x, y)); diff != "" {
			t.Fatalf("Solve is not deterministic (-first +nth):\n%s", diff)
		}
	}
}

func TestSolveMove(t *testing.T) {
	// a = [1,2,3], b = [3,1,2]: a minimal script is remove 3@2, insert 3@0.
	p := Solve([]int{1, 2, 3}, []int{3, 1, 2}, func(a, b int) bool { return a == b })
	if got := cost(p); got != 2 {
		t.Fatalf("cost = %d, want 2", got)
	}
}
