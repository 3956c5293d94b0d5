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
	"seqdiff.dev/seqdiff/internal/cursor"
	"seqdiff.dev/seqdiff/internal/triangular"
)

// Waypoint is a point in the edit graph: x indexes into the base sequence, y indexes into the
// target sequence.
type Waypoint struct {
	X, Y int
}

// Path is an ascending sequence of waypoints. Consecutive waypoints differ horizontally (a
// deletion run), vertically (an insertion run), or diagonally (a run of matches).
type Path []Waypoint

// Solve computes a minimal edit path from x to y using eq to decide whether two elements are
// equivalent. eq must be pure.
func Solve[E any](x, y []E, eq func(a, b E) bool) Path {
	cx, cy := cursor.New(x), cursor.New(y)
	cx, cy = cursor.CommonPrefix(cx, cy, eq)
	x0, y0 := cx.Offset(), cy.Offset()

	n, m := len(x), len(y)

	path := Path{{0, 0}}
	if x0 > 0 || y0 > 0 {
		path = append(path, Waypoint{x0, y0})
	}
	if x0 == n && y0 == m {
		return path
	}
	if x0 == n || y0 == m {
		// One side is exhausted: the remainder is a single insert or delete run.
		return append(path, Waypoint{n, m})
	}

	sub := solveSubproblem(x[x0:], y[y0:], eq)
	for _, w := range sub[1:] { // sub[0] is always (0,0), already represented by path's tail.
		path = append(path, Waypoint{X: w.X + x0, Y: w.Y + y0})
	}
	return coalesce(path)
}

// solveSubproblem finds a minimal edit path from (0,0) to (len(x), len(y)) for inputs known not
// to share a common prefix (the caller has already stripped one).
func solveSubproblem[E any](x, y []E, eq func(a, b E) bool) Path {
	n, m := len(x), len(y)

	var frontier triangular.Matrix[Waypoint]
	frontier.AppendRow(Waypoint{})
	frontier.Set(0, 0, Waypoint{0, 0})

	col := func(d, k int) int { return (k + d) / 2 }

	var finalD, delta int
	for d := 1; ; d++ {
		frontier.AppendRow(Waypoint{})
		done := false
		for c := 0; c <= d; c++ {
			k := -d + 2*c

			insert := decide(d, k, &frontier, col)

			var px, py int
			if insert {
				p := frontier.At(d-1, col(d-1, k+1))
				px = p.X
				py = p.Y
				if py < m {
					py++
				}
			} else {
				p := frontier.At(d-1, col(d-1, k-1))
				px = p.X
				if px < n {
					px++
				}
				py = p.Y
			}

			cx, cy := cursor.New(x[px:]), cursor.New(y[py:])
			cx, cy = cursor.CommonPrefix(cx, cy, eq)
			px, py = px+cx.Offset(), py+cy.Offset()

			frontier.Set(d, c, Waypoint{px, py})

			if px == n && py == m {
				finalD, delta = d, k
				done = true
				break
			}
		}
		if done {
			break
		}
	}

	return reconstruct(&frontier, finalD, delta, col)
}

// decide applies the solver's canonical tie-break rule at (d, k): step down (insert) from
// diagonal k+1 unless k == d, or unless diagonal k-1's furthest x is not smaller than diagonal
// k+1's, in which case step right (delete) from diagonal k-1.
func decide(d, k int, frontier *triangular.Matrix[Waypoint], col func(d, k int) int) bool {
	switch {
	case k == -d:
		return true
	case k == d:
		return false
	default:
		left := frontier.At(d-1, col(d-1, k-1))
		right := frontier.At(d-1, col(d-1, k+1))
		return left.X < right.X
	}
}

// reconstruct walks the frontier backward from (finalD, delta) to (0, 0), emitting the ascending
// waypoint sequence that the forward search implicitly traced.
func reconstruct(frontier *triangular.Matrix[Waypoint], finalD, delta int, col func(d, k int) int) Path {
	d, k := finalD, delta
	cur := frontier.At(d, col(d, k))

	backward := Path{cur}
	for d > 0 {
		insert := decide(d, k, frontier, col)

		var pk int
		if insert {
			pk = k + 1
		} else {
			pk = k - 1
		}
		prev := frontier.At(d-1, col(d-1, pk))

		edge := prev
		if insert {
			if edge.Y < cur.Y {
				edge.Y++
			}
		} else {
			if edge.X < cur.X {
				edge.X++
			}
		}
		if edge != cur {
			backward = append(backward, edge)
		}
		backward = append(backward, prev)

		cur = prev
		d, k = d-1, pk
	}

	path := make(Path, len(backward))
	for i, w := range backward {
		path[len(backward)-1-i] = w
	}
	return path
}

// coalesce merges consecutive waypoints that describe the same kind of run (delete, insert, or
// match) into a single jump, so that the path carries the fewest waypoints that still describe
// the same edit script.
func coalesce(p Path) Path {
	if len(p) <= 2 {
		return p
	}
	out := Path{p[0]}
	for i := 1; i < len(p)-1; i++ {
		if segmentKind(p[i-1], p[i]) != segmentKind(p[i], p[i+1]) {
			out = append(out, p[i])
		}
	}
	out = append(out, p[len(p)-1])
	return out
}

type segKind uint8

const (
	segMatch segKind = iota
	segDelete
	segInsert
)

func segmentKind(a, b Waypoint) segKind {
	switch {
	case b.X > a.X && b.Y == a.Y:
		return segDelete
	case b.Y > a.Y && b.X == a.X:
		return segInsert
	default:
		return segMatch
	}
}
