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

// Package myers implements Myers' O(ND) greedy edit-script algorithm (Myers, E.W. An O(ND)
// difference algorithm and its variations. Algorithmica 1, 251-266 (1986)).
//
// Unlike the divide-and-conquer, linear-space variant described in section 4.2 of that paper,
// this package keeps the full frontier: every row the search visits is retained in a
// [triangular.Matrix], which both bounds the total work and lets path reconstruction walk the
// frontier backward without recomputing it. Space is O(D^2); for the sizes this library targets
// (callers are expected to cap input sizes upstream, see the package-level doc of seqdiff) this is
// preferable to the more complex linear-space recursion, and it is what makes the lower-triangular
// storage shape in [triangular.Matrix] a natural fit.
//
// Solve first consumes the common prefix of x and y (the prefix never participates in the search:
// it can only ever be a run of matches) and reduces the remaining suffixes to a subproblem rooted
// at (0,0). Within that subproblem, Solve fills the frontier diagonal by diagonal, breaking ties
// in favor of deletions over insertions exactly as described in Lemma 2 of the paper, which is
// what makes the result deterministic and canonical: any two equivalent state transitions produce
// the same path.
package myers
