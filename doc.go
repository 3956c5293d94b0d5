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

// Package seqdiff computes and applies differences between two ordered sequences of comparable
// elements.
//
// Given a base sequence and a target sequence, [Of] (or [OfFunc], for types without a usable ==)
// produces a [Difference]: a minimal, validated collection of insert and remove changes that,
// given to [Apply] along with the original base, reconstructs the target. A Difference is also a
// portable boundary value: it can be inspected, persisted (see the companion package
// seqdiff/codec), and applied to any sequence whose current state matches the base it was
// computed against, independent of the sequences that produced it.
//
// The diff algorithm itself is not a pluggable concern: [Of] and [OfFunc] always run Myers'
// O(ND) algorithm with a single, deterministic tie-break rule, so that two differences over
// equivalent state transitions always compare [Equal]. Callers who need different behavior
// should post-process the resulting Difference — [InferMoves] is one such post-processing pass —
// rather than expecting a pluggable solver.
//
// The package is synchronous and purely in-memory: solving and applying perform no I/O, acquire
// no locks, and never suspend. A Difference, once produced, is immutable and safe to share across
// goroutines; concurrent calls to Apply against the same Difference and independent bases never
// race. There is no cancellation primitive; callers that need to bound work should cap input
// sizes before calling Of or OfFunc.
package seqdiff
