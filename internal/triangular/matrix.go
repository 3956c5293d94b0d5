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

// Package triangular provides an append-only, row-growable 2D store shaped like the frontier of
// Myers' algorithm: row r holds exactly r+1 elements, addressable at columns 0..r.
package triangular

// Matrix is a lower-triangular matrix: row r has r+1 valid columns, 0 <= c <= r. Rows are only
// ever appended, never removed, so the whole history of a search is retained for backward
// traversal.
type Matrix[T any] struct {
	data []T
	rows int
}

// flatIndex returns the index into data for (r, c), using the r-th triangular number as the
// offset of row r.
func flatIndex(r, c int) int {
	return r*(r+1)/2 + c
}

// AppendRow appends a new row of r+1 elements, all initialized to fill, and returns its row
// index.
func (m *Matrix[T]) AppendRow(fill T) int {
	r := m.rows
	for c := 0; c <= r; c++ {
		m.data = append(m.data, fill)
	}
	m.rows++
	return r
}

// Rows reports the number of rows appended so far.
func (m *Matrix[T]) Rows() int {
	return m.rows
}

// At returns the element at (r, c). c must satisfy 0 <= c <= r.
func (m *Matrix[T]) At(r, c int) T {
	return m.data[flatIndex(r, c)]
}

// Set stores v at (r, c). c must satisfy 0 <= c <= r.
func (m *Matrix[T]) Set(r, c int, v T) {
	m.data[flatIndex(r, c)] = v
}

// Row returns a view of row r's r+1 elements in column order. The returned slice aliases the
// matrix's backing storage.
func (m *Matrix[T]) Row(r int) []T {
	start := flatIndex(r, 0)
	return m.data[start : start+r+1]
}

// Flat returns the whole matrix as a single row-major slice.
func (m *Matrix[T]) Flat() []T {
	return m.data
}

// Donate hands the matrix's backing buffer to the caller and resets the matrix to empty. Callers
// that need to reinterpret the frontier as scratch space for path reconstruction can do so
// without an extra allocation.
func (m *Matrix[T]) Donate() []T {
	data := m.data
	m.data = nil
	m.rows = 0
	return data
}
