/*
 * chessgen - bitboard chess move-generation and perft engine
 *
 * MIT License
 *
 * Copyright (c) 2026 chessgen contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package movelist provides a thin slice-of-Move helper used by move
// generation and perft so callers don't repeat append/clear/iterate
// boilerplate.
package movelist

import (
	"strings"

	. "github.com/corvidae/chessgen/internal/types"
)

// MoveList is a slice of Move with a handful of convenience methods.
type MoveList []Move

// New creates a MoveList with 0 elements and the given capacity.
func New(cap int) *MoveList {
	ml := make(MoveList, 0, cap)
	return &ml
}

// Len returns the number of moves currently stored.
func (ml *MoveList) Len() int { return len(*ml) }

// Cap returns the list's capacity.
func (ml *MoveList) Cap() int { return cap(*ml) }

// PushBack appends m to the end of the list.
func (ml *MoveList) PushBack(m Move) { *ml = append(*ml, m) }

// At returns the move at index i.
func (ml *MoveList) At(i int) Move { return (*ml)[i] }

// Set overwrites the move at index i.
func (ml *MoveList) Set(i int, m Move) { (*ml)[i] = m }

// Clear empties the list without releasing its backing array.
func (ml *MoveList) Clear() { *ml = (*ml)[:0] }

// ForEach calls f with the index of every move in the list, in order.
func (ml *MoveList) ForEach(f func(i int)) {
	for i := range *ml {
		f(i)
	}
}

// FilterCopy appends to dest every move of ml for which f(index) is true.
// dest is not cleared first.
func (ml *MoveList) FilterCopy(dest *MoveList, f func(i int) bool) {
	for i := range *ml {
		if f(i) {
			dest.PushBack((*ml)[i])
		}
	}
}

// Equals reports whether ml and other contain the same moves in the same
// order.
func (ml *MoveList) Equals(other *MoveList) bool {
	if len(*ml) != len(*other) {
		return false
	}
	for i := range *ml {
		if (*ml)[i] != (*other)[i] {
			return false
		}
	}
	return true
}

// String renders the list as a bracketed, comma-separated list of UCI move
// strings, e.g. "[e2e4, e7e5]".
func (ml *MoveList) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, m := range *ml {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(m.String())
	}
	sb.WriteString("]")
	return sb.String()
}
