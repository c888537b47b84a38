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

package types

import "fmt"

// Square identifies one of the 64 squares of a chess board, encoded as
// rank*8+file with rank 0 being White's first rank and file 0 being the
// a-file.
type Square int8

//noinspection GoUnusedConst
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
	SqLength int = 64
)

// SquareOf composes a square from its file and rank.
func SquareOf(f File, r Rank) Square {
	return Square(int(r)*8 + int(f))
}

// IsValid reports whether sq is in [SqA1, SqH8].
func (sq Square) IsValid() bool {
	return sq >= SqA1 && sq < SqNone
}

// FileOf returns the file of the square: file(s) = s mod 8.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of the square: rank(s) = s div 8.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// To steps sq one square in direction d, returning SqNone if that would
// leave the board. A step in any direction whose file changes by more than
// one column wrapped around the a/h file edge and is rejected.
func (sq Square) To(d Direction) Square {
	if !sq.IsValid() {
		return SqNone
	}
	target := int(sq) + int(d)
	if target < 0 || target >= SqLength {
		return SqNone
	}
	to := Square(target)
	// a step that changes file by more than one column wrapped around an edge
	fileDelta := int(to.FileOf()) - int(sq.FileOf())
	if fileDelta > 1 || fileDelta < -1 {
		return SqNone
	}
	return to
}

// ParseSquare parses an algebraic square such as "e4" into a Square.
// Returns SqNone and an error if s is not exactly file-letter+rank-digit.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return SqNone, fmt.Errorf("invalid square: %q", s)
	}
	fc := s[0]
	rc := s[1]
	if fc < 'a' || fc > 'h' || rc < '1' || rc > '8' {
		return SqNone, fmt.Errorf("invalid square: %q", s)
	}
	return SquareOf(File(fc-'a'), Rank(rc-'1')), nil
}

// String returns the algebraic notation of the square, e.g. "e4".
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().Char() + sq.RankOf().Char()
}
