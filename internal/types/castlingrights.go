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

import "strings"

// CastlingRights is a 4-bit set of {WhiteShort, WhiteLong, BlackShort,
// BlackLong} castling eligibilities.
type CastlingRights uint8

const (
	CastlingNone   CastlingRights = 0
	WhiteShort     CastlingRights = 1 << 0
	WhiteLong      CastlingRights = 1 << 1
	BlackShort     CastlingRights = 1 << 2
	BlackLong      CastlingRights = 1 << 3
	CastlingWhite                 = WhiteShort | WhiteLong
	CastlingBlack                 = BlackShort | BlackLong
	CastlingAll                   = CastlingWhite | CastlingBlack
)

// Has reports whether every bit set in rhs is also set in cr.
func (cr CastlingRights) Has(rhs CastlingRights) bool {
	return cr&rhs == rhs
}

// Remove clears the given rights and returns the new value.
func (cr *CastlingRights) Remove(rhs CastlingRights) CastlingRights {
	*cr &^= rhs
	return *cr
}

// Add sets the given rights and returns the new value.
func (cr *CastlingRights) Add(rhs CastlingRights) CastlingRights {
	*cr |= rhs
	return *cr
}

// String renders the rights in FEN order, e.g. "KQkq", or "-" if none.
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var sb strings.Builder
	if cr.Has(WhiteShort) {
		sb.WriteString("K")
	}
	if cr.Has(WhiteLong) {
		sb.WriteString("Q")
	}
	if cr.Has(BlackShort) {
		sb.WriteString("k")
	}
	if cr.Has(BlackLong) {
		sb.WriteString("q")
	}
	return sb.String()
}

// ParseCastlingRights parses a FEN castling field ("KQkq", any subset, or
// "-") into a CastlingRights value.
func ParseCastlingRights(s string) CastlingRights {
	cr := CastlingNone
	if s == "-" {
		return cr
	}
	for _, c := range s {
		switch c {
		case 'K':
			cr.Add(WhiteShort)
		case 'Q':
			cr.Add(WhiteLong)
		case 'k':
			cr.Add(BlackShort)
		case 'q':
			cr.Add(BlackLong)
		}
	}
	return cr
}
