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

// PieceType is a color-agnostic kind of chess piece, ordered pawn..king to
// match the Piece encoding below.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	PtLength int = 6
	PtNone   PieceType = 6
)

// IsValid reports whether pt is one of Pawn..King.
func (pt PieceType) IsValid() bool {
	return pt < PieceType(PtLength)
}

var pieceTypeChar = "PNBRQK"

// Char returns the uppercase FEN letter for the piece type.
func (pt PieceType) Char() string {
	return string(pieceTypeChar[pt])
}

func (pt PieceType) String() string {
	names := [PtLength]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if !pt.IsValid() {
		panic(fmt.Sprintf("invalid piece type %d", pt))
	}
	return names[pt]
}

// Piece is a colored chess piece: 0..5 are White Pawn..King, 6..11 are Black
// Pawn..King (same order), 12 is PieceNone.
type Piece uint8

const (
	WP Piece = iota
	WN
	WB
	WR
	WQ
	WK
	BP
	BN
	BB
	BR
	BQ
	BK
	PieceLength int   = 12
	PieceNone   Piece = 12
)

// MakePiece composes a Piece from a color and a piece type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(c)*PtLength + int(pt))
}

// IsValid reports whether p is one of WP..BK.
func (p Piece) IsValid() bool {
	return p < Piece(PieceLength)
}

// ColorOf returns the color of the piece. Must not be called on PieceNone.
func (p Piece) ColorOf() Color {
	return Color(p / Piece(PtLength))
}

// TypeOf returns the color-agnostic piece type. Must not be called on PieceNone.
func (p Piece) TypeOf() PieceType {
	return PieceType(p % Piece(PtLength))
}

var pieceToChar = [PieceLength]string{"P", "N", "B", "R", "Q", "K", "p", "n", "b", "r", "q", "k"}

// Char returns the single FEN letter for the piece (uppercase for White,
// lowercase for Black), or "-" for PieceNone.
func (p Piece) Char() string {
	if p == PieceNone {
		return "-"
	}
	return pieceToChar[p]
}

func (p Piece) String() string {
	if p == PieceNone {
		return "PieceNone"
	}
	return p.ColorOf().String() + p.TypeOf().String()
}

// PieceFromChar maps a single FEN piece letter to a Piece. Returns
// (PieceNone, false) for any letter that is not one of PNBRQKpnbrqk.
func PieceFromChar(c byte) (Piece, bool) {
	for i, pc := range pieceToChar {
		if pc[0] == c {
			return Piece(i), true
		}
	}
	return PieceNone, false
}
