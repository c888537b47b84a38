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

// Package fen converts between Forsyth-Edwards Notation text and a board
// position. It is the only place board construction from external text
// happens; internal/board itself only knows how to start from the
// standard position or an empty board.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corvidae/chessgen/internal/board"
	. "github.com/corvidae/chessgen/internal/types"
)

// StartFEN is the standard opening position in FEN.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ToBoard parses a FEN string into a new Board. The six fields are:
// piece placement, active color, castling rights, en-passant target,
// half-move clock, full-move number.
func ToBoard(fen string) (*board.Board, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("invalid FEN: too few fields")
	}

	b := board.NewEmptyBoard()
	if err := placePieces(b, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		b.SetSideToMove(White)
	case "b":
		b.SetSideToMove(Black)
	default:
		return nil, fmt.Errorf("invalid FEN: pieces")
	}

	b.SetCastlingRights(ParseCastlingRights(fields[2]))

	if fields[3] == "-" {
		b.SetEnPassant(BbEmpty)
	} else {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, fmt.Errorf("invalid FEN: pieces")
		}
		b.SetEnPassant(sq.Bb())
	}

	half, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("invalid FEN: clock/number")
	}
	full, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("invalid FEN: clock/number")
	}
	b.SetClocks(half, full)

	return b, nil
}

func placePieces(b *board.Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != RankLength {
		return fmt.Errorf("invalid FEN: pieces")
	}
	for i, rankStr := range ranks {
		r := Rank(RankLength - 1 - i)
		f := FileA
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				f += File(c - '0')
				continue
			}
			if !f.IsValid() {
				return fmt.Errorf("invalid FEN: pieces")
			}
			p, ok := PieceFromChar(byte(c))
			if !ok {
				return fmt.Errorf("invalid FEN: pieces")
			}
			b.AddPiece(SquareOf(f, r), p)
			f++
		}
		if f != File(FileLength) {
			return fmt.Errorf("invalid FEN: pieces")
		}
	}
	return nil
}

// FromBoard renders b as a FEN string.
func FromBoard(b *board.Board) string {
	var sb strings.Builder
	for r := Rank(RankLength - 1); ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			p := b.PieceAt(SquareOf(f, r))
			if p == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != Rank1 {
			sb.WriteString("/")
		} else {
			break
		}
	}

	sb.WriteString(" ")
	sb.WriteString(b.SideToMove().String())

	sb.WriteString(" ")
	sb.WriteString(b.CastlingRights().String())

	sb.WriteString(" ")
	if b.EnPassant() == BbEmpty {
		sb.WriteString("-")
	} else {
		sb.WriteString(b.EnPassant().BitScan().String())
	}

	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(b.HalfMoveClock()))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(b.FullMoveNumber()))

	return sb.String()
}
