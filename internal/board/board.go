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

// Package board represents a chess position: an 8x8 mailbox kept in sync
// with twelve piece bitboards, side-to-move, castling rights, en-passant
// target, and the history stacks needed to reverse a move exactly. It is
// mutated only through MakeMove/UnmakeMove; there is no sharing between
// boards beyond the process-wide read-only attack tables in internal/attacks.
package board

import (
	"fmt"

	"github.com/op/go-logging"

	"github.com/corvidae/chessgen/internal/applog"
	"github.com/corvidae/chessgen/internal/attacks"
	. "github.com/corvidae/chessgen/internal/types"
)

var log *logging.Logger

func init() {
	log = applog.GetLog()
}

// Board is the primary entity: mailbox + bitboards + history stacks. A
// Board exclusively owns its state; there is no reference counting.
type Board struct {
	mailbox [SqLength]Piece
	pieces  [PieceLength]Bitboard
	occupancy [ColorLength]Bitboard

	sideToMove      Color
	enPassant       Bitboard
	castlingRights  CastlingRights
	halfMoveClock   int
	fullMoveNumber  int

	capturedStack []Piece
	epStack       []Bitboard
	crStack       []CastlingRights
}

// NewEmptyBoard returns a Board with no pieces, White to move, no castling
// rights, and no en-passant target.
func NewEmptyBoard() *Board {
	b := &Board{}
	for sq := range b.mailbox {
		b.mailbox[sq] = PieceNone
	}
	b.sideToMove = White
	b.fullMoveNumber = 1
	b.capturedStack = make([]Piece, 0, 16)
	b.epStack = make([]Bitboard, 0, 16)
	b.crStack = make([]CastlingRights, 0, 16)
	return b
}

// NewBoard returns a Board set up in the standard chess starting position.
func NewBoard() *Board {
	b := NewEmptyBoard()
	place := func(bb Bitboard, p Piece) {
		for t := bb; t != BbEmpty; {
			sq := t.PopLsb()
			b.AddPiece(sq, p)
		}
	}
	place(WhitePawnsInit, WP)
	place(WhiteKnightsInit, WN)
	place(WhiteBishopsInit, WB)
	place(WhiteRooksInit, WR)
	place(WhiteQueensInit, WQ)
	place(WhiteKingInit, WK)
	place(BlackPawnsInit, BP)
	place(BlackKnightsInit, BN)
	place(BlackBishopsInit, BB)
	place(BlackRooksInit, BR)
	place(BlackQueensInit, BQ)
	place(BlackKingInit, BK)
	b.castlingRights = CastlingAll
	return b
}

// AddPiece places p on sq. sq must currently be empty; used during board
// setup (start position, FEN load) and by MakeMove/UnmakeMove to place a
// promoted piece or restore a captured one.
func (b *Board) AddPiece(sq Square, p Piece) {
	b.mailbox[sq] = p
	b.pieces[p] = b.pieces[p].Push(sq)
	b.occupancy[p.ColorOf()] = b.occupancy[p.ColorOf()].Push(sq)
}

// removePiece clears p from sq, which must currently hold p.
func (b *Board) removePiece(sq Square, p Piece) {
	b.mailbox[sq] = PieceNone
	b.pieces[p] = b.pieces[p].Pop(sq)
	b.occupancy[p.ColorOf()] = b.occupancy[p.ColorOf()].Pop(sq)
}

// movePiece relocates p from from to to, which must currently be empty.
func (b *Board) movePiece(from, to Square, p Piece) {
	both := from.Bb() | to.Bb()
	b.mailbox[from] = PieceNone
	b.mailbox[to] = p
	b.pieces[p] ^= both
	b.occupancy[p.ColorOf()] ^= both
}

// Accessors

func (b *Board) PieceAt(sq Square) Piece           { return b.mailbox[sq] }
func (b *Board) Pieces(p Piece) Bitboard            { return b.pieces[p] }
func (b *Board) PiecesOf(c Color, pt PieceType) Bitboard { return b.pieces[MakePiece(c, pt)] }
func (b *Board) Occupancy(c Color) Bitboard         { return b.occupancy[c] }
func (b *Board) OccupiedAll() Bitboard              { return b.occupancy[White] | b.occupancy[Black] }
func (b *Board) SideToMove() Color                  { return b.sideToMove }
func (b *Board) EnPassant() Bitboard                { return b.enPassant }
func (b *Board) CastlingRights() CastlingRights     { return b.castlingRights }
func (b *Board) HalfMoveClock() int                 { return b.halfMoveClock }
func (b *Board) FullMoveNumber() int                { return b.fullMoveNumber }

// SetSideToMove, SetEnPassant, SetCastlingRights, SetClocks are used by the
// fen package while constructing a Board from parsed FEN fields.
func (b *Board) SetSideToMove(c Color)             { b.sideToMove = c }
func (b *Board) SetEnPassant(bb Bitboard)          { b.enPassant = bb }
func (b *Board) SetCastlingRights(cr CastlingRights) { b.castlingRights = cr }
func (b *Board) SetClocks(half, full int)          { b.halfMoveClock = half; b.fullMoveNumber = full }

// KingSquare returns the square of c's king.
func (b *Board) KingSquare(c Color) Square {
	return b.pieces[MakePiece(c, King)].BitScan()
}

// SquareAttacked reports whether sq is attacked by any piece of color
// targetColor.Enemy(). targetColor is conventionally the color of the piece
// standing on sq (e.g. pass the side to move to test for check).
func (b *Board) SquareAttacked(sq Square, targetColor Color) bool {
	attacker := targetColor.Enemy()
	occ := b.OccupiedAll()
	if attacks.RookAttacks(sq, occ)&(b.PiecesOf(attacker, Rook)|b.PiecesOf(attacker, Queen)) != 0 {
		return true
	}
	if attacks.BishopAttacks(sq, occ)&(b.PiecesOf(attacker, Bishop)|b.PiecesOf(attacker, Queen)) != 0 {
		return true
	}
	if attacks.KnightAttacks(sq)&b.PiecesOf(attacker, Knight) != 0 {
		return true
	}
	if attacks.KingAttacks(sq)&b.PiecesOf(attacker, King) != 0 {
		return true
	}
	if attacks.PawnAttacks(targetColor, sq)&b.PiecesOf(attacker, Pawn) != 0 {
		return true
	}
	return false
}

// InCheck reports whether c's king currently stands on an attacked square.
func (b *Board) InCheck(c Color) bool {
	return b.SquareAttacked(b.KingSquare(c), c)
}

// homeRookRight maps a rook's home square to the castling right it guards.
var homeRookRight = map[Square]CastlingRights{
	SqA1: WhiteLong, SqH1: WhiteShort,
	SqA8: BlackLong, SqH8: BlackShort,
}

// MakeMove commits m to the board. m is assumed to be pseudo-legal for the
// side to move; callers filter legality via InCheck after making the move.
func (b *Board) MakeMove(m Move) {
	from := m.From()
	to := m.To()
	piece := b.mailbox[from]
	color := piece.ColorOf()
	flag := m.Flag()

	b.crStack = append(b.crStack, b.castlingRights)
	b.epStack = append(b.epStack, b.enPassant)
	b.enPassant = BbEmpty

	switch flag {
	case FlagQuiet:
		b.movePiece(from, to, piece)
	case FlagDoublePush:
		b.movePiece(from, to, piece)
		var skipped Square
		if color == White {
			skipped = from + 8
		} else {
			skipped = from - 8
		}
		b.enPassant = skipped.Bb()
	case FlagCapture:
		captured := b.mailbox[to]
		b.capturedStack = append(b.capturedStack, captured)
		b.removePiece(to, captured)
		b.movePiece(from, to, piece)
	case FlagEnPassant:
		b.movePiece(from, to, piece)
		var capSq Square
		if color == White {
			capSq = to - 8
		} else {
			capSq = to + 8
		}
		b.removePiece(capSq, b.mailbox[capSq])
	case FlagShortCastle:
		if color == White {
			b.movePiece(SqE1, SqG1, WK)
			b.movePiece(SqH1, SqF1, WR)
		} else {
			b.movePiece(SqE8, SqG8, BK)
			b.movePiece(SqH8, SqF8, BR)
		}
	case FlagLongCastle:
		if color == White {
			b.movePiece(SqE1, SqC1, WK)
			b.movePiece(SqA1, SqD1, WR)
		} else {
			b.movePiece(SqE8, SqC8, BK)
			b.movePiece(SqA8, SqD8, BR)
		}
	default:
		if !flag.IsPromotion() {
			log.Criticalf("unknown move flag %d in MakeMove for move %s", flag, m)
			panic(fmt.Sprintf("internal invariant violation: unknown move flag %d", flag))
		}
		promoted := MakePiece(color, flag.PromotionType())
		if flag.IsCapture() {
			captured := b.mailbox[to]
			b.capturedStack = append(b.capturedStack, captured)
			b.removePiece(to, captured)
		}
		b.removePiece(from, piece)
		b.AddPiece(to, promoted)
	}

	if piece.TypeOf() == King {
		if color == White {
			b.castlingRights.Remove(CastlingWhite)
		} else {
			b.castlingRights.Remove(CastlingBlack)
		}
	}
	if right, ok := homeRookRight[from]; ok && piece.TypeOf() == Rook {
		b.castlingRights.Remove(right)
	}
	// Victim-rook clear: a capture (or promotion-capture) landing on a rook's
	// home square revokes that right too, even though the mover isn't a
	// rook. The reference source only clears by mover identity; this is
	// required for perft position 5 to match.
	if flag.IsCapture() && flag != FlagEnPassant {
		if right, ok := homeRookRight[to]; ok {
			b.castlingRights.Remove(right)
		}
	}

	b.sideToMove = b.sideToMove.Enemy()
}

// UnmakeMove reverses m, which must be the most recently made move. The
// board is restored bit-for-bit to its state before MakeMove(m).
func (b *Board) UnmakeMove(m Move) {
	b.sideToMove = b.sideToMove.Enemy()
	from := m.From()
	to := m.To()
	flag := m.Flag()
	color := b.sideToMove
	piece := b.mailbox[to]

	switch flag {
	case FlagQuiet, FlagDoublePush:
		b.movePiece(to, from, piece)
	case FlagCapture:
		b.movePiece(to, from, piece)
		captured := b.popCaptured()
		b.AddPiece(to, captured)
	case FlagEnPassant:
		b.movePiece(to, from, piece)
		var capSq Square
		if color == White {
			capSq = to - 8
		} else {
			capSq = to + 8
		}
		b.AddPiece(capSq, MakePiece(color.Enemy(), Pawn))
	case FlagShortCastle:
		if color == White {
			b.movePiece(SqG1, SqE1, WK)
			b.movePiece(SqF1, SqH1, WR)
		} else {
			b.movePiece(SqG8, SqE8, BK)
			b.movePiece(SqF8, SqH8, BR)
		}
	case FlagLongCastle:
		if color == White {
			b.movePiece(SqC1, SqE1, WK)
			b.movePiece(SqD1, SqA1, WR)
		} else {
			b.movePiece(SqC8, SqE8, BK)
			b.movePiece(SqD8, SqA8, BR)
		}
	default:
		if !flag.IsPromotion() {
			log.Criticalf("unknown move flag %d in UnmakeMove for move %s", flag, m)
			panic(fmt.Sprintf("internal invariant violation: unknown move flag %d", flag))
		}
		b.removePiece(to, piece)
		b.AddPiece(from, MakePiece(color, Pawn))
		if flag.IsCapture() {
			captured := b.popCaptured()
			b.AddPiece(to, captured)
		}
	}

	b.enPassant = b.popEnPassant()
	b.castlingRights = b.popCastlingRights()
}

func (b *Board) popCaptured() Piece {
	n := len(b.capturedStack) - 1
	p := b.capturedStack[n]
	b.capturedStack = b.capturedStack[:n]
	return p
}

func (b *Board) popEnPassant() Bitboard {
	n := len(b.epStack) - 1
	bb := b.epStack[n]
	b.epStack = b.epStack[:n]
	return bb
}

func (b *Board) popCastlingRights() CastlingRights {
	n := len(b.crStack) - 1
	cr := b.crStack[n]
	b.crStack = b.crStack[:n]
	return cr
}

// Advance updates the half-move clock and full-move number for a move just
// made by mover. Like the reference source, MakeMove/UnmakeMove themselves
// never touch these fields — they exist only for FEN round-trips — so a
// caller that wants them maintained across a sequence of moves (e.g. the
// REPL's "moves" replay) calls Advance explicitly after each MakeMove.
// resetClock should be true when the move just made was a pawn move or a
// capture, the standard fifty-move-rule reset condition.
func (b *Board) Advance(mover Color, resetClock bool) {
	if resetClock {
		b.halfMoveClock = 0
	} else {
		b.halfMoveClock++
	}
	if mover == Black {
		b.fullMoveNumber++
	}
}

// CheckInvariants verifies the mailbox/bitboard/occupancy agreement
// required by spec. Intended for tests and debug assertions, not the hot
// path.
func (b *Board) CheckInvariants() error {
	var seen [SqLength]int
	var union [ColorLength]Bitboard
	for p := Piece(0); p < Piece(PieceLength); p++ {
		union[p.ColorOf()] |= b.pieces[p]
		for t := b.pieces[p]; t != BbEmpty; {
			sq := t.PopLsb()
			seen[sq]++
			if b.mailbox[sq] != p {
				return fmt.Errorf("mailbox/bitboard mismatch at %s: mailbox=%s bitboard says %s", sq, b.mailbox[sq], p)
			}
		}
	}
	for sq, count := range seen {
		if count > 1 {
			return fmt.Errorf("square %s claimed by %d piece bitboards", Square(sq), count)
		}
		if count == 0 && b.mailbox[sq] != PieceNone {
			return fmt.Errorf("mailbox has %s at %s but no piece bitboard does", b.mailbox[sq], Square(sq))
		}
	}
	if b.occupancy[White] != union[White] || b.occupancy[Black] != union[Black] {
		return fmt.Errorf("occupancy does not match the piece bitboards")
	}
	if b.occupancy[White]&b.occupancy[Black] != BbEmpty {
		return fmt.Errorf("white and black occupancy overlap")
	}
	if b.enPassant.PopCount() > 1 {
		return fmt.Errorf("en-passant bitboard has more than one bit set")
	}
	return nil
}
