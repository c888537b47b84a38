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

// Package movegen generates pseudo-legal and legal moves for a board
// position: pawn pushes/captures/en-passant/promotions, knight and king
// leaps, sliding rook/bishop/queen moves via internal/attacks, and
// castling gated on the intervening squares being empty and unattacked.
package movegen

import (
	"fmt"

	"github.com/corvidae/chessgen/internal/attacks"
	"github.com/corvidae/chessgen/internal/board"
	"github.com/corvidae/chessgen/internal/movelist"
	. "github.com/corvidae/chessgen/internal/types"
)

// MaxMoves bounds the pseudo-legal move count reachable from any legal
// chess position (the known worst case is 218).
const MaxMoves = 218

// GeneratePseudoLegal returns every pseudo-legal move for the side to move
// in b. Moves are pseudo-legal only: a move that leaves the mover's own
// king in check is filtered out later by GenerateLegal, except for
// castling, which is checked for check-through-the-path here since that
// is specific to the castling rule rather than a general legality filter.
func GeneratePseudoLegal(b *board.Board) *movelist.MoveList {
	ml := movelist.New(MaxMoves)
	us := b.SideToMove()
	genPawnMoves(b, us, ml)
	genPieceMoves(b, us, Knight, func(sq Square, _ Bitboard) Bitboard { return attacks.KnightAttacks(sq) }, ml)
	genPieceMoves(b, us, Bishop, attacks.BishopAttacks, ml)
	genPieceMoves(b, us, Rook, attacks.RookAttacks, ml)
	genPieceMoves(b, us, Queen, attacks.QueenAttacks, ml)
	genPieceMoves(b, us, King, func(sq Square, _ Bitboard) Bitboard { return attacks.KingAttacks(sq) }, ml)
	genCastling(b, us, ml)
	return ml
}

// GenerateLegal returns every legal move for the side to move in b: every
// pseudo-legal move that, after being made, does not leave the mover's own
// king in check.
func GenerateLegal(b *board.Board) *movelist.MoveList {
	pseudo := GeneratePseudoLegal(b)
	legal := movelist.New(pseudo.Len())
	us := b.SideToMove()
	pseudo.ForEach(func(i int) {
		m := pseudo.At(i)
		b.MakeMove(m)
		if !b.InCheck(us) {
			legal.PushBack(m)
		}
		b.UnmakeMove(m)
	})
	return legal
}

// HasLegalMove reports whether the side to move has at least one legal
// move, without building the full list. Used to distinguish checkmate from
// stalemate.
func HasLegalMove(b *board.Board) bool {
	pseudo := GeneratePseudoLegal(b)
	us := b.SideToMove()
	found := false
	for i := 0; i < pseudo.Len() && !found; i++ {
		m := pseudo.At(i)
		b.MakeMove(m)
		if !b.InCheck(us) {
			found = true
		}
		b.UnmakeMove(m)
	}
	return found
}

func genPawnMoves(b *board.Board, us Color, ml *movelist.MoveList) {
	them := us.Enemy()
	pawns := b.PiecesOf(us, Pawn)
	empty := ^b.OccupiedAll()
	enemies := b.Occupancy(them)
	pushDir := us.PawnPushDirection()
	promoRank := us.PromotionRank()
	doubleRank := us.DoublePushRank()

	// single and double pushes
	singles := Shift(pawns, pushDir) & empty
	for t := singles &^ promoRank.Bb(); t != BbEmpty; {
		to := t.PopLsb()
		from := to.To(opposite(pushDir))
		ml.PushBack(NewMove(from, to, FlagQuiet))
	}
	for t := singles & promoRank.Bb(); t != BbEmpty; {
		to := t.PopLsb()
		from := to.To(opposite(pushDir))
		pushPromotions(ml, from, to, false)
	}
	doubleOrigin := pawns & doubleRank.Bb()
	doubleMid := Shift(doubleOrigin, pushDir) & empty
	doubles := Shift(doubleMid, pushDir) & empty
	for t := doubles; t != BbEmpty; {
		to := t.PopLsb()
		from := to.To(opposite(pushDir)).To(opposite(pushDir))
		ml.PushBack(NewMove(from, to, FlagDoublePush))
	}

	// captures, promotion-captures
	for _, capDir := range captureDirs(us) {
		caps := Shift(pawns, capDir) & enemies
		for t := caps &^ promoRank.Bb(); t != BbEmpty; {
			to := t.PopLsb()
			from := to.To(opposite(capDir))
			ml.PushBack(NewMove(from, to, FlagCapture))
		}
		for t := caps & promoRank.Bb(); t != BbEmpty; {
			to := t.PopLsb()
			from := to.To(opposite(capDir))
			pushPromotions(ml, from, to, true)
		}
	}

	// en passant
	if ep := b.EnPassant(); ep != BbEmpty {
		toSq := ep.BitScan()
		for _, capDir := range captureDirs(us) {
			from := toSq.To(opposite(capDir))
			if from.IsValid() && pawns.Has(from) {
				ml.PushBack(NewMove(from, toSq, FlagEnPassant))
			}
		}
	}
}

func pushPromotions(ml *movelist.MoveList, from, to Square, capture bool) {
	ml.PushBack(NewPromotionMove(from, to, Queen, capture))
	ml.PushBack(NewPromotionMove(from, to, Knight, capture))
	ml.PushBack(NewPromotionMove(from, to, Rook, capture))
	ml.PushBack(NewPromotionMove(from, to, Bishop, capture))
}

func captureDirs(us Color) [2]Direction {
	if us == White {
		return [2]Direction{Northeast, Northwest}
	}
	return [2]Direction{Southeast, Southwest}
}

func opposite(d Direction) Direction { return -d }

// genPieceMoves generates moves for every piece of type pt belonging to us,
// using attacksFrom to compute each piece's target squares. It serves both
// leapers (knight, king; attacksFrom ignores occupancy) and sliders
// (bishop, rook, queen; attacksFrom is a magic-table lookup).
func genPieceMoves(b *board.Board, us Color, pt PieceType, attacksFrom func(Square, Bitboard) Bitboard, ml *movelist.MoveList) {
	own := b.Occupancy(us)
	them := b.Occupancy(us.Enemy())
	occ := b.OccupiedAll()
	for pieces := b.PiecesOf(us, pt); pieces != BbEmpty; {
		from := pieces.PopLsb()
		targets := attacksFrom(from, occ) &^ own
		for t := targets & them; t != BbEmpty; {
			to := t.PopLsb()
			ml.PushBack(NewMove(from, to, FlagCapture))
		}
		for t := targets &^ them; t != BbEmpty; {
			to := t.PopLsb()
			ml.PushBack(NewMove(from, to, FlagQuiet))
		}
	}
}

func genCastling(b *board.Board, us Color, ml *movelist.MoveList) {
	cr := b.CastlingRights()
	if cr == CastlingNone {
		return
	}
	occ := b.OccupiedAll()
	if b.InCheck(us) {
		return
	}
	if us == White {
		if cr.Has(WhiteShort) && occ&intermediate(SqF1, SqG1) == BbEmpty &&
			!b.SquareAttacked(SqF1, us) && !b.SquareAttacked(SqG1, us) {
			ml.PushBack(NewMove(SqE1, SqG1, FlagShortCastle))
		}
		if cr.Has(WhiteLong) && occ&intermediate(SqB1, SqD1) == BbEmpty &&
			!b.SquareAttacked(SqD1, us) && !b.SquareAttacked(SqC1, us) {
			ml.PushBack(NewMove(SqE1, SqC1, FlagLongCastle))
		}
	} else {
		if cr.Has(BlackShort) && occ&intermediate(SqF8, SqG8) == BbEmpty &&
			!b.SquareAttacked(SqF8, us) && !b.SquareAttacked(SqG8, us) {
			ml.PushBack(NewMove(SqE8, SqG8, FlagShortCastle))
		}
		if cr.Has(BlackLong) && occ&intermediate(SqB8, SqD8) == BbEmpty &&
			!b.SquareAttacked(SqD8, us) && !b.SquareAttacked(SqC8, us) {
			ml.PushBack(NewMove(SqE8, SqC8, FlagLongCastle))
		}
	}
}

// intermediate returns the inclusive range of squares between from and to,
// both on the same rank.
func intermediate(from, to Square) Bitboard {
	var bb Bitboard
	lo, hi := from, to
	if lo > hi {
		lo, hi = hi, lo
	}
	for sq := lo; sq <= hi; sq++ {
		bb = bb.Push(sq)
	}
	return bb
}

// MoveByString finds the legal move matching a 4-character move string
// (from-square, to-square, each file-letter+rank-digit) against b's legal
// moves. A promotion has no piece-letter suffix in this codebase's move
// strings, so when the from/to pair matches more than one legal promotion
// this resolves to the queen promotion, the conventional default among
// otherwise-ambiguous choices. Returns an error if no legal move matches.
func MoveByString(b *board.Board, s string) (Move, error) {
	if len(s) != 4 {
		return MoveNone, fmt.Errorf("invalid move string: %q", s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return MoveNone, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return MoveNone, err
	}

	legal := GenerateLegal(b)
	var candidate Move = MoveNone
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if m.From() != from || m.To() != to {
			continue
		}
		if !m.Flag().IsPromotion() {
			return m, nil
		}
		if m.Flag().PromotionType() == Queen {
			return m, nil
		}
		if candidate == MoveNone {
			candidate = m
		}
	}
	if candidate != MoveNone {
		return candidate, nil
	}
	return MoveNone, fmt.Errorf("no legal move %s in this position", s)
}
