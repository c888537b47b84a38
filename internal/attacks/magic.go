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

// Package attacks builds and serves the static attack tables: direct
// king/knight/pawn attack sets and magic-indexed sliding attacks for
// bishops, rooks and queens. Tables are built once in init(); after that
// only RegenerateMagics writes to them, rebuilding the rook and bishop
// tables in place.
package attacks

import (
	"fmt"

	"github.com/op/go-logging"

	"github.com/corvidae/chessgen/internal/applog"
	. "github.com/corvidae/chessgen/internal/types"
)

var log *logging.Logger

// Magic holds the fancy-magic attack table for one square and one slider
// kind (rook or bishop).
type Magic struct {
	Mask    Bitboard
	Magic   Bitboard
	Shift   uint // number of set bits in Mask; index uses a (64-Shift)-bit right shift
	Attacks []Bitboard
}

// index computes the perfect-hash slot for an occupancy.
func (mg *Magic) index(occ Bitboard) uint {
	masked := occ & mg.Mask
	return uint((masked * mg.Magic) >> (64 - mg.Shift))
}

var (
	rookMagics   [64]Magic
	bishopMagics [64]Magic

	kingAttacksTbl   [64]Bitboard
	knightAttacksTbl [64]Bitboard
	pawnAttacksTbl   [ColorLength][64]Bitboard
)

var rookDirs = [4]Direction{North, South, East, West}
var bishopDirs = [4]Direction{Northeast, Northwest, Southeast, Southwest}

func init() {
	log = applog.GetLog()
	initNonSliders()
	initMagicTable(&rookMagics, &rookDirs)
	initMagicTable(&bishopMagics, &bishopDirs)
	log.Debug("attack tables initialized")
}

func initNonSliders() {
	kingDirs := Directions

	for sq := SqA1; sq < Square(SqLength); sq++ {
		var king, knight Bitboard
		for _, d := range kingDirs {
			if to := sq.To(d); to.IsValid() {
				king = king.Push(to)
			}
		}
		kingAttacksTbl[sq] = king

		knight = knightAttacksFrom(sq)
		knightAttacksTbl[sq] = knight

		if to := sq.To(Northeast); to.IsValid() {
			pawnAttacksTbl[White][sq] = pawnAttacksTbl[White][sq].Push(to)
		}
		if to := sq.To(Northwest); to.IsValid() {
			pawnAttacksTbl[White][sq] = pawnAttacksTbl[White][sq].Push(to)
		}
		if to := sq.To(Southeast); to.IsValid() {
			pawnAttacksTbl[Black][sq] = pawnAttacksTbl[Black][sq].Push(to)
		}
		if to := sq.To(Southwest); to.IsValid() {
			pawnAttacksTbl[Black][sq] = pawnAttacksTbl[Black][sq].Push(to)
		}
	}
}

// knightAttacksFrom computes the knight jump targets from sq by composing
// one orthogonal step with one diagonal step and rejecting any that left
// the board or wrapped around a file.
func knightAttacksFrom(sq Square) Bitboard {
	var attacks Bitboard
	longShort := [8][2]Direction{
		{North, Northeast}, {North, Northwest},
		{South, Southeast}, {South, Southwest},
		{East, Northeast}, {East, Southeast},
		{West, Northwest}, {West, Southwest},
	}
	for _, ls := range longShort {
		mid := sq.To(ls[0])
		if !mid.IsValid() {
			continue
		}
		to := mid.To(ls[1])
		if !to.IsValid() {
			continue
		}
		attacks = attacks.Push(to)
	}
	return attacks
}

// slidingAttack ray-walks from sq in each of the given directions over the
// occupied bitboard occ, stopping at (and including) the first blocker.
func slidingAttack(dirs *[4]Direction, sq Square, occ Bitboard) Bitboard {
	var attack Bitboard
	for _, d := range dirs {
		s := sq
		for {
			next := s.To(d)
			if !next.IsValid() {
				break
			}
			s = next
			attack = attack.Push(s)
			if occ.Has(s) {
				break
			}
		}
	}
	return attack
}

// prnG is a xorshift64star generator, seeded per-rank as in the reference
// magic search, used only at init to find magic multipliers.
type prnG struct{ s uint64 }

func (r *prnG) next() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparse draws a candidate with a low bit density, which converges faster
// during magic search.
func (r *prnG) sparse() uint64 {
	return r.next() & r.next() & r.next()
}

var magicSeeds = [RankLength]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

// initMagicTable fills in mask/shift/magic/attacks for every square for one
// slider kind, following the construction protocol: enumerate every subset
// of the relevant-occupancy mask via the carry-rippler trick, ray-walk the
// true attack set for each, then search for a multiplier whose high bits
// form a perfect hash from masked-occupancy to attack set.
func initMagicTable(table *[64]Magic, dirs *[4]Direction) {
	var occupancy, reference [4096]Bitboard
	var epoch [4096]int

	for sq := SqA1; sq < Square(SqLength); sq++ {
		edges := ((Rank1Mask | Rank8Mask) &^ sq.RankOf().Bb()) | ((FileAMask | FileHMask) &^ sq.FileOf().Bb())

		mg := &table[sq]
		mg.Mask = slidingAttack(dirs, sq, BbEmpty) &^ edges
		mg.Shift = uint(mg.Mask.PopCount())
		mg.Attacks = make([]Bitboard, 1<<mg.Shift)

		size := 0
		var b Bitboard
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(dirs, sq, b)
			size++
			b = (b - mg.Mask) & mg.Mask
			if b == BbEmpty {
				break
			}
		}

		rng := prnG{s: magicSeeds[sq.RankOf()]}
		cnt := 0
		for i := 0; i < size; {
			for mg.Magic = 0; ; {
				mg.Magic = Bitboard(rng.sparse())
				if ((mg.Magic * mg.Mask) >> 56).PopCount() < 6 {
					break
				}
			}
			cnt++
			for i = 0; i < size; i++ {
				idx := mg.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					mg.Attacks[idx] = reference[i]
				} else if mg.Attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

// RookAttacks returns the rook attack set from sq given full-board
// occupancy occ, including the first blocker along each ray.
func RookAttacks(sq Square, occ Bitboard) Bitboard {
	mg := &rookMagics[sq]
	return mg.Attacks[mg.index(occ)]
}

// BishopAttacks returns the bishop attack set from sq given full-board
// occupancy occ.
func BishopAttacks(sq Square, occ Bitboard) Bitboard {
	mg := &bishopMagics[sq]
	return mg.Attacks[mg.index(occ)]
}

// QueenAttacks returns the union of rook and bishop attacks from sq.
func QueenAttacks(sq Square, occ Bitboard) Bitboard {
	return RookAttacks(sq, occ) | BishopAttacks(sq, occ)
}

// KingAttacks returns the fixed king attack set from sq.
func KingAttacks(sq Square) Bitboard {
	return kingAttacksTbl[sq]
}

// KnightAttacks returns the fixed knight attack set from sq.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacksTbl[sq]
}

// PawnAttacks returns the diagonal-forward attack set of a pawn of color c
// standing on sq.
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacksTbl[c][sq]
}

// RegenerateMagics reruns the magic search for both slider kinds and
// returns, for diagnostics (the REPL's "magic" command), the chosen
// multiplier for every square. It verifies every table via the same
// perfect-hash check performed at init and panics with a diagnostic if a
// collision slips through, since that is an internal invariant violation.
func RegenerateMagics() (rook [64]Bitboard, bishop [64]Bitboard) {
	log.Info("regenerating magic tables")
	initMagicTable(&rookMagics, &rookDirs)
	initMagicTable(&bishopMagics, &bishopDirs)
	for sq := SqA1; sq < Square(SqLength); sq++ {
		if !verifyMagic(&rookMagics[sq], &rookDirs, sq) {
			log.Criticalf("rook magic hash collision at %s", sq)
			panic(fmt.Sprintf("internal invariant violation: rook magic hash collision at %s", sq))
		}
		if !verifyMagic(&bishopMagics[sq], &bishopDirs, sq) {
			log.Criticalf("bishop magic hash collision at %s", sq)
			panic(fmt.Sprintf("internal invariant violation: bishop magic hash collision at %s", sq))
		}
		rook[sq] = rookMagics[sq].Magic
		bishop[sq] = bishopMagics[sq].Magic
	}
	return
}

func verifyMagic(mg *Magic, dirs *[4]Direction, sq Square) bool {
	seen := make(map[uint]Bitboard, 1<<mg.Shift)
	var b Bitboard
	for {
		want := slidingAttack(dirs, sq, b)
		idx := mg.index(b)
		if got, ok := seen[idx]; ok {
			if got != want {
				return false
			}
		} else {
			seen[idx] = want
		}
		b = (b - mg.Mask) & mg.Mask
		if b == BbEmpty {
			break
		}
	}
	return true
}
