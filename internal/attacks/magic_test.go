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

package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/corvidae/chessgen/internal/types"
)

func rayWalkRook(sq Square, occ Bitboard) Bitboard {
	return slidingAttack(&rookDirs, sq, occ)
}

func rayWalkBishop(sq Square, occ Bitboard) Bitboard {
	return slidingAttack(&bishopDirs, sq, occ)
}

// TestMagicMatchesRayWalk checks the magic-indexed query against the
// reference ray-walk for a sample of occupancies, including empty and full
// boards and every square, per spec's magic table properties.
func TestMagicMatchesRayWalk(t *testing.T) {
	samples := []Bitboard{
		BbEmpty,
		BbFull,
		WhitePawnsInit | BlackPawnsInit,
		Rank4Mask | FileDMask,
		0x0000240000422400,
	}
	for sq := SqA1; sq < Square(SqLength); sq++ {
		for _, occ := range samples {
			assert.Equal(t, rayWalkRook(sq, occ), RookAttacks(sq, occ), "rook mismatch at %s", sq)
			assert.Equal(t, rayWalkBishop(sq, occ), BishopAttacks(sq, occ), "bishop mismatch at %s", sq)
		}
	}
}

func TestQueenAttacksIsUnion(t *testing.T) {
	occ := WhitePawnsInit | BlackPawnsInit
	assert.Equal(t, RookAttacks(SqD4, occ)|BishopAttacks(SqD4, occ), QueenAttacks(SqD4, occ))
}

func TestKnightAttacksCorners(t *testing.T) {
	assert.Equal(t, 2, KnightAttacks(SqA1).PopCount())
	assert.Equal(t, 8, KnightAttacks(SqD4).PopCount())
}

func TestKingAttacksCorners(t *testing.T) {
	assert.Equal(t, 3, KingAttacks(SqA1).PopCount())
	assert.Equal(t, 8, KingAttacks(SqD4).PopCount())
}

func TestPawnAttacks(t *testing.T) {
	assert.Equal(t, Bitboard(0).Push(SqD3).Push(SqF3), PawnAttacks(White, SqE2))
	assert.Equal(t, Bitboard(0).Push(SqD6).Push(SqF6), PawnAttacks(Black, SqE7))
}

func TestMagicShiftWithinBudget(t *testing.T) {
	for sq := SqA1; sq < Square(SqLength); sq++ {
		assert.LessOrEqual(t, rookMagics[sq].Shift, uint(12))
		assert.GreaterOrEqual(t, rookMagics[sq].Shift, uint(5))
		assert.LessOrEqual(t, bishopMagics[sq].Shift, uint(12))
		assert.GreaterOrEqual(t, bishopMagics[sq].Shift, uint(5))
	}
}
