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

package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/corvidae/chessgen/internal/types"
)

func TestNewBoardInvariants(t *testing.T) {
	b := NewBoard()
	assert.NoError(t, b.CheckInvariants())
	assert.Equal(t, White, b.SideToMove())
	assert.Equal(t, CastlingAll, b.CastlingRights())
	assert.Equal(t, WP, b.PieceAt(SqE2))
	assert.Equal(t, PieceNone, b.PieceAt(SqE4))
	assert.Equal(t, BbEmpty, b.EnPassant())
}

func TestMakeUnmakeQuietMove(t *testing.T) {
	b := NewBoard()
	before := *b
	m := NewMove(SqG1, SqF3, FlagQuiet)
	b.MakeMove(m)
	assert.NoError(t, b.CheckInvariants())
	assert.Equal(t, WN, b.PieceAt(SqF3))
	assert.Equal(t, PieceNone, b.PieceAt(SqG1))
	assert.Equal(t, Black, b.SideToMove())

	b.UnmakeMove(m)
	assert.NoError(t, b.CheckInvariants())
	assert.Equal(t, before, *b)
}

func TestDoublePushSetsEnPassant(t *testing.T) {
	b := NewBoard()
	m := NewMove(SqE2, SqE4, FlagDoublePush)
	b.MakeMove(m)
	assert.Equal(t, SqE3.Bb(), b.EnPassant())
	b.UnmakeMove(m)
	assert.Equal(t, BbEmpty, b.EnPassant())
}

func TestEnPassantCapture(t *testing.T) {
	b := NewBoard()
	before := *b
	b.MakeMove(NewMove(SqE2, SqE4, FlagDoublePush))
	b.MakeMove(NewMove(SqA7, SqA6, FlagQuiet))
	b.MakeMove(NewMove(SqE4, SqE5, FlagQuiet))
	b.MakeMove(NewMove(SqD7, SqD5, FlagDoublePush))

	ep := NewMove(SqE5, SqD6, FlagEnPassant)
	b.MakeMove(ep)
	assert.NoError(t, b.CheckInvariants())
	assert.Equal(t, PieceNone, b.PieceAt(SqD5))
	assert.Equal(t, WP, b.PieceAt(SqD6))

	b.UnmakeMove(ep)
	b.UnmakeMove(NewMove(SqD7, SqD5, FlagDoublePush))
	b.UnmakeMove(NewMove(SqE4, SqE5, FlagQuiet))
	b.UnmakeMove(NewMove(SqA7, SqA6, FlagQuiet))
	b.UnmakeMove(NewMove(SqE2, SqE4, FlagDoublePush))
	assert.Equal(t, before, *b)
}

func TestCastlingRightsClearedByKingAndRookMoves(t *testing.T) {
	b := NewBoard()
	m := NewMove(SqE1, SqE2, FlagQuiet)
	b.MakeMove(m)
	assert.Equal(t, CastlingBlack, b.CastlingRights())
	b.UnmakeMove(m)
	assert.Equal(t, CastlingAll, b.CastlingRights())

	m2 := NewMove(SqH1, SqG1, FlagQuiet)
	b.MakeMove(m2)
	assert.Equal(t, CastlingAll&^WhiteShort, b.CastlingRights())
	b.UnmakeMove(m2)
	assert.Equal(t, CastlingAll, b.CastlingRights())
}

func TestCastlingMoveRelocatesRookAndKing(t *testing.T) {
	b := NewEmptyBoard()
	b.AddPiece(SqE1, WK)
	b.AddPiece(SqH1, WR)
	b.AddPiece(SqE8, BK)
	b.SetCastlingRights(CastlingAll)
	before := *b

	m := NewMove(SqE1, SqG1, FlagShortCastle)
	b.MakeMove(m)
	assert.NoError(t, b.CheckInvariants())
	assert.Equal(t, WK, b.PieceAt(SqG1))
	assert.Equal(t, WR, b.PieceAt(SqF1))
	assert.Equal(t, CastlingBlack, b.CastlingRights())

	b.UnmakeMove(m)
	assert.Equal(t, before, *b)
}

func TestCaptureOfHomeRookClearsVictimRight(t *testing.T) {
	b := NewEmptyBoard()
	b.AddPiece(SqE1, WK)
	b.AddPiece(SqE8, BK)
	b.AddPiece(SqA8, BR)
	b.AddPiece(SqA7, WR)
	b.SetCastlingRights(CastlingAll)
	before := *b

	m := NewMove(SqA7, SqA8, FlagCapture)
	b.MakeMove(m)
	assert.NoError(t, b.CheckInvariants())
	assert.Equal(t, CastlingAll&^BlackLong, b.CastlingRights())

	b.UnmakeMove(m)
	assert.Equal(t, before, *b)
}

func TestPromotionCapture(t *testing.T) {
	b := NewEmptyBoard()
	b.AddPiece(SqE1, WK)
	b.AddPiece(SqE8, BK)
	b.AddPiece(SqB7, WP)
	b.AddPiece(SqA8, BR)
	before := *b

	m := NewPromotionMove(SqB7, SqA8, Queen, true)
	b.MakeMove(m)
	assert.NoError(t, b.CheckInvariants())
	assert.Equal(t, WQ, b.PieceAt(SqA8))
	assert.Equal(t, PieceNone, b.PieceAt(SqB7))

	b.UnmakeMove(m)
	assert.Equal(t, before, *b)
}

func TestSquareAttackedByKnight(t *testing.T) {
	b := NewEmptyBoard()
	b.AddPiece(SqE1, WK)
	b.AddPiece(SqE8, BK)
	b.AddPiece(SqD5, BN)
	assert.True(t, b.SquareAttacked(SqE3, White))
	assert.False(t, b.SquareAttacked(SqE4, White))
}

func TestAdvanceTracksClockAndMoveNumber(t *testing.T) {
	b := NewBoard()
	b.SetClocks(3, 10)

	b.MakeMove(NewMove(SqG1, SqF3, FlagQuiet))
	b.Advance(White, false)
	assert.Equal(t, 4, b.HalfMoveClock())
	assert.Equal(t, 10, b.FullMoveNumber())

	b.MakeMove(NewMove(SqG8, SqF6, FlagQuiet))
	b.Advance(Black, false)
	assert.Equal(t, 5, b.HalfMoveClock())
	assert.Equal(t, 11, b.FullMoveNumber())

	b.MakeMove(NewMove(SqE2, SqE4, FlagDoublePush))
	b.Advance(White, true)
	assert.Equal(t, 0, b.HalfMoveClock())
	assert.Equal(t, 11, b.FullMoveNumber())
}

func TestInCheck(t *testing.T) {
	b := NewEmptyBoard()
	b.AddPiece(SqE1, WK)
	b.AddPiece(SqE8, BK)
	b.AddPiece(SqE5, BR)
	assert.True(t, b.InCheck(White))
	assert.False(t, b.InCheck(Black))
}
