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

package perft

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidae/chessgen/internal/fen"
)

// Reference node counts from https://www.chessprogramming.org/Perft_Results.

func TestStartPositionPerft(t *testing.T) {
	results := []uint64{1, 20, 400, 8_902, 197_281}
	for depth, want := range results {
		b, err := fen.ToBoard(fen.StartFEN)
		assert.NoError(t, err)
		assert.Equal(t, want, Count(b, depth), "depth %d", depth)
	}
}

func TestStartPositionPerftStatsDepth4(t *testing.T) {
	b, err := fen.ToBoard(fen.StartFEN)
	assert.NoError(t, err)
	stats := RunWithStats(b, 4)
	assert.Equal(t, uint64(197_281), stats.Nodes)
	assert.Equal(t, uint64(1_576), stats.Captures)
	assert.Equal(t, uint64(0), stats.EnPassant)
	assert.Equal(t, uint64(469), stats.Checks)
	assert.Equal(t, uint64(8), stats.Checkmates)
}

func TestKiwipetePerft(t *testing.T) {
	results := []uint64{1, 48, 2_039, 97_862}
	for depth, want := range results {
		b, err := fen.ToBoard("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
		assert.NoError(t, err)
		assert.Equal(t, want, Count(b, depth), "depth %d", depth)
	}
}

func TestKiwipetePerftStats(t *testing.T) {
	b, err := fen.ToBoard("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	stats := RunWithStats(b, 3)
	assert.Equal(t, uint64(97_862), stats.Nodes)
	assert.Equal(t, uint64(17_102), stats.Captures)
	assert.Equal(t, uint64(45), stats.EnPassant)
	assert.Equal(t, uint64(993), stats.Checks)
	assert.Equal(t, uint64(1), stats.Checkmates)
	assert.Equal(t, uint64(3_162), stats.Castles)
}

func TestEndgamePosition3Perft(t *testing.T) {
	results := []uint64{1, 14, 191, 2_812, 43_238}
	for depth, want := range results {
		b, err := fen.ToBoard("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
		assert.NoError(t, err)
		assert.Equal(t, want, Count(b, depth), "depth %d", depth)
	}
}

func TestMirrorPosition4Perft(t *testing.T) {
	results := []uint64{1, 6, 264, 9_467}
	for depth, want := range results {
		b, err := fen.ToBoard("r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1")
		assert.NoError(t, err)
		assert.Equal(t, want, Count(b, depth), "depth %d", depth)
	}
}

// TestPosition5Perft exercises the victim-rook castling-rights clear: depth
// 3 (62379) only reproduces the published count with that clear in place.
func TestPosition5Perft(t *testing.T) {
	results := []uint64{1, 44, 1_486, 62_379}
	for depth, want := range results {
		b, err := fen.ToBoard("rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8")
		assert.NoError(t, err)
		assert.Equal(t, want, Count(b, depth), "depth %d", depth)
	}
}

func TestPosition6Perft(t *testing.T) {
	results := []uint64{1, 46, 2_079, 89_890}
	for depth, want := range results {
		b, err := fen.ToBoard("r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10")
		assert.NoError(t, err)
		assert.Equal(t, want, Count(b, depth), "depth %d", depth)
	}
}

func TestDivideSumsToCount(t *testing.T) {
	b, err := fen.ToBoard(fen.StartFEN)
	assert.NoError(t, err)
	entries := Divide(b, 3)
	var sum uint64
	for _, e := range entries {
		sum += e.Nodes
	}
	assert.Equal(t, Count(b, 3), sum)
	assert.Len(t, entries, 20)
}
