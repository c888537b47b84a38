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

// Package perft counts the leaves of the legal move tree rooted at a board
// position to a fixed depth, the standard correctness benchmark for a move
// generator: any divergence from a known-good node count at some depth
// points at a bug in move generation or make/unmake.
package perft

import (
	"github.com/corvidae/chessgen/internal/board"
	"github.com/corvidae/chessgen/internal/movegen"
	. "github.com/corvidae/chessgen/internal/types"
)

// Stats accumulates per-leaf move classifications alongside the raw node
// count, mirroring the breakdown perft test suites conventionally report.
type Stats struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
	Checkmates uint64
}

// Count returns the number of legal move-tree leaves reachable from b at
// the given depth. Count(b, 0) is 1 by convention (the root position
// itself is the single leaf).
func Count(b *board.Board, depth int) uint64 {
	return run(b, depth, nil)
}

// RunWithStats behaves like Count but also classifies every leaf move by
// capture/en-passant/castle/promotion/check/checkmate.
func RunWithStats(b *board.Board, depth int) *Stats {
	stats := &Stats{}
	stats.Nodes = run(b, depth, stats)
	return stats
}

// DividedEntry is one root move and the node count of the subtree below it,
// the "perft divide" breakdown used to localize a move generation bug to a
// specific move.
type DividedEntry struct {
	Move  Move
	Nodes uint64
}

// Divide returns, for every legal move at the root, the node count of the
// subtree rooted at that move played to depth-1 additional plies. depth
// below 1 is treated as 1.
func Divide(b *board.Board, depth int) []DividedEntry {
	if depth < 1 {
		depth = 1
	}
	pseudo := movegen.GeneratePseudoLegal(b)
	us := b.SideToMove()
	entries := make([]DividedEntry, 0, pseudo.Len())
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		b.MakeMove(m)
		if !b.InCheck(us) {
			entries = append(entries, DividedEntry{Move: m, Nodes: run(b, depth-1, nil)})
		}
		b.UnmakeMove(m)
	}
	return entries
}

func run(b *board.Board, depth int, stats *Stats) uint64 {
	if depth == 0 {
		return 1
	}
	pseudo := movegen.GeneratePseudoLegal(b)
	us := b.SideToMove()
	var nodes uint64
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		b.MakeMove(m)
		if !b.InCheck(us) {
			if depth == 1 && stats != nil {
				recordLeaf(stats, m, b, us)
			}
			nodes += run(b, depth-1, stats)
		}
		b.UnmakeMove(m)
	}
	return nodes
}

func recordLeaf(stats *Stats, m Move, b *board.Board, mover Color) {
	flag := m.Flag()
	if flag.IsCapture() {
		stats.Captures++
	}
	if flag == FlagEnPassant {
		stats.EnPassant++
	}
	if flag.IsCastle() {
		stats.Castles++
	}
	if flag.IsPromotion() {
		stats.Promotions++
	}
	opponent := mover.Enemy()
	if b.InCheck(opponent) {
		stats.Checks++
		if !movegen.HasLegalMove(b) {
			stats.Checkmates++
		}
	}
}
