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

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares; bit i is set iff square i is a
// member of the set.
type Bitboard uint64

const (
	BbEmpty Bitboard = 0
	BbFull  Bitboard = 0xFFFFFFFFFFFFFFFF
)

// Named file and rank masks.
const (
	FileAMask Bitboard = 0x0101010101010101
	FileBMask          = FileAMask << 1
	FileCMask          = FileAMask << 2
	FileDMask          = FileAMask << 3
	FileEMask          = FileAMask << 4
	FileFMask          = FileAMask << 5
	FileGMask          = FileAMask << 6
	FileHMask          = FileAMask << 7

	Rank1Mask Bitboard = 0x00000000000000FF
	Rank2Mask          = Rank1Mask << (8 * 1)
	Rank3Mask          = Rank1Mask << (8 * 2)
	Rank4Mask          = Rank1Mask << (8 * 3)
	Rank5Mask          = Rank1Mask << (8 * 4)
	Rank6Mask          = Rank1Mask << (8 * 5)
	Rank7Mask          = Rank1Mask << (8 * 6)
	Rank8Mask          = Rank1Mask << (8 * 7)

	EdgesMask Bitboard = FileAMask | FileHMask | Rank1Mask | Rank8Mask
)

var fileMasks = [FileLength]Bitboard{FileAMask, FileBMask, FileCMask, FileDMask, FileEMask, FileFMask, FileGMask, FileHMask}
var rankMasks = [RankLength]Bitboard{Rank1Mask, Rank2Mask, Rank3Mask, Rank4Mask, Rank5Mask, Rank6Mask, Rank7Mask, Rank8Mask}

// Bb returns the mask for the file.
func (f File) Bb() Bitboard { return fileMasks[f] }

// Bb returns the mask for the rank.
func (r Rank) Bb() Bitboard { return rankMasks[r] }

// Bb returns the singleton bitboard for the square. SqNone maps to BbEmpty.
func (sq Square) Bb() Bitboard {
	if !sq.IsValid() {
		return BbEmpty
	}
	return Bitboard(1) << uint(sq)
}

// Initial-position piece bitboards, named per spec.
const (
	WhitePawnsInit   Bitboard = Rank2Mask
	BlackPawnsInit   Bitboard = Rank7Mask
	WhiteKnightsInit Bitboard = (Bitboard(1) << SqB1) | (Bitboard(1) << SqG1)
	BlackKnightsInit Bitboard = (Bitboard(1) << SqB8) | (Bitboard(1) << SqG8)
	WhiteBishopsInit Bitboard = (Bitboard(1) << SqC1) | (Bitboard(1) << SqF1)
	BlackBishopsInit Bitboard = (Bitboard(1) << SqC8) | (Bitboard(1) << SqF8)
	WhiteRooksInit   Bitboard = (Bitboard(1) << SqA1) | (Bitboard(1) << SqH1)
	BlackRooksInit   Bitboard = (Bitboard(1) << SqA8) | (Bitboard(1) << SqH8)
	WhiteQueensInit  Bitboard = Bitboard(1) << SqD1
	BlackQueensInit  Bitboard = Bitboard(1) << SqD8
	WhiteKingInit    Bitboard = Bitboard(1) << SqE1
	BlackKingInit    Bitboard = Bitboard(1) << SqE8
)

// Has reports whether sq is a member.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

// Push returns b with sq added.
func (b Bitboard) Push(sq Square) Bitboard {
	return b | sq.Bb()
}

// Pop returns b with sq removed.
func (b Bitboard) Pop(sq Square) Bitboard {
	return b &^ sq.Bb()
}

// Empty reports whether the set has no members.
func (b Bitboard) Empty() bool {
	return b == BbEmpty
}

// NonEmpty reports whether the set has at least one member.
func (b Bitboard) NonEmpty() bool {
	return b != BbEmpty
}

// Lsb returns a Bitboard containing only the least-significant set bit.
func (b Bitboard) Lsb() Bitboard {
	return b & -b
}

// BitScan returns the square index of the least-significant set bit, or
// SqNone if b is empty.
func (b Bitboard) BitScan() Square {
	if b == BbEmpty {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb clears the least-significant set bit in place and returns the
// square it occupied (SqNone if b was already empty).
func (b *Bitboard) PopLsb() Square {
	if *b == BbEmpty {
		return SqNone
	}
	sq := b.BitScan()
	*b &= *b - 1
	return sq
}

// PopCount returns the number of member squares.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// PopEdges removes every square on the board's outer ring.
func (b Bitboard) PopEdges() Bitboard {
	return b &^ EdgesMask
}

// PopNorthSouthEdges removes rank 1 and rank 8.
func (b Bitboard) PopNorthSouthEdges() Bitboard {
	return b &^ (Rank1Mask | Rank8Mask)
}

// PopEastWestEdges removes file A and file H.
func (b Bitboard) PopEastWestEdges() Bitboard {
	return b &^ (FileAMask | FileHMask)
}

// Shift moves every member square by one step in direction d, discarding
// squares that would wrap around a file edge.
func Shift(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ FileHMask) << 1
	case West:
		return (b &^ FileAMask) >> 1
	case Northeast:
		return (b &^ FileHMask) << 9
	case Northwest:
		return (b &^ FileAMask) << 7
	case Southeast:
		return (b &^ FileHMask) >> 7
	case Southwest:
		return (b &^ FileAMask) >> 9
	default:
		return b
	}
}

// String returns the 64-bit binary representation, lsb first.
func (b Bitboard) String() string {
	var sb strings.Builder
	for i := 0; i < 64; i++ {
		if b&(Bitboard(1)<<uint(i)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// StringBoard renders the bitboard as an 8x8 board, rank 8 on top, for
// debugging and REPL output.
func (b Bitboard) StringBoard() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := int(Rank8); r >= int(Rank1); r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, Rank(r))) {
				sb.WriteString("| X ")
			} else {
				sb.WriteString("|   ")
			}
		}
		sb.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return sb.String()
}
