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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardPushPopHas(t *testing.T) {
	var b Bitboard
	b = b.Push(SqE4)
	if !b.Has(SqE4) {
		t.Errorf("Push(SqE4) then Has(SqE4) = false, want true")
	}
	b = b.Pop(SqE4)
	if b.Has(SqE4) {
		t.Errorf("Pop(SqE4) then Has(SqE4) = true, want false")
	}
	if !b.Empty() {
		t.Errorf("Empty() = false after popping only member, want true")
	}
}

func TestBitboardLsbBitScanPopLsb(t *testing.T) {
	assert := assert.New(t)
	var b Bitboard
	b = b.Push(SqC3).Push(SqE4).Push(SqA1)

	assert.Equal(SqA1, b.BitScan())
	assert.Equal(SqA1.Bb(), b.Lsb())

	sq := b.PopLsb()
	assert.Equal(SqA1, sq)
	assert.Equal(SqC3, b.BitScan())

	assert.Equal(2, b.PopCount())
}

func TestBitboardPopLsbOnEmpty(t *testing.T) {
	var b Bitboard
	sq := b.PopLsb()
	if sq != SqNone {
		t.Errorf("PopLsb() on empty board = %v, want SqNone", sq)
	}
	if b.BitScan() != SqNone {
		t.Errorf("BitScan() on empty board = %v, want SqNone", b.BitScan())
	}
}

func TestBitboardPopCount(t *testing.T) {
	tests := []struct {
		b        Bitboard
		expected int
	}{
		{BbEmpty, 0},
		{BbFull, 64},
		{Rank1Mask, 8},
		{FileAMask, 8},
	}
	for _, test := range tests {
		got := test.b.PopCount()
		if got != test.expected {
			t.Errorf("Bitboard(%#x).PopCount() = %d, want %d", uint64(test.b), got, test.expected)
		}
	}
}

func TestBitboardShiftFileWrap(t *testing.T) {
	tests := []struct {
		name     string
		from     Square
		d        Direction
		expected Bitboard
	}{
		{"east from file h vanishes, does not wrap to file a", SqH4, East, BbEmpty},
		{"west from file a vanishes, does not wrap to file h", SqA4, West, BbEmpty},
		{"northeast from file h vanishes", SqH4, Northeast, BbEmpty},
		{"northwest from file a vanishes", SqA4, Northwest, BbEmpty},
		{"east from file a lands on file b", SqA4, East, SqB4.Bb()},
		{"north off the top vanishes", SqE8, North, BbEmpty},
		{"south off the bottom vanishes", SqE1, South, BbEmpty},
	}
	for _, test := range tests {
		got := Shift(test.from.Bb(), test.d)
		if got != test.expected {
			t.Errorf("%s: Shift(%v.Bb(), %v) = %v, want %v", test.name, test.from, test.d, got, test.expected)
		}
	}
}

func TestBitboardPopEdgeVariants(t *testing.T) {
	assert := assert.New(t)
	full := BbFull

	assert.Equal(BbFull&^EdgesMask, full.PopEdges())
	assert.False(full.PopEdges().Has(SqA1))
	assert.False(full.PopEdges().Has(SqE1))
	assert.True(full.PopEdges().Has(SqE4))

	assert.False(full.PopNorthSouthEdges().Has(SqE1))
	assert.False(full.PopNorthSouthEdges().Has(SqE8))
	assert.True(full.PopNorthSouthEdges().Has(SqA4))

	assert.False(full.PopEastWestEdges().Has(SqA4))
	assert.False(full.PopEastWestEdges().Has(SqH4))
	assert.True(full.PopEastWestEdges().Has(SqE1))
}

func TestBitboardString(t *testing.T) {
	b := SqA1.Bb()
	s := b.String()
	if len(s) != 64 {
		t.Fatalf("Bitboard.String() length = %d, want 64", len(s))
	}
	if s[0] != '1' {
		t.Errorf("Bitboard.String()[0] = %q, want '1' (lsb first)", s[0])
	}
	for i := 1; i < 64; i++ {
		if s[i] != '0' {
			t.Errorf("Bitboard.String()[%d] = %q, want '0'", i, s[i])
		}
	}
}

func TestSquareBbInvalidIsEmpty(t *testing.T) {
	if SqNone.Bb() != BbEmpty {
		t.Errorf("SqNone.Bb() = %#x, want BbEmpty", uint64(SqNone.Bb()))
	}
}
