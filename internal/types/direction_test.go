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

import "testing"

func TestDirectionOpposites(t *testing.T) {
	tests := []struct {
		d, opposite Direction
	}{
		{North, South},
		{East, West},
		{Northeast, Southwest},
		{Northwest, Southeast},
	}
	for _, test := range tests {
		if test.d != -test.opposite {
			t.Errorf("%v != -%v", test.d, test.opposite)
		}
	}
}

func TestDirectionsLength(t *testing.T) {
	if len(Directions) != 8 {
		t.Errorf("len(Directions) = %d, want 8", len(Directions))
	}
	seen := make(map[Direction]bool)
	for _, d := range Directions {
		if seen[d] {
			t.Errorf("Directions contains duplicate %v", d)
		}
		seen[d] = true
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		d        Direction
		expected string
	}{
		{North, "N"}, {East, "E"}, {South, "S"}, {West, "W"},
		{Northeast, "NE"}, {Southeast, "SE"}, {Southwest, "SW"}, {Northwest, "NW"},
	}
	for _, test := range tests {
		if got := test.d.String(); got != test.expected {
			t.Errorf("%d.String() = %q, want %q", test.d, got, test.expected)
		}
	}
}

func TestDirectionStringPanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Direction(99).String() did not panic")
		}
	}()
	_ = Direction(99).String()
}
