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

import "strings"

// Move is a 16-bit packed chess move.
//  bits 0-5   from square
//  bits 6-11  to square
//  bits 12-15 flag
//
//  BITMAP 16-bit
//  |flag---|--to------|-from-----|
//  15141312 1110 9 8 7 6 5 4 3 2 1 0
type Move uint16

// MoveFlag is the 4-bit tag in bits 12-15 of a Move.
type MoveFlag uint8

const (
	FlagQuiet       MoveFlag = 0
	FlagDoublePush  MoveFlag = 1
	FlagShortCastle MoveFlag = 2
	FlagLongCastle  MoveFlag = 3
	FlagCapture     MoveFlag = 4
	FlagEnPassant   MoveFlag = 5
	// 6, 7 reserved, never produced.
	FlagPromoteKnight        MoveFlag = 8
	FlagPromoteBishop        MoveFlag = 9
	FlagPromoteRook          MoveFlag = 10
	FlagPromoteQueen         MoveFlag = 11
	FlagPromoteCaptureKnight MoveFlag = 12
	FlagPromoteCaptureBishop MoveFlag = 13
	FlagPromoteCaptureRook   MoveFlag = 14
	FlagPromoteCaptureQueen  MoveFlag = 15
)

const (
	MoveNone Move = 0

	fromShift = 0
	toShift   = 6
	flagShift = 12

	squareBits Move = 0x3F
	flagBits   Move = 0xF
)

// NewMove packs a from/to/flag triple into a Move.
func NewMove(from, to Square, flag MoveFlag) Move {
	return Move(from)<<fromShift | Move(to)<<toShift | Move(flag)<<flagShift
}

// From returns the move's origin square.
func (m Move) From() Square {
	return Square((m >> fromShift) & squareBits)
}

// To returns the move's destination square.
func (m Move) To() Square {
	return Square((m >> toShift) & squareBits)
}

// Flag returns the move's 4-bit flag.
func (m Move) Flag() MoveFlag {
	return MoveFlag((m >> flagShift) & flagBits)
}

// IsPromotion reports whether bit 3 of the flag is set.
func (f MoveFlag) IsPromotion() bool {
	return f&0b1000 != 0
}

// IsCapture reports whether the move flag represents a capture, an
// en-passant capture, or a promotion-capture.
func (f MoveFlag) IsCapture() bool {
	return f == FlagCapture || f == FlagEnPassant || (f.IsPromotion() && f&0b0100 != 0)
}

// IsCastle reports whether the move flag is a short or long castle.
func (f MoveFlag) IsCastle() bool {
	return f == FlagShortCastle || f == FlagLongCastle
}

// PromotionType returns the piece type a promotion flag produces. Must only
// be called when IsPromotion() is true.
func (f MoveFlag) PromotionType() PieceType {
	switch f & 0b0011 {
	case 0:
		return Knight
	case 1:
		return Bishop
	case 2:
		return Rook
	default:
		return Queen
	}
}

// promotionFlag returns the promotion flag for pt, or its promotion-capture
// variant when capture is true. Any other pt maps to a queen promotion.
func promotionFlag(pt PieceType, capture bool) MoveFlag {
	var base MoveFlag
	switch pt {
	case Knight:
		base = FlagPromoteKnight
	case Bishop:
		base = FlagPromoteBishop
	case Rook:
		base = FlagPromoteRook
	case Queen:
		base = FlagPromoteQueen
	default:
		base = FlagPromoteQueen
	}
	if capture {
		return base | 0b0100
	}
	return base
}

// NewPromotionMove packs a promotion (or promotion-capture) move.
func NewPromotionMove(from, to Square, pt PieceType, capture bool) Move {
	return NewMove(from, to, promotionFlag(pt, capture))
}

// IsValid reports whether m has legal squares and a defined flag (6 and 7
// are reserved and never valid).
func (m Move) IsValid() bool {
	if m == MoveNone {
		return false
	}
	f := m.Flag()
	return m.From().IsValid() && m.To().IsValid() && f != 6 && f != 7
}

var flagNames = map[MoveFlag]string{
	FlagQuiet: "quiet", FlagDoublePush: "double-push", FlagShortCastle: "O-O",
	FlagLongCastle: "O-O-O", FlagCapture: "capture", FlagEnPassant: "en-passant",
	FlagPromoteKnight: "promote=N", FlagPromoteBishop: "promote=B",
	FlagPromoteRook: "promote=R", FlagPromoteQueen: "promote=Q",
	FlagPromoteCaptureKnight: "capture,promote=N", FlagPromoteCaptureBishop: "capture,promote=B",
	FlagPromoteCaptureRook: "capture,promote=R", FlagPromoteCaptureQueen: "capture,promote=Q",
}

// String renders the move as UCI-style from/to plus promotion suffix, e.g.
// "e7e8q".
func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if m.Flag().IsPromotion() {
		sb.WriteString(strings.ToLower(m.Flag().PromotionType().Char()))
	}
	return sb.String()
}
