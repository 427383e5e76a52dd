/*
   Word arithmetic for the basic computer.

   Copyright (c) 2024, Richard Cornwell

   Permission is hereby granted, free of charge, to any person obtaining a
   copy of this software and associated documentation files (the "Software"),
   to deal in the Software without restriction, including without limitation
   the rights to use, copy, modify, merge, publish, distribute, sublicense,
   and/or sell copies of the Software, and to permit persons to whom the
   Software is furnished to do so, subject to the following conditions:

   The above copyright notice and this permission notice shall be included in
   all copies or substantial portions of the Software.

   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.  IN NO EVENT SHALL
   ROBERT M SUPNIK BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
   IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
   CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

*/

// Package word provides total, panic-free arithmetic over the 12-bit
// address and 16-bit data words of the basic computer.
package word

import "errors"

const (
	// AddrMask masks a value down to the 12 bits an address occupies.
	AddrMask uint16 = 0x0FFF
	// WordMask masks a value down to the 16 bits a word occupies.
	WordMask uint16 = 0xFFFF
	// SignBitMask isolates bit 15, the sign of a 16-bit word.
	SignBitMask uint16 = 0x8000
)

// Add16 returns the low 16 bits of a+b and the carry out of bit 15.
func Add16(a, b uint16) (sum uint16, carry bool) {
	total := uint32(a) + uint32(b)
	return uint16(total & uint32(WordMask)), total > uint32(WordMask)
}

// Inc12 increments x and wraps at 12 bits.
func Inc12(x uint16) uint16 {
	return (x + 1) & AddrMask
}

// Inc16 increments x and wraps at 16 bits.
func Inc16(x uint16) uint16 {
	return (x + 1) & WordMask
}

// And16 is the bitwise AND of two words.
func And16(a, b uint16) uint16 {
	return a & b
}

// Not16 is the bitwise complement of a word, masked to 16 bits.
func Not16(a uint16) uint16 {
	return ^a & WordMask
}

// SignBit reports whether bit 15 of x is set.
func SignBit(x uint16) bool {
	return x&SignBitMask != 0
}

// ToSigned16 interprets x as a two's-complement signed 16-bit integer.
func ToSigned16(x uint16) int32 {
	if SignBit(x) {
		return int32(x) - 0x10000
	}
	return int32(x)
}

// ErrOutOfRange is returned by DecToWord16 when n cannot be represented
// in 16 bits of two's complement.
var ErrOutOfRange = errors.New("decimal value out of range for a 16-bit word")

// DecToWord16 stores n as a two's-complement 16-bit word. It fails for
// values outside [-32768, 32767]; the assembler is expected to surface
// that failure to the user, never the CPU.
func DecToWord16(n int64) (uint16, error) {
	if n < -32768 || n > 32767 {
		return 0, ErrOutOfRange
	}
	if n < 0 {
		n += 0x10000
	}
	return uint16(n), nil
}
