/*
 * manosim - Convert Hex to strings.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package hex formats the basic computer's 16-bit words, 12-bit
// addresses and 8-bit bytes as fixed-width hex, for the console.
package hex

import "strings"

var hexMap = "0123456789ABCDEF"

// FormatWord writes w as 4 hex digits.
func FormatWord(str *strings.Builder, w uint16) {
	shift := 12
	for range 4 {
		str.WriteByte(hexMap[(w>>shift)&0xf])
		shift -= 4
	}
}

// FormatAddr writes a as 3 hex digits, the width of a 12-bit address.
func FormatAddr(str *strings.Builder, a uint16) {
	shift := 8
	for range 3 {
		str.WriteByte(hexMap[(a>>shift)&0xf])
		shift -= 4
	}
}

// FormatByte writes b as 2 hex digits.
func FormatByte(str *strings.Builder, b byte) {
	str.WriteByte(hexMap[(b>>4)&0xf])
	str.WriteByte(hexMap[b&0xf])
}

// FormatDigit writes the low nibble of b as a single hex digit.
func FormatDigit(str *strings.Builder, b byte) {
	str.WriteByte(hexMap[b&0xf])
}
