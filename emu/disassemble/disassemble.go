/*
   Basic computer disassembler.

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

// Package disassembler maps a machine word back to a mnemonic line, the
// inverse of package assembler.
package disassembler

import (
	"fmt"
	"strings"

	op "github.com/rcornwell/manosim/emu/opcodemap"
	"github.com/rcornwell/manosim/emu/word"
)

// Disassemble renders w as a mnemonic source line.
func Disassemble(w uint16) string {
	opcode := int((w >> 12) & 0x7)

	if opcode != op.OpIO {
		mnem := op.MRIMnemonics[opcode]
		addr := w & word.AddrMask
		line := fmt.Sprintf("%s %03x", mnem, addr)
		if w&op.IndirectBit != 0 {
			line += " I"
		}
		return line
	}

	// Bit 15 means something different once opcode==7: not indirect,
	// but RRI (0) vs IOI (1).
	if w&op.IndirectBit != 0 {
		return decodeBits(w, op.IOIOrder)
	}
	return decodeBits(w, op.RRIOrder)
}

func decodeBits(w uint16, order []struct {
	Bit  uint16
	Name string
}) string {
	bits := w & 0x0FFF
	var names []string
	for _, entry := range order {
		if bits&entry.Bit != 0 {
			names = append(names, entry.Name)
		}
	}
	if len(names) == 0 {
		return fmt.Sprintf("HEX %04x", w)
	}
	return strings.Join(names, " ")
}
