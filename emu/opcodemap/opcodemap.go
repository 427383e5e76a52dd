/*
   Instruction opcode and bitmask table for the basic computer.

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

// Package opcodemap holds the constant tables the assembler, disassembler
// and CPU all share: MRI opcodes, and the RRI/IOI bit patterns.
package opcodemap

const (
	// IndirectBit marks indirect addressing on an MRI word.
	IndirectBit uint16 = 0x8000

	// MRI opcodes, occupying bits 14-12 of the instruction word.
	OpAND = 0x0
	OpADD = 0x1
	OpLDA = 0x2
	OpSTA = 0x3
	OpBUN = 0x4
	OpBSA = 0x5
	OpISZ = 0x6
	// OpIO marks a word as register-reference or input/output rather
	// than memory-reference; distinguished further by IndirectBit.
	OpIO = 0x7
)

// MRIMnemonics maps an MRI opcode to its mnemonic, in opcode order.
var MRIMnemonics = map[int]string{
	OpAND: "AND",
	OpADD: "ADD",
	OpLDA: "LDA",
	OpSTA: "STA",
	OpBUN: "BUN",
	OpBSA: "BSA",
	OpISZ: "ISZ",
}

// MRIOpcodes is the inverse of MRIMnemonics.
var MRIOpcodes = map[string]int{
	"AND": OpAND,
	"ADD": OpADD,
	"LDA": OpLDA,
	"STA": OpSTA,
	"BUN": OpBUN,
	"BSA": OpBSA,
	"ISZ": OpISZ,
}

const (
	// RRI bit patterns, applied in this fixed order against a word
	// whose top 4 bits are 0x7 and whose I bit is 0.
	RRICLA uint16 = 0x0800
	RRICLE uint16 = 0x0400
	RRICMA uint16 = 0x0200
	RRICME uint16 = 0x0100
	RRICIR uint16 = 0x0080
	RRICIL uint16 = 0x0040
	RRIINC uint16 = 0x0020
	RRISPA uint16 = 0x0010
	RRISNA uint16 = 0x0008
	RRISZA uint16 = 0x0004
	RRISZE uint16 = 0x0002
	RRIHLT uint16 = 0x0001
)

// RRIOrder is the fixed evaluation order for multi-bit RRI words.
var RRIOrder = []struct {
	Bit  uint16
	Name string
}{
	{RRICLA, "CLA"},
	{RRICLE, "CLE"},
	{RRICMA, "CMA"},
	{RRICME, "CME"},
	{RRICIR, "CIR"},
	{RRICIL, "CIL"},
	{RRIINC, "INC"},
	{RRISPA, "SPA"},
	{RRISNA, "SNA"},
	{RRISZA, "SZA"},
	{RRISZE, "SZE"},
	{RRIHLT, "HLT"},
}

const (
	// IOI bit patterns, applied in this fixed order against a word
	// whose opcode bits (14-12) are 7 and whose I bit is 1 (top 4 bits 0xF).
	IOIINP uint16 = 0x0800
	IOIOUT uint16 = 0x0400
	IOISKI uint16 = 0x0200
	IOISKO uint16 = 0x0100
	IOIION uint16 = 0x0080
	IOIIOF uint16 = 0x0040
)

// IOIOrder is the fixed evaluation order for multi-bit IOI words.
var IOIOrder = []struct {
	Bit  uint16
	Name string
}{
	{IOIINP, "INP"},
	{IOIOUT, "OUT"},
	{IOISKI, "SKI"},
	{IOISKO, "SKO"},
	{IOIION, "ION"},
	{IOIIOF, "IOF"},
}

// RRIBits and IOIBits map mnemonic to bit pattern, for the assembler.
var RRIBits = map[string]uint16{
	"CLA": RRICLA, "CLE": RRICLE, "CMA": RRICMA, "CME": RRICME,
	"CIR": RRICIR, "CIL": RRICIL, "INC": RRIINC, "SPA": RRISPA,
	"SNA": RRISNA, "SZA": RRISZA, "SZE": RRISZE, "HLT": RRIHLT,
}

var IOIBits = map[string]uint16{
	"INP": IOIINP, "OUT": IOIOUT, "SKI": IOISKI, "SKO": IOISKO,
	"ION": IOIION, "IOF": IOIIOF,
}
