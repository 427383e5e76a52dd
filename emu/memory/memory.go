/*
 * manosim - Low level memory
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

// Package memory holds the 4096-word core store of the basic computer.
package memory

import (
	"log/slog"

	"github.com/rcornwell/manosim/emu/word"
)

// Size is the number of addressable 16-bit words.
const Size = 4096

type mem struct {
	cell [Size]uint16
}

var memory mem

// Log is the sink for out-of-range access warnings. Nil by default so
// package memory never requires a logger to be configured; main wires
// it to the handler built in util/logger.
var Log *slog.Logger

// Reset zeros every cell.
func Reset() {
	memory.cell = [Size]uint16{}
}

// Read returns the word stored at addr. An out-of-range address logs a
// warning and returns zero rather than panicking; the CPU treats memory
// as total.
func Read(addr uint16) uint16 {
	a := addr & word.AddrMask
	if uint32(addr) >= Size {
		if Log != nil {
			Log.Warn("memory read out of range", "addr", addr)
		}
		return 0
	}
	return memory.cell[a]
}

// Write stores data at addr, masked to 16 bits. Out-of-range addresses
// are silently dropped.
func Write(addr, data uint16) {
	if uint32(addr) >= Size {
		return
	}
	memory.cell[addr&word.AddrMask] = data & word.WordMask
}

// LoadProgram writes every (address, word) pair from prog, masking each
// word to 16 bits. Addresses outside [0, Size) are dropped.
func LoadProgram(prog map[uint16]uint16) {
	for addr, data := range prog {
		Write(addr, data)
	}
}

// EnumerateNonZero returns every address whose cell is non-zero, in
// ascending order.
func EnumerateNonZero() []uint16 {
	var addrs []uint16
	for a := uint16(0); a < Size; a++ {
		if memory.cell[a] != 0 {
			addrs = append(addrs, a)
		}
	}
	return addrs
}
