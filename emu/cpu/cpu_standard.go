/* Register-reference and input/output instruction execution

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

package cpu

import (
	"strings"

	op "github.com/rcornwell/manosim/emu/opcodemap"
	"github.com/rcornwell/manosim/emu/word"
)

// executeRegisterOrIO runs at T3 for an opcode-7 word: a register
// reference if the I bit is clear, an I/O instruction if it's set.
// Both complete in a single step, returning straight to SC 0 (except
// INP stalled on FGI=0, which leaves SC at 3).
func executeRegisterOrIO() Result {
	bits := sys.AR // set to IR[0:11] at T2
	if sys.indirect {
		return executeIOI(bits)
	}
	return executeRRI(bits)
}

func executeRRI(bits uint16) Result {
	var applied []string

	if bits&op.RRICLA != 0 {
		sys.AC = 0
		applied = append(applied, "CLA")
	}
	if bits&op.RRICLE != 0 {
		sys.E = false
		applied = append(applied, "CLE")
	}
	if bits&op.RRICMA != 0 {
		sys.AC = word.Not16(sys.AC)
		applied = append(applied, "CMA")
	}
	if bits&op.RRICME != 0 {
		sys.E = !sys.E
		applied = append(applied, "CME")
	}
	if bits&op.RRICIR != 0 {
		carry := sys.AC&0x0001 != 0
		sys.AC >>= 1
		if sys.E {
			sys.AC |= word.SignBitMask
		}
		sys.E = carry
		applied = append(applied, "CIR")
	}
	if bits&op.RRICIL != 0 {
		carry := word.SignBit(sys.AC)
		sys.AC = (sys.AC << 1) & word.WordMask
		if sys.E {
			sys.AC |= 0x0001
		}
		sys.E = carry
		applied = append(applied, "CIL")
	}
	if bits&op.RRIINC != 0 {
		sys.AC = word.Inc16(sys.AC)
		applied = append(applied, "INC")
	}
	if bits&op.RRISPA != 0 {
		if !word.SignBit(sys.AC) && sys.AC != 0 {
			sys.PC = word.Inc12(sys.PC)
		}
		applied = append(applied, "SPA")
	}
	if bits&op.RRISNA != 0 {
		if word.SignBit(sys.AC) {
			sys.PC = word.Inc12(sys.PC)
		}
		applied = append(applied, "SNA")
	}
	if bits&op.RRISZA != 0 {
		if sys.AC == 0 {
			sys.PC = word.Inc12(sys.PC)
		}
		applied = append(applied, "SZA")
	}
	if bits&op.RRISZE != 0 {
		if !sys.E {
			sys.PC = word.Inc12(sys.PC)
		}
		applied = append(applied, "SZE")
	}
	if bits&op.RRIHLT != 0 {
		sys.S = false
		applied = append(applied, "HLT")
	}

	return result(endInstruction(), joinOrNoOp(applied, "RRI"))
}

func executeIOI(bits uint16) Result {
	var applied []string

	if bits&op.IOIINP != 0 {
		if !sys.FGI {
			if hooks.OnInputRequired != nil {
				hooks.OnInputRequired()
			}
			return result(WaitInput, "T3: INP waiting for FGI")
		}
		sys.AC = (sys.AC &^ 0x00FF) | uint16(sys.INPR)
		sys.FGI = false
		applied = append(applied, "INP")
	}
	if bits&op.IOIOUT != 0 {
		sys.OUTR = uint8(sys.AC & 0x00FF)
		sys.FGO = false
		if hooks.OnOutput != nil {
			hooks.OnOutput(sys.OUTR)
		}
		applied = append(applied, "OUT")
	}
	if bits&op.IOISKI != 0 {
		if sys.FGI {
			sys.PC = word.Inc12(sys.PC)
		}
		applied = append(applied, "SKI")
	}
	if bits&op.IOISKO != 0 {
		if sys.FGO {
			sys.PC = word.Inc12(sys.PC)
		}
		applied = append(applied, "SKO")
	}
	if bits&op.IOIION != 0 {
		sys.IEN = true
		applied = append(applied, "ION")
	}
	if bits&op.IOIIOF != 0 {
		sys.IEN = false
		applied = append(applied, "IOF")
	}

	return result(endInstruction(), joinOrNoOp(applied, "IOI"))
}

func joinOrNoOp(names []string, kind string) string {
	if len(names) == 0 {
		return kind + " no-op"
	}
	return strings.Join(names, " ")
}
