/*
   Basic computer CPU: the T0-T6 micro-operation sequencer.

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

// Package cpu implements the single-accumulator basic computer: fetch,
// indirect resolution, decode and execute, one micro-operation per Step
// call, plus the interrupt cycle and the WaitInput suspension point.
package cpu

import (
	"github.com/rcornwell/manosim/emu/memory"
	op "github.com/rcornwell/manosim/emu/opcodemap"
	"github.com/rcornwell/manosim/emu/word"
)

// Result describes the micro-operation Step just performed.
type Result struct {
	State   State
	Message string
	SC      uint8
	PC      uint16
	AR      uint16
}

// Reset restores every register and flag to its power-on value: the run
// flag set so Step will execute, FGO set since the console starts ready
// for output, everything else zero.
func Reset() {
	sys = cpuState{S: true, FGO: true}
}

// SetPC loads the program counter and clears a halt, the "load and go"
// entry point used after assembling a program.
func SetPC(addr uint16) {
	sys.PC = addr & word.AddrMask
	sys.S = true
}

// SetInput latches an input byte and raises FGI, unblocking a CPU
// parked in WaitInput on INP.
func SetInput(ch byte) {
	sys.INPR = ch
	sys.FGI = true
}

// ClearInput lowers FGI, as if the input device had nothing pending.
func ClearInput() {
	sys.FGI = false
}

// Step executes exactly one T-state's worth of work and returns its
// outcome. Once halted, Step is a no-op that keeps reporting Halt.
func Step() Result {
	if !sys.S {
		return haltResult("halted")
	}

	switch sys.SC {
	case 0:
		if sys.R {
			return interruptCycle()
		}
		sys.AR = sys.PC
		sys.SC = 1
		return result(Run, "T0: AR <- PC")

	case 1:
		sys.IR = memory.Read(sys.AR)
		sys.PC = word.Inc12(sys.PC)
		sys.SC = 2
		return result(Run, "T1: IR <- M[AR]; PC <- PC+1")

	case 2:
		sys.AR = sys.IR & word.AddrMask
		sys.opcode = uint8((sys.IR >> 12) & 0x7)
		sys.indirect = sys.IR&op.IndirectBit != 0
		sys.SC = 3
		return result(Run, "T2: AR <- IR[0:11]; decode opcode")

	case 3:
		if sys.opcode == op.OpIO {
			return executeRegisterOrIO()
		}
		msg := "T3: direct addressing"
		if sys.indirect {
			sys.AR = memory.Read(sys.AR) & word.AddrMask
			msg = "T3: AR <- M[AR] (indirect)"
		}
		sys.SC = 4
		return result(Run, msg)

	case 4:
		return executeT4()

	case 5:
		return executeT5()

	case 6:
		return executeT6()

	default:
		sc := sys.SC
		sys.SC = 0
		if Log != nil {
			Log.Warn("invalid sequence counter, reset", "sc", sc)
		}
		return result(Run, "invalid sequence counter, reset to 0")
	}
}

// endInstruction returns SC to 0 and recomputes the pending interrupt
// flag, consulted only at the next T0.
func endInstruction() State {
	sys.SC = 0
	sys.R = sys.IEN && (sys.FGI || sys.FGO)
	if !sys.S {
		if Log != nil {
			Log.Info("CPU halted", "pc", sys.PC)
		}
		return Halt
	}
	return Run
}

func interruptCycle() Result {
	if Log != nil {
		Log.Debug("interrupt cycle", "pc", sys.PC)
	}
	sys.TR = sys.PC
	sys.AR = 0
	memory.Write(sys.AR, sys.TR)
	sys.PC = 1
	sys.IEN = false
	sys.R = false
	sys.SC = 0
	return result(Run, "interrupt cycle: M[0] <- PC; PC <- 1; IEN <- 0")
}

func executeT4() Result {
	switch sys.opcode {
	case op.OpAND, op.OpADD, op.OpLDA, op.OpISZ:
		sys.DR = memory.Read(sys.AR)
		sys.SC = 5
		return result(Run, "T4: DR <- M[AR]")

	case op.OpSTA:
		memory.Write(sys.AR, sys.AC)
		return result(endInstruction(), "T4: M[AR] <- AC")

	case op.OpBUN:
		sys.PC = sys.AR
		return result(endInstruction(), "T4: PC <- AR")

	case op.OpBSA:
		memory.Write(sys.AR, sys.PC)
		sys.AR = word.Inc12(sys.AR)
		sys.SC = 5
		return result(Run, "T4: M[AR] <- PC; AR <- AR+1")

	default:
		sys.SC = 0
		return result(Run, "T4: unreachable opcode")
	}
}

func executeT5() Result {
	switch sys.opcode {
	case op.OpAND:
		sys.AC = word.And16(sys.AC, sys.DR)
		return result(endInstruction(), "T5: AC <- AC AND DR")

	case op.OpADD:
		sum, carry := word.Add16(sys.AC, sys.DR)
		sys.AC = sum
		sys.E = carry
		return result(endInstruction(), "T5: AC,E <- AC+DR")

	case op.OpLDA:
		sys.AC = sys.DR
		return result(endInstruction(), "T5: AC <- DR")

	case op.OpBSA:
		sys.PC = sys.AR
		return result(endInstruction(), "T5: PC <- AR")

	case op.OpISZ:
		sys.DR = word.Inc16(sys.DR)
		memory.Write(sys.AR, sys.DR)
		sys.SC = 6
		return result(Run, "T5: DR <- DR+1; M[AR] <- DR")

	default:
		sys.SC = 0
		return result(Run, "T5: unreachable opcode")
	}
}

func executeT6() Result {
	if sys.DR == 0 {
		sys.PC = word.Inc12(sys.PC)
	}
	return result(endInstruction(), "T6: skip next if DR=0")
}

func result(state State, msg string) Result {
	return Result{State: state, Message: msg, SC: sys.SC, PC: sys.PC, AR: sys.AR}
}

func haltResult(msg string) Result {
	return Result{State: Halt, Message: msg, SC: sys.SC, PC: sys.PC, AR: sys.AR}
}
