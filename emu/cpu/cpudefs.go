/*
   CPU definitions for the basic computer simulator.

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
	"log/slog"

	"github.com/rcornwell/manosim/emu/device"
)

// State is the result of the most recently executed micro-operation.
type State int

const (
	Run State = iota
	Halt
	WaitInput
)

func (s State) String() string {
	switch s {
	case Run:
		return "Run"
	case Halt:
		return "Halt"
	case WaitInput:
		return "WaitInput"
	default:
		return "Unknown"
	}
}

// cpuState is the full register and flag set of the basic computer.
type cpuState struct {
	PC, AR         uint16 // 12-bit program counter and address register
	AC, DR, IR, TR uint16 // 16-bit data-path registers
	INPR, OUTR     uint8  // 8-bit I/O latches

	E    bool // carry / 17th AC bit
	S    bool // run flag; false halts the CPU
	IEN  bool // interrupt-enable master
	FGI  bool // input available
	FGO  bool // output device ready
	R    bool // interrupt request, recomputed at instruction boundaries

	SC      uint8 // sequence counter, T0..T6
	opcode  uint8  // decoded at T2, valid through T3..T6
	indirect bool  // decoded at T2: MRI indirect bit, or RRI(0)/IOI(1) selector
}

var sys cpuState
var hooks device.Hooks

// Log is the sink for halt and interrupt notices. Nil by default.
var Log *slog.Logger

// SetHooks wires the console collaborator's callbacks. Not touched by
// Reset, since hooks are wiring, not machine state.
func SetHooks(h device.Hooks) {
	hooks = h
}

// Snapshot is a read-only copy of every register and flag, for display.
type Snapshot struct {
	PC, AR         uint16
	AC, DR, IR, TR uint16
	INPR, OUTR     uint8
	E, S, IEN, FGI, FGO, R bool
	SC             uint8
}

// GetSnapshot returns the current register and flag state.
func GetSnapshot() Snapshot {
	return Snapshot{
		PC: sys.PC, AR: sys.AR,
		AC: sys.AC, DR: sys.DR, IR: sys.IR, TR: sys.TR,
		INPR: sys.INPR, OUTR: sys.OUTR,
		E: sys.E, S: sys.S, IEN: sys.IEN, FGI: sys.FGI, FGO: sys.FGO, R: sys.R,
		SC: sys.SC,
	}
}
