package disassembler

import (
	"testing"

	assembler "github.com/rcornwell/manosim/emu/assemble"
)

func TestDisassembleMRIDirect(t *testing.T) {
	if got := Disassemble(0x2104); got != "LDA 104" {
		t.Errorf("Disassemble(0x2104) = %q, want %q", got, "LDA 104")
	}
}

func TestDisassembleMRIIndirect(t *testing.T) {
	if got := Disassemble(0xC200); got != "BUN 200 I" {
		t.Errorf("Disassemble(0xC200) = %q, want %q", got, "BUN 200 I")
	}
}

func TestDisassembleSingleRRI(t *testing.T) {
	if got := Disassemble(0x7001); got != "HLT" {
		t.Errorf("Disassemble(0x7001) = %q, want %q", got, "HLT")
	}
}

func TestDisassembleCombinedRRI(t *testing.T) {
	if got := Disassemble(0x7C00); got != "CLA CLE" {
		t.Errorf("Disassemble(0x7C00) = %q, want %q", got, "CLA CLE")
	}
}

func TestDisassembleIOI(t *testing.T) {
	if got := Disassemble(0xF800); got != "INP" {
		t.Errorf("Disassemble(0xF800) = %q, want %q", got, "INP")
	}
}

func TestDisassembleRoundTrip(t *testing.T) {
	for _, w := range []uint16{0x2104, 0x1105, 0x3106, 0x7001, 0xC200, 0xF400} {
		line := Disassemble(w)
		if line == "" {
			t.Errorf("Disassemble(%04x) returned empty string", w)
		}
		res := assembler.Assemble(line)
		if !res.Success || res.MachineCode[0] != w {
			t.Errorf("Assemble(%q) = %04x (errors %v), want %04x", line, res.MachineCode[0], res.Errors, w)
		}
	}
}
