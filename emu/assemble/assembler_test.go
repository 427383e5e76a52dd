package assembler

import "testing"

func TestAssembleSimpleProgram(t *testing.T) {
	src := "ORG 100\n" +
		"LDA A\n" +
		"ADD B\n" +
		"STA C\n" +
		"HLT\n" +
		"A, DEC 5\n" +
		"B, DEC 3\n" +
		"C, DEC 0\n" +
		"END\n"

	res := Assemble(src)
	if !res.Success {
		t.Fatalf("Assemble() success=false, errors=%v", res.Errors)
	}
	if res.StartAddress != 0x100 {
		t.Errorf("StartAddress = %03x, want 100", res.StartAddress)
	}
	want := map[uint16]uint16{
		0x100: 0x2104, // LDA A (A=0x104)
		0x101: 0x1105, // ADD B (B=0x105)
		0x102: 0x3106, // STA C (C=0x106)
		0x103: 0x7001, // HLT
		0x104: 0x0005,
		0x105: 0x0003,
		0x106: 0x0000,
	}
	for addr, w := range want {
		if got := res.MachineCode[addr]; got != w {
			t.Errorf("MachineCode[%03x] = %04x, want %04x", addr, got, w)
		}
	}
	if res.Usage[0x100] != "code" || res.Usage[0x104] != "data" {
		t.Errorf("usage map incorrect: %v", res.Usage)
	}
}

func TestAssembleBSASubroutine(t *testing.T) {
	src := "ORG 100\n" +
		"BSA SUB\n" +
		"HLT\n" +
		"SUB, HEX 0\n" +
		"LDA X\n" +
		"CMA\n" +
		"INC\n" +
		"STA X\n" +
		"BUN SUB I\n" +
		"X, DEC 5\n" +
		"END\n"

	res := Assemble(src)
	if !res.Success {
		t.Fatalf("Assemble() success=false, errors=%v", res.Errors)
	}
	// SUB binds to 0x102 (right after BSA at 0x100 and HLT at 0x101);
	// X binds to 0x108 after the five-word subroutine body.
	if got := res.MachineCode[0x100]; got != 0x5102 {
		t.Errorf("BSA word = %04x, want 5102", got)
	}
	if got := res.MachineCode[0x102]; got != 0x0000 {
		t.Errorf("SUB cell = %04x, want 0000", got)
	}
	if got := res.MachineCode[0x107]; got != 0xC102 {
		t.Errorf("BUN SUB I = %04x, want C102", got)
	}
	if got := res.MachineCode[0x108]; got != 0x0005 {
		t.Errorf("X cell = %04x, want 0005", got)
	}
}

func TestLabelBindsBeforeOrgChange(t *testing.T) {
	src := "L, ORG 100\nHLT\nEND\n"
	res := Assemble(src)
	if !res.Success {
		t.Fatalf("Assemble() success=false, errors=%v", res.Errors)
	}
	if res.Labels["L"] != 0 {
		t.Errorf("L = %03x, want 000 (bound before ORG takes effect)", res.Labels["L"])
	}
}

func TestDuplicateLabel(t *testing.T) {
	src := "ORG 100\nA, HLT\nA, HLT\nEND\n"
	res := Assemble(src)
	if res.Success {
		t.Fatal("Assemble() succeeded with duplicate label")
	}
}

func TestInvalidLabel(t *testing.T) {
	src := "ORG 100\n1BAD, HLT\nEND\n"
	res := Assemble(src)
	if res.Success {
		t.Fatal("Assemble() succeeded with invalid label")
	}
}

func TestUnknownMnemonic(t *testing.T) {
	res := Assemble("ORG 100\nFROB\nEND\n")
	if res.Success {
		t.Fatal("Assemble() succeeded with unknown mnemonic")
	}
}

func TestUndefinedOperand(t *testing.T) {
	res := Assemble("ORG 100\nLDA NOSUCH\nEND\n")
	if res.Success {
		t.Fatal("Assemble() succeeded with undefined operand")
	}
}

func TestLabelShadowsHexLiteral(t *testing.T) {
	// "A" is both a valid label and a valid one-digit hex literal;
	// the defined label must win.
	src := "ORG 100\nLDA A\nHLT\nA, DEC 7\nEND\n"
	res := Assemble(src)
	if !res.Success {
		t.Fatalf("Assemble() success=false, errors=%v", res.Errors)
	}
	if got := res.MachineCode[0x100]; got != 0x2102 {
		t.Errorf("LDA A = %04x, want 2102 (label wins over literal)", got)
	}
}

func TestIndirectBit(t *testing.T) {
	res := Assemble("ORG 100\nBUN 200 I\nEND\n")
	if !res.Success {
		t.Fatalf("Assemble() success=false, errors=%v", res.Errors)
	}
	if got := res.MachineCode[0x100]; got != 0xC200 {
		t.Errorf("BUN 200 I = %04x, want C200", got)
	}
}

func TestCombinedRRIViaHex(t *testing.T) {
	res := Assemble("ORG 100\nHEX 7C00\nEND\n")
	if !res.Success {
		t.Fatalf("Assemble() success=false, errors=%v", res.Errors)
	}
	if got := res.MachineCode[0x100]; got != 0x7C00 {
		t.Errorf("HEX 7C00 = %04x, want 7C00", got)
	}
}

func TestPass1ErrorsSkipPass2(t *testing.T) {
	res := Assemble("ORG 100\nFROB\nLDA NOSUCH\nEND\n")
	if res.Success {
		t.Fatal("Assemble() succeeded despite pass-1 error")
	}
	if len(res.MachineCode) != 0 {
		t.Errorf("MachineCode not empty on failure: %v", res.MachineCode)
	}
	// Only the pass-1 structural error should be reported, not the
	// pass-2 undefined-operand error, since pass 2 never runs.
	if len(res.Errors) != 1 {
		t.Errorf("Errors = %v, want exactly one pass-1 error", res.Errors)
	}
}

func TestMnemonicsCaseInsensitive(t *testing.T) {
	res := Assemble("org 100\nlda 200\nhlt\nend\n")
	if !res.Success {
		t.Fatalf("Assemble() success=false, errors=%v", res.Errors)
	}
	if got := res.MachineCode[0x100]; got != 0x2200 {
		t.Errorf("lda 200 = %04x, want 2200", got)
	}
}

func TestCommentsIgnored(t *testing.T) {
	res := Assemble("ORG 100 / start here\nHLT / stop\nEND\n")
	if !res.Success {
		t.Fatalf("Assemble() success=false, errors=%v", res.Errors)
	}
	if res.StartAddress != 0x100 {
		t.Errorf("StartAddress = %03x, want 100", res.StartAddress)
	}
}
