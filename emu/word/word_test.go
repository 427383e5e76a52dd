package word

import "testing"

func TestAdd16(t *testing.T) {
	sum, carry := Add16(0xFFFF, 0x0001)
	if sum != 0x0000 || !carry {
		t.Errorf("Add16(0xFFFF, 0x0001) = %04x, %v, want 0000, true", sum, carry)
	}

	sum, carry = Add16(0x0002, 0x0003)
	if sum != 0x0005 || carry {
		t.Errorf("Add16(0x0002, 0x0003) = %04x, %v, want 0005, false", sum, carry)
	}
}

func TestInc12(t *testing.T) {
	if r := Inc12(0x0FFF); r != 0x0000 {
		t.Errorf("Inc12(0xFFF) = %03x, want 000", r)
	}
	if r := Inc12(0x0100); r != 0x0101 {
		t.Errorf("Inc12(0x100) = %03x, want 101", r)
	}
}

func TestInc16(t *testing.T) {
	if r := Inc16(0xFFFF); r != 0x0000 {
		t.Errorf("Inc16(0xFFFF) = %04x, want 0000", r)
	}
}

func TestAndNot16(t *testing.T) {
	if r := And16(0xFF00, 0x0FF0); r != 0x0F00 {
		t.Errorf("And16 = %04x, want 0F00", r)
	}
	if r := Not16(0x0000); r != 0xFFFF {
		t.Errorf("Not16(0) = %04x, want FFFF", r)
	}
}

func TestSignBit(t *testing.T) {
	if !SignBit(0x8000) {
		t.Error("SignBit(0x8000) = false, want true")
	}
	if SignBit(0x7FFF) {
		t.Error("SignBit(0x7FFF) = true, want false")
	}
}

func TestToSigned16(t *testing.T) {
	if r := ToSigned16(0xFFFB); r != -5 {
		t.Errorf("ToSigned16(0xFFFB) = %d, want -5", r)
	}
	if r := ToSigned16(0x0005); r != 5 {
		t.Errorf("ToSigned16(0x0005) = %d, want 5", r)
	}
}

func TestDecToWord16(t *testing.T) {
	w, err := DecToWord16(-5)
	if err != nil || w != 0xFFFB {
		t.Errorf("DecToWord16(-5) = %04x, %v, want FFFB, nil", w, err)
	}

	w, err = DecToWord16(5)
	if err != nil || w != 0x0005 {
		t.Errorf("DecToWord16(5) = %04x, %v, want 0005, nil", w, err)
	}

	if _, err := DecToWord16(40000); err == nil {
		t.Error("DecToWord16(40000) did not return error")
	}
	if _, err := DecToWord16(-40000); err == nil {
		t.Error("DecToWord16(-40000) did not return error")
	}
}
