package hex

import (
	"strings"
	"testing"
)

func TestFormatWord(t *testing.T) {
	var b strings.Builder
	FormatWord(&b, 0x2104)
	if got := b.String(); got != "2104" {
		t.Errorf("FormatWord(0x2104) = %q, want 2104", got)
	}
}

func TestFormatAddr(t *testing.T) {
	var b strings.Builder
	FormatAddr(&b, 0x0FA)
	if got := b.String(); got != "0FA" {
		t.Errorf("FormatAddr(0x0FA) = %q, want 0FA", got)
	}
}

func TestFormatByte(t *testing.T) {
	var b strings.Builder
	FormatByte(&b, 0x41)
	if got := b.String(); got != "41" {
		t.Errorf("FormatByte(0x41) = %q, want 41", got)
	}
}
