package configparser

import (
	"strings"
	"testing"
)

func TestParseLoadStartLog(t *testing.T) {
	src := "# startup script\n" +
		"load program.asm\n" +
		"start 100\n" +
		"log trace.log\n"

	directives, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(directives) != 3 {
		t.Fatalf("len(directives) = %d, want 3", len(directives))
	}
	if directives[0].Kind != DirLoad || directives[0].Path != "program.asm" {
		t.Errorf("directives[0] = %+v", directives[0])
	}
	if directives[1].Kind != DirStart || directives[1].Addr != 0x100 {
		t.Errorf("directives[1] = %+v", directives[1])
	}
	if directives[2].Kind != DirLog || directives[2].Path != "trace.log" {
		t.Errorf("directives[2] = %+v", directives[2])
	}
}

func TestParseBlankAndCommentLines(t *testing.T) {
	src := "\n   # nothing here\nload a.asm\n   \n"
	directives, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(directives) != 1 {
		t.Fatalf("len(directives) = %d, want 1", len(directives))
	}
}

func TestParseUnknownDirective(t *testing.T) {
	_, err := Parse(strings.NewReader("frob something\n"))
	if err == nil {
		t.Fatal("Parse() succeeded on unknown directive")
	}
}

func TestParseStartBadAddress(t *testing.T) {
	_, err := Parse(strings.NewReader("start zzz\n"))
	if err == nil {
		t.Fatal("Parse() succeeded on non-hex start address")
	}
}

func TestParseLoadMissingPath(t *testing.T) {
	_, err := Parse(strings.NewReader("load\n"))
	if err == nil {
		t.Fatal("Parse() succeeded on load with no path")
	}
}
