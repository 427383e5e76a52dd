/*
   Basic computer two-pass assembler.

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

// Package assembler translates the basic computer's symbolic assembly
// language into an address-to-word map, in two passes: the first binds
// labels and rejects structurally invalid source, the second resolves
// operands and emits words.
package assembler

import (
	"fmt"
	"strings"
	"unicode"

	op "github.com/rcornwell/manosim/emu/opcodemap"
	"github.com/rcornwell/manosim/emu/word"
)

const (
	kindOrg = 1 + iota
	kindHex
	kindDec
	kindInst
)

type srcLine struct {
	lineNo  int
	kind    int
	addr    uint16
	value   uint16 // resolved value for kindHex/kindDec
	mnem    string // mnemonic for kindInst
	operand string // raw operand text for kindInst
}

// Result is everything Assemble produces from one source text.
type Result struct {
	Success      bool
	MachineCode  map[uint16]uint16
	Labels       map[string]uint16
	Usage        map[uint16]string // "code" or "data"
	StartAddress uint16
	Errors       []string
}

// Assemble runs both passes over source and returns the combined result.
// It never panics on malformed input; every problem is appended to
// Result.Errors instead.
func Assemble(source string) Result {
	res := Result{
		MachineCode: map[uint16]uint16{},
		Labels:      map[string]uint16{},
		Usage:       map[uint16]string{},
	}

	lines, startSet, start, errs := pass1(source)
	res.StartAddress = start
	if !startSet {
		res.StartAddress = 0
	}

	res.Labels = lines.labels
	if len(errs) > 0 {
		res.Errors = errs
		res.Success = false
		return res
	}

	pass2Errs := pass2(lines.insts, lines.labels, res.MachineCode, res.Usage)
	if len(pass2Errs) > 0 {
		res.Errors = pass2Errs
		res.Success = false
		res.MachineCode = map[uint16]uint16{}
		return res
	}

	res.Success = true
	return res
}

type pass1Result struct {
	insts  []srcLine
	labels map[string]uint16
}

func pass1(source string) (pass1Result, bool, uint16, []string) {
	lc := 0
	startSet := false
	start := uint16(0)
	labels := map[string]uint16{}
	seen := map[string]bool{}
	var errs []string
	var insts []srcLine

	bind := func(name string, addr uint16, lineNo int) {
		if seen[name] {
			errs = append(errs, fmt.Sprintf("line %d: duplicate label %q", lineNo, name))
			return
		}
		seen[name] = true
		labels[name] = addr
	}

	for i, raw := range strings.Split(source, "\n") {
		lineNo := i + 1
		text := strings.TrimSpace(stripComment(raw))
		if text == "" {
			continue
		}

		label, hasLabel, rest := splitLabel(text)
		if hasLabel && !validLabel(label) {
			errs = append(errs, fmt.Sprintf("line %d: invalid label %q", lineNo, label))
			continue
		}

		mnem, operand := getName(rest)
		mnemUpper := strings.ToUpper(mnem)

		switch mnemUpper {
		case "":
			errs = append(errs, fmt.Sprintf("line %d: missing statement", lineNo))

		case "ORG":
			if hasLabel {
				bind(label, uint16(lc), lineNo)
			}
			v, ok := parseHex(strings.TrimSpace(operand), 0x1000)
			if !ok {
				errs = append(errs, fmt.Sprintf("line %d: ORG operand out of range", lineNo))
				continue
			}
			lc = v
			if !startSet {
				start = uint16(lc)
				startSet = true
			}

		case "END":
			if hasLabel {
				bind(label, uint16(lc), lineNo)
			}
			insts = append(insts, srcLine{lineNo: lineNo, kind: -1})
			goto done

		case "HEX":
			if hasLabel {
				bind(label, uint16(lc), lineNo)
			}
			v, ok := parseHex(strings.TrimSpace(operand), 0x10000)
			if !ok {
				errs = append(errs, fmt.Sprintf("line %d: HEX operand out of range", lineNo))
				continue
			}
			insts = append(insts, srcLine{lineNo: lineNo, kind: kindHex, addr: uint16(lc), value: uint16(v)})
			lc = (lc + 1) & int(word.AddrMask)

		case "DEC":
			if hasLabel {
				bind(label, uint16(lc), lineNo)
			}
			n, ok := parseDecimal(strings.TrimSpace(operand))
			if !ok {
				errs = append(errs, fmt.Sprintf("line %d: DEC operand out of range", lineNo))
				continue
			}
			insts = append(insts, srcLine{lineNo: lineNo, kind: kindDec, addr: uint16(lc), value: n})
			lc = (lc + 1) & int(word.AddrMask)

		default:
			_, isMRI := op.MRIOpcodes[mnemUpper]
			_, isRRI := op.RRIBits[mnemUpper]
			_, isIOI := op.IOIBits[mnemUpper]
			if !isMRI && !isRRI && !isIOI {
				errs = append(errs, fmt.Sprintf("line %d: unknown mnemonic %q", lineNo, mnem))
				continue
			}
			operand = strings.TrimSpace(operand)
			if isMRI && operand == "" {
				errs = append(errs, fmt.Sprintf("line %d: missing operand for %s", lineNo, mnemUpper))
				continue
			}
			if (isRRI || isIOI) && operand != "" {
				errs = append(errs, fmt.Sprintf("line %d: unexpected operand for %s", lineNo, mnemUpper))
				continue
			}
			if hasLabel {
				bind(label, uint16(lc), lineNo)
			}
			insts = append(insts, srcLine{
				lineNo:  lineNo,
				kind:    kindInst,
				addr:    uint16(lc),
				mnem:    mnemUpper,
				operand: operand,
			})
			lc = (lc + 1) & int(word.AddrMask)
		}
	}
done:
	return pass1Result{insts: insts, labels: labels}, startSet, start, errs
}

func pass2(lines []srcLine, labels map[string]uint16, code map[uint16]uint16, usage map[uint16]string) []string {
	var errs []string
	for _, l := range lines {
		switch l.kind {
		case -1: // END marker, nothing to emit
			continue
		case kindHex, kindDec:
			code[l.addr] = l.value
			usage[l.addr] = "data"
		case kindInst:
			w, err := resolveInst(l.mnem, l.operand, labels)
			if err != "" {
				errs = append(errs, fmt.Sprintf("line %d: %s", l.lineNo, err))
				continue
			}
			code[l.addr] = w
			usage[l.addr] = "code"
		}
	}
	return errs
}

func resolveInst(mnem, operand string, labels map[string]uint16) (uint16, string) {
	if bits, ok := op.RRIBits[mnem]; ok {
		return 0x7000 | bits, ""
	}
	if bits, ok := op.IOIBits[mnem]; ok {
		return 0xF000 | bits, ""
	}

	opcode := op.MRIOpcodes[mnem]
	tok, rest := getName(operand)
	rest = strings.TrimSpace(rest)
	indirect := false
	if rest != "" {
		if strings.EqualFold(rest, "I") {
			indirect = true
		} else {
			return 0, "extra data after operand"
		}
	}

	var addr int
	if a, ok := labels[tok]; ok {
		addr = int(a)
	} else if v, ok := parseHex(tok, 0x1000); ok && len(tok) <= 3 {
		addr = v
	} else {
		return 0, fmt.Sprintf("undefined operand %q", tok)
	}

	w := uint16(opcode)<<12 | (uint16(addr) & word.AddrMask)
	if indirect {
		w |= op.IndirectBit
	}
	return w, ""
}

// stripComment drops everything from the first '/' onward.
func stripComment(line string) string {
	if i := strings.IndexByte(line, '/'); i >= 0 {
		return line[:i]
	}
	return line
}

// splitLabel recognizes an optional "NAME," prefix.
func splitLabel(text string) (label string, hasLabel bool, rest string) {
	i := strings.IndexByte(text, ',')
	if i < 0 {
		return "", false, text
	}
	return strings.TrimSpace(text[:i]), true, text[i+1:]
}

func validLabel(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case unicode.IsLetter(r) || r == '_':
		case unicode.IsDigit(r) && i > 0:
		default:
			return false
		}
	}
	return true
}

// skipSpace skips leading whitespace.
func skipSpace(str string) string {
	for i := range str {
		if !unicode.IsSpace(rune(str[i])) {
			return str[i:]
		}
	}
	return ""
}

// getName returns the next whitespace-delimited token and the remainder.
func getName(str string) (string, string) {
	str = skipSpace(str)
	for i := range str {
		if unicode.IsSpace(rune(str[i])) {
			return str[:i], str[i+1:]
		}
	}
	return str, ""
}

// parseHex parses str as hex, rejecting empty input, non-hex characters,
// and values >= limit.
func parseHex(str string, limit int) (int, bool) {
	if str == "" {
		return 0, false
	}
	num := 0
	for _, by := range str {
		switch {
		case by >= '0' && by <= '9':
			num = num*16 + int(by-'0')
		case by >= 'a' && by <= 'f':
			num = num*16 + int(by-'a') + 10
		case by >= 'A' && by <= 'F':
			num = num*16 + int(by-'A') + 10
		default:
			return 0, false
		}
	}
	if num >= limit {
		return 0, false
	}
	return num, true
}

// parseDecimal parses str as an optionally-signed decimal and encodes it
// as a two's-complement 16-bit word.
func parseDecimal(str string) (uint16, bool) {
	if str == "" {
		return 0, false
	}
	neg := false
	if str[0] == '-' || str[0] == '+' {
		neg = str[0] == '-'
		str = str[1:]
	}
	if str == "" {
		return 0, false
	}
	n := int64(0)
	for _, by := range str {
		if by < '0' || by > '9' {
			return 0, false
		}
		n = n*10 + int64(by-'0')
	}
	if neg {
		n = -n
	}
	w, err := word.DecToWord16(n)
	if err != nil {
		return 0, false
	}
	return w, true
}
