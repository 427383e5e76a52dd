/*
 * manosim - Startup script parser
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

// Package configparser reads a startup script: one directive per line,
// '#' starts a comment to end of line. Supported directives are
// "load <path>", "start <hex-addr>" and "log <path>".
package configparser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// DirectiveKind selects which startup action a Directive requests.
type DirectiveKind int

const (
	DirLoad DirectiveKind = iota
	DirStart
	DirLog
)

// Directive is one parsed line of a startup script.
type Directive struct {
	Kind DirectiveKind
	Path string // DirLoad, DirLog
	Addr uint16 // DirStart
}

type optionLine struct {
	line string
	pos  int
}

// Parse reads every directive from r, in order. A malformed line is
// reported with its 1-based line number; parsing stops at the first
// error.
func Parse(r io.Reader) ([]Directive, error) {
	var directives []Directive
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := stripComment(scanner.Text())
		opt := optionLine{line: text}
		opt.skipSpace()
		if opt.isEOL() {
			continue
		}

		word := opt.getWord()
		d, err := parseDirective(word, &opt)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		directives = append(directives, d)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return directives, nil
}

func parseDirective(word string, opt *optionLine) (Directive, error) {
	switch word {
	case "load":
		path := opt.getRest()
		if path == "" {
			return Directive{}, fmt.Errorf("load requires a file path")
		}
		return Directive{Kind: DirLoad, Path: path}, nil

	case "start":
		tok := opt.getWord()
		addr, err := strconv.ParseUint(tok, 16, 12)
		if err != nil {
			return Directive{}, fmt.Errorf("start requires a hex address: %w", err)
		}
		return Directive{Kind: DirStart, Addr: uint16(addr)}, nil

	case "log":
		path := opt.getRest()
		if path == "" {
			return Directive{}, fmt.Errorf("log requires a file path")
		}
		return Directive{Kind: DirLog, Path: path}, nil

	default:
		return Directive{}, fmt.Errorf("unknown directive: %q", word)
	}
}

func stripComment(line string) string {
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		return line[:idx]
	}
	return line
}

func (o *optionLine) skipSpace() {
	for o.pos < len(o.line) && unicode.IsSpace(rune(o.line[o.pos])) {
		o.pos++
	}
}

func (o *optionLine) isEOL() bool {
	return o.pos >= len(o.line)
}

// getWord returns the next whitespace-delimited token, lower-cased.
func (o *optionLine) getWord() string {
	o.skipSpace()
	start := o.pos
	for o.pos < len(o.line) && !unicode.IsSpace(rune(o.line[o.pos])) {
		o.pos++
	}
	return strings.ToLower(o.line[start:o.pos])
}

// getRest returns everything remaining on the line, trimmed, case
// preserved (a file path may be case-sensitive).
func (o *optionLine) getRest() string {
	o.skipSpace()
	rest := strings.TrimSpace(o.line[o.pos:])
	o.pos = len(o.line)
	return rest
}
