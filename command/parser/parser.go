/*
 * manosim - Command parser.
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

// Package parser is the console's command dispatcher: one line in,
// a prefix match against a short command table, out to the core over
// its command channel.
package parser

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"

	assembler "github.com/rcornwell/manosim/emu/assemble"
	core "github.com/rcornwell/manosim/emu/core"
	disassembler "github.com/rcornwell/manosim/emu/disassemble"
	hex "github.com/rcornwell/manosim/util/hex"
)

// formatAddr, formatWord and formatByte build fixed-width hex strings
// for console output, the one place this package cares about the
// difference between a 12-bit address and a 16-bit word.
func formatAddr(a uint16) string {
	var b strings.Builder
	hex.FormatAddr(&b, a)
	return b.String()
}

func formatWord(w uint16) string {
	var b strings.Builder
	hex.FormatWord(&b, w)
	return b.String()
}

func formatByte(v byte) string {
	var b strings.Builder
	hex.FormatByte(&b, v)
	return b.String()
}

func formatDigit(v uint8) string {
	var b strings.Builder
	hex.FormatDigit(&b, v)
	return b.String()
}

type cmd struct {
	name    string // Command name.
	min     int    // Minimum unambiguous prefix length.
	process func(*cmdLine, *Console) (bool, error)
}

type cmdLine struct {
	line string
	pos  int
}

var cmdList = []cmd{
	{name: "load", min: 1, process: load},
	{name: "assemble", min: 1, process: assemble},
	{name: "step", min: 2, process: step},
	{name: "run", min: 1, process: run},
	{name: "stop", min: 2, process: stop},
	{name: "reset", min: 1, process: reset},
	{name: "show", min: 2, process: show},
	{name: "input", min: 1, process: input},
	{name: "disasm", min: 2, process: disasm},
	{name: "quit", min: 1, process: quit},
}

// Console holds the channel the core reads commands from. A separate
// goroutine (see EventPrinter in package reader) drains the core's broadcast
// event stream; Console only handles request/response commands.
type Console struct {
	commands chan core.Packet
}

// NewConsole returns a Console issuing commands on commands.
func NewConsole(commands chan core.Packet) *Console {
	return &Console{commands: commands}
}

// Commands exposes the console's command channel, for callers (such as
// a startup script) that need to issue packets outside the REPL.
func (c *Console) Commands() chan core.Packet {
	return c.commands
}

// ProcessCommand executes one command line. The bool return reports
// whether the console should exit (the "quit" command).
func ProcessCommand(commandLine string, console *Console) (bool, error) {
	line := cmdLine{line: commandLine}
	name := line.getWord()

	match := matchList(name)
	if len(match) == 0 {
		return false, errors.New("command not found: " + name)
	}
	if len(match) > 1 {
		return false, errors.New("ambiguous command: " + name)
	}
	return match[0].process(&line, console)
}

// CompleteCmd offers command-name completions for line editing; it
// does not attempt to complete arguments.
func CompleteCmd(commandLine string) []string {
	line := cmdLine{line: commandLine}
	name := line.getWord()
	if !line.isEOL() {
		return nil
	}
	matches := make([]string, 0, len(cmdList))
	for _, m := range matchList(name) {
		matches = append(matches, m.name)
	}
	return matches
}

func matchCommand(m cmd, name string) bool {
	if len(name) > len(m.name) {
		return false
	}
	for i := range name {
		if m.name[i] != name[i] {
			return false
		}
	}
	return len(name) >= m.min
}

func matchList(name string) []cmd {
	if name == "" {
		return nil
	}
	var match []cmd
	for _, m := range cmdList {
		if matchCommand(m, name) {
			match = append(match, m)
		}
	}
	return match
}

func (l *cmdLine) skipSpace() {
	for l.pos < len(l.line) && unicode.IsSpace(rune(l.line[l.pos])) {
		l.pos++
	}
}

func (l *cmdLine) isEOL() bool {
	l.skipSpace()
	return l.pos >= len(l.line)
}

func (l *cmdLine) getWord() string {
	l.skipSpace()
	start := l.pos
	for l.pos < len(l.line) && !unicode.IsSpace(rune(l.line[l.pos])) {
		l.pos++
	}
	return strings.ToLower(l.line[start:l.pos])
}

func (l *cmdLine) getRest() string {
	l.skipSpace()
	rest := strings.TrimSpace(l.line[l.pos:])
	l.pos = len(l.line)
	return rest
}

func load(line *cmdLine, console *Console) (bool, error) {
	path := line.getRest()
	if path == "" {
		return false, errors.New("load requires a file path")
	}
	res, err := assembleFile(path)
	if err != nil {
		return false, err
	}
	console.commands <- core.Packet{Msg: core.MsgReset}
	console.commands <- core.Packet{Msg: core.MsgLoad, Program: res.MachineCode}
	console.commands <- core.Packet{Msg: core.MsgSetPC, StartAddress: res.StartAddress}
	fmt.Printf("loaded %s, start address %03x\n", path, res.StartAddress)
	return false, nil
}

func assemble(line *cmdLine, console *Console) (bool, error) {
	path := line.getRest()
	if path == "" {
		return false, errors.New("assemble requires a file path")
	}
	res, err := assembleFile(path)
	if err != nil {
		return false, err
	}
	console.commands <- core.Packet{Msg: core.MsgLoad, Program: res.MachineCode}
	fmt.Printf("assembled %s: %d words, start address %03x\n", path, len(res.MachineCode), res.StartAddress)
	return false, nil
}

func assembleFile(path string) (assembler.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return assembler.Result{}, err
	}
	res := assembler.Assemble(string(data))
	if !res.Success {
		return assembler.Result{}, fmt.Errorf("assembly failed: %s", strings.Join(res.Errors, "; "))
	}
	return res, nil
}

func step(line *cmdLine, console *Console) (bool, error) {
	n := 1
	if tok := line.getWord(); tok != "" {
		v, err := strconv.Atoi(tok)
		if err != nil || v < 1 {
			return false, fmt.Errorf("invalid step count: %q", tok)
		}
		n = v
	}
	for i := 0; i < n; i++ {
		console.commands <- core.Packet{Msg: core.MsgStep}
	}
	return false, nil
}

func run(_ *cmdLine, console *Console) (bool, error) {
	console.commands <- core.Packet{Msg: core.MsgRun}
	return false, nil
}

func stop(_ *cmdLine, console *Console) (bool, error) {
	console.commands <- core.Packet{Msg: core.MsgStop}
	return false, nil
}

func reset(_ *cmdLine, console *Console) (bool, error) {
	console.commands <- core.Packet{Msg: core.MsgReset}
	return false, nil
}

func show(_ *cmdLine, console *Console) (bool, error) {
	reply := make(chan core.Event, 1)
	console.commands <- core.Packet{Msg: core.MsgShow, Reply: reply}

	select {
	case e := <-reply:
		s := e.Snapshot
		fmt.Printf("PC=%s AR=%s AC=%s DR=%s IR=%s TR=%s\n",
			formatAddr(s.PC), formatAddr(s.AR), formatWord(s.AC), formatWord(s.DR), formatWord(s.IR), formatWord(s.TR))
		fmt.Printf("E=%v S=%v IEN=%v FGI=%v FGO=%v R=%v SC=%s INPR=%s OUTR=%s\n",
			s.E, s.S, s.IEN, s.FGI, s.FGO, s.R, formatDigit(s.SC), formatByte(s.INPR), formatByte(s.OUTR))
		return false, nil
	case <-time.After(time.Second):
		return false, errors.New("timed out waiting for core")
	}
}

func input(line *cmdLine, console *Console) (bool, error) {
	tok := line.getWord()
	if tok == "" {
		return false, errors.New("input requires a hex byte")
	}
	v, err := strconv.ParseUint(tok, 16, 8)
	if err != nil {
		return false, fmt.Errorf("invalid hex byte: %q", tok)
	}
	console.commands <- core.Packet{Msg: core.MsgSetInput, Char: byte(v)}
	return false, nil
}

func disasm(line *cmdLine, console *Console) (bool, error) {
	addrTok := line.getWord()
	if addrTok == "" {
		return false, errors.New("disasm requires a hex address")
	}
	addr, err := strconv.ParseUint(addrTok, 16, 12)
	if err != nil {
		return false, fmt.Errorf("invalid hex address: %q", addrTok)
	}
	count := uint64(1)
	if countTok := line.getWord(); countTok != "" {
		count, err = strconv.ParseUint(countTok, 16, 12)
		if err != nil {
			return false, fmt.Errorf("invalid hex count: %q", countTok)
		}
	}

	reply := make(chan core.Event, 1)
	console.commands <- core.Packet{Msg: core.MsgDisasm, Addr: uint16(addr), Count: uint16(count), Reply: reply}

	select {
	case e := <-reply:
		for i, w := range e.Words {
			fmt.Printf("%s: %s  %s\n", formatAddr(e.Addr+uint16(i)), formatWord(w), disassembler.Disassemble(w))
		}
		return false, nil
	case <-time.After(time.Second):
		return false, errors.New("timed out waiting for core")
	}
}

func quit(_ *cmdLine, _ *Console) (bool, error) {
	return true, nil
}
