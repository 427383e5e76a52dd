/*
 * manosim - Command reader.
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

// Package reader drives the interactive console: a liner prompt loop
// handing each line to package parser, plus a goroutine draining the
// core's broadcast event stream so output and step traces show up as
// they happen.
package reader

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/peterh/liner"

	"github.com/rcornwell/manosim/command/parser"
	"github.com/rcornwell/manosim/emu/core"
)

// EventPrinter drains events and prints them until the channel is
// closed. Run it in its own goroutine alongside ConsoleReader.
func EventPrinter(events chan core.Event) {
	for e := range events {
		switch e.Kind {
		case core.EventStep:
			r := e.Result
			fmt.Printf("[sc=%d pc=%03x ar=%03x %s] %s\n", r.SC, r.PC, r.AR, r.State, r.Message)
		case core.EventOutput:
			fmt.Printf("OUT: %c (%02x)\n", e.Char, e.Char)
		case core.EventInputRequired:
			fmt.Println("waiting for input -- use: input <hex-byte>")
		}
	}
}

// ConsoleReader runs the read-eval-print loop until "quit" or the user
// aborts with Ctrl-D/Ctrl-C.
func ConsoleReader(console *parser.Console) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(l string) []string {
		return parser.CompleteCmd(l)
	})

	for {
		command, err := line.Prompt("manosim> ")
		if err == nil {
			line.AppendHistory(command)
			quit, cmdErr := parser.ProcessCommand(command, console)
			if cmdErr != nil {
				fmt.Println("Error: " + cmdErr.Error())
			}
			if quit {
				return
			}
			continue
		}

		if errors.Is(err, liner.ErrPromptAborted) {
			return
		}
		slog.Error("error reading line: " + err.Error())
		return
	}
}
