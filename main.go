/*
 * manosim - Main process.
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

package main

import (
	"fmt"
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/rcornwell/manosim/command/parser"
	"github.com/rcornwell/manosim/command/reader"
	config "github.com/rcornwell/manosim/config/configparser"
	assembler "github.com/rcornwell/manosim/emu/assemble"
	"github.com/rcornwell/manosim/emu/core"
	"github.com/rcornwell/manosim/emu/cpu"
	"github.com/rcornwell/manosim/emu/memory"
	logger "github.com/rcornwell/manosim/util/logger"
)

// Logger is the program-wide default, wired into every package that
// exposes a Log hook.
var Logger *slog.Logger

func main() {
	optScript := getopt.StringLong("script", 's', "", "Startup script (load/start/log directives)")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optDebug := getopt.BoolLong("debug", 'd', "Mirror debug-level messages to stderr")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var file *os.File
	if *optLogFile != "" {
		var err error
		file, err = os.Create(*optLogFile)
		if err != nil {
			fmt.Println("cannot create log file:", err)
			os.Exit(1)
		}
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	Logger = slog.New(logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel}, optDebug))
	slog.SetDefault(Logger)

	memory.Log = Logger
	cpu.Log = Logger
	core.Log = Logger

	Logger.Info("manosim started")

	memory.Reset()
	cpu.Reset()

	commands := make(chan core.Packet)
	events := make(chan core.Event, 64)
	machine := core.New(commands, events)
	console := parser.NewConsole(commands)

	go machine.Start()
	go reader.EventPrinter(events)

	if *optScript != "" {
		if err := runScript(*optScript, console); err != nil {
			Logger.Error(err.Error())
		}
	}

	reader.ConsoleReader(console)

	Logger.Info("shutting down")
	machine.Stop()
}

func runScript(path string, console *parser.Console) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	directives, err := config.Parse(f)
	if err != nil {
		return err
	}

	for _, d := range directives {
		switch d.Kind {
		case config.DirLoad:
			data, err := os.ReadFile(d.Path)
			if err != nil {
				return err
			}
			res := assembler.Assemble(string(data))
			if !res.Success {
				return fmt.Errorf("assembly of %s failed", d.Path)
			}
			console.Commands() <- core.Packet{Msg: core.MsgLoad, Program: res.MachineCode}

		case config.DirStart:
			console.Commands() <- core.Packet{Msg: core.MsgSetPC, StartAddress: d.Addr}

		case config.DirLog:
			f, err := os.Create(d.Path)
			if err != nil {
				return err
			}
			Logger = slog.New(logger.NewHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}, new(bool)))
			slog.SetDefault(Logger)
			memory.Log = Logger
			cpu.Log = Logger
			core.Log = Logger
		}
	}
	return nil
}
