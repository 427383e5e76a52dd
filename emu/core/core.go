/*
   Core basic computer emulator loop.

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

// Package core owns the CPU and memory exclusively on one goroutine,
// the only thing that ever calls cpu.Step. Everything else talks to it
// through a command channel.
package core

import (
	"log/slog"
	"sync"
	"time"

	"github.com/rcornwell/manosim/emu/cpu"
	"github.com/rcornwell/manosim/emu/device"
	"github.com/rcornwell/manosim/emu/memory"
)

// MsgType selects the operation a Packet requests of the core.
type MsgType int

const (
	MsgStep MsgType = iota
	MsgRun
	MsgStop
	MsgReset
	MsgLoad
	MsgSetPC
	MsgSetInput
	MsgClearInput
	MsgShow
	MsgDisasm
)

// Packet is a command sent to the core over its command channel. Reply
// is set by Show and Disasm, which need a response correlated to their
// own request rather than the broadcast events stream.
type Packet struct {
	Msg          MsgType
	Program      map[uint16]uint16
	StartAddress uint16
	Char         byte
	Addr         uint16
	Count        uint16
	Reply        chan Event
}

// EventKind selects what an Event reports.
type EventKind int

const (
	EventStep EventKind = iota
	EventOutput
	EventInputRequired
	EventSnapshot
	EventDisasm
)

// Event is something the core reports: a step's result on the
// broadcast stream, or a Show/Disasm reply on a request's own Reply
// channel.
type Event struct {
	Kind     EventKind
	Result   cpu.Result
	Char     byte
	Snapshot cpu.Snapshot
	Addr     uint16
	Words    []uint16
}

// Log is the sink for shutdown and timeout notices. Nil by default.
var Log *slog.Logger

// Core is a single goroutine driving the CPU by calling cpu.Step in a
// loop, receiving commands and reporting events through channels.
type Core struct {
	wg       sync.WaitGroup
	done     chan struct{}
	running  bool
	commands chan Packet
	events   chan Event
}

// New creates a Core reading commands from commands and, if events is
// non-nil, reporting steps and I/O hook activity on it.
func New(commands chan Packet, events chan Event) *Core {
	return &Core{
		commands: commands,
		events:   events,
		done:     make(chan struct{}),
	}
}

// Start runs the core's command loop. It blocks until Stop is called,
// so the caller is expected to invoke it as `go core.Start()`.
func (c *Core) Start() {
	c.wg.Add(1)
	defer c.wg.Done()

	cpu.SetHooks(device.Hooks{
		OnOutput:        c.onOutput,
		OnInputRequired: c.onInputRequired,
	})

	for {
		if c.running {
			r := cpu.Step()
			c.emit(Event{Kind: EventStep, Result: r})
			if r.State != cpu.Run {
				c.running = false
			}
			select {
			case <-c.done:
				c.shutdown()
				return
			case packet := <-c.commands:
				c.processPacket(packet)
			default:
			}
			continue
		}

		select {
		case <-c.done:
			c.shutdown()
			return
		case packet := <-c.commands:
			c.processPacket(packet)
		}
	}
}

func (c *Core) shutdown() {
	if Log != nil {
		Log.Info("core shutdown")
	}
}

// Stop signals the core to exit and waits, up to one second, for it to
// do so.
func (c *Core) Stop() {
	close(c.done)
	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		if Log != nil {
			Log.Warn("timed out waiting for core to finish")
		}
	}
}

func (c *Core) processPacket(p Packet) {
	switch p.Msg {
	case MsgStep:
		r := cpu.Step()
		c.emit(Event{Kind: EventStep, Result: r})

	case MsgRun:
		c.running = true

	case MsgStop:
		c.running = false

	case MsgReset:
		cpu.Reset()
		memory.Reset()

	case MsgLoad:
		memory.LoadProgram(p.Program)

	case MsgSetPC:
		cpu.SetPC(p.StartAddress)

	case MsgSetInput:
		cpu.SetInput(p.Char)

	case MsgClearInput:
		cpu.ClearInput()

	case MsgShow:
		if p.Reply != nil {
			p.Reply <- Event{Kind: EventSnapshot, Snapshot: cpu.GetSnapshot()}
		}

	case MsgDisasm:
		words := make([]uint16, p.Count)
		for i := range words {
			words[i] = memory.Read(p.Addr + uint16(i))
		}
		if p.Reply != nil {
			p.Reply <- Event{Kind: EventDisasm, Addr: p.Addr, Words: words}
		}
	}
}

func (c *Core) onOutput(ch byte) {
	c.emit(Event{Kind: EventOutput, Char: ch})
}

func (c *Core) onInputRequired() {
	c.emit(Event{Kind: EventInputRequired})
}

// emit delivers e without blocking the step loop; a consumer too slow
// to keep up simply misses events rather than stalling the CPU.
func (c *Core) emit(e Event) {
	if c.events == nil {
		return
	}
	select {
	case c.events <- e:
	default:
	}
}
