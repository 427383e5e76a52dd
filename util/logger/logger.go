/*
 * manosim - Wrapper for slog
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

// Package logger renders slog records as single timestamped text lines
// and, when debug mirroring is switched on, fans warnings and errors
// (always) or every record (in debug mode) out to a second writer.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// lineHandler writes one line per record: time, level, message, then
// each attribute's value in call order. It carries accumulated attrs
// from WithAttrs explicitly rather than delegating to a second
// slog.Handler underneath.
type lineHandler struct {
	mu    *sync.Mutex
	out   io.Writer
	level slog.Leveler
	attrs []slog.Attr
}

func newLineHandler(out io.Writer, level slog.Leveler) *lineHandler {
	return &lineHandler{mu: &sync.Mutex{}, out: out, level: level}
}

func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	min := slog.LevelInfo
	if h.level != nil {
		min = h.level.Level()
	}
	return level >= min
}

func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make([]string, 0, 3+len(h.attrs)+r.NumAttrs())
	fields = append(fields, r.Time.Format("2006/01/02 15:04:05"), r.Level.String()+":", r.Message)
	for _, a := range h.attrs {
		fields = append(fields, a.Value.String())
	}
	r.Attrs(func(a slog.Attr) bool {
		fields = append(fields, a.Value.String())
		return true
	})

	line := []byte(strings.Join(fields, " ") + "\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(line)
	return err
}

func (h *lineHandler) WithAttrs(attrs []slog.Attr) *lineHandler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &lineHandler{mu: h.mu, out: h.out, level: h.level, attrs: merged}
}

// WithGroup is a no-op: every call site logs flat key/value attrs, so
// there is nothing for a group prefix to namespace.
func (h *lineHandler) WithGroup(string) *lineHandler {
	return h
}

// Handler is the program-wide slog.Handler: a primary destination
// (a log file, or stdout when none was given) plus an optional stderr
// mirror controlled by a live *bool so a running process can be told
// to start or stop mirroring without rebuilding the logger.
type Handler struct {
	primary *lineHandler
	stderr  *lineHandler
	debug   *bool
}

// NewHandler builds a Handler writing to file (or stdout if file is
// nil). debug, read on every Handle call, additionally mirrors every
// record to stderr; warnings and errors are always mirrored regardless
// of its value.
func NewHandler(file io.Writer, opts *slog.HandlerOptions, debug *bool) *Handler {
	out := file
	if out == nil {
		out = os.Stdout
	}
	var level slog.Leveler
	if opts != nil {
		level = opts.Level
	}
	if debug == nil {
		debug = new(bool)
	}
	return &Handler{
		primary: newLineHandler(out, level),
		stderr:  newLineHandler(os.Stderr, level),
		debug:   debug,
	}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.primary.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	err := h.primary.Handle(ctx, r)
	if *h.debug || r.Level >= slog.LevelWarn {
		if mirrorErr := h.stderr.Handle(ctx, r); mirrorErr != nil {
			err = mirrorErr
		}
	}
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{primary: h.primary.WithAttrs(attrs), stderr: h.stderr.WithAttrs(attrs), debug: h.debug}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{primary: h.primary.WithGroup(name), stderr: h.stderr.WithGroup(name), debug: h.debug}
}

// SetDebug repoints the handler at a new debug flag, e.g. after a
// startup script reopens the log file and rebuilds the logger.
func (h *Handler) SetDebug(debug *bool) {
	if debug == nil {
		debug = new(bool)
	}
	h.debug = debug
}
