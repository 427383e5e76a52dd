/*
   Console I/O collaborator hooks for the basic computer.

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
   RICHARD CORNWELL BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
   IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
   CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*/

// Package device holds the two collaborator hooks the CPU invokes
// synchronously for the machine's one fixed console device: one when OUT
// latches a character, one when INP can't proceed because FGI is clear.
package device

// Hooks are the CPU's synchronous callbacks into the console
// collaborator. Either field may be nil, in which case the corresponding
// event is simply not delivered.
type Hooks struct {
	// OnOutput is invoked during the step that executes OUT, after
	// OUTR is latched and before the step returns.
	OnOutput func(ch byte)

	// OnInputRequired is invoked when INP cannot proceed because FGI
	// is clear; the CPU enters the WaitInput state until the
	// collaborator calls SetInput.
	OnInputRequired func()
}
