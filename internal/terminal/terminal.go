// Package terminal provides the controlling terminal's raw-mode capability.
//
// Raw mode here means unbuffered, unechoed input (canonical mode and echo off, one byte per read); signals and
// output processing stay enabled. The mode is process-wide state, so it is only reachable through
// [Terminal.WithRawMode], which restores the previous settings on every exit path.
package terminal

import (
	"bufio"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/term"
)

// interruptedExitCode is the conventional status for a process ended by SIGINT.
const interruptedExitCode = 130

// Terminal wraps the standard streams of an interactive session.
type Terminal struct {
	in     *os.File
	out    *os.File
	reader *bufio.Reader

	isTerminal func(fd int) bool
	makeRaw    func(fd int) (restore func() error, err error)
	exit       func(code int)
}

// New returns a [Terminal] reading from in and writing to out.
func New(in, out *os.File) *Terminal {
	return &Terminal{
		in:         in,
		out:        out,
		reader:     bufio.NewReader(in),
		isTerminal: term.IsTerminal,
		makeRaw:    makeCbreak,
		exit:       os.Exit,
	}
}

// IsInteractive reports whether both input and output are attached to a terminal.
func (t *Terminal) IsInteractive() bool {
	return t.isTerminal(int(t.in.Fd())) && t.isTerminal(int(t.out.Fd()))
}

// Reader returns the buffered input shared by raw key reads and line prompts.
func (t *Terminal) Reader() *bufio.Reader {
	return t.reader
}

// ReadByte reads one raw input byte.
func (t *Terminal) ReadByte() (byte, error) {
	return t.reader.ReadByte()
}

// Write writes to the terminal output.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// WithRawMode runs fn with raw input enabled and reports whether raw mode was engaged.
//
// When the session is not interactive or the mode cannot be changed, fn is not run and engaged is false; that is
// a capability answer, not an error. Prior settings are restored when fn returns or panics, and before the process
// exits on SIGINT/SIGTERM.
func (t *Terminal) WithRawMode(fn func() error) (engaged bool, err error) {
	if !t.IsInteractive() {
		return false, nil
	}

	restore, err := t.makeRaw(int(t.in.Fd()))
	if err != nil {
		return false, nil
	}

	var once sync.Once
	release := func() { once.Do(func() { _ = restore() }) }

	signals := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-signals:
			release()
			t.exit(interruptedExitCode)
		case <-done:
		}
	}()

	defer func() {
		signal.Stop(signals)
		close(done)
		release()
	}()

	return true, fn()
}
