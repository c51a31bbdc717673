// Package terminal talks to the controlling terminal: raw mode, window
// geometry, the alternate screen and decoding of raw input bytes into key
// events.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"golang.org/x/term"
)

const (
	seqClearScreen    = "\x1b[2J"
	seqCursorHome     = "\x1b[H"
	seqAltScreenEnter = "\x1b[?47h"
	seqAltScreenLeave = "\x1b[?47l"
)

var ErrNoSize = errors.New("terminal size unavailable")

// Terminal wraps the input and output files of the controlling terminal.
type Terminal struct {
	in    *os.File
	out   *os.File
	inFd  int
	outFd int

	saved *term.State
	alt   bool
}

func Open(in, out *os.File) *Terminal {
	return &Terminal{
		in:    in,
		out:   out,
		inFd:  int(in.Fd()),
		outFd: int(out.Fd()),
	}
}

// IsTerminal reports whether both ends are attached to a terminal.
func (t *Terminal) IsTerminal() bool {
	return term.IsTerminal(t.inFd) && term.IsTerminal(t.outFd)
}

// Size returns the window size in rows and columns.
func (t *Terminal) Size() (rows, cols int, err error) {
	cols, rows, err = term.GetSize(t.outFd)
	if err != nil {
		return 0, 0, fmt.Errorf("get window size: %w", err)
	}
	if cols == 0 {
		return 0, 0, ErrNoSize
	}
	return rows, cols, nil
}

// Write sends p to the terminal in a single write call.
func (t *Terminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return n, err
}

func (t *Terminal) ClearScreen() error {
	_, err := io.WriteString(t.out, seqClearScreen+seqCursorHome)
	return err
}

func (t *Terminal) EnterAlternateScreen() error {
	if t.alt {
		return nil
	}
	if _, err := io.WriteString(t.out, seqAltScreenEnter); err != nil {
		return err
	}
	t.alt = true
	return nil
}

// LeaveAlternateScreen is a no-op unless EnterAlternateScreen succeeded.
func (t *Terminal) LeaveAlternateScreen() error {
	if !t.alt {
		return nil
	}
	t.alt = false
	_, err := io.WriteString(t.out, seqAltScreenLeave)
	return err
}

// ResizeWatcher records window size changes until the control loop
// collects them.
type ResizeWatcher struct {
	pending atomic.Bool
	stop    func()
}

func (w *ResizeWatcher) notify() { w.pending.Store(true) }

// Pending reports and clears a recorded resize.
func (w *ResizeWatcher) Pending() bool { return w.pending.Swap(false) }

func (w *ResizeWatcher) Stop() {
	if w.stop != nil {
		w.stop()
		w.stop = nil
	}
}
