//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

func openFileTerminal(t *testing.T) (*Terminal, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out")
	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	t.Cleanup(func() { out.Close() })
	return Open(os.Stdin, out), path
}

func TestAlternateScreenPairing(t *testing.T) {
	term, path := openFileTerminal(t)

	if err := term.LeaveAlternateScreen(); err != nil {
		t.Fatalf("leave before enter: %v", err)
	}
	if err := term.EnterAlternateScreen(); err != nil {
		t.Fatalf("enter: %v", err)
	}
	if err := term.EnterAlternateScreen(); err != nil {
		t.Fatalf("second enter: %v", err)
	}
	if err := term.LeaveAlternateScreen(); err != nil {
		t.Fatalf("leave: %v", err)
	}
	if err := term.LeaveAlternateScreen(); err != nil {
		t.Fatalf("second leave: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got := string(data); got != seqAltScreenEnter+seqAltScreenLeave {
		t.Fatalf("output = %q", got)
	}
}

func TestClearScreenAndWrite(t *testing.T) {
	term, path := openFileTerminal(t)
	if err := term.ClearScreen(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := term.Write([]byte("frame")); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got := string(data); got != "\x1b[2J\x1b[Hframe" {
		t.Fatalf("output = %q", got)
	}
}

func TestSizeFailsWithoutTerminal(t *testing.T) {
	term, _ := openFileTerminal(t)
	if _, _, err := term.Size(); err == nil {
		t.Fatalf("Size on a regular file succeeded")
	}
}

func TestDisableRawModeWithoutEnable(t *testing.T) {
	term, _ := openFileTerminal(t)
	if err := term.DisableRawMode(); err != nil {
		t.Fatalf("DisableRawMode error: %v", err)
	}
}

func TestPollReadsPipe(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	term := Open(r, os.Stdout)

	if _, err := w.Write([]byte("q")); err != nil {
		t.Fatalf("write: %v", err)
	}
	w.Close()

	b, ok, err := term.Poll()
	if err != nil || !ok || b != 'q' {
		t.Fatalf("Poll = %q, %v, %v; want 'q', true, nil", b, ok, err)
	}
	b, ok, err = term.Poll()
	if err != nil || ok {
		t.Fatalf("Poll at EOF = %q, %v, %v; want no data", b, ok, err)
	}
}

func TestWatchResizeRecordsSignal(t *testing.T) {
	term, _ := openFileTerminal(t)
	w := term.WatchResize()
	defer w.Stop()

	if w.Pending() {
		t.Fatalf("Pending before any signal")
	}
	if err := unix.Kill(os.Getpid(), unix.SIGWINCH); err != nil {
		t.Fatalf("kill: %v", err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for !w.Pending() {
		if time.Now().After(deadline) {
			t.Fatalf("resize not recorded")
		}
		time.Sleep(10 * time.Millisecond)
	}
	if w.Pending() {
		t.Fatalf("Pending not cleared after read")
	}
}
