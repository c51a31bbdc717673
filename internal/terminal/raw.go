//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// EnableRawMode saves the current attributes and switches the input to
// byte-at-a-time reads that return after at most 100ms.
func (t *Terminal) EnableRawMode() error {
	if t.saved != nil {
		return nil
	}
	state, err := term.MakeRaw(t.inFd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	t.saved = state

	tio, err := unix.IoctlGetTermios(t.inFd, ioctlReadTermios)
	if err != nil {
		_ = t.DisableRawMode()
		return fmt.Errorf("read terminal attributes: %w", err)
	}
	tio.Iflag &^= unix.INPCK
	tio.Cc[unix.VMIN] = 0
	tio.Cc[unix.VTIME] = 1
	if err := unix.IoctlSetTermios(t.inFd, ioctlWriteTermios, tio); err != nil {
		_ = t.DisableRawMode()
		return fmt.Errorf("set read timeout: %w", err)
	}
	return nil
}

// DisableRawMode restores the attributes saved by EnableRawMode.
func (t *Terminal) DisableRawMode() error {
	if t.saved == nil {
		return nil
	}
	state := t.saved
	t.saved = nil
	if err := term.Restore(t.inFd, state); err != nil {
		return fmt.Errorf("disable raw mode: %w", err)
	}
	return nil
}

// Poll performs one timed read. ok is false when the timeout expired
// without input.
func (t *Terminal) Poll() (b byte, ok bool, err error) {
	var buf [1]byte
	n, err := unix.Read(t.inFd, buf[:])
	if err != nil {
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("read input: %w", err)
	}
	if n == 0 {
		return 0, false, nil
	}
	return buf[0], true, nil
}

// WatchResize subscribes to SIGWINCH. The signal goroutine only records
// the event; geometry is queried later by the control loop.
func (t *Terminal) WatchResize() *ResizeWatcher {
	w := &ResizeWatcher{}
	sig := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sig, unix.SIGWINCH)
	go func() {
		for {
			select {
			case <-sig:
				w.notify()
			case <-done:
				return
			}
		}
	}()
	w.stop = func() {
		signal.Stop(sig)
		close(done)
	}
	return w
}
