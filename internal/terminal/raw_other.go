//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package terminal

import "errors"

func (t *Terminal) EnableRawMode() error {
	return errors.ErrUnsupported
}

func (t *Terminal) DisableRawMode() error {
	return nil
}

func (t *Terminal) Poll() (byte, bool, error) {
	return 0, false, errors.ErrUnsupported
}

func (t *Terminal) WatchResize() *ResizeWatcher {
	return &ResizeWatcher{}
}
