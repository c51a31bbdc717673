package editor

import (
	"bytes"
	"fmt"
	"io"
)

const (
	seqHideCursor  = "\x1b[?25l"
	seqShowCursor  = "\x1b[?25h"
	seqCursorHome  = "\x1b[H"
	seqClearLine   = "\x1b[K"
	seqInverse     = "\x1b[7m"
	seqResetStyle  = "\x1b[m"
	welcomeMessage = "tte -- version " + Version
)

// Frame scrolls and composes one full screen update.
func (e *Editor) Frame() []byte {
	e.Scroll()

	var b bytes.Buffer
	b.WriteString(seqHideCursor)
	b.WriteString(seqCursorHome)
	e.drawRows(&b)
	e.drawStatusBar(&b)
	e.drawMessageBar(&b)
	fmt.Fprintf(&b, "\x1b[%d;%dH", e.cursor.Row-e.rowOff+1, e.rx-e.colOff+1)
	b.WriteString(seqShowCursor)
	return b.Bytes()
}

// Render writes a frame to w with a single Write call.
func (e *Editor) Render(w io.Writer) error {
	frame := e.Frame()
	n, err := w.Write(frame)
	if err == nil && n < len(frame) {
		err = io.ErrShortWrite
	}
	return err
}

func (e *Editor) showWelcome() bool {
	return e.doc.Len() == 0 && e.doc.FileName() == "" && e.doc.Dirty() == 0
}

func (e *Editor) drawRows(b *bytes.Buffer) {
	welcome := e.showWelcome()
	for y := 0; y < e.screenRows; y++ {
		fileRow := y + e.rowOff
		if row := e.doc.Row(fileRow); row != nil {
			render := row.Render()
			if e.colOff < len(render) {
				line := render[e.colOff:]
				if len(line) > e.screenCols {
					line = line[:e.screenCols]
				}
				b.Write(line)
			}
		} else if welcome && y == e.screenRows/3 {
			e.drawWelcome(b)
		} else {
			b.WriteByte('~')
		}
		b.WriteString(seqClearLine)
		b.WriteString("\r\n")
	}
}

func (e *Editor) drawWelcome(b *bytes.Buffer) {
	msg := welcomeMessage
	if len(msg) > e.screenCols {
		msg = msg[:e.screenCols]
	}
	padding := (e.screenCols - len(msg)) / 2
	if padding > 0 {
		b.WriteByte('~')
		padding--
	}
	for ; padding > 0; padding-- {
		b.WriteByte(' ')
	}
	b.WriteString(msg)
}

func (e *Editor) drawStatusBar(b *bytes.Buffer) {
	name := e.doc.FileName()
	if name == "" {
		name = "[No Name]"
	}
	modified := ""
	if e.doc.Dirty() > 0 {
		modified = "(modified)"
	}
	left := fmt.Sprintf("%.20s - %d lines %s", name, e.doc.Len(), modified)
	right := fmt.Sprintf("%d/%d %d/%d",
		e.cursor.Row+1, e.doc.Len(), e.cursor.Col+1, e.rowLen(e.cursor.Row))

	if len(left) > e.screenCols {
		left = left[:e.screenCols]
	}
	b.WriteString(seqInverse)
	b.WriteString(left)
	for n := len(left); n < e.screenCols; n++ {
		if e.screenCols-n == len(right) {
			b.WriteString(right)
			break
		}
		b.WriteByte(' ')
	}
	b.WriteString(seqResetStyle)
	b.WriteString("\r\n")
}

func (e *Editor) drawMessageBar(b *bytes.Buffer) {
	b.WriteString(seqClearLine)
	msg := e.StatusMessage()
	if len(msg) > e.screenCols {
		msg = msg[:e.screenCols]
	}
	b.WriteString(msg)
}
