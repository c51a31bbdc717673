package editor

import (
	"fmt"
	"time"

	"github.com/GrenderG/tte/internal/buffer"
	"github.com/GrenderG/tte/internal/config"
)

const Version = "0.0.1"

// Cursor is a position in raw coordinates. Row may equal the document
// length, which is the virtual row below the last line.
type Cursor struct {
	Row int
	Col int
}

type Editor struct {
	doc    *buffer.Document
	cursor Cursor
	rx     int

	rowOff     int
	colOff     int
	screenRows int
	screenCols int

	statusMessage string
	statusTime    time.Time
	statusTimeout time.Duration

	quitTimes     int
	quitRemaining int

	prompt *prompt
	now    func() time.Time
}

func New(cfg config.Config, doc *buffer.Document) *Editor {
	if doc == nil {
		doc = buffer.New()
	}
	quitTimes := cfg.Editor.QuitTimes
	if quitTimes < 1 {
		quitTimes = 1
	}
	return &Editor{
		doc:           doc,
		screenRows:    1,
		screenCols:    1,
		statusTimeout: cfg.StatusTimeout(),
		quitTimes:     quitTimes,
		quitRemaining: quitTimes,
		now:           time.Now,
	}
}

func (e *Editor) Document() *buffer.Document { return e.doc }

func (e *Editor) Cursor() Cursor { return e.cursor }

// SetCursor moves the cursor, clamped to the document.
func (e *Editor) SetCursor(c Cursor) {
	e.cursor = c
	e.clampCursor()
}

// Offsets returns the first visible row and rendered column.
func (e *Editor) Offsets() (row, col int) { return e.rowOff, e.colOff }

func (e *Editor) SetOffsets(row, col int) {
	if row < 0 {
		row = 0
	}
	if col < 0 {
		col = 0
	}
	e.rowOff = row
	e.colOff = col
}

// SetStatusMessage shows a formatted message in the message bar.
func (e *Editor) SetStatusMessage(format string, args ...any) {
	e.statusMessage = fmt.Sprintf(format, args...)
	e.statusTime = e.now()
}

// StatusMessage returns the current message, or "" once it has expired.
func (e *Editor) StatusMessage() string {
	if e.statusMessage == "" || e.now().Sub(e.statusTime) >= e.statusTimeout {
		return ""
	}
	return e.statusMessage
}

// PromptActive reports whether keys are going to an open prompt.
func (e *Editor) PromptActive() bool { return e.prompt != nil }

func (e *Editor) rowLen(row int) int {
	if r := e.doc.Row(row); r != nil {
		return r.Len()
	}
	return 0
}

func (e *Editor) clampCursor() {
	if e.cursor.Row < 0 {
		e.cursor.Row = 0
	}
	if e.cursor.Row > e.doc.Len() {
		e.cursor.Row = e.doc.Len()
	}
	if e.cursor.Col < 0 {
		e.cursor.Col = 0
	}
	if n := e.rowLen(e.cursor.Row); e.cursor.Col > n {
		e.cursor.Col = n
	}
}
