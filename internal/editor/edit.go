package editor

import "github.com/gdamore/tcell/v2"

func (e *Editor) insertChar(c byte) {
	if e.cursor.Row == e.doc.Len() {
		e.doc.InsertRow(e.doc.Len(), nil)
	}
	e.doc.InsertChar(e.cursor.Row, e.cursor.Col, c)
	e.cursor.Col++
}

// insertNewline splits the current row at the cursor. At column 0 an empty
// row is opened above instead.
func (e *Editor) insertNewline() {
	if e.cursor.Col == 0 {
		e.doc.InsertRow(e.cursor.Row, nil)
	} else {
		row := e.doc.Row(e.cursor.Row)
		tail := append([]byte(nil), row.Raw()[e.cursor.Col:]...)
		e.doc.InsertRow(e.cursor.Row+1, tail)
		e.doc.Truncate(e.cursor.Row, e.cursor.Col)
	}
	e.cursor.Row++
	e.cursor.Col = 0
}

// deleteChar removes the byte before the cursor, joining with the previous
// row at column 0.
func (e *Editor) deleteChar() {
	if e.cursor.Row == e.doc.Len() {
		return
	}
	if e.cursor.Row == 0 && e.cursor.Col == 0 {
		return
	}
	if e.cursor.Col > 0 {
		e.doc.DeleteChar(e.cursor.Row, e.cursor.Col-1)
		e.cursor.Col--
		return
	}
	row := e.doc.Row(e.cursor.Row)
	e.cursor.Col = e.rowLen(e.cursor.Row - 1)
	e.doc.AppendBytes(e.cursor.Row-1, row.Raw())
	e.doc.DeleteRow(e.cursor.Row)
	e.cursor.Row--
}

func (e *Editor) moveCursor(k tcell.Key) {
	switch k {
	case tcell.KeyLeft:
		if e.cursor.Col > 0 {
			e.cursor.Col--
		} else if e.cursor.Row > 0 {
			e.cursor.Row--
			e.cursor.Col = e.rowLen(e.cursor.Row)
		}
	case tcell.KeyRight:
		if row := e.doc.Row(e.cursor.Row); row != nil {
			if e.cursor.Col < row.Len() {
				e.cursor.Col++
			} else {
				e.cursor.Row++
				e.cursor.Col = 0
			}
		}
	case tcell.KeyUp:
		if e.cursor.Row > 0 {
			e.cursor.Row--
		}
	case tcell.KeyDown:
		if e.cursor.Row < e.doc.Len() {
			e.cursor.Row++
		}
	}
	if n := e.rowLen(e.cursor.Row); e.cursor.Col > n {
		e.cursor.Col = n
	}
}

func (e *Editor) pageUp() {
	e.cursor.Row = e.rowOff
	for i := 0; i < e.screenRows; i++ {
		e.moveCursor(tcell.KeyUp)
	}
}

func (e *Editor) pageDown() {
	e.cursor.Row = e.rowOff + e.screenRows - 1
	if e.cursor.Row > e.doc.Len() {
		e.cursor.Row = e.doc.Len()
	}
	for i := 0; i < e.screenRows; i++ {
		e.moveCursor(tcell.KeyDown)
	}
}

func (e *Editor) moveLineStart() {
	e.cursor.Col = 0
}

func (e *Editor) moveLineEnd() {
	e.cursor.Col = e.rowLen(e.cursor.Row)
}
