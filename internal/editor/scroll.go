package editor

// Scroll recomputes the render column of the cursor and moves the viewport
// by the smallest amount that keeps the cursor on screen.
func (e *Editor) Scroll() {
	e.rx = 0
	if row := e.doc.Row(e.cursor.Row); row != nil {
		e.rx = row.RenderX(e.cursor.Col)
	}

	if e.cursor.Row < e.rowOff {
		e.rowOff = e.cursor.Row
	}
	if e.cursor.Row >= e.rowOff+e.screenRows {
		e.rowOff = e.cursor.Row - e.screenRows + 1
	}
	if e.rx < e.colOff {
		e.colOff = e.rx
	}
	if e.rx >= e.colOff+e.screenCols {
		e.colOff = e.rx - e.screenCols + 1
	}
}

// SetSize applies a terminal geometry. Two rows are reserved for the status
// and message bars.
func (e *Editor) SetSize(rows, cols int) {
	e.screenRows = rows - 2
	if e.screenRows < 1 {
		e.screenRows = 1
	}
	e.screenCols = cols
	if e.screenCols < 1 {
		e.screenCols = 1
	}
	e.clampCursor()
	e.Scroll()
}

// ScreenSize returns the text area size in rows and columns.
func (e *Editor) ScreenSize() (rows, cols int) { return e.screenRows, e.screenCols }
