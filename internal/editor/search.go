package editor

import (
	"bytes"

	"github.com/gdamore/tcell/v2"

	"github.com/GrenderG/tte/internal/logger"
)

// Find starts an incremental search. Every key rescans the document from
// the first row and jumps to the first match. Enter or an arrow key keeps
// the match; Escape puts the cursor and viewport back where they were.
func (e *Editor) Find() {
	saved := e.cursor
	savedRowOff, savedColOff := e.rowOff, e.colOff
	found := false

	onKey := func(query []byte, ev *tcell.EventKey) {
		switch ev.Key() {
		case tcell.KeyEnter, tcell.KeyEscape,
			tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight:
			return
		}
		if len(query) == 0 {
			return
		}
		found = e.jumpToMatch(query)
	}
	done := func(query string, ok bool) {
		if !ok {
			e.cursor = saved
			e.rowOff, e.colOff = savedRowOff, savedColOff
			return
		}
		if !found {
			e.SetStatusMessage(`No match found for "%s"`, query)
		}
		logger.Debug("search", "query", query, "found", found)
	}
	e.Prompt("Search: %s (ESC/Arrows/Enter)", onKey, done)
	e.prompt.accept = []tcell.Key{tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight}
}

// jumpToMatch moves the cursor to the first row whose rendered text
// contains query. rowOff is pushed past the end so the next scroll puts
// the match on the top line.
func (e *Editor) jumpToMatch(query []byte) bool {
	for i := 0; i < e.doc.Len(); i++ {
		row := e.doc.Row(i)
		idx := bytes.Index(row.Render(), query)
		if idx < 0 {
			continue
		}
		e.cursor = Cursor{Row: i, Col: row.CursorX(idx)}
		e.rowOff = e.doc.Len()
		return true
	}
	return false
}
