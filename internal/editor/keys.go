package editor

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/GrenderG/tte/internal/logger"
)

// HandleKey applies one key event. It returns true when the editor should
// exit.
func (e *Editor) HandleKey(ev *tcell.EventKey) bool {
	logger.Debug("key", "name", ev.Name())
	if ev.Key() == tcell.KeyCtrlQ && e.prompt == nil {
		return e.quit()
	}
	e.quitRemaining = e.quitTimes

	if e.prompt != nil {
		e.handlePromptKey(ev)
		return false
	}

	switch k := ev.Key(); k {
	case tcell.KeyEnter:
		e.insertNewline()
	case tcell.KeyCtrlS:
		e.Save()
	case tcell.KeyCtrlF:
		e.Find()
	case tcell.KeyHome:
		e.moveLineStart()
	case tcell.KeyEnd:
		e.moveLineEnd()
	case tcell.KeyDelete:
		e.moveCursor(tcell.KeyRight)
		e.deleteChar()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		e.deleteChar()
	case tcell.KeyPgUp:
		e.pageUp()
	case tcell.KeyPgDn:
		e.pageDown()
	case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight:
		e.moveCursor(k)
	case tcell.KeyTab:
		e.insertChar('\t')
	case tcell.KeyRune:
		if r := ev.Rune(); r >= ' ' && r != 0x7f && r <= 0xff {
			e.insertChar(byte(r))
		}
	}
	return false
}

// quit exits at once on a clean document. With unsaved changes it takes
// quitTimes consecutive presses.
func (e *Editor) quit() bool {
	if e.doc.Dirty() == 0 {
		return true
	}
	e.quitRemaining--
	if e.quitRemaining > 0 {
		e.SetStatusMessage("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quitRemaining)
		return false
	}
	logger.Info("quit with unsaved changes", "file", e.doc.FileName(), "dirty", e.doc.Dirty())
	return true
}

// Save writes the document, asking for a file name first when it has none.
func (e *Editor) Save() {
	if e.doc.FileName() != "" {
		e.writeFile()
		return
	}
	e.Prompt("Save as: %s (ESC to cancel)", nil, func(name string, ok bool) {
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			e.SetStatusMessage("Save aborted")
			return
		}
		e.doc.SetFileName(name)
		e.writeFile()
	})
}

func (e *Editor) writeFile() {
	path := e.doc.FileName()
	n, err := e.doc.WriteFile(path)
	if err != nil {
		logger.Warn("save failed", "file", path, "error", err)
		e.SetStatusMessage("Can't save! I/O error: %s", err)
		return
	}
	e.doc.MarkClean()
	logger.Info("file saved", "file", path, "bytes", n)
	e.SetStatusMessage("%d bytes written to disk", n)
}
