package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/GrenderG/tte/internal/buffer"
	"github.com/GrenderG/tte/internal/config"
	"github.com/GrenderG/tte/internal/editor"
	"github.com/GrenderG/tte/internal/logger"
	"github.com/GrenderG/tte/internal/session"
	"github.com/GrenderG/tte/internal/terminal"
)

const helpMessage = "HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find"

var ErrUsage = errors.New("usage: tte [file]")

// App is the top-level runtime for tte.
type App struct {
	args []string
	in   *os.File
	out  *os.File
}

func New(args []string) *App {
	return &App{args: args, in: os.Stdin, out: os.Stdout}
}

func (a *App) Run() (err error) {
	if len(a.args) > 1 {
		return ErrUsage
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if lerr := logger.Init(cfg.Log.Level); lerr != nil {
		fmt.Fprintln(os.Stderr, "tte: logging disabled:", lerr)
	}
	defer logger.Close()
	logger.Info("starting", "version", editor.Version, "args", a.args)
	defer func() {
		if err != nil {
			logger.Error("fatal", "error", err)
		}
	}()

	doc := buffer.New()
	if len(a.args) == 1 {
		doc, err = buffer.Open(a.args[0])
		if err != nil {
			return err
		}
		logger.Info("file opened", "file", a.args[0], "lines", doc.Len())
	}

	term := terminal.Open(a.in, a.out)
	if err := term.EnableRawMode(); err != nil {
		return err
	}
	defer func() { _ = term.DisableRawMode() }()
	if cfg.Editor.AlternateScreen {
		if err := term.EnterAlternateScreen(); err != nil {
			return fmt.Errorf("enter alternate screen: %w", err)
		}
		defer func() { _ = term.LeaveAlternateScreen() }()
	}
	defer func() { _ = term.ClearScreen() }()

	rows, cols, err := term.Size()
	if err != nil {
		return err
	}
	ed := editor.New(cfg, doc)
	ed.SetSize(rows, cols)

	sm, serr := session.NewManager()
	if serr != nil {
		logger.Warn("session unavailable", "error", serr)
		sm = nil
	}
	if sm != nil && cfg.Editor.RestoreCursor {
		restorePosition(sm, ed)
	}
	defer func() {
		if sm == nil {
			return
		}
		rememberPosition(sm, ed)
		if serr := sm.Save(); serr != nil {
			logger.Warn("session save failed", "error", serr)
		}
	}()

	ed.SetStatusMessage(helpMessage)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()
	resize := term.WatchResize()
	defer resize.Stop()

	err = loop(ctx, term, ed, resize)
	logger.Info("exiting", "file", doc.FileName(), "dirty", doc.Dirty())
	return err
}

// loop is the single control loop: wait up to one read timeout for a key,
// apply it, and redraw when something visible changed.
func loop(ctx context.Context, term *terminal.Terminal, ed *editor.Editor, resize *terminal.ResizeWatcher) error {
	dec := terminal.NewDecoder(term)
	if err := ed.Render(term); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	msgShown := ed.StatusMessage() != ""

	for {
		if ctx.Err() != nil {
			logger.Info("terminated by signal")
			return nil
		}
		redraw := false
		if resize.Pending() {
			rows, cols, err := term.Size()
			if err != nil {
				return err
			}
			ed.SetSize(rows, cols)
			logger.Debug("resize", "rows", rows, "cols", cols)
			redraw = true
		}

		ev, err := dec.ReadKey()
		if err != nil {
			return err
		}
		if ev != nil {
			if ed.HandleKey(ev) {
				return nil
			}
			redraw = true
		}
		if shown := ed.StatusMessage() != ""; shown != msgShown {
			redraw = true
		}

		if redraw {
			if err := ed.Render(term); err != nil {
				return fmt.Errorf("write frame: %w", err)
			}
			msgShown = ed.StatusMessage() != ""
		}
	}
}

func sessionKey(name string) string {
	if name == "" {
		return ""
	}
	if abs, err := filepath.Abs(name); err == nil {
		return abs
	}
	return name
}

// restorePosition moves the cursor and viewport to the remembered place
// when it still lies inside the document.
func restorePosition(sm *session.Manager, ed *editor.Editor) {
	doc := ed.Document()
	key := sessionKey(doc.FileName())
	if key == "" {
		return
	}
	state, ok := sm.FileState(key)
	if !ok {
		return
	}
	if state.CursorRow < 0 || state.CursorRow > doc.Len() {
		return
	}
	rowLen := 0
	if row := doc.Row(state.CursorRow); row != nil {
		rowLen = row.Len()
	}
	if state.CursorCol < 0 || state.CursorCol > rowLen {
		return
	}
	ed.SetCursor(editor.Cursor{Row: state.CursorRow, Col: state.CursorCol})
	ed.SetOffsets(state.RowOffset, state.ColOffset)
	ed.Scroll()
	logger.Debug("position restored", "file", key, "row", state.CursorRow, "col", state.CursorCol)
}

func rememberPosition(sm *session.Manager, ed *editor.Editor) {
	key := sessionKey(ed.Document().FileName())
	if key == "" {
		return
	}
	c := ed.Cursor()
	rowOff, colOff := ed.Offsets()
	sm.SetFileState(key, session.FileState{
		CursorRow: c.Row,
		CursorCol: c.Col,
		RowOffset: rowOff,
		ColOffset: colOff,
	})
}
