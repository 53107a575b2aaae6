package kilo

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nilslice/kigo/internal/tty"
)

// Editor is the controller (component G): it owns the document and the
// viewport, dispatches decoded keys to editing commands, drives the
// save/search prompts, and tracks the quit-confirmation counter.
type Editor struct {
	Doc  *Document
	View Viewport

	term *tty.Terminal
	log  *logrus.Logger

	quitConfirmations int
	quitPending       int

	search searchState
}

// New constructs an Editor bound to term for I/O, with tabWidth and
// quitConfirmations as read from configuration (or its defaults).
func New(term *tty.Terminal, log *logrus.Logger, tabWidth, quitConfirmations int) *Editor {
	if quitConfirmations < 0 {
		quitConfirmations = 0
	}
	e := &Editor{
		Doc:               NewDocument(tabWidth),
		term:              term,
		log:               log,
		quitConfirmations: quitConfirmations,
		quitPending:       quitConfirmations,
	}
	e.search.lastMatch = -1
	e.search.direction = 1
	return e
}

// Init queries the window size and reserves the last two rows for the
// status and message bars.
func (e *Editor) Init() error {
	rows, cols, err := e.term.WindowSize()
	if err != nil {
		return err
	}
	e.View.ScreenRows = rows - 2
	e.View.ScreenCols = cols
	return nil
}

// Open loads filename into the document and selects its syntax. Resets
// cursor/scroll state as a fresh file replaces the prior one.
func (e *Editor) Open(filename string) error {
	if err := e.Doc.Load(filename); err != nil {
		return err
	}
	e.View.Cx, e.View.Cy = 0, 0
	e.View.RowOff, e.View.ColOff = 0, 0
	return nil
}

// Die restores the terminal, clears the screen, prints a diagnostic to
// stderr, and exits nonzero. cmd/kigo calls it for the fatal startup
// errors: failing to obtain the window size and failing to open the file
// named on the command line.
func (e *Editor) Die(format string, args ...any) {
	e.term.Restore()
	os.Stdout.WriteString(escClearScreen)
	os.Stdout.WriteString(escCursorHome)
	fmt.Fprintf(os.Stderr, "kigo: "+format+"\n", args...)
	if e.log != nil {
		e.log.WithField("args", args).Errorf(format)
	}
	os.Exit(1)
}

// logWarn records a non-fatal failure (file I/O, etc.) in the diagnostic
// log. It does not touch the status bar; callers that want the user to see
// the failure set a status message themselves.
func (e *Editor) logWarn(err error, context string) {
	if e.log != nil {
		e.log.WithError(err).Warn(context)
	}
}

// SetStatusMessage sets the transient message bar text and its timestamp.
func (e *Editor) SetStatusMessage(format string, args ...any) {
	e.View.StatusMessage = fmt.Sprintf(format, args...)
	e.View.StatusMessageTime = time.Now()
}

// RefreshScreen recomputes scroll and writes exactly one frame.
func (e *Editor) RefreshScreen() {
	e.scroll()

	var fb frameBuffer
	fb.appendString(escCursorHide)
	fb.appendString(escCursorHome)

	e.drawRows(&fb)
	e.drawStatusBar(&fb)
	e.drawMessageBar(&fb)

	fb.appendString(fmt.Sprintf(cursorPositionFormat, e.View.Cy-e.View.RowOff+1, e.View.Rx-e.View.ColOff+1))
	fb.appendString(escCursorShow)

	os.Stdout.Write(fb.buf)
	fb.free()
}

// ProcessKeypress reads and dispatches one key. It returns false when the
// editor should exit its main loop (clean quit).
func (e *Editor) ProcessKeypress() bool {
	key, err := e.term.ReadKey()
	if err != nil {
		e.logWarn(err, "reading key")
		return true
	}

	switch key {
	case '\r':
		e.Doc.InsertNewline(e.View.Cx, e.View.Cy)
		e.View.Cy++
		e.View.Cx = 0

	case tty.CtrlKey('q'):
		if e.Doc.Dirty > 0 && e.quitPending > 0 {
			e.quitPending--
			if e.quitPending > 0 {
				e.SetStatusMessage("WARNING: File has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quitPending)
				return true
			}
		}
		return false

	case tty.CtrlKey('s'):
		e.Save()

	case tty.KeyHome:
		e.View.Cx = 0

	case tty.KeyEnd:
		if e.View.Cy < len(e.Doc.Rows) {
			e.View.Cx = len(e.Doc.Rows[e.View.Cy].Chars)
		}

	case tty.CtrlKey('f'):
		e.Find()

	case tty.KeyBackspace, tty.CtrlKey('h'), tty.KeyDelete:
		if key == tty.KeyDelete {
			e.moveCursor(tty.KeyArrowRight)
		}
		e.deleteCharAtCursor()

	case tty.KeyPageUp:
		e.View.Cy = e.View.RowOff
		for i := 0; i < e.View.ScreenRows; i++ {
			e.moveCursor(tty.KeyArrowUp)
		}

	case tty.KeyPageDown:
		e.View.Cy = min(e.View.RowOff+e.View.ScreenRows-1, len(e.Doc.Rows))
		for i := 0; i < e.View.ScreenRows; i++ {
			e.moveCursor(tty.KeyArrowDown)
		}

	case tty.KeyArrowLeft, tty.KeyArrowRight, tty.KeyArrowUp, tty.KeyArrowDown:
		e.moveCursor(key)

	case tty.CtrlKey('l'), '\x1b', tty.KeyAltUp, tty.KeyAltDown:
		// no-op

	default:
		if key >= 0 && key < 256 {
			e.Doc.InsertChar(e.View.Cx, e.View.Cy, byte(key))
			e.View.Cx++
			if closer, ok := autopairFor(byte(key)); ok {
				e.Doc.InsertChar(e.View.Cx, e.View.Cy, closer)
			}
		}
	}

	e.quitPending = e.quitConfirmations
	return true
}

// deleteCharAtCursor implements the editing contract of spec.md's
// delete_char: remove the byte before the cursor, or join with the
// previous row and land the cursor at the old join boundary. No-op at
// document start or one past the end.
func (e *Editor) deleteCharAtCursor() {
	if e.View.Cy == len(e.Doc.Rows) {
		return
	}
	if e.View.Cx == 0 && e.View.Cy == 0 {
		return
	}

	if e.View.Cx > 0 {
		e.Doc.DeleteChar(e.View.Cx, e.View.Cy)
		e.View.Cx--
		return
	}

	joinAt := len(e.Doc.Rows[e.View.Cy-1].Chars)
	e.Doc.DeleteChar(e.View.Cx, e.View.Cy)
	e.View.Cy--
	e.View.Cx = joinAt
}

// autopairFor reports the closing byte insert_char should also drop in
// immediately after key, per the bracket/quote autopair rule.
func autopairFor(key byte) (byte, bool) {
	switch key {
	case '(':
		return ')', true
	case '{':
		return '}', true
	case '[':
		return ']', true
	case '"':
		return '"', true
	case '\'':
		return '\'', true
	}
	return 0, false
}

// moveCursor implements the four arrow keys' geometry: wrap at line
// boundaries, clamp cy to [0, len(Rows)], and snap cx to the landing row's
// length afterward.
func (e *Editor) moveCursor(key tty.Key) {
	switch key {
	case tty.KeyArrowLeft:
		if e.View.Cx != 0 {
			e.View.Cx--
		} else if e.View.Cy > 0 {
			e.View.Cy--
			e.View.Cx = len(e.Doc.Rows[e.View.Cy].Chars)
		}
	case tty.KeyArrowRight:
		if e.View.Cy < len(e.Doc.Rows) {
			row := &e.Doc.Rows[e.View.Cy]
			if e.View.Cx < len(row.Chars) {
				e.View.Cx++
			} else if e.View.Cx == len(row.Chars) {
				e.View.Cy++
				e.View.Cx = 0
			}
		}
	case tty.KeyArrowUp:
		if e.View.Cy != 0 {
			e.View.Cy--
		}
	case tty.KeyArrowDown:
		if e.View.Cy < len(e.Doc.Rows) {
			e.View.Cy++
		}
	}

	rowLen := 0
	if e.View.Cy < len(e.Doc.Rows) {
		rowLen = len(e.Doc.Rows[e.View.Cy].Chars)
	}
	if e.View.Cx > rowLen {
		e.View.Cx = rowLen
	}
}

