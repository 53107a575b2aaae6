package kilo

import (
	"bytes"

	"github.com/nilslice/kigo/internal/tty"
)

// searchState is the incremental-search session state (spec.md §4.G): the
// row index of the last match, the direction to continue in on the next
// arrow key, and a snapshot of the one row whose Hl was overwritten with
// HlMatch so it can be restored once the match moves on or the search
// ends.
type searchState struct {
	lastMatch int
	direction int

	savedHlLine int
	savedHl     []int
}

// restore puts back the highlight vector of whichever row Find last
// overwrote with HlMatch, if any.
func (s *searchState) restore(d *Document) {
	if s.savedHl == nil {
		return
	}
	if s.savedHlLine < len(d.Rows) {
		d.Rows[s.savedHlLine].Hl = s.savedHl
	}
	s.savedHl = nil
}

// Find runs the incremental-search prompt. The cursor and scroll position
// are remembered so Escape can restore them; Enter leaves the cursor at
// the match.
func (e *Editor) Find() {
	savedCx, savedCy := e.View.Cx, e.View.Cy
	savedColOff, savedRowOff := e.View.ColOff, e.View.RowOff

	e.search.lastMatch = -1
	e.search.direction = 1

	_, ok := e.prompt("Search: %s (Use ESC/Arrows/Enter)", e.findCallback)
	e.search.restore(e.Doc)

	if !ok {
		e.View.Cx, e.View.Cy = savedCx, savedCy
		e.View.ColOff, e.View.RowOff = savedColOff, savedRowOff
	}
}

// findCallback reacts to each keystroke of the search prompt: arrow
// up/left and down/right change direction and advance to the next match
// in that direction; any other key resets to a forward search from the
// first row of the document. The matched row's Hl is patched with HlMatch for the
// duration of the match and restored (via searchState.savedHl) as soon as
// the match moves.
func (e *Editor) findCallback(query []byte, key tty.Key) {
	e.search.restore(e.Doc)

	switch key {
	case '\r', '\x1b':
		return
	case tty.KeyArrowRight, tty.KeyArrowDown:
		e.search.direction = 1
	case tty.KeyArrowLeft, tty.KeyArrowUp:
		e.search.direction = -1
	default:
		e.search.lastMatch = -1
		e.search.direction = 1
	}

	if len(query) == 0 {
		return
	}

	if e.search.lastMatch == -1 {
		e.search.direction = 1
	}

	current := e.search.lastMatch
	for i := 0; i < len(e.Doc.Rows); i++ {
		current += e.search.direction
		switch {
		case current == -1:
			current = len(e.Doc.Rows) - 1
		case current == len(e.Doc.Rows):
			current = 0
		}

		row := &e.Doc.Rows[current]
		idx := bytes.Index(row.Render, query)
		if idx == -1 {
			continue
		}

		e.search.lastMatch = current
		e.View.Cy = current
		e.View.Cx = row.RxToCx(idx, e.Doc.TabWidth)
		e.View.RowOff = len(e.Doc.Rows)

		e.search.savedHlLine = current
		e.search.savedHl = make([]int, len(row.Hl))
		copy(e.search.savedHl, row.Hl)
		for j := idx; j < idx+len(query) && j < len(row.Hl); j++ {
			row.Hl[j] = HlMatch
		}
		break
	}
}

// Save writes the document to its current filename, prompting for one
// first if it has none. A save failure is reported through the status bar
// and the log, never fatally.
func (e *Editor) Save() {
	if e.Doc.Filename == "" {
		filename, ok := e.prompt("Save as: %s (ESC to cancel)", nil)
		if !ok || filename == "" {
			e.SetStatusMessage("Save aborted")
			return
		}
		e.Doc.Filename = filename
		e.Doc.SelectSyntax(filename)
	}

	n, err := e.Doc.Save(e.Doc.Filename)
	if err != nil {
		e.logWarn(err, "saving file")
		e.SetStatusMessage("Can't save! I/O error: %s", err)
		return
	}
	e.SetStatusMessage("%d bytes written to disk", n)
}
