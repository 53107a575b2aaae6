package kilo

import (
	"fmt"
	"time"
)

// scroll applies the four scroll rules in order (spec.md §4.F) so that the
// cursor stays inside the visible window in both row and render-column
// space.
func (e *Editor) scroll() {
	v := &e.View
	v.Rx = 0
	if v.Cy < len(e.Doc.Rows) {
		v.Rx = e.Doc.Rows[v.Cy].CxToRx(v.Cx, e.Doc.TabWidth)
	}

	if v.Cy < v.RowOff {
		v.RowOff = v.Cy
	}
	if v.Cy >= v.RowOff+v.ScreenRows {
		v.RowOff = v.Cy - v.ScreenRows + 1
	}
	if v.Rx < v.ColOff {
		v.ColOff = v.Rx
	}
	if v.Rx >= v.ColOff+v.ScreenCols {
		v.ColOff = v.Rx - v.ScreenCols + 1
	}
}

func isControlByte(c byte) bool {
	return c < 27
}

// drawRows renders the screenRows body lines: document rows (clipped to
// the horizontal scroll window, with syntax colors), the empty-buffer
// welcome banner, or '~' past end of file.
func (e *Editor) drawRows(fb *frameBuffer) {
	v := &e.View
	for y := 0; y < v.ScreenRows; y++ {
		filerow := y + v.RowOff
		if filerow >= len(e.Doc.Rows) {
			if len(e.Doc.Rows) == 0 && y == v.ScreenRows/3 {
				e.drawWelcome(fb)
			} else {
				fb.appendString("~")
			}
		} else {
			e.drawRow(fb, &e.Doc.Rows[filerow])
		}
		fb.appendString(escClearLine)
		fb.appendString("\r\n")
	}
}

func (e *Editor) drawWelcome(fb *frameBuffer) {
	welcome := "Kilo editor -- version " + kigoVersion
	welcomeLen := min(len(welcome), e.View.ScreenCols)
	padding := (e.View.ScreenCols - welcomeLen) / 2
	if padding > 0 {
		fb.appendString("~")
		padding--
	}
	for i := 0; i < padding; i++ {
		fb.appendString(" ")
	}
	fb.appendString(welcome[:welcomeLen])
}

func (e *Editor) drawRow(fb *frameBuffer, row *Row) {
	v := &e.View
	lineLen := min(max(len(row.Render)-v.ColOff, 0), v.ScreenCols)
	if lineLen == 0 {
		return
	}

	start := v.ColOff
	currentColor := -1
	for j := 0; j < lineLen; j++ {
		c := row.Render[start+j]
		h := row.Hl[start+j]

		if isControlByte(c) {
			sym := byte('?')
			if c <= 26 {
				sym = c + '@'
			}
			fb.appendString(escColorsInvert)
			fb.append([]byte{sym})
			fb.appendString(escColorsReset)
			if currentColor != -1 {
				fb.appendString(fmt.Sprintf(colorFormat, currentColor))
			}
			continue
		}

		if h == HlNormal {
			if currentColor != -1 {
				fb.appendString(fmt.Sprintf(colorFormat, 39))
				currentColor = -1
			}
			fb.append([]byte{c})
			continue
		}

		color := ColorFor(h)
		if color != currentColor {
			currentColor = color
			fb.appendString(fmt.Sprintf(colorFormat, color))
		}
		fb.append([]byte{c})
	}
	fb.appendString(fmt.Sprintf(colorFormat, 39))
}

// drawStatusBar renders the inverted-video status line: filename/line
// count/dirty flag on the left, syntax name and cursor position on the
// right.
func (e *Editor) drawStatusBar(fb *frameBuffer) {
	fb.appendString(escColorsInvert)

	filename := e.Doc.Filename
	if filename == "" {
		filename = "[No Name]"
	}
	if len(filename) > 20 {
		filename = filename[:20]
	}
	dirty := ""
	if e.Doc.Dirty > 0 {
		dirty = " (modified)"
	}
	status := fmt.Sprintf("%s - %d lines%s", filename, len(e.Doc.Rows), dirty)
	statusLen := min(len(status), e.View.ScreenCols)

	syntaxName := "no ft"
	if e.Doc.Syntax != nil {
		syntaxName = e.Doc.Syntax.Name
	}
	rstatus := fmt.Sprintf("%s | %d/%d", syntaxName, e.View.Cy+1, len(e.Doc.Rows))
	rstatusLen := len(rstatus)

	fb.appendString(status[:statusLen])
	for statusLen < e.View.ScreenCols {
		if e.View.ScreenCols-statusLen == rstatusLen {
			fb.appendString(rstatus)
			break
		}
		fb.appendString(" ")
		statusLen++
	}

	fb.appendString(escColorsReset)
	fb.appendString("\r\n")
}

// drawMessageBar clears the message line and redraws the status message
// only while it is younger than five seconds.
func (e *Editor) drawMessageBar(fb *frameBuffer) {
	fb.appendString(escClearLine)
	msg := e.View.StatusMessage
	msgLen := min(len(msg), e.View.ScreenCols)
	if time.Since(e.View.StatusMessageTime) < 5*time.Second {
		fb.appendString(msg[:msgLen])
	}
}
