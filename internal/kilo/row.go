package kilo

// CxToRx converts a logical column (byte index into Chars) to its rendered
// column, charging each tab byte up to the next TabWidth boundary.
func (row *Row) CxToRx(cx int, tabWidth int) int {
	rx := 0
	for j := 0; j < cx && j < len(row.Chars); j++ {
		if row.Chars[j] == '\t' {
			rx += tabWidth - (rx % tabWidth)
		} else {
			rx++
		}
	}
	return rx
}

// RxToCx is the inverse of CxToRx: the first logical column whose running
// render column exceeds rx.
func (row *Row) RxToCx(rx int, tabWidth int) int {
	curRx := 0
	cx := 0
	for ; cx < len(row.Chars); cx++ {
		if row.Chars[cx] == '\t' {
			curRx += (tabWidth - 1) - (curRx % tabWidth)
		}
		curRx++
		if curRx > rx {
			return cx
		}
	}
	return cx
}

// update recomputes Render from Chars (expanding tabs) and then
// rehighlights the row.
func (row *Row) update(d *Document) {
	tabs := 0
	for _, c := range row.Chars {
		if c == '\t' {
			tabs++
		}
	}

	render := make([]byte, len(row.Chars)+tabs*(d.TabWidth-1))
	idx := 0
	for _, c := range row.Chars {
		if c == '\t' {
			render[idx] = ' '
			idx++
			for idx%d.TabWidth != 0 {
				render[idx] = ' '
				idx++
			}
		} else {
			render[idx] = c
			idx++
		}
	}
	row.Render = render[:idx]
	row.updateSyntax(d)
}
