package kilo

// NewDocument returns an empty document rendering tabs at tabWidth.
func NewDocument(tabWidth int) *Document {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	return &Document{TabWidth: tabWidth}
}

// DefaultTabWidth mirrors config.DefaultTabWidth without importing the
// config package (kept dependency-free of the CLI/config layer).
const DefaultTabWidth = 8

// InsertRow inserts a new row at position at (0 <= at <= len(Rows)),
// shifting subsequent rows right and renumbering their Idx.
func (d *Document) InsertRow(at int, chars []byte) {
	if at < 0 || at > len(d.Rows) {
		return
	}

	row := Row{Idx: at, Chars: append([]byte(nil), chars...)}
	d.Rows = append(d.Rows, Row{})
	copy(d.Rows[at+1:], d.Rows[at:])
	d.Rows[at] = row

	for i := at + 1; i < len(d.Rows); i++ {
		d.Rows[i].Idx = i
	}

	d.Rows[at].update(d)
	d.Dirty++
}

// DeleteRow removes the row at position at, shifting subsequent rows left
// and renumbering their Idx.
func (d *Document) DeleteRow(at int) {
	if at < 0 || at >= len(d.Rows) {
		return
	}
	d.Rows = append(d.Rows[:at], d.Rows[at+1:]...)
	for i := at; i < len(d.Rows); i++ {
		d.Rows[i].Idx = i
	}
	d.Dirty++
}

// SplitRow splits row cy at logical column cx: the suffix becomes a new
// row at cy+1, and row cy is truncated to its prefix.
func (d *Document) SplitRow(cy, cx int) {
	row := &d.Rows[cy]
	suffix := append([]byte(nil), row.Chars[cx:]...)
	d.InsertRow(cy+1, suffix)

	row = &d.Rows[cy] // re-fetch: InsertRow may have reallocated d.Rows
	row.Chars = row.Chars[:cx]
	row.update(d)
}

// JoinRow appends row cy onto row cy-1 and deletes row cy. Preconditions:
// cy > 0.
func (d *Document) JoinRow(cy int) {
	prev := &d.Rows[cy-1]
	prev.Chars = append(prev.Chars, d.Rows[cy].Chars...)
	prev.update(d)
	d.DeleteRow(cy)
	d.Dirty++
}

// InsertChar inserts byte c at logical position (cx, cy), creating a
// trailing empty row first if cy is one past the end.
func (d *Document) InsertChar(cx, cy int, c byte) {
	if cy == len(d.Rows) {
		d.InsertRow(len(d.Rows), nil)
	}
	row := &d.Rows[cy]
	if cx < 0 || cx > len(row.Chars) {
		cx = len(row.Chars)
	}
	row.Chars = append(row.Chars, 0)
	copy(row.Chars[cx+1:], row.Chars[cx:])
	row.Chars[cx] = c
	row.update(d)
	d.Dirty++
}

// InsertNewline splits the document at (cx, cy): a bare row insert at
// column 0, or SplitRow otherwise.
func (d *Document) InsertNewline(cx, cy int) {
	if cx == 0 {
		d.InsertRow(cy, nil)
	} else {
		d.SplitRow(cy, cx)
	}
}

// DeleteChar removes the byte before (cx, cy), joining with the previous
// row when cx is 0. No-op at document start or one past the end.
func (d *Document) DeleteChar(cx, cy int) {
	if cy == len(d.Rows) {
		return
	}
	if cx == 0 && cy == 0 {
		return
	}

	if cx > 0 {
		row := &d.Rows[cy]
		row.Chars = append(row.Chars[:cx-1], row.Chars[cx:]...)
		row.update(d)
		d.Dirty++
	} else {
		d.JoinRow(cy)
	}
}
