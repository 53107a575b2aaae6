package kilo

import (
	"bufio"
	"os"

	"github.com/pkg/errors"
)

// Load reads filename into the document, one row per line, stripping
// trailing \r and \n symmetrically with how Save writes them. Dirty is
// cleared on success. A file-open failure is returned to the caller, which
// treats it as fatal per the editor's error disposition (§7).
func (d *Document) Load(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return errors.Wrapf(err, "opening %q", filename)
	}
	defer f.Close()

	d.Filename = filename
	d.Rows = nil
	d.SelectSyntax(filename)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
			line = line[:len(line)-1]
		}
		d.InsertRow(len(d.Rows), []byte(line))
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "reading %q", filename)
	}

	d.Dirty = 0
	return nil
}

// RowsToString concatenates every row's Chars with a trailing '\n' each,
// including the last row.
func (d *Document) RowsToString() []byte {
	total := 0
	for _, row := range d.Rows {
		total += len(row.Chars) + 1
	}
	buf := make([]byte, 0, total)
	for _, row := range d.Rows {
		buf = append(buf, row.Chars...)
		buf = append(buf, '\n')
	}
	return buf
}

// Save writes the document to filename, truncating the file to the exact
// new length before writing. It reports byte count/failure through the
// returned (bytesWritten, error) pair; the caller is responsible for
// surfacing that via the status/message bar rather than treating it as
// fatal (§7: save failures are non-fatal).
func (d *Document) Save(filename string) (int, error) {
	buf := d.RowsToString()

	f, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return 0, errors.Wrapf(err, "opening %q for write", filename)
	}
	defer f.Close()

	if err := f.Truncate(int64(len(buf))); err != nil {
		return 0, errors.Wrapf(err, "truncating %q", filename)
	}

	n, err := f.Write(buf)
	if err != nil {
		return n, errors.Wrapf(err, "writing %q", filename)
	}
	if n != len(buf) {
		return n, errors.Errorf("partial write to %q: %d/%d bytes", filename, n, len(buf))
	}

	d.Dirty = 0
	return n, nil
}
