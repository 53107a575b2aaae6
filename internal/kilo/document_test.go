package kilo

import "testing"

func TestInsertRowRenumbersIdx(t *testing.T) {
	d := NewDocument(8)
	d.InsertRow(0, []byte("first"))
	d.InsertRow(1, []byte("third"))
	d.InsertRow(1, []byte("second"))

	for i, row := range d.Rows {
		if row.Idx != i {
			t.Errorf("row %d has Idx %d, want %d", i, row.Idx, i)
		}
	}
	if string(d.Rows[1].Chars) != "second" {
		t.Errorf("row 1 = %q, want %q", d.Rows[1].Chars, "second")
	}
}

func TestInsertCharAtEndCreatesRow(t *testing.T) {
	d := NewDocument(8)
	d.InsertChar(0, 0, 'x')
	if len(d.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(d.Rows))
	}
	if string(d.Rows[0].Chars) != "x" {
		t.Errorf("row 0 = %q, want %q", d.Rows[0].Chars, "x")
	}
	if d.Dirty == 0 {
		t.Error("expected Dirty to be set after InsertChar")
	}
}

func TestInsertNewlineSplitsAtColumn(t *testing.T) {
	d := NewDocument(8)
	d.InsertRow(0, []byte("hello world"))
	d.InsertNewline(5, 0)

	if len(d.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(d.Rows))
	}
	if string(d.Rows[0].Chars) != "hello" {
		t.Errorf("row 0 = %q, want %q", d.Rows[0].Chars, "hello")
	}
	if string(d.Rows[1].Chars) != " world" {
		t.Errorf("row 1 = %q, want %q", d.Rows[1].Chars, " world")
	}
}

func TestDeleteCharJoinsRows(t *testing.T) {
	d := NewDocument(8)
	d.InsertRow(0, []byte("foo"))
	d.InsertRow(1, []byte("bar"))

	d.DeleteChar(0, 1)

	if len(d.Rows) != 1 {
		t.Fatalf("expected 1 row after join, got %d", len(d.Rows))
	}
	if string(d.Rows[0].Chars) != "foobar" {
		t.Errorf("row 0 = %q, want %q", d.Rows[0].Chars, "foobar")
	}
}

func TestDeleteCharNoopAtDocumentStart(t *testing.T) {
	d := NewDocument(8)
	d.InsertRow(0, []byte("abc"))
	d.DeleteChar(0, 0)

	if string(d.Rows[0].Chars) != "abc" {
		t.Errorf("row 0 mutated at document start: %q", d.Rows[0].Chars)
	}
}

func TestDirtyMonotonicallyIncreasesOnEdits(t *testing.T) {
	d := NewDocument(8)
	last := d.Dirty
	d.InsertRow(0, []byte("a"))
	if d.Dirty <= last {
		t.Error("Dirty did not increase after InsertRow")
	}
	last = d.Dirty
	d.InsertChar(1, 0, 'b')
	if d.Dirty <= last {
		t.Error("Dirty did not increase after InsertChar")
	}
}
