package kilo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nilslice/kigo/internal/tty"
)

// pipeTerminal returns a *tty.Terminal whose ReadKey calls drain the given
// raw bytes, for exercising Editor key dispatch without a real TTY.
func pipeTerminal(t *testing.T, data []byte) *tty.Terminal {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	if len(data) > 0 {
		if _, err := w.Write(data); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	w.Close()
	return tty.New(r, nil)
}

func newTestEditor(t *testing.T, keys []byte) *Editor {
	term := pipeTerminal(t, keys)
	e := New(term, nil, 8, 3)
	e.View.ScreenRows = 10
	e.View.ScreenCols = 40
	return e
}

func TestTypingInsertsCharactersAndMarksDirty(t *testing.T) {
	e := newTestEditor(t, []byte("hi"))

	if !e.ProcessKeypress() {
		t.Fatal("ProcessKeypress returned false on a plain character")
	}
	if !e.ProcessKeypress() {
		t.Fatal("ProcessKeypress returned false on a plain character")
	}

	if string(e.Doc.Rows[0].Chars) != "hi" {
		t.Errorf("document contents = %q, want %q", e.Doc.Rows[0].Chars, "hi")
	}
	if e.Doc.Dirty == 0 {
		t.Error("expected Dirty after typing")
	}
}

func TestQuitWithUnsavedChangesRequiresConfirmation(t *testing.T) {
	ctrlQ := byte(tty.CtrlKey('q'))
	e := newTestEditor(t, []byte{'x', ctrlQ, ctrlQ, ctrlQ})

	e.ProcessKeypress() // types 'x', dirties the document

	if !e.ProcessKeypress() {
		t.Fatal("first Ctrl-Q should warn, not quit, with unsaved changes")
	}
	if e.quitPending != e.quitConfirmations-1 {
		t.Errorf("quitPending = %d, want %d", e.quitPending, e.quitConfirmations-1)
	}

	if !e.ProcessKeypress() {
		t.Fatal("second Ctrl-Q should still warn")
	}
	if e.quitPending != e.quitConfirmations-2 {
		t.Errorf("quitPending = %d, want %d", e.quitPending, e.quitConfirmations-2)
	}

	if e.ProcessKeypress() {
		t.Fatal("third Ctrl-Q (quitConfirmations == 3) should quit")
	}
}

func TestSaveWithoutFilenamePromptsThenWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "newfile.txt")

	// The Save prompt reads the path one byte at a time, then Enter.
	e := newTestEditor(t, append([]byte(path), '\r'))
	e.Doc.InsertRow(0, []byte("content"))

	e.Save()

	if e.Doc.Filename != path {
		t.Fatalf("Filename = %q, want %q", e.Doc.Filename, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if string(data) != "content\n" {
		t.Errorf("saved contents = %q, want %q", data, "content\n")
	}
}

func TestDeleteCharAtRowStartJoinsAndPlacesCursor(t *testing.T) {
	e := newTestEditor(t, nil)
	e.Doc.InsertRow(0, []byte("foo"))
	e.Doc.InsertRow(1, []byte("bar"))
	e.View.Cx, e.View.Cy = 0, 1

	e.deleteCharAtCursor()

	if e.View.Cy != 0 {
		t.Fatalf("Cy = %d, want 0 after join", e.View.Cy)
	}
	if e.View.Cx != 3 {
		t.Fatalf("Cx = %d, want 3 (end of old row 0)", e.View.Cx)
	}
	if string(e.Doc.Rows[0].Chars) != "foobar" {
		t.Errorf("joined row = %q, want %q", e.Doc.Rows[0].Chars, "foobar")
	}
}

func TestAutopairInsertsMatchingCloser(t *testing.T) {
	e := newTestEditor(t, []byte("("))
	e.ProcessKeypress()

	if string(e.Doc.Rows[0].Chars) != "()" {
		t.Fatalf("row = %q, want %q", e.Doc.Rows[0].Chars, "()")
	}
	if e.View.Cx != 1 {
		t.Errorf("Cx = %d, want 1 (cursor resting between the pair)", e.View.Cx)
	}
}
