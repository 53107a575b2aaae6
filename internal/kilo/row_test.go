package kilo

import "testing"

func TestCxToRxExpandsTabs(t *testing.T) {
	row := &Row{Chars: []byte("a\tb")}
	rx := row.CxToRx(3, 4)
	if rx != 5 {
		t.Errorf("CxToRx(3, 4) = %d, want 5", rx)
	}
}

func TestRxToCxIsInverseOfCxToRx(t *testing.T) {
	row := &Row{Chars: []byte("ab\tcd\te")}
	for cx := 0; cx <= len(row.Chars); cx++ {
		rx := row.CxToRx(cx, 8)
		gotCx := row.RxToCx(rx, 8)
		if gotCx != cx {
			t.Errorf("RxToCx(CxToRx(%d)) = %d, want %d", cx, gotCx, cx)
		}
	}
}

func TestUpdateExpandsTabsToNextMultiple(t *testing.T) {
	d := NewDocument(4)
	row := &Row{Chars: []byte("a\tbc")}
	row.update(d)

	if string(row.Render) != "a   bc" {
		t.Errorf("Render = %q, want %q", row.Render, "a   bc")
	}
	if len(row.Hl) != len(row.Render) {
		t.Errorf("len(Hl) = %d, want %d (same length as Render)", len(row.Hl), len(row.Render))
	}
}
