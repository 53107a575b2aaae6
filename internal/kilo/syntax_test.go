package kilo

import "testing"

func TestSelectSyntaxMatchesByExtension(t *testing.T) {
	d := NewDocument(8)
	d.InsertRow(0, []byte("func main() {}"))
	d.SelectSyntax("main.go")

	if d.Syntax == nil || d.Syntax.Name != "go" {
		t.Fatalf("expected go syntax, got %#v", d.Syntax)
	}
}

func TestSelectSyntaxNoMatchClearsSyntax(t *testing.T) {
	d := NewDocument(8)
	d.SelectSyntax("main.go")
	d.SelectSyntax("README")

	if d.Syntax != nil {
		t.Errorf("expected nil syntax for unrecognized filename, got %v", d.Syntax.Name)
	}
}

func TestSelectSyntaxRehighlightsExistingRows(t *testing.T) {
	d := NewDocument(8)
	d.InsertRow(0, []byte("x = 42"))

	if d.Rows[0].Hl[4] != HlNormal {
		t.Fatalf("expected plain-text highlighting before SelectSyntax")
	}

	d.SelectSyntax("x.c")
	if d.Rows[0].Hl[4] != HlNumber {
		t.Errorf("expected number highlighting for %q after selecting c syntax", "42")
	}
}
