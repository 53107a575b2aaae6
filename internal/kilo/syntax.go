package kilo

import "strings"

// syntaxDB is the static table mapping filename patterns to keyword lists,
// comment markers, and highlighting flags. A pattern starting with '.' is
// an extension match; any other pattern is a substring match anywhere in
// the filename.
var syntaxDB = []Syntax{
	{
		Name:      "c",
		FileMatch: []string{".c", ".h", ".cpp"},
		Keywords: []string{
			"switch", "if", "while", "for", "break", "continue", "return", "else",
			"struct", "union", "typedef", "static", "enum", "class", "case",
			"int|", "long|", "double|", "float|", "char|", "unsigned|", "signed|", "void|",
		},
		SinglelineCommentStart: "//",
		MultilineCommentStart:  "/*",
		MultilineCommentEnd:    "*/",
		Flags:                  HighlightNumbers | HighlightStrings,
	},
	{
		Name:      "go",
		FileMatch: []string{".go", ".mod", ".sum"},
		Keywords: []string{
			"break", "case", "chan", "const", "continue", "default", "defer", "else",
			"fallthrough", "for", "go", "goto", "if", "import", "map", "package",
			"range", "return", "select", "struct", "switch", "type", "var",
			"func|", "interface|",
		},
		SinglelineCommentStart: "//",
		MultilineCommentStart:  "/*",
		MultilineCommentEnd:    "*/",
		Flags:                  HighlightNumbers | HighlightStrings,
	},
	{
		Name:      "python",
		FileMatch: []string{".py"},
		Keywords: []string{
			"and", "as", "assert", "break", "class", "continue", "del", "elif",
			"else", "except", "finally", "for", "from", "global", "if", "import",
			"in", "is", "lambda", "not", "or", "pass", "raise", "try", "while",
			"with", "yield",
			"None|", "True|", "False|", "self|",
		},
		SinglelineCommentStart: "#",
		Flags:                  HighlightNumbers | HighlightStrings,
	},
}

// SelectSyntax scans syntaxDB for the first entry whose FileMatch pattern
// matches filename, rehighlighting every row if one is found. It clears the
// document's syntax (and leaves rows highlighted as plain text) if none
// match or filename is empty.
func (d *Document) SelectSyntax(filename string) {
	d.Syntax = nil
	if filename == "" {
		d.rehighlightAll()
		return
	}

	var ext string
	if dot := strings.LastIndex(filename, "."); dot != -1 {
		ext = filename[dot:]
	}

	for i := range syntaxDB {
		s := &syntaxDB[i]
		for _, pattern := range s.FileMatch {
			isExt := pattern[0] == '.'
			matches := (isExt && ext != "" && ext == pattern) ||
				(!isExt && strings.Contains(filename, pattern))
			if matches {
				d.Syntax = s
				d.rehighlightAll()
				return
			}
		}
	}
	d.rehighlightAll()
}

func (d *Document) rehighlightAll() {
	for i := range d.Rows {
		d.Rows[i].updateSyntax(d)
	}
}
