package kilo

import "bytes"

// separatorPunctuation lists the punctuation bytes that, together with
// whitespace and NUL, govern keyword and number boundary detection.
const separatorPunctuation = ",.()+-/*=~%<>[];"

func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f', 0:
		return true
	}
	return bytes.IndexByte([]byte(separatorPunctuation), c) != -1
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// updateSyntax rewrites row.Hl from row.Render, given the document's active
// syntax (nil means plain text). If row.HlOpenComment changes as a result,
// the next row is recursively rehighlighted so the open-comment state
// cascades until it stabilizes or the document ends.
func (row *Row) updateSyntax(d *Document) {
	row.Hl = make([]int, len(row.Render))
	if d.Syntax == nil {
		row.HlOpenComment = false
		return
	}

	syn := d.Syntax
	scs := []byte(syn.SinglelineCommentStart)
	mcs := []byte(syn.MultilineCommentStart)
	mce := []byte(syn.MultilineCommentEnd)

	prevSep := true
	var inString byte
	inComment := row.Idx > 0 && row.Idx-1 < len(d.Rows) && d.Rows[row.Idx-1].HlOpenComment

	render := row.Render
	for i := 0; i < len(render); {
		c := render[i]
		prevHl := HlNormal
		if i > 0 {
			prevHl = row.Hl[i-1]
		}

		if len(scs) > 0 && inString == 0 && !inComment {
			if bytes.HasPrefix(render[i:], scs) {
				for j := i; j < len(render); j++ {
					row.Hl[j] = HlComment
				}
				break
			}
		}

		if len(mcs) > 0 && len(mce) > 0 && inString == 0 {
			if inComment {
				row.Hl[i] = HlMLComment
				if bytes.HasPrefix(render[i:], mce) {
					for j := 0; j < len(mce) && i+j < len(render); j++ {
						row.Hl[i+j] = HlMLComment
					}
					inComment = false
					i += len(mce)
					continue
				}
				i++
				continue
			} else if bytes.HasPrefix(render[i:], mcs) {
				inComment = true
				for j := 0; j < len(mcs) && i+j < len(render); j++ {
					row.Hl[i+j] = HlMLComment
				}
				i += len(mcs)
				continue
			}
		}

		if syn.Flags&HighlightStrings != 0 {
			if inString != 0 {
				row.Hl[i] = HlString
				if c == '\\' && i+1 < len(render) {
					row.Hl[i+1] = HlString
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			} else if c == '"' || c == '\'' {
				inString = c
				row.Hl[i] = HlString
				i++
				continue
			}
		}

		if syn.Flags&HighlightNumbers != 0 {
			if (isDigit(c) && (prevSep || prevHl == HlNumber)) || (c == '.' && prevHl == HlNumber) {
				row.Hl[i] = HlNumber
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if klen, secondary, ok := matchKeyword(syn.Keywords, render[i:]); ok {
				cls := HlKeyword1
				if secondary {
					cls = HlKeyword2
				}
				for k := 0; k < klen; k++ {
					row.Hl[i+k] = cls
				}
				i += klen
				prevSep = false
				continue
			}
		}

		prevSep = isSeparator(c)
		i++
	}

	changed := row.HlOpenComment != inComment
	row.HlOpenComment = inComment
	if changed && row.Idx+1 < len(d.Rows) {
		d.Rows[row.Idx+1].updateSyntax(d)
	}
}

// matchKeyword tries each keyword against the start of rest, requiring the
// byte immediately after the match (if any) to be a separator. Secondary
// keywords carry a trailing '|' sentinel in the table; it is not part of
// the match.
func matchKeyword(keywords []string, rest []byte) (length int, secondary bool, ok bool) {
	for _, kw := range keywords {
		word := kw
		sec := false
		if n := len(word); n > 0 && word[n-1] == '|' {
			sec = true
			word = word[:n-1]
		}
		n := len(word)
		if n == 0 || n > len(rest) {
			continue
		}
		if !bytes.Equal(rest[:n], []byte(word)) {
			continue
		}
		if n < len(rest) && !isSeparator(rest[n]) {
			continue
		}
		return n, sec, true
	}
	return 0, false, false
}

// ColorFor maps a highlight class to the ANSI SGR color number the renderer
// should switch to.
func ColorFor(hl int) int {
	switch hl {
	case HlComment, HlMLComment:
		return 36
	case HlKeyword1:
		return 33
	case HlKeyword2:
		return 32
	case HlString:
		return 35
	case HlNumber:
		return 31
	case HlMatch:
		return 34
	default:
		return 39
	}
}
