package kilo

// frameBuffer accumulates one frame's worth of output so the renderer can
// flush it in a single write, avoiding visible tearing. Analogous to the
// abAppend/struct abuf pattern of the original editor, minus the manual
// realloc dance Go's append already does for us.
type frameBuffer struct {
	buf []byte
}

func (f *frameBuffer) append(s []byte) {
	f.buf = append(f.buf, s...)
}

func (f *frameBuffer) appendString(s string) {
	f.buf = append(f.buf, s...)
}

func (f *frameBuffer) free() {
	f.buf = nil
}
