// Package tty drives a character-cell terminal directly: it switches stdin
// into raw mode, decodes the byte sequences a terminal emulator sends for
// function keys, and queries the window size. It emits no ANSI escapes of
// its own composition (beyond the three needed for the window-size fallback)
// and knows nothing about documents or rows — callers compose frames and
// write them separately.
package tty

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Key is a decoded keypress. Printable and control keys carry their own
// byte value (0-255); named keys (arrows, home/end, page up/down, delete)
// are encoded above the byte range so they can never collide with a real
// byte.
type Key int

const (
	KeyBackspace Key = 127 // ASCII backspace/DEL

	KeyArrowLeft Key = iota + 1000
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyAltUp   // reserved, no-op handler
	KeyAltDown // reserved, no-op handler
)

// CtrlKey returns the control-key encoding of c, as if the terminal had
// masked the byte with 0x1f (e.g. CtrlKey('q') == Ctrl-Q).
func CtrlKey(c byte) Key {
	return Key(c & 0x1f)
}

// Terminal owns the raw-mode lifecycle and the read side of the TTY.
type Terminal struct {
	in       *os.File
	out      *os.File
	original *unix.Termios
	lastByte byte
}

// New wraps the given input/output files (normally os.Stdin/os.Stdout).
func New(in, out *os.File) *Terminal {
	return &Terminal{in: in, out: out}
}

// IsTerminal reports whether f is connected to a terminal. Checked before
// EnableRaw so a non-interactive invocation fails with a clean message
// instead of a raw-mode ioctl error several layers down.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// EnableRaw saves the current terminal attributes and switches into raw
// mode: no canonical mode, no echo, no signal generation (Ctrl-C/Z), no
// software flow control (Ctrl-S/Q), no CR->NL translation, no output
// post-processing, no break-to-interrupt, no parity checking, no 8th-bit
// stripping, 8-bit characters, and a 100ms read timeout (VMIN=0, VTIME=1).
// Call Restore (ideally deferred) to undo it.
func (t *Terminal) EnableRaw() error {
	fd := int(t.in.Fd())
	original, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return errors.Wrap(err, "reading terminal attributes")
	}
	t.original = original

	raw := *original
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &raw); err != nil {
		return errors.Wrap(err, "setting terminal attributes")
	}
	return nil
}

// Restore puts the terminal back the way EnableRaw found it. Safe to call
// multiple times or on a Terminal that never entered raw mode.
func (t *Terminal) Restore() {
	if t.original == nil {
		return
	}
	unix.IoctlSetTermios(int(t.in.Fd()), ioctlSetTermios, t.original)
	t.original = nil
}

// WindowSize queries the terminal's current size in rows and columns. The
// primary path is a TIOCGWINSZ ioctl; if that fails or reports a zero
// width, it falls back to moving the cursor to the bottom-right corner and
// parsing a cursor-position report.
func (t *Terminal) WindowSize() (rows, cols int, err error) {
	ws, err := unix.IoctlGetWinsize(int(t.out.Fd()), unix.TIOCGWINSZ)
	if err == nil && ws.Col != 0 {
		return int(ws.Row), int(ws.Col), nil
	}
	return t.windowSizeByCursorReport()
}

func (t *Terminal) windowSizeByCursorReport() (rows, cols int, err error) {
	if _, err := t.out.WriteString("\x1b[999C\x1b[999B\x1b[6n"); err != nil {
		return 0, 0, errors.Wrap(err, "querying cursor position")
	}

	var buf [32]byte
	i := 0
	for i < len(buf)-1 {
		b, err := t.readByte()
		if err != nil {
			return 0, 0, errors.Wrap(err, "reading cursor position report")
		}
		buf[i] = b
		if b == 'R' {
			break
		}
		i++
	}

	if buf[0] != '\x1b' || buf[1] != '[' {
		return 0, 0, errors.New("malformed cursor position report")
	}
	if _, err := fmt.Sscanf(string(buf[2:i]), "%d;%d", &rows, &cols); err != nil {
		return 0, 0, errors.Wrap(err, "parsing cursor position report")
	}
	return rows, cols, nil
}

// ReadKey blocks for one decoded key. A raw ESC with no recognizable
// follow-up (including a read that times out before a follow-up byte
// arrives) resolves to a literal ESC: the byte 0x1b.
func (t *Terminal) ReadKey() (Key, error) {
	b, err := t.readByte()
	if err != nil {
		return 0, err
	}
	if b != '\x1b' {
		return Key(b), nil
	}

	var seq [3]byte
	if ok, err := t.tryReadByte(); !ok || err != nil {
		return Key('\x1b'), nil
	}
	seq[0] = t.lastByte
	if ok, err := t.tryReadByte(); !ok || err != nil {
		return Key('\x1b'), nil
	}
	seq[1] = t.lastByte

	switch seq[0] {
	case '[':
		if seq[1] >= '0' && seq[1] <= '9' {
			if ok, err := t.tryReadByte(); !ok || err != nil {
				return Key('\x1b'), nil
			}
			seq[2] = t.lastByte
			if seq[2] == '~' {
				switch seq[1] {
				case '1', '7':
					return KeyHome, nil
				case '3':
					return KeyDelete, nil
				case '4', '8':
					return KeyEnd, nil
				case '5':
					return KeyPageUp, nil
				case '6':
					return KeyPageDown, nil
				}
			}
			if seq[1] == '1' && seq[2] == ';' {
				if ok, err := t.tryReadByte(); ok && err == nil && t.lastByte == '3' {
					if ok, err := t.tryReadByte(); ok && err == nil {
						switch t.lastByte {
						case 'A':
							return KeyAltUp, nil
						case 'B':
							return KeyAltDown, nil
						}
					}
				}
			}
			return Key('\x1b'), nil
		}
		switch seq[1] {
		case 'A':
			return KeyArrowUp, nil
		case 'B':
			return KeyArrowDown, nil
		case 'C':
			return KeyArrowRight, nil
		case 'D':
			return KeyArrowLeft, nil
		case 'H':
			return KeyHome, nil
		case 'F':
			return KeyEnd, nil
		}
	case 'O':
		switch seq[1] {
		case 'H':
			return KeyHome, nil
		case 'F':
			return KeyEnd, nil
		}
	}
	return Key('\x1b'), nil
}

func (t *Terminal) readByte() (byte, error) {
	buf := make([]byte, 1)
	for {
		n, err := t.in.Read(buf)
		if n == 1 {
			return buf[0], nil
		}
		if err != nil {
			return 0, errors.Wrap(err, "reading key")
		}
	}
}

// tryReadByte performs a single read with the inherited 100ms timeout. A
// zero-byte read (timeout with no data) is reported as ok=false, err=nil:
// the spec treats a short read during sequence decoding as "got ESC".
func (t *Terminal) tryReadByte() (ok bool, err error) {
	buf := make([]byte, 1)
	n, err := t.in.Read(buf)
	if n != 1 {
		return false, nil
	}
	t.lastByte = buf[0]
	return true, nil
}
