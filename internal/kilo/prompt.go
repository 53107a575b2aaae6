package kilo

import "github.com/nilslice/kigo/internal/tty"

// prompt drives the modal status-bar input loop shared by save-as and
// incremental search (spec.md §4.G). It renders format with the
// accumulated input substituted in, reads one key at a time, and invokes
// callback after every key (arrows included) so a caller like Find can
// react incrementally.
// Escape cancels and returns ("", false); Enter with non-empty input
// accepts and returns (input, true).
func (e *Editor) prompt(format string, callback func(input []byte, key tty.Key)) (string, bool) {
	buf := make([]byte, 0, 32)

	for {
		e.SetStatusMessage(format, string(buf))
		e.RefreshScreen()

		key, err := e.term.ReadKey()
		if err != nil {
			e.logWarn(err, "reading key")
			if callback != nil {
				callback(buf, 0)
			}
			return "", false
		}

		switch key {
		case tty.KeyDelete, tty.KeyBackspace, tty.CtrlKey('h'):
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case '\x1b':
			e.SetStatusMessage("")
			if callback != nil {
				callback(buf, key)
			}
			return "", false
		case '\r':
			if len(buf) > 0 {
				e.SetStatusMessage("")
				if callback != nil {
					callback(buf, key)
				}
				return string(buf), true
			}
		default:
			if key >= 32 && key < 128 {
				buf = append(buf, byte(key))
			}
		}

		if callback != nil {
			callback(buf, key)
		}
	}
}
