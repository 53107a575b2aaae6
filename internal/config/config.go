// Package config reads the editor's small, line-based user configuration
// file: "tabstop N" and "quittimes N", one per line, "#" for comments.
package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Defaults, used when no config file is found or a key is never set.
const (
	DefaultTabWidth          = 8
	DefaultQuitConfirmations = 3
)

// Config holds the two tunables the editor reads from disk.
type Config struct {
	TabWidth          int
	QuitConfirmations int
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		TabWidth:          DefaultTabWidth,
		QuitConfirmations: DefaultQuitConfirmations,
	}
}

// SearchPaths returns the config file candidates in lookup order:
// $KIGO_CONFIG, ./.kigorc, $HOME/.kigorc. Empty entries (e.g. no $HOME) are
// omitted.
func SearchPaths() []string {
	var paths []string
	if p := os.Getenv("KIGO_CONFIG"); p != "" {
		paths = append(paths, p)
	}
	paths = append(paths, ".kigorc")
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, home+string(os.PathSeparator)+".kigorc")
	}
	return paths
}

// Load tries each of SearchPaths() in order and parses the first one that
// exists. If none exist, Default() is returned with a nil error. An I/O
// error reading a file that does exist is returned wrapped; a malformed
// line never aborts the load, it is logged and skipped.
func Load(log *logrus.Logger) (Config, error) {
	for _, path := range SearchPaths() {
		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Default(), errors.Wrapf(err, "opening config file %q", path)
		}
		defer f.Close()
		return parse(f, log, path)
	}
	return Default(), nil
}

// parse reads key/value lines from r, starting from the built-in defaults.
// Malformed lines and invalid values for recognized keys are logged (if log
// is non-nil) and ignored; unknown keys are ignored without logging. None of
// them cause parse to return an error.
func parse(r io.Reader, log *logrus.Logger, path string) (Config, error) {
	cfg := Default()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			warnf(log, "%s:%d: malformed config line %q, ignoring", path, lineNo, line)
			continue
		}
		key, value := fields[0], fields[1]

		switch key {
		case "tabstop":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				warnf(log, "%s:%d: tabstop must be a positive integer, got %q, ignoring", path, lineNo, value)
				continue
			}
			cfg.TabWidth = n
		case "quittimes":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				warnf(log, "%s:%d: quittimes must be a non-negative integer, got %q, ignoring", path, lineNo, value)
				continue
			}
			cfg.QuitConfirmations = n
		default:
			// Unknown key: ignored per spec, not an error.
		}
	}
	if err := scanner.Err(); err != nil {
		return Default(), errors.Wrapf(err, "reading config file %q", path)
	}
	return cfg, nil
}

func warnf(log *logrus.Logger, format string, args ...any) {
	if log == nil {
		return
	}
	log.Warn(fmt.Sprintf(format, args...))
}
