// Package logging constructs the editor's diagnostic logger. The editor's
// own stdout is the terminal surface being redrawn every frame, so ordinary
// logging would corrupt the display; everything non-fatal is logged to a
// file instead.
package logging

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultLogFile is used when KIGO_LOG_FILE is unset.
const DefaultLogFile = "/tmp/kigo.log"

// New opens (creating/appending) the log file at path and returns a JSON
// logger at the given level. An empty path uses DefaultLogFile; an empty
// level defaults to "warn".
func New(path, level string) (*logrus.Logger, error) {
	if path == "" {
		path = DefaultLogFile
	}
	if level == "" {
		level = "warn"
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "opening log file %q", path)
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing log level %q", level)
	}

	log := logrus.New()
	log.SetOutput(f)
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(lvl)
	return log, nil
}
