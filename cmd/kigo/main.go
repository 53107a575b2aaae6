// Command kigo is a minimalist terminal text editor: no curses, raw mode
// and ANSI escapes only. Usage: kigo [file].
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/nilslice/kigo/internal/config"
	"github.com/nilslice/kigo/internal/kilo"
	"github.com/nilslice/kigo/internal/logging"
	"github.com/nilslice/kigo/internal/tty"
)

func main() {
	var (
		logFile  = pflag.String("log-file", "", "diagnostic log path (default "+logging.DefaultLogFile+")")
		logLevel = pflag.String("log-level", "", "diagnostic log level (default warn)")
		version  = pflag.BoolP("version", "v", false, "print the version and exit")
	)
	pflag.Parse()

	if *version {
		fmt.Println("kigo 1.0.0")
		return
	}

	if *logFile == "" {
		*logFile = os.Getenv("KIGO_LOG_FILE")
	}
	if *logLevel == "" {
		*logLevel = os.Getenv("KIGO_LOG_LEVEL")
	}
	log, err := logging.New(*logFile, *logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kigo: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(log)
	if err != nil {
		log.WithError(err).Warn("loading configuration, falling back to defaults")
		cfg = config.Default()
	}

	if !tty.IsTerminal(os.Stdin) {
		fmt.Fprintln(os.Stderr, "kigo: stdin is not a terminal")
		os.Exit(1)
	}

	term := tty.New(os.Stdin, os.Stdout)
	if err := term.EnableRaw(); err != nil {
		fmt.Fprintf(os.Stderr, "kigo: enabling raw mode: %v\n", err)
		os.Exit(1)
	}
	defer term.Restore()

	ed := kilo.New(term, log, cfg.TabWidth, cfg.QuitConfirmations)
	if err := ed.Init(); err != nil {
		ed.Die("getting window size: %v", err)
	}

	if args := pflag.Args(); len(args) >= 1 {
		if err := ed.Open(args[0]); err != nil {
			ed.Die("opening %q: %v", args[0], err)
		}
	}

	ed.SetStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find")

	for {
		ed.RefreshScreen()
		if !ed.ProcessKeypress() {
			break
		}
	}

	term.Restore()
	os.Stdout.WriteString("\x1b[2J")
	os.Stdout.WriteString("\x1b[H")
}
