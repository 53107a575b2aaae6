package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseRecognizedKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".kigorc")
	contents := "# a comment\ntabstop 4\nquittimes 1\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	cfg, err := parse(f, nil, path)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.TabWidth != 4 {
		t.Errorf("TabWidth = %d, want 4", cfg.TabWidth)
	}
	if cfg.QuitConfirmations != 1 {
		t.Errorf("QuitConfirmations = %d, want 1", cfg.QuitConfirmations)
	}
}

func TestParseIgnoresMalformedLines(t *testing.T) {
	contents := "tabstop notanumber\nquittimes -1\nbananas\nunknownkey 9\ntabstop 2\n"
	f := writeTempFile(t, contents)
	defer f.Close()

	cfg, err := parse(f, nil, "test")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	// The only valid recognized line is the final "tabstop 2".
	if cfg.TabWidth != 2 {
		t.Errorf("TabWidth = %d, want 2 (malformed/invalid lines should be ignored)", cfg.TabWidth)
	}
	if cfg.QuitConfirmations != DefaultQuitConfirmations {
		t.Errorf("QuitConfirmations = %d, want default %d", cfg.QuitConfirmations, DefaultQuitConfirmations)
	}
}

func TestParseEmptyFileYieldsDefaults(t *testing.T) {
	f := writeTempFile(t, "")
	defer f.Close()

	cfg, err := parse(f, nil, "test")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoadWithNoConfigFilesReturnsDefaults(t *testing.T) {
	t.Setenv("KIGO_CONFIG", filepath.Join(t.TempDir(), "does-not-exist"))
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	defer os.Chdir(cwd)
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults %+v", cfg, Default())
	}
}

func writeTempFile(t *testing.T, contents string) *os.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return f
}
