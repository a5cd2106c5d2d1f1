// Package alconnacfg holds the engine's ambient configuration: the
// separator, strictness, and recursion bound an Analyser runs with, plus
// the per-user config directory. Options come from Default only; no
// on-disk options file is read.
package alconnacfg

import (
	"os"
	"path/filepath"
)

const (
	// DefaultConfigDir is the directory name under the user's home
	// directory holding a persisted Options file.
	DefaultConfigDir = ".alconna"
	// DefaultOptionsFile is the reserved file name within DefaultConfigDir;
	// nothing in this module reads or writes it.
	DefaultOptionsFile = "options.yaml"
)

// Options controls one Analyser's ambient behaviour.
type Options struct {
	// Separator is the default word separator for a command's top level
	// (individual nodes may override it).
	Separator string
	// Strict, when true, rejects any non-text atom whose kind was not
	// explicitly allowed (token.Options.Strict).
	Strict bool
	// MaxRecursion is a recursion bound for Object pattern nesting. No
	// code in this module reads it, so nesting depth is not limited.
	MaxRecursion int
	// RaiseOnError is carried in Options but no code in this module reads
	// it; a failed Analyse is reported only through its Record.
	RaiseOnError bool
}

// Default returns the engine's built-in defaults.
func Default() Options {
	return Options{
		Separator:    " ",
		Strict:       false,
		MaxRecursion: 4,
		RaiseOnError: false,
	}
}

// ConfigDir returns the default per-user config directory, creating it if
// absent.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, DefaultConfigDir)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return "", err
		}
	}
	return dir, nil
}
