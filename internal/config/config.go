// Package config holds the shell's start-up settings.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"simplesh/internal/parser"
)

const historyFileName = ".simplesh_history"

var (
	ErrEmptyPrompt     = errors.New("prompt must not be empty")
	ErrEmptyDelimiters = errors.New("delimiter set must not be empty")
)

type Config struct {
	// Prompt is printed before every line unless RichPrompt is set.
	Prompt     string
	RichPrompt bool
	Delimiters string
	// LineEditing enables history and cursor keys when stdin is a terminal.
	LineEditing bool
	HistoryFile string
	Verbose     bool
}

func Default() Config {
	cfg := Config{
		Prompt:      "> ",
		Delimiters:  parser.Delimiters,
		LineEditing: true,
	}

	if home, err := os.UserHomeDir(); err == nil {
		cfg.HistoryFile = filepath.Join(home, historyFileName)
	}

	return cfg
}

func (c *Config) Validate() error {
	if c.Prompt == "" && !c.RichPrompt {
		return ErrEmptyPrompt
	}
	if c.Delimiters == "" {
		return ErrEmptyDelimiters
	}
	return nil
}
