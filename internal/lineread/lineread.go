// Package lineread supplies command lines to the read loop, either from a
// plain buffered stream or, on a terminal, through an editing line reader.
package lineread

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"simplesh/internal/parser"
	"strings"

	"github.com/peterh/liner"
)

// Reader prints prompt and blocks for the next line. It returns io.EOF once
// input is exhausted.
type Reader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// Plain reads newline-terminated lines from any stream.
type Plain struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPlain(in io.Reader, out io.Writer) *Plain {
	return &Plain{in: bufio.NewReader(in), out: out}
}

func (p *Plain) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	return parser.Read(p.in)
}

func (p *Plain) Close() error {
	return nil
}

// Editor reads lines from the controlling terminal with history and cursor
// movement. History is loaded from and saved to historyFile when it is set.
type Editor struct {
	state       *liner.State
	historyFile string
	logger      *slog.Logger
}

func NewEditor(historyFile string, logger *slog.Logger) *Editor {
	e := &Editor{state: liner.NewLiner(), historyFile: historyFile, logger: logger}
	e.state.SetCtrlCAborts(true)

	if historyFile == "" {
		return e
	}
	if f, err := os.Open(historyFile); err == nil {
		if _, err := e.state.ReadHistory(f); err != nil {
			logger.Debug("history not loaded", "file", historyFile, "err", err)
		}
		_ = f.Close()
	}
	return e
}

// ReadLine treats Ctrl-C as an empty line.
func (e *Editor) ReadLine(prompt string) (string, error) {
	line, err := e.state.Prompt(prompt)

	switch {
	case errors.Is(err, io.EOF):
		return "", io.EOF
	case errors.Is(err, liner.ErrPromptAborted):
		return "", nil
	case err != nil:
		return "", fmt.Errorf("read line: %w", err)
	}

	if strings.TrimSpace(line) != "" {
		e.state.AppendHistory(line)
	}
	return line, nil
}

func (e *Editor) Close() error {
	if e.historyFile != "" {
		if f, err := os.Create(e.historyFile); err == nil {
			if _, err := e.state.WriteHistory(f); err != nil {
				e.logger.Warn("history not saved", "file", e.historyFile, "err", err)
			}
			_ = f.Close()
		}
	}
	return e.state.Close()
}

// IsTerminal reports whether the process's stdin is a terminal.
func IsTerminal() bool {
	_, err := liner.TerminalMode()
	return err == nil
}

// Open returns an Editor when editing is wanted and in is a terminal stdin,
// and a Plain reader over in otherwise.
func Open(editing bool, historyFile string, in io.Reader, out io.Writer, logger *slog.Logger) Reader {
	if f, ok := in.(*os.File); ok && editing && f == os.Stdin && IsTerminal() {
		return NewEditor(historyFile, logger)
	}
	return NewPlain(in, out)
}
