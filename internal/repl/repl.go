// Package repl runs the prompt, read, dispatch loop.
package repl

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"simplesh/internal/lineread"
	"simplesh/internal/parser"
	"simplesh/internal/status"
)

// ErrFatal wraps input failures the shell cannot recover from.
var ErrFatal = errors.New("fatal input error")

type Executor interface {
	Execute(argv []string) status.Status
}

type Shell struct {
	Reader   lineread.Reader
	Executor Executor
	// Prompt is called before every read.
	Prompt     func() string
	Delimiters string
	// Out receives the line break printed when input runs out.
	Out    io.Writer
	Logger *slog.Logger
}

// Run loops until a command asks to exit or input ends, both of which return
// nil. Any other read failure is returned wrapped in ErrFatal.
func (s *Shell) Run() error {
	delims := s.Delimiters
	if delims == "" {
		delims = parser.Delimiters
	}

	for {
		line, err := s.Reader.ReadLine(s.Prompt())

		switch {
		case errors.Is(err, io.EOF):
			if s.Out != nil {
				fmt.Fprintln(s.Out)
			}
			s.logger().Debug("end of input")
			return nil
		case err != nil:
			return fmt.Errorf("%w: %w", ErrFatal, err)
		}

		argv := parser.SplitAny(line, delims)
		if st := s.Executor.Execute(argv); !st.Continues() {
			s.logger().Debug("exit requested")
			return nil
		}
	}
}

func (s *Shell) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
