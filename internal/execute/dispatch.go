package execute

import (
	"io"
	"log/slog"
	"os"
	"simplesh/internal/builtin"
	"simplesh/internal/status"
)

// Runner launches an external command. *Launcher is the production Runner.
type Runner interface {
	Launch(argv []string) status.Status
}

// Dispatcher sends a command line to a builtin when one matches argv[0] and
// to the Runner otherwise.
type Dispatcher struct {
	Registry *builtin.Registry
	Runner   Runner
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
}

func NewDispatcher(reg *builtin.Registry, runner Runner, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		Registry: reg,
		Runner:   runner,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Logger:   logger,
	}
}

func (d *Dispatcher) Execute(argv []string) status.Status {
	if len(argv) == 0 {
		return status.Continue
	}

	if h, ok := d.Registry.Lookup(argv[0]); ok {
		st := h(&builtin.Cmd{Args: argv, Stdout: d.Stdout, Stderr: d.Stderr})
		d.logger().Debug("builtin finished", "cmd", argv[0], "status", st)
		return st
	}

	d.logger().Debug("launching external command", "cmd", argv[0], "argc", len(argv))
	return d.Runner.Launch(argv)
}

func (d *Dispatcher) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.Default()
	}
	return d.Logger
}
