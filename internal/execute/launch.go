package execute

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"simplesh/internal/status"
	"syscall"

	"golang.org/x/sys/unix"
)

var (
	// ErrExec means the program could not be found or its image could not
	// be loaded.
	ErrExec = errors.New("error executing cmd")
	// ErrSpawn means no child process could be created at all.
	ErrSpawn = errors.New("error forking")
)

// execErrnos are failures of the exec step itself as opposed to the fork.
var execErrnos = []syscall.Errno{
	unix.ENOENT,
	unix.EACCES,
	unix.ENOEXEC,
	unix.ENOTDIR,
	unix.E2BIG,
	unix.ELOOP,
	unix.ENAMETOOLONG,
	unix.ETXTBSY,
	unix.EISDIR,
}

// Result describes how a launched child ended.
type Result struct {
	Pid      int
	ExitCode int
	Signaled bool
	Signal   syscall.Signal
}

// Launcher runs external programs in the foreground. The child inherits the
// shell's environment and the Stdin, Stdout and Stderr files; launcher errors
// go to Errors.
type Launcher struct {
	Stdin, Stdout, Stderr *os.File
	Errors                io.Writer
	Logger                *slog.Logger
}

func NewLauncher(logger *slog.Logger) *Launcher {
	return &Launcher{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Errors: os.Stderr,
		Logger: logger,
	}
}

// Launch runs argv and waits for it. Failures are reported, never returned:
// the result is always status.Continue, whatever the child's exit code.
func (l *Launcher) Launch(argv []string) status.Status {
	res, err := l.Run(argv)
	if err != nil {
		fmt.Fprintf(l.errw(), "simplesh: %s\n", err)
		return status.Continue
	}

	l.logger().Debug("child finished",
		"cmd", argv[0],
		"pid", res.Pid,
		"exit_code", res.ExitCode,
		"signaled", res.Signaled)
	return status.Continue
}

// Run starts argv[0], resolved through PATH, with argv as its full argument
// list and blocks until it exits or is killed. The returned error wraps
// ErrExec or ErrSpawn when the child could not be started.
func (l *Launcher) Run(argv []string) (Result, error) {
	if len(argv) == 0 {
		return Result{}, fmt.Errorf("%w: empty command", ErrExec)
	}

	binary, err := exec.LookPath(argv[0])
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrExec, err)
	}

	pid, err := syscall.ForkExec(binary, argv, &syscall.ProcAttr{
		Env:   os.Environ(),
		Files: []uintptr{l.file(l.Stdin, os.Stdin), l.file(l.Stdout, os.Stdout), l.file(l.Stderr, os.Stderr)},
	})
	if err != nil {
		return Result{}, classifyForkExec(argv[0], err)
	}

	l.logger().Debug("child started", "cmd", argv[0], "path", binary, "pid", pid)

	ws, err := waitForeground(pid, l.logger())
	if err != nil {
		return Result{Pid: pid}, err
	}

	res := Result{Pid: pid, ExitCode: ws.ExitStatus()}
	if ws.Signaled() {
		res.Signaled = true
		res.Signal = ws.Signal()
	}
	return res, nil
}

func classifyForkExec(name string, err error) error {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		for _, e := range execErrnos {
			if errno == e {
				return fmt.Errorf("%w: %s: %w", ErrExec, name, err)
			}
		}
	}
	return fmt.Errorf("%w: %s: %w", ErrSpawn, name, err)
}

func (l *Launcher) file(f, fallback *os.File) uintptr {
	if f == nil {
		f = fallback
	}
	return f.Fd()
}

func (l *Launcher) errw() io.Writer {
	if l.Errors == nil {
		return os.Stderr
	}
	return l.Errors
}

func (l *Launcher) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.Default()
	}
	return l.Logger
}
