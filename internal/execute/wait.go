package execute

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sys/unix"
)

// waitForeground blocks until the child pid has exited or been killed by a
// signal. Stop notifications are logged and waited through.
func waitForeground(pid int, logger *slog.Logger) (unix.WaitStatus, error) {
	var ws unix.WaitStatus

	for {
		_, err := unix.Wait4(pid, &ws, unix.WUNTRACED, nil)

		switch {
		case errors.Is(err, unix.EINTR):
			continue
		case err != nil:
			return ws, fmt.Errorf("wait for pid %d: %w", pid, err)
		case ws.Exited() || ws.Signaled():
			return ws, nil
		case ws.Stopped():
			logger.Debug("child stopped", "pid", pid, "signal", ws.StopSignal())
		}
	}
}
