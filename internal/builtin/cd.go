package builtin

import (
	"fmt"
	"os"
	"simplesh/internal/status"
)

func cd(cmd *Cmd) status.Status {
	if len(cmd.Args) < 2 {
		fmt.Fprintln(cmd.Stderr, `simplesh: expected argument to "cd"`)
		return status.Failed
	}

	if err := os.Chdir(cmd.Args[1]); err != nil {
		errorf(cmd, "%s", err)
		return status.Failed
	}
	return status.Continue
}
