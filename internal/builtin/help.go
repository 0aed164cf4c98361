package builtin

import (
	"fmt"
	"simplesh/internal/status"
)

func (r *Registry) help(cmd *Cmd) status.Status {
	fmt.Fprintln(cmd.Stdout, "Simple Shell")
	fmt.Fprintln(cmd.Stdout, "Type the command you like, and hit enter")
	fmt.Fprintln(cmd.Stdout, "The following are built in cmds:")
	fmt.Fprintln(cmd.Stdout)

	for _, name := range r.Names() {
		fmt.Fprintf(cmd.Stdout, "  %s\n", name)
	}

	fmt.Fprintln(cmd.Stdout)
	fmt.Fprintln(cmd.Stdout, "Use the man command for information on other programs.")
	return status.Continue
}
