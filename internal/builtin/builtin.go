// Package builtin implements the commands the shell runs in-process.
package builtin

import (
	"fmt"
	"io"
	"simplesh/internal/status"
)

// Cmd is what a builtin gets to work with: its argv, argv[0] included, and
// the streams it writes to.
type Cmd struct {
	Args   []string
	Stdout io.Writer
	Stderr io.Writer
}

type Handler func(cmd *Cmd) status.Status

type entry struct {
	name    string
	handler Handler
}

// Registry maps builtin names to handlers. It is filled once by New and only
// read afterwards.
type Registry struct {
	entries []entry
}

func New() *Registry {
	r := &Registry{}
	r.entries = []entry{
		{"cd", cd},
		{"help", r.help},
		{"exit", exit},
		{"sheep", sheep},
	}
	return r
}

// Lookup scans the registry in order for an exact name match.
func (r *Registry) Lookup(name string) (Handler, bool) {
	for _, e := range r.entries {
		if e.name == name {
			return e.handler, true
		}
	}
	return nil, false
}

func (r *Registry) Count() int {
	return len(r.entries)
}

// Names returns the builtin names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.name
	}
	return names
}

func errorf(cmd *Cmd, format string, args ...any) {
	format = fmt.Sprintf("%s: %s\n", cmd.Args[0], format)
	fmt.Fprintf(cmd.Stderr, format, args...)
}
