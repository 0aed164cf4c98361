// Package status holds the result a command hands back to the read loop.
package status

type Status int

const (
	Continue Status = iota
	Exit
	// Failed marks a command that reported an operational error. The loop
	// keeps going.
	Failed
)

func (s Status) Continues() bool {
	return s != Exit
}

func (s Status) String() string {
	switch s {
	case Continue:
		return "continue"
	case Exit:
		return "exit"
	case Failed:
		return "failed"
	}
	return "unknown"
}
