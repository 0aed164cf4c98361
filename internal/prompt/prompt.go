package prompt

import (
	"os"
	"os/user"
	"strings"
)

// Rich renders the "user@host:cwd$ " prompt, abbreviating $HOME to "~".
func Rich() string {
	userName, hostName, cwd := "username", "hostname", "~"
	homeDir, ok := os.LookupEnv("HOME")

	if curUser, err := user.Current(); err == nil {
		userName = curUser.Username
	}

	if curHostName, err := os.Hostname(); err == nil {
		hostName = curHostName
	}

	if curCwd, err := os.Getwd(); err == nil {
		cwd = curCwd
		if ok && homeDir != "" && strings.HasPrefix(curCwd, homeDir) {
			cwd = strings.Replace(curCwd, homeDir, "~", 1)
		}
	}

	return userName + "@" + hostName + ":" + cwd + "$ "
}

// New returns the prompt function the read loop calls before every line.
func New(marker string, rich bool) func() string {
	if rich {
		return Rich
	}
	return func() string { return marker }
}
