package execute

import (
	"bytes"
	"os"
	"testing"

	"simplesh/internal/builtin"
	"simplesh/internal/status"

	"github.com/stretchr/testify/require"
)

type recordingRunner struct {
	calls [][]string
}

func (r *recordingRunner) Launch(argv []string) status.Status {
	r.calls = append(r.calls, argv)
	return status.Continue
}

func newTestDispatcher() (*Dispatcher, *recordingRunner, *bytes.Buffer, *bytes.Buffer) {
	runner := &recordingRunner{}
	out, errw := &bytes.Buffer{}, &bytes.Buffer{}
	d := &Dispatcher{Registry: builtin.New(), Runner: runner, Stdout: out, Stderr: errw}
	return d, runner, out, errw
}

func TestExecuteEmpty(t *testing.T) {
	d, runner, out, errw := newTestDispatcher()

	require.Equal(t, status.Continue, d.Execute(nil))
	require.Equal(t, status.Continue, d.Execute([]string{}))
	require.Empty(t, runner.calls)
	require.Empty(t, out.String())
	require.Empty(t, errw.String())
}

func TestExecuteExit(t *testing.T) {
	d, runner, _, _ := newTestDispatcher()

	require.Equal(t, status.Exit, d.Execute([]string{"exit"}))
	require.Equal(t, status.Exit, d.Execute([]string{"exit", "1"}))
	require.Empty(t, runner.calls)
}

func TestExecuteHelp(t *testing.T) {
	d, runner, out, _ := newTestDispatcher()

	require.Equal(t, status.Continue, d.Execute([]string{"help"}))
	for _, name := range d.Registry.Names() {
		require.Contains(t, out.String(), "  "+name+"\n")
	}
	require.Empty(t, runner.calls)
}

func TestExecuteCd(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(wd) })

	d, _, _, errw := newTestDispatcher()

	st := d.Execute([]string{"cd"})
	require.True(t, st.Continues())
	require.Contains(t, errw.String(), `expected argument to "cd"`)
	after, err := os.Getwd()
	require.NoError(t, err)
	require.Equal(t, wd, after)

	require.Equal(t, status.Continue, d.Execute([]string{"cd", "/tmp"}))
	after, err = os.Getwd()
	require.NoError(t, err)
	tmp, err := os.Stat("/tmp")
	require.NoError(t, err)
	cur, err := os.Stat(after)
	require.NoError(t, err)
	require.True(t, os.SameFile(tmp, cur))
}

func TestExecuteExternal(t *testing.T) {
	d, runner, _, _ := newTestDispatcher()

	argv := []string{"ls", "-la", "/tmp"}
	require.Equal(t, status.Continue, d.Execute(argv))
	require.Equal(t, [][]string{argv}, runner.calls)
}

func TestExecuteExternalNotFound(t *testing.T) {
	errw := &bytes.Buffer{}
	d := &Dispatcher{
		Registry: builtin.New(),
		Runner:   &Launcher{Errors: errw},
		Stdout:   &bytes.Buffer{},
		Stderr:   &bytes.Buffer{},
	}

	require.Equal(t, status.Continue, d.Execute([]string{"nonexistent_cmd_xyz"}))
	require.Contains(t, errw.String(), "error executing cmd")
}
