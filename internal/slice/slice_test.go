package slice

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSkipAny(t *testing.T) {
	require.Equal(t, 3, SkipAny(" \t\nls", 0, " \t\n"))
	require.Equal(t, 0, SkipAny("ls", 0, " "))
	require.Equal(t, 4, SkipAny("ls  ", 2, " "))
	require.Equal(t, 2, SkipAny("ls", 2, " "))
}

func TestSkipNone(t *testing.T) {
	require.Equal(t, 4, SkipNone("echo a", 0, " \t"))
	require.Equal(t, 6, SkipNone("'a\"b'", 0, " "))
	require.Equal(t, 0, SkipNone(" x", 0, " "))
}
