package status

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContinues(t *testing.T) {
	require.True(t, Continue.Continues())
	require.True(t, Failed.Continues())
	require.False(t, Exit.Continues())
}

func TestString(t *testing.T) {
	require.Equal(t, "continue", Continue.String())
	require.Equal(t, "exit", Exit.String())
	require.Equal(t, "failed", Failed.String())
	require.Equal(t, "unknown", Status(42).String())
}
