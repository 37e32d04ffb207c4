package exec

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutput(t *testing.T) {
	if !CheckCommand("echo") {
		t.Skip("echo not available")
	}
	out, err := Output(context.Background(), DefaultOptions(), "echo", " prefer-dark ")
	require.NoError(t, err)
	assert.Equal(t, "prefer-dark", out)
}

func TestRun_Failure(t *testing.T) {
	if !CheckCommand("false") {
		t.Skip("false not available")
	}
	res := Run(context.Background(), "false", nil, DefaultOptions())
	assert.Error(t, res.Err)
	assert.Equal(t, 1, res.ExitCode)
}

func TestRun_Timeout(t *testing.T) {
	if !CheckCommand("sleep") {
		t.Skip("sleep not available")
	}
	res := Run(context.Background(), "sleep", []string{"5"}, Options{Timeout: 50 * time.Millisecond})
	require.Error(t, res.Err)
	assert.ErrorIs(t, res.Err, context.DeadlineExceeded)
	assert.Less(t, res.Duration, 5*time.Second)
}

func TestRequireCommands(t *testing.T) {
	assert.NoError(t, RequireCommands())
	err := RequireCommands("folio-no-such-command")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "folio-no-such-command")
}

func TestFormatCommand(t *testing.T) {
	assert.Equal(t, "gsettings get org.gnome.desktop.interface color-scheme",
		FormatCommand("gsettings", []string{"get", "org.gnome.desktop.interface", "color-scheme"}))
}
