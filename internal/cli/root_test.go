package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsort/internal/cli"
	"github.com/katalvlaran/lvlsort/internal/cli/config"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := cli.NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_SubcommandsRegistered(t *testing.T) {
	root := cli.NewRootCmd()
	for _, name := range []string{"version", "algorithms", "sort", "search", "bench", "reverse"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestRoot_FlagsReachCommands(t *testing.T) {
	out, _, err := execute(t, "-o", "plain", "sort", "--algo", "insertion", "5", "3", "4", "1", "2")
	require.NoError(t, err)
	assert.Equal(t, "insertion\t5\t1 2 3 4 5\n", out)
}

func TestRoot_VerboseLogsToStderr(t *testing.T) {
	_, stderr, err := execute(t, "-v", "-o", "plain", "reverse", "x", "y")
	require.NoError(t, err)
	assert.Contains(t, stderr, "stack loaded")
}

func TestRoot_InvalidConfig(t *testing.T) {
	_, _, err := execute(t, "--kind", "floats", "algorithms")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
