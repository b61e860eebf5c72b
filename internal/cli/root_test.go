package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"testing"

	"github.com/rileyhilliard/minipadd/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUnknownCommandError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "unknown command error",
			err:  stderrors.New(`unknown command "foo" for "minipadd"`),
			want: true,
		},
		{
			name: "unknown flag error",
			err:  stderrors.New(`unknown flag: --foo`),
			want: true,
		},
		{
			name: "other error",
			err:  stderrors.New("connection failed"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUnknownCommandError(tt.err))
		})
	}
}

func TestExtractUnknownCommand(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "standard cobra format",
			err:  stderrors.New(`unknown command "foo" for "minipadd"`),
			want: "foo",
		},
		{
			name: "command with dash",
			err:  stderrors.New(`unknown command "run-all" for "minipadd"`),
			want: "run-all",
		},
		{
			name: "unknown flag",
			err:  stderrors.New(`unknown flag: --foo`),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractUnknownCommand(tt.err))
		})
	}
}

func TestExitCode(t *testing.T) {
	live := context.Background()
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name       string
		ctx        context.Context
		err        error
		want       int
		wantStdout string
		wantStderr string
	}{
		{
			name: "success",
			ctx:  live,
			want: 0,
		},
		{
			name:       "interrupted",
			ctx:        cancelled,
			want:       0,
			wantStdout: InterruptedMessage + "\n",
		},
		{
			name:       "interrupt wins over a failed cycle",
			ctx:        cancelled,
			err:        errors.New(errors.ErrNetwork, "Pi-hole API returned 500", ""),
			want:       0,
			wantStdout: InterruptedMessage + "\n",
		},
		{
			name:       "structured error",
			ctx:        live,
			err:        errors.New(errors.ErrConfig, "Invalid configuration", "Set PIHOLE_TOKEN"),
			want:       1,
			wantStderr: "Invalid configuration",
		},
		{
			name:       "wrapped display error",
			ctx:        live,
			err:        errors.WrapWithCode(stderrors.New("spi: busy"), errors.ErrDisplay, "Failed to update Inky pHAT", ""),
			want:       1,
			wantStderr: "Failed to update Inky pHAT",
		},
		{
			name:       "unknown command",
			ctx:        live,
			err:        stderrors.New(`unknown command "stats" for "minipadd"`),
			want:       1,
			wantStderr: `Unknown command "stats"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			got := exitCode(tt.ctx, tt.err, &stdout, &stderr)

			assert.Equal(t, tt.want, got)
			if tt.wantStdout != "" {
				assert.Equal(t, tt.wantStdout, stdout.String())
			} else {
				assert.Empty(t, stdout.String())
			}
			if tt.wantStderr != "" {
				assert.Contains(t, stderr.String(), tt.wantStderr)
			} else {
				assert.Empty(t, stderr.String())
			}
		})
	}
}

func TestExitCode_MachineMode(t *testing.T) {
	oldMode := machineMode
	defer func() { machineMode = oldMode }()
	machineMode = true

	var stdout, stderr bytes.Buffer
	err := errors.New(errors.ErrNetwork, "Pi-hole API at pi.hole:80 is unreachable", "")
	got := exitCode(context.Background(), err, &stdout, &stderr)

	assert.Equal(t, 1, got)
	assert.Empty(t, stderr.String())
	assert.Contains(t, stdout.String(), `"code": "PIHOLE_UNREACHABLE"`)
}

func TestRootCommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"run", "once", "console", "version"} {
		assert.True(t, names[want], "missing %s command", want)
	}
}

func TestGlobalFlags(t *testing.T) {
	for _, name := range []string{"env-file", "log-level", "no-color"} {
		require.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "missing --%s", name)
	}
	require.NotNil(t, runCmd.Flags().Lookup("continue-on-error"))
	require.NotNil(t, consoleCmd.Flags().Lookup("continue-on-error"))
	require.NotNil(t, consoleCmd.Flags().Lookup("json"))
	require.NotNil(t, consoleCmd.Flags().Lookup("yaml"))
	require.NotNil(t, consoleCmd.Flags().Lookup("once"))
}
