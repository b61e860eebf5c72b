package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"regexp"
	"strings"
	"syscall"

	"github.com/rileyhilliard/minipadd/internal/ui"
	"github.com/spf13/cobra"
)

// Global flags
var (
	envFileFlag  string
	logLevelFlag string
	noColorFlag  bool
)

// InterruptedMessage is printed when a signal ends the process.
const InterruptedMessage = "Interrupted: exit"

// rootCmd is the base command when called without subcommands
var rootCmd = &cobra.Command{
	Use:   "minipadd",
	Short: "Pi-hole stats on an Inky pHAT",
	Long: `minipadd shows Pi-hole blocking statistics and host health on a small
e-ink display, refreshing on a fixed period.

Configuration comes from the environment (SCREEN_*, PIHOLE_*, REFRESH_PERIOD,
LOCALE, LOG_*), optionally layered over a dotenv file given with --env-file.
The API token and network interface are read from setupVars.conf in
PIHOLE_CONFDIR.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColorFlag {
			ui.DisableColors()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFileFlag, "env-file", "", "dotenv file to read before the environment")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "override LOG_LEVEL (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
}

// Execute runs the root command with SIGINT/SIGTERM wired to cancellation
// and exits the process.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	code := exitCode(ctx, err, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// exitCode reports the outcome of a command. An interrupt always wins: the
// process prints InterruptedMessage and exits 0 even if the cycle in flight
// failed because of it.
func exitCode(ctx context.Context, err error, stdout, stderr io.Writer) int {
	if ctx.Err() != nil {
		fmt.Fprintln(stdout, InterruptedMessage)
		return 0
	}
	if err == nil {
		return 0
	}

	if MachineMode() {
		_ = WriteJSONFromError(stdout, err)
		return 1
	}

	if isUnknownCommandError(err) {
		fmt.Fprintf(stderr, "✗ Unknown command %q\n\n  Run 'minipadd --help' to see the available commands\n",
			extractUnknownCommand(err))
		return 1
	}

	fmt.Fprint(stderr, err.Error())
	if !strings.HasSuffix(err.Error(), "\n") {
		fmt.Fprintln(stderr)
	}
	return 1
}

// isUnknownCommandError reports whether err came from cobra rejecting the
// command line.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag")
}

var unknownCommandRe = regexp.MustCompile(`unknown command "([^"]+)"`)

// extractUnknownCommand pulls the offending word out of a cobra error.
func extractUnknownCommand(err error) string {
	m := unknownCommandRe.FindStringSubmatch(err.Error())
	if len(m) < 2 {
		return ""
	}
	return m[1]
}
