package cli

import (
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	runContinueOnError     bool
	consoleContinueOnError bool
	consoleYAML            bool
	consoleOnce            bool
)

// runCmd drives the panel on the refresh period
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Refresh the display every REFRESH_PERIOD seconds",
	Long: `Fetch Pi-hole and host stats and draw them on the Inky pHAT, then repeat
every REFRESH_PERIOD seconds until interrupted.

A cycle that takes longer than the period delays the next one; cycles never
overlap. By default a failed cycle stops the program.

Examples:
  minipadd run
  REFRESH_PERIOD=300 minipadd run
  SCREEN_MOCK=true minipadd run --continue-on-error`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), runContinueOnError)
	},
}

// onceCmd draws a single frame
var onceCmd = &cobra.Command{
	Use:   "once",
	Short: "Draw one frame and exit",
	Long: `Fetch stats once, draw them, and exit.

With SCREEN_MOCK=true the emulated frame stays on screen until you press
q or esc.

Examples:
  minipadd once
  SCREEN_MOCK=true minipadd once`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return onceCommand(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// consoleCmd prints the dashboard as text
var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Print stats to the terminal on the refresh period",
	Long: `Print the configuration and dashboard as text instead of driving a panel.

Reads the terminal settings as well: HEADLESS forces plain ASCII output,
PIHOLE_TOKEN (required) overrides WEBPASSWORD from setupVars.conf.

Examples:
  PIHOLE_TOKEN=... minipadd console
  PIHOLE_TOKEN=... minipadd console --once --yaml
  PIHOLE_TOKEN=... minipadd console --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return consoleCommand(cmd.Context(), cmd.OutOrStdout(), consoleOptions{
			continueOnError: consoleContinueOnError,
			yaml:            consoleYAML,
			json:            machineMode,
			once:            consoleOnce,
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(onceCmd)
	rootCmd.AddCommand(consoleCmd)

	runCmd.Flags().BoolVar(&runContinueOnError, "continue-on-error", false, "log failed cycles and keep refreshing")

	consoleCmd.Flags().BoolVar(&consoleContinueOnError, "continue-on-error", false, "log failed cycles and keep refreshing")
	consoleCmd.Flags().BoolVar(&consoleYAML, "yaml", false, "print each snapshot as YAML")
	consoleCmd.Flags().BoolVar(&machineMode, "json", false, "print each snapshot as a JSON envelope")
	consoleCmd.Flags().BoolVar(&consoleOnce, "once", false, "print one snapshot and exit")
	consoleCmd.MarkFlagsMutuallyExclusive("yaml", "json")
}
