// Package cli implements the minipadd command-line interface.
//
// Each command loads settings from the environment, wires a collector to a
// renderer, and hands the resulting cycle to the scheduler:
//
//	minipadd run       - refresh the Inky pHAT every REFRESH_PERIOD seconds
//	minipadd once      - draw a single frame and exit
//	minipadd console   - print the dashboard to the terminal
//	minipadd version   - print build information
//
// SCREEN_MOCK=true swaps the panel for a terminal emulator. SIGINT and SIGTERM
// cancel the command context; the process then prints "Interrupted: exit" and
// exits 0.
//
// With --json, console output and errors use JSONEnvelope so scripts can
// tell a missing setting from an unreachable Pi-hole by JSONError.Code.
package cli
