// Package ui provides terminal styling for minipadd's console output.
//
// Colors are ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Blocking enabled
//	ColorError     (red)    - Blocking disabled, red panel accent
//	ColorWarning   (yellow) - Yellow panel accent
//	ColorMuted     (gray)   - Secondary text
//	ColorSecondary (blue)   - Labels
//
// A Theme binds styles to one output stream so that a headless run can force
// ASCII output without touching the process-wide renderer. DisableColors
// does the latter for --no-color.
//
// Bars use block characters:
//
//	t.Bar(0.25, 20)  // [█████░░░░░░░░░░░░░░░]
package ui
