package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓" // Blocking enabled
	SymbolFail    = "✗" // Blocking disabled or unknown
	SymbolPending = "○" // No data yet
)
