package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess  = "✓" // Winner declared
	SymbolFail     = "✗" // Spin ended without a winner
	SymbolPending  = "○" // Not started
	SymbolComplete = "●" // Done
	SymbolPointer  = "▶" // Marks the sector under the wheel's pointer
	SymbolPointerR = "◀"
	SymbolRemove   = "×" // Remove a contestant
	SymbolCursor   = "›" // Selected contestant
)
