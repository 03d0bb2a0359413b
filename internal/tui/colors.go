package tui

// Color constants for the backrep TUI theme
const (
	// Base Colors
	ColorBorder = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Primary text (headers, row content)
	ColorSecondaryText = "#B1B8C7" // Secondary text
	ColorDisabledText  = "#6D7383" // Disabled/muted text
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors
	ColorAccentMain   = "#2563EB" // Title bar, selection
	ColorAccentBright = "#60A5FA" // Active paginator dot

	// Result Colors
	ColorFailed  = "#EF4444" // Failed sessions
	ColorSuccess = "#22C55E" // Successful sessions
	ColorWarning = "#F59E0B" // Sessions that finished with warnings
)
