package outwriter

import (
	"os"

	"github.com/huangsam/modelmeter/internal/contract"
	"golang.org/x/term"
)

// getMaxGroupWidth calculates the maximum width for the group column in
// table output based on terminal width and table configuration.
func getMaxGroupWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed metric/value columns with table formatting
	const baseWidth = 55

	available := termWidth - baseWidth
	if available < 12 {
		return 12
	}
	if available > 50 {
		return 50
	}
	return available
}

// truncateCell shortens a cell to fit the table, keeping the tail visible
// since group keys share prefixes.
func truncateCell(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return "..." + s[len(s)-(width-3):]
}
