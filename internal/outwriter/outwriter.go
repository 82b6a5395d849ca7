// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/worldsys/worldsys/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableNameWidth calculates the maximum width for country names in
// table output based on terminal width and the number of metric columns.
func GetMaxTableNameWidth(cfg *contract.Config, activeMetrics int) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Rank + Code + Category + Composite with borders/padding
	baseWidth := 45

	// Value and rank column per active metric
	baseWidth += 20 * activeMetrics

	available := termWidth - baseWidth
	if available < 12 {
		return 12
	}
	if available > 40 {
		return 40
	}
	return available
}
