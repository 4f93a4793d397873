// Package outwriter has output and writer logic for the leaderboard.
package outwriter

import (
	"os"

	"github.com/dealflowhq/dealflow/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableNameWidth calculates the maximum width for repository names in
// table output based on terminal width and table configuration.
func GetMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for fixed columns with table formatting
	baseWidth := 30 // Rank + Score + Verdict + Stars with borders/padding

	// Add detail columns with formatting
	if cfg.Detail {
		baseWidth += 40 // Clarity + Ease + Maturity + Excite + Fit + Cred + Date
	}

	// Reserve generous space for table borders, separators, and padding
	baseWidth += 15

	// Calculate available space for the repository name
	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable name width
		return 15
	}
	if available > 60 {
		// Maximum name width to prevent overly wide tables
		return 60
	}
	return available
}
