package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderShare renders part as a fraction of whole, e.g. "[████░░░░]  45%".
// A non-positive whole renders an empty bar.
func RenderShare(part, whole float64, width int, style lipgloss.Style) string {
	if width < 2 {
		width = 2
	}
	pct := 0.0
	if whole > 0 {
		pct = min(max(part/whole, 0), 1)
	}

	filled := min(int(pct*float64(width)+0.5), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}
