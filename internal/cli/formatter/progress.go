package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░]  45% for pct in 0..100.
// Green from 66, yellow from 33, red below.
func RenderProgress(pct float64, width int) string {
	switch {
	case pct < 0:
		pct = 0
	case pct > 100:
		pct = 100
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct / 100 * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case pct < 33:
		style = StyleRed
	case pct < 66:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct)
}

// RenderStreak draws one flame per streak day, capped at max, with the
// count appended.
func RenderStreak(days, max int) string {
	if days <= 0 {
		return Dim("未开始")
	}
	shown := days
	if shown > max {
		shown = max
	}
	flames := strings.Repeat("🔥", shown)
	if days > max {
		flames += Dim("…")
	}
	return fmt.Sprintf("%s %s", flames, StyleYellow.Render(fmt.Sprintf("%d 天", days)))
}
