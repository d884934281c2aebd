package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// Table is an aligned text table. Widths are measured with lipgloss so
// styled cells and wide CJK runes line up.
type Table struct {
	Headers []string
	Rows    [][]string
	// RightAlign marks numeric columns by index.
	RightAlign map[int]bool
}

// RenderTable renders headers and rows with default alignment.
func RenderTable(headers []string, rows [][]string) string {
	return Table{Headers: headers, Rows: rows}.Render()
}

func (t Table) widths() []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func (t Table) writeRow(b *strings.Builder, cells []string, widths []int, style func(string) string) {
	last := len(widths) - 1
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		pad := w - lipgloss.Width(cell)
		if pad < 0 {
			pad = 0
		}
		if style != nil {
			cell = style(cell)
		}
		if t.RightAlign[i] {
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(cell)
		} else {
			b.WriteString(cell)
			if i < last {
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
		if i < last {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")
}

// Render draws the header, a rule and every row.
func (t Table) Render() string {
	if len(t.Headers) == 0 {
		return ""
	}
	widths := t.widths()

	var b strings.Builder
	t.writeRow(&b, t.Headers, widths, func(s string) string { return StyleHeader.Render(s) })

	rules := make([]string, len(widths))
	for i, w := range widths {
		rules[i] = strings.Repeat("─", w)
	}
	t.writeRow(&b, rules, widths, Dim)

	for _, row := range t.Rows {
		t.writeRow(&b, row, widths, nil)
	}
	return b.String()
}
