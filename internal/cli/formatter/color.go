package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rich365/rich365/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleAqua   = lipgloss.NewStyle().Foreground(ColorAqua)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// CategoryStyle colors an action category.
func CategoryStyle(c domain.Category) lipgloss.Style {
	switch c {
	case domain.CategoryLearning, domain.CategorySkill:
		return StyleBlue
	case domain.CategoryNetworking, domain.CategoryBranding:
		return StylePurple
	case domain.CategoryContent:
		return StyleAqua
	case domain.CategorySales, domain.CategoryInvestment:
		return StyleYellow
	case domain.CategoryOptimization, domain.CategoryExecution:
		return StyleGreen
	case domain.CategoryMindset:
		return StyleFg
	default:
		return StyleDim
	}
}

// CategoryTag renders "[学习]" style labels. Uncategorized actions render
// nothing.
func CategoryTag(c domain.Category) string {
	if c == "" {
		return ""
	}
	return CategoryStyle(c).Render("[" + c.DisplayName() + "]")
}

// Header renders a section header with the orange header style and an
// underline sized to the visible width.
func Header(text string) string {
	line := strings.Repeat("─", lipgloss.Width(text))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(text), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
