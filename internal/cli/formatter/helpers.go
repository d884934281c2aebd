package formatter

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rich365/rich365/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(title) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

var weekdays = [...]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"}

// Weekday returns the Chinese short weekday name.
func Weekday(t time.Time) string {
	return weekdays[t.Weekday()]
}

// RelativeDay labels date against today: 今天, 明天, 昨天 or the weekday.
func RelativeDay(date string, today time.Time) string {
	d, err := domain.ParseDate(date)
	if err != nil {
		return date
	}
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	switch int(d.Sub(t).Hours() / 24) {
	case 0:
		return "今天"
	case 1:
		return "明天"
	case -1:
		return "昨天"
	default:
		return Weekday(d)
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// MonthLabel renders "2025年 三月".
func MonthLabel(year int, name string) string {
	return fmt.Sprintf("%d年 %s", year, name)
}
