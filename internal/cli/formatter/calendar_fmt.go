package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/rich365/rich365/internal/domain"
	"github.com/rich365/rich365/internal/theme"
)

// FormatMonth renders a month's actions as a table under its theme.
// checked marks dates that already have a check-in.
func FormatMonth(year int, mt domain.MonthTheme, actions []domain.DailyAction, checked map[string]bool, today time.Time) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%s %s · %s", mt.Emoji, MonthLabel(year, theme.MonthName(mt.Month)), mt.Theme)))
	b.WriteString("\n")
	if mt.Description != "" {
		b.WriteString(Dim(mt.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	todayStr := today.Format(domain.DateLayout)
	rows := make([][]string, 0, len(actions))
	for _, a := range actions {
		d, _ := domain.ParseDate(a.Date)
		mark := " "
		if checked[a.Date] {
			mark = StyleGreen.Render("✔")
		}
		date := a.Date[5:]
		if a.Date == todayStr {
			date = StyleYellow.Render(date)
		}
		rows = append(rows, []string{
			mark,
			date,
			Dim(Weekday(d)),
			a.Emoji + " " + a.Title,
			CategoryTag(a.Category),
		})
	}
	b.WriteString(RenderTable([]string{"", "日期", "", "行动", "类别"}, rows))
	return b.String()
}

// FormatDay renders one action in a box.
func FormatDay(a *domain.DailyAction, checked bool, today time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", a.Emoji, Bold(a.Title))
	b.WriteString(a.Description)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s", Dim("主题"), a.Theme)
	if tag := CategoryTag(a.Category); tag != "" {
		b.WriteString("  " + tag)
	}
	if checked {
		b.WriteString("\n" + StyleGreen.Render("✔ 已打卡"))
	}
	title := fmt.Sprintf("%s %s", a.Date, RelativeDay(a.Date, today))
	return RenderBox(title, b.String())
}

// FormatThemes renders the twelve month themes of a year.
func FormatThemes(year int, themes []domain.MonthTheme) string {
	rows := make([][]string, 0, len(themes))
	for _, t := range themes {
		rows = append(rows, []string{theme.MonthName(t.Month), t.Emoji + " " + t.Theme, Dim(t.Description)})
	}
	return Header(fmt.Sprintf("%d 年度主题", year)) + "\n\n" + RenderTable([]string{"月份", "主题", "说明"}, rows)
}
