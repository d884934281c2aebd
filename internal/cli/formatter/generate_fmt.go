package formatter

import (
	"fmt"
	"strings"

	"github.com/rich365/rich365/internal/domain"
	"github.com/rich365/rich365/internal/intelligence"
	"github.com/rich365/rich365/internal/service"
	"github.com/rich365/rich365/internal/theme"
)

// SourceLabel names where generated content came from.
func SourceLabel(s intelligence.Source) string {
	if s == intelligence.SourceAI {
		return StylePurple.Render("AI 生成")
	}
	return StyleBlue.Render("模板生成")
}

// FormatGeneration summarizes a generation run.
func FormatGeneration(res *service.GenerationResult) string {
	if res.Skipped {
		return Dim(fmt.Sprintf("已存在行动日历，跳过 %d 年生成", res.Year)) + "\n"
	}
	scope := fmt.Sprintf("%d 年", res.Year)
	if res.Month > 0 {
		scope = fmt.Sprintf("%d 年%s", res.Year, theme.MonthName(res.Month))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s：保存 %d 条行动 · %s\n", StyleGreen.Render("✔"), scope, res.Saved, SourceLabel(res.Source))
	if res.FallbackReason != "" {
		b.WriteString(Dim("  AI 不可用，已使用模板："+res.FallbackReason) + "\n")
	}
	return b.String()
}

// FormatPlan renders a generated yearly plan.
func FormatPlan(year int, themes []domain.PlannedTheme) string {
	rows := make([][]string, 0, len(themes))
	for _, t := range themes {
		rows = append(rows, []string{
			fmt.Sprintf("第%d月", t.RelativeMonth),
			t.Emoji + " " + t.Theme,
			Dim(t.StartDate + " ~ " + t.EndDate),
		})
	}
	return Header(fmt.Sprintf("%d 年度规划", year)) + "\n" + RenderTable([]string{"阶段", "主题", "时间"}, rows)
}

// FormatGoalActions lists goal suggestions.
func FormatGoalActions(goal string, res *intelligence.GoalSuggestions) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎯 %s  %s\n", Bold(goal), SourceLabel(res.Source))
	for i, a := range res.Actions {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, a)
	}
	return b.String()
}
