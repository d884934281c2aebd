package formatter

import (
	"fmt"
	"strings"

	"github.com/rich365/rich365/internal/domain"
	"github.com/rich365/rich365/internal/progress"
	"github.com/rich365/rich365/internal/service"
)

const streakFlames = 10

// FormatCheckIn summarizes an accepted check-in.
func FormatCheckIn(date string, res *progress.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  %s\n", StyleGreen.Render("✔"), Bold("打卡成功"), Dim(date))
	fmt.Fprintf(&b, "  连续  %s\n", RenderStreak(res.Stats.CurrentStreak, streakFlames))
	fmt.Fprintf(&b, "  金币  %s\n", StyleYellow.Render(fmt.Sprintf("+%d → %d", domain.CoinsPerCheckIn, res.Stats.TotalCoins)))
	for _, badge := range res.NewBadges {
		fmt.Fprintf(&b, "  %s 获得徽章 %s %s\n", StylePurple.Render("★"), badge.Emoji, Bold(badge.Name))
	}
	return b.String()
}

// FormatProgress renders stats, badges and the money tree.
func FormatProgress(r *service.ProgressReport) string {
	var b strings.Builder
	s := r.Stats
	b.WriteString(Table{
		Headers:    []string{"指标", "数值"},
		RightAlign: map[int]bool{1: true},
		Rows: [][]string{
			{"累计打卡", fmt.Sprintf("%d", s.TotalCheckIns)},
			{"当前连续", fmt.Sprintf("%d", s.CurrentStreak)},
			{"最长连续", fmt.Sprintf("%d", s.LongestStreak)},
			{"搞钱金币", fmt.Sprintf("%d", s.TotalCoins)},
		},
	}.Render())
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s %s %s\n", r.Tree.Emoji, Bold(r.Tree.Name), Dim(r.Tree.Description))
	if r.NextTree != nil {
		fmt.Fprintf(&b, "  %s %s\n", RenderProgress(r.TreeProgress, 20),
			Dim(fmt.Sprintf("距离%s还差 %d 次", r.NextTree.Name, r.NextTree.RequiredCheckIns-s.TotalCheckIns)))
	} else {
		b.WriteString("  " + StyleGreen.Render("已长成摇钱树") + "\n")
	}
	b.WriteString("\n")

	if len(r.Earned) == 0 {
		b.WriteString(Dim("还没有徽章") + "\n")
	} else {
		names := make([]string, 0, len(r.Earned))
		for _, badge := range r.Earned {
			names = append(names, badge.Emoji+" "+badge.Name)
		}
		fmt.Fprintf(&b, "%s %s\n", Dim("徽章"), strings.Join(names, "  "))
	}
	if r.NextBadge != nil {
		fmt.Fprintf(&b, "%s %s %s %s\n", Dim("下一个"), r.NextBadge.Emoji, r.NextBadge.Name,
			Dim(fmt.Sprintf("(%s，还差 %d 天)", r.NextBadge.Description, r.BadgeRemain)))
	}
	return RenderBox("搞钱进度", strings.TrimRight(b.String(), "\n"))
}
