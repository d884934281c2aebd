package formatter

import (
	"fmt"
	"strings"

	"github.com/rich365/rich365/internal/domain"
)

var medals = map[int]string{1: "🥇", 2: "🥈", 3: "🥉"}

// FormatLeaderboard renders the ranked entries. highlight marks one user.
func FormatLeaderboard(kind domain.LeaderboardKind, entries []domain.LeaderboardEntry, highlight string) string {
	title := "连续打卡榜"
	if kind == domain.LeaderboardTotal {
		title = "累计打卡榜"
	}
	if len(entries) == 0 {
		return Header(title) + "\n" + Dim("暂无数据") + "\n"
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rank := fmt.Sprintf("%d", e.Rank)
		if m, ok := medals[e.Rank]; ok {
			rank = m
		}
		name := e.Avatar + " " + e.Username
		if e.UserID == highlight {
			name = StyleYellow.Render(name + " (我)")
		}
		rows = append(rows, []string{rank, name, fmt.Sprintf("%d", e.CurrentStreak), fmt.Sprintf("%d", e.TotalCheckIns)})
	}
	t := Table{
		Headers:    []string{"排名", "用户", "连续", "累计"},
		Rows:       rows,
		RightAlign: map[int]bool{2: true, 3: true},
	}
	return Header(title) + "\n" + t.Render()
}

// FormatRank renders "第 3 名 / 共 12 人".
func FormatRank(r *domain.UserRank) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s\n", Dim("我的排名"), StyleYellow.Render(fmt.Sprintf("第 %d 名", r.Rank)), Dim(fmt.Sprintf("/ 共 %d 人", r.TotalUsers)))
	return b.String()
}
