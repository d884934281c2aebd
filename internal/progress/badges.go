package progress

import "github.com/rich365/rich365/internal/domain"

// Badges is the award table, evaluated in order.
var Badges = []domain.Badge{
	{ID: "newbie", Name: "搞钱新星", Emoji: "🏅", Description: "连续打卡7天", Requirement: 7, Kind: domain.BadgeStreak},
	{ID: "veteran", Name: "财富老兵", Emoji: "💼", Description: "连续打卡30天", Requirement: 30, Kind: domain.BadgeStreak},
	{ID: "tycoon", Name: "行动富翁", Emoji: "👑", Description: "连续打卡100天", Requirement: 100, Kind: domain.BadgeStreak},
	{ID: "dedicated", Name: "坚持者", Emoji: "💪", Description: "累计打卡50天", Requirement: 50, Kind: domain.BadgeTotal},
	{ID: "master", Name: "搞钱大师", Emoji: "🎯", Description: "累计打卡200天", Requirement: 200, Kind: domain.BadgeTotal},
}

// BadgeByID looks up a badge in the table.
func BadgeByID(id string) (domain.Badge, bool) {
	for _, b := range Badges {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Badge{}, false
}

// EarnedBadges resolves the stored badge ids, skipping unknown ones.
func EarnedBadges(stats domain.UserStats) []domain.Badge {
	var out []domain.Badge
	for _, b := range Badges {
		if stats.HasBadge(b.ID) {
			out = append(out, b)
		}
	}
	return out
}

func current(b domain.Badge, stats domain.UserStats) int {
	if b.Kind == domain.BadgeStreak {
		return stats.CurrentStreak
	}
	return stats.TotalCheckIns
}

func earned(b domain.Badge, stats domain.UserStats) bool {
	return current(b, stats) >= b.Requirement
}

// NextBadge picks the closest unearned streak badge and the closest unearned
// total badge, then returns whichever is further along. Ties go to the total
// badge. Returns nil when every badge is earned.
func NextBadge(stats domain.UserStats) *domain.Badge {
	streak := closest(stats, domain.BadgeStreak)
	total := closest(stats, domain.BadgeTotal)
	switch {
	case streak == nil:
		return total
	case total == nil:
		return streak
	}
	streakRatio := float64(stats.CurrentStreak) / float64(streak.Requirement)
	totalRatio := float64(stats.TotalCheckIns) / float64(total.Requirement)
	if streakRatio > totalRatio {
		return streak
	}
	return total
}

func closest(stats domain.UserStats, kind domain.BadgeKind) *domain.Badge {
	var best *domain.Badge
	for i := range Badges {
		b := Badges[i]
		if b.Kind != kind || stats.HasBadge(b.ID) {
			continue
		}
		if best == nil || b.Requirement-current(b, stats) < best.Requirement-current(*best, stats) {
			best = &b
		}
	}
	return best
}

// Remaining is how many more days b needs.
func Remaining(b domain.Badge, stats domain.UserStats) int {
	n := b.Requirement - current(b, stats)
	if n < 0 {
		return 0
	}
	return n
}
