// Package progress turns check-in history into streaks, coins, badges and
// the growth tree shown to users.
package progress

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rich365/rich365/internal/domain"
)

var (
	ErrFutureDate       = errors.New("cannot check in for a future date")
	ErrAlreadyCheckedIn = errors.New("already checked in for this date")
)

// Result is the outcome of one accepted check-in.
type Result struct {
	Stats domain.UserStats
	// NewBadges lists badges earned by this check-in, in table order.
	NewBadges []domain.Badge
}

// ApplyCheckIn records date against stats. history holds every previously
// accepted check-in date for the user, in any order. stats is not mutated.
func ApplyCheckIn(stats domain.UserStats, history []string, date string, today time.Time) (*Result, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return nil, err
	}
	if date > today.Format(domain.DateLayout) {
		return nil, fmt.Errorf("%s: %w", date, ErrFutureDate)
	}
	for _, d := range history {
		if d == date {
			return nil, fmt.Errorf("%s: %w", date, ErrAlreadyCheckedIn)
		}
	}

	dates := make([]string, 0, len(history)+1)
	dates = append(dates, history...)
	dates = append(dates, date)

	next := stats
	next.Badges = append([]string(nil), stats.Badges...)
	next.TotalCheckIns = len(dates)
	next.TotalCoins = stats.TotalCoins + domain.CoinsPerCheckIn
	next.CurrentStreak = CurrentStreak(dates)
	if next.CurrentStreak > next.LongestStreak {
		next.LongestStreak = next.CurrentStreak
	}
	if date > next.LastCheckInDate {
		next.LastCheckInDate = date
	}

	res := &Result{}
	for _, b := range Badges {
		if next.HasBadge(b.ID) || !earned(b, next) {
			continue
		}
		next.Badges = append(next.Badges, b.ID)
		res.NewBadges = append(res.NewBadges, b)
	}
	res.Stats = next
	return res, nil
}

// CurrentStreak counts consecutive days ending at the latest date in dates.
// Unparseable entries are ignored.
func CurrentStreak(dates []string) int {
	days := make([]time.Time, 0, len(dates))
	seen := make(map[string]bool, len(dates))
	for _, d := range dates {
		if seen[d] {
			continue
		}
		t, err := domain.ParseDate(d)
		if err != nil {
			continue
		}
		seen[d] = true
		days = append(days, t)
	}
	if len(days) == 0 {
		return 0
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	streak := 1
	for i := 1; i < len(days); i++ {
		if !days[i].AddDate(0, 0, 1).Equal(days[i-1]) {
			break
		}
		streak++
	}
	return streak
}
