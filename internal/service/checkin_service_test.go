package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rich365/rich365/internal/progress"
	"github.com/rich365/rich365/internal/repository"
	"github.com/rich365/rich365/internal/testutil"
)

func TestCheckIn_BuildsStreakAndAwardsBadge(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	u := f.seedUser(t)

	var last *progress.Result
	for d := 4; d <= 10; d++ {
		res, err := f.checkIns.CheckIn(ctx, u.ID, day(2025, 3, d).Format("2006-01-02"), "")
		require.NoError(t, err)
		last = res
	}
	require.NotNil(t, last)
	assert.Equal(t, 7, last.Stats.CurrentStreak)
	assert.Equal(t, 70, last.Stats.TotalCoins)
	require.Len(t, last.NewBadges, 1)
	assert.Equal(t, "newbie", last.NewBadges[0].ID)

	stats, err := f.checkIns.Stats(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, stats.TotalCheckIns)
	assert.Equal(t, 7, stats.LongestStreak)
	assert.Equal(t, []string{"newbie"}, stats.Badges)
	assert.Equal(t, "2025-03-10", stats.LastCheckInDate)
}

func TestCheckIn_DefaultsToTodayInLocation(t *testing.T) {
	f := newFixture(t, nil)
	u := f.seedUser(t)

	res, err := f.checkIns.CheckIn(context.Background(), u.ID, "", "早起记账")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", res.Stats.LastCheckInDate)

	history, err := f.checkIns.History(context.Background(), u.ID, "2025-03-01", "2025-03-31")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "早起记账", history[0].Note)
}

func TestCheckIn_Rejections(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	u := f.seedUser(t)

	_, err := f.checkIns.CheckIn(ctx, u.ID, "2025-03-09", "")
	require.NoError(t, err)

	_, err = f.checkIns.CheckIn(ctx, u.ID, "2025-03-09", "")
	assert.ErrorIs(t, err, progress.ErrAlreadyCheckedIn)

	_, err = f.checkIns.CheckIn(ctx, u.ID, "2025-03-11", "")
	assert.ErrorIs(t, err, progress.ErrFutureDate)

	_, err = f.checkIns.CheckIn(ctx, u.ID, "not-a-date", "")
	assert.Error(t, err)

	_, err = f.checkIns.CheckIn(ctx, "ghost", "2025-03-09", "")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	stats, err := f.checkIns.Stats(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalCheckIns)
}

func TestCheckIn_RollsBackWhenStatsWriteFails(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	u := f.seedUser(t)

	// Exec 1 inserts the check-in, exec 2 upserts stats.
	svc := NewCheckInService(repository.NewSQLiteCheckInRepo(f.db), repository.NewSQLiteStatsRepo(f.db),
		&testutil.FailOnNthExecUoW{DB: f.db, FailOn: 2}, shanghai, fixedClock)

	_, err := svc.CheckIn(ctx, u.ID, "2025-03-10", "")
	assert.ErrorIs(t, err, testutil.ErrInjected)

	history, err := f.checkIns.History(ctx, u.ID, "2025-01-01", "2025-12-31")
	require.NoError(t, err)
	assert.Empty(t, history)

	_, err = f.checkIns.CheckIn(ctx, u.ID, "2025-03-10", "")
	assert.NoError(t, err, "rolled back check-in must not block a retry")
}

func TestProgress(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	u := f.seedUser(t)

	report, err := f.checkIns.Progress(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Tree.Level)
	require.NotNil(t, report.NextBadge)
	assert.Positive(t, report.BadgeRemain)

	_, err = f.checkIns.CheckIn(ctx, u.ID, "2025-03-10", "")
	require.NoError(t, err)
	report, err = f.checkIns.Progress(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Stats.TotalCheckIns)
	assert.Empty(t, report.Earned)
	require.NotNil(t, report.NextTree)
}

func TestHistory_ValidatesBounds(t *testing.T) {
	f := newFixture(t, nil)
	_, err := f.checkIns.History(context.Background(), "u", "2025-13-01", "2025-12-31")
	assert.Error(t, err)
}
