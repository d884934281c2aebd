package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rich365/rich365/internal/domain"
	"github.com/rich365/rich365/internal/testutil"
)

func TestLeaderboard_TopAndRank(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	a := f.seedUser(t, testutil.WithUsername(""), testutil.WithAvatar(""))
	b := f.seedUser(t)
	c := f.seedUser(t)
	testutil.SeedStats(t, f.db, a.ID, 12, 40)
	testutil.SeedStats(t, f.db, b.ID, 3, 90)
	testutil.SeedStats(t, f.db, c.ID, 12, 10)

	top, err := f.leaderboard.Top(ctx, domain.LeaderboardStreak, 0)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, 12, top[0].CurrentStreak)
	assert.Equal(t, domain.DefaultUsername, top[0].Username)
	assert.Equal(t, domain.DefaultAvatar, top[0].Avatar)

	rank, err := f.leaderboard.Rank(ctx, b.ID, domain.LeaderboardStreak)
	require.NoError(t, err)
	assert.Equal(t, 3, rank.Rank)
	assert.Equal(t, 3, rank.TotalUsers)

	rank, err = f.leaderboard.Rank(ctx, b.ID, domain.LeaderboardTotal)
	require.NoError(t, err)
	assert.Equal(t, 1, rank.Rank)

	_, err = f.leaderboard.Top(ctx, "coins", 5)
	assert.ErrorIs(t, err, ErrInvalidLeaderboardKind)
}

func TestExport_MonthICS(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	u := f.seedUser(t)

	data, err := f.export.MonthICS(ctx, u.ID, 2025, 2)
	require.NoError(t, err)
	body := string(data)
	assert.True(t, strings.HasPrefix(body, "BEGIN:VCALENDAR\r\n"))
	assert.Equal(t, 28, strings.Count(body, "BEGIN:VEVENT"))
	assert.Contains(t, body, "UID:action-2025-02-14@rich365.ai")

	_, err = f.export.MonthICS(ctx, u.ID, 2025, 13)
	assert.ErrorIs(t, err, domain.ErrInvalidMonth)

	assert.Contains(t, f.observer.names(), "export-ics")
}
