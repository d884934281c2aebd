package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rich365/rich365/internal/db"
	"github.com/rich365/rich365/internal/domain"
	"github.com/rich365/rich365/internal/repository"
	"github.com/rich365/rich365/internal/testutil"
	"github.com/rich365/rich365/internal/theme"
)

func TestMonthActions_TemplatePathIsMemoized(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	u := f.seedUser(t)

	first, err := f.calendar.MonthActions(ctx, u.ID, 2025, 3)
	require.NoError(t, err)
	require.Len(t, first, 31)
	assert.Equal(t, "2025-03-01", first[0].Date)

	// A second selector run would see the month's titles as used; the
	// memo must hand back the first result.
	second, err := f.calendar.MonthActions(ctx, u.ID, 2025, 3)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	second[0].Title = "mutated"
	third, err := f.calendar.MonthActions(ctx, u.ID, 2025, 3)
	require.NoError(t, err)
	assert.Equal(t, first[0].Title, third[0].Title)
}

func TestDailyAction_StableAcrossReopenedDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rich365.db")
	ctx := context.Background()

	var (
		userID string
		seen   []domain.DailyAction
	)
	for run := 0; run < 3; run++ {
		database, err := db.OpenDB(path)
		require.NoError(t, err)
		f := newFixtureOn(t, database, nil)
		if run == 0 {
			userID = f.seedUser(t).ID
		}

		got, err := f.calendar.DailyAction(ctx, userID, "2025-01-15")
		require.NoError(t, err)
		seen = append(seen, *got)
		require.NoError(t, database.Close())
	}

	assert.Equal(t, seen[0], seen[1])
	assert.Equal(t, seen[0], seen[2])
}

func TestMonthActions_TemplateMonthIsStoredAsServed(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	u := f.seedUser(t)

	served, err := f.calendar.MonthActions(ctx, u.ID, 2025, 2)
	require.NoError(t, err)

	stored, err := f.actions.ListRange(ctx, u.ID, "2025-02-01", "2025-02-28")
	require.NoError(t, err)
	assert.Equal(t, served, stored)

	var source string
	require.NoError(t, f.db.QueryRowContext(ctx,
		`SELECT source FROM daily_actions WHERE user_id = ? AND date = ?`, u.ID, "2025-02-01").Scan(&source))
	assert.Equal(t, repository.SourceServed, source)
}

func TestMonthActions_PrefersStoredActions(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	u := f.seedUser(t)

	stored := testutil.NewTestActions(day(2025, 4, 1), 3, "存储主题")
	stored[1].Emoji = ""
	require.NoError(t, f.actions.SaveBatch(ctx, u.ID, "ai", stored))

	got, err := f.calendar.MonthActions(ctx, u.ID, 2025, 4)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Action 1", got[0].Title)
	assert.Equal(t, DefaultStoredEmoji, got[1].Emoji)
}

func TestMonthActions_Errors(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	u := f.seedUser(t)
	_, err := f.calendar.MonthActions(ctx, u.ID, 2025, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidMonth)

	incomplete := f.seedUser(t, testutil.WithoutProfile())
	_, err = f.calendar.MonthActions(ctx, incomplete.ID, 2025, 1)
	assert.ErrorIs(t, err, domain.ErrProfileIncomplete)

	_, err = f.calendar.MonthActions(ctx, "ghost", 2025, 1)
	assert.Error(t, err)
}

func TestMonthActions_ConcurrentCallsAgree(t *testing.T) {
	f := newFixture(t, nil)
	u := f.seedUser(t)

	const workers = 8
	results := make([][]domain.DailyAction, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, err := f.calendar.MonthActions(context.Background(), u.ID, 2025, 5)
			assert.NoError(t, err)
			results[i] = got
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		assert.Equal(t, results[0], results[i])
	}
}

func TestDailyAction(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	u := f.seedUser(t)

	require.NoError(t, f.actions.SaveBatch(ctx, u.ID, "ai", testutil.NewTestActions(day(2025, 6, 10), 1, "六月")))

	stored, err := f.calendar.DailyAction(ctx, u.ID, "2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, "Action 1", stored.Title)

	fromTemplate, err := f.calendar.DailyAction(ctx, u.ID, "2025-02-14")
	require.NoError(t, err)
	assert.Equal(t, "2025-02-14", fromTemplate.Date)

	_, err = f.calendar.DailyAction(ctx, u.ID, "2025-02-30")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestMonthTheme_Sources(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	u := f.seedUser(t)

	derived, err := theme.GetMonthTheme(7, u.Profile)
	require.NoError(t, err)

	got, err := f.calendar.MonthTheme(ctx, u.ID, 2025, 7)
	require.NoError(t, err)
	assert.Equal(t, derived, *got)

	require.NoError(t, f.actions.SaveBatch(ctx, u.ID, "ai", testutil.NewTestActions(day(2025, 7, 1), 2, "动作主题")))
	got, err = f.calendar.MonthTheme(ctx, u.ID, 2025, 7)
	require.NoError(t, err)
	assert.Equal(t, "动作主题", got.Theme)
	assert.Equal(t, derived.Description, got.Description)

	require.NoError(t, f.themes.SaveAll(ctx, []domain.PlannedTheme{{
		UserID: u.ID, Year: 2025, RelativeMonth: 7, Theme: "计划主题", Emoji: "🧭",
		StartDate: "2025-07-01", EndDate: "2025-07-31",
	}}))
	got, err = f.calendar.MonthTheme(ctx, u.ID, 2025, 7)
	require.NoError(t, err)
	assert.Equal(t, "计划主题", got.Theme)
	assert.Equal(t, "🧭", got.Emoji)
	assert.Equal(t, "七月", got.Name)

	year, err := f.calendar.YearThemes(ctx, u.ID, 2025)
	require.NoError(t, err)
	require.Len(t, year, 12)
	assert.Equal(t, "计划主题", year[6].Theme)
}
