package repository

import (
	"context"
	"testing"

	"github.com/rich365/rich365/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInRepo_CreateAndExists(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCheckInRepo(db)
	ctx := context.Background()
	u := testutil.SeedUser(t, db)

	c := testutil.NewTestCheckIn(u.ID, "2025-01-02", testutil.WithNote("记账完成"))
	require.NoError(t, repo.Create(ctx, c))

	ok, err := repo.Exists(ctx, u.ID, "2025-01-02")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(ctx, u.ID, "2025-01-03")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckInRepo_DuplicateDay(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCheckInRepo(db)
	ctx := context.Background()
	u := testutil.SeedUser(t, db)

	require.NoError(t, repo.Create(ctx, testutil.NewTestCheckIn(u.ID, "2025-01-02")))
	err := repo.Create(ctx, testutil.NewTestCheckIn(u.ID, "2025-01-02", testutil.WithNote("again")))
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestCheckInRepo_ListDatesAscending(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCheckInRepo(db)
	ctx := context.Background()
	u := testutil.SeedUser(t, db)
	other := testutil.SeedUser(t, db)

	for _, d := range []string{"2025-01-05", "2025-01-01", "2025-01-03"} {
		require.NoError(t, repo.Create(ctx, testutil.NewTestCheckIn(u.ID, d)))
	}
	require.NoError(t, repo.Create(ctx, testutil.NewTestCheckIn(other.ID, "2025-01-02")))

	dates, err := repo.ListDates(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01-01", "2025-01-03", "2025-01-05"}, dates)

	inRange, err := repo.ListRange(ctx, u.ID, "2025-01-02", "2025-01-05")
	require.NoError(t, err)
	require.Len(t, inRange, 2)
	assert.Equal(t, "2025-01-03", inRange[0].Date)
	assert.Equal(t, u.ID, inRange[1].UserID)
}
