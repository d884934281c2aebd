package repository

import (
	"context"
	"testing"

	"github.com/rich365/rich365/internal/domain"
	"github.com/rich365/rich365/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteUserRepo(db)
	ctx := context.Background()

	u := testutil.NewTestUser(testutil.WithGoal("年入百万"), testutil.WithProfile(domain.ENFP, domain.RoleCreator))
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Username, got.Username)
	assert.Equal(t, domain.ENFP, got.Profile.PersonalityType)
	assert.Equal(t, domain.RoleCreator, got.Profile.Role)
	assert.Equal(t, "年入百万", got.Profile.Goal)
	assert.True(t, u.CreatedAt.Equal(got.CreatedAt))

	stats, err := NewSQLiteStatsRepo(db).Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalCheckIns)
}

func TestUserRepo_CreateDuplicate(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteUserRepo(db)
	ctx := context.Background()

	u := testutil.NewTestUser()
	require.NoError(t, repo.Create(ctx, u))
	assert.ErrorIs(t, repo.Create(ctx, u), ErrDuplicate)
}

func TestUserRepo_GetNotFound(t *testing.T) {
	repo := NewSQLiteUserRepo(testutil.NewTestDB(t))
	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepo_UpdateProfile(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteUserRepo(db)
	ctx := context.Background()

	u := testutil.SeedUser(t, db)
	u.Profile = domain.Profile{PersonalityType: domain.ISTJ, Role: domain.RoleEmployee, Goal: "升职"}
	require.NoError(t, repo.Update(ctx, u))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Profile, got.Profile)

	ghost := testutil.NewTestUser()
	assert.ErrorIs(t, repo.Update(ctx, ghost), ErrNotFound)
}

func TestUserRepo_UpdateDisplayInfo(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteUserRepo(db)
	ctx := context.Background()

	u := testutil.SeedUser(t, db)
	require.NoError(t, repo.UpdateDisplayInfo(ctx, u.ID, "财富猎人", "🦁"))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "财富猎人", got.Username)
	assert.Equal(t, "🦁", got.Avatar)

	assert.ErrorIs(t, repo.UpdateDisplayInfo(ctx, "missing", "x", "y"), ErrNotFound)
}

func TestUserRepo_List(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.SeedUser(t, db)
	testutil.SeedUser(t, db)

	users, err := NewSQLiteUserRepo(db).List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserRepo_DeleteCascades(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	u := testutil.SeedUser(t, db)

	require.NoError(t, NewSQLiteCheckInRepo(db).Create(ctx, testutil.NewTestCheckIn(u.ID, "2025-01-01")))
	_, err := db.Exec(`DELETE FROM users WHERE id = ?`, u.ID)
	require.NoError(t, err)

	dates, err := NewSQLiteCheckInRepo(db).ListDates(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, dates, "check-ins should be cascade-deleted with the user")
}

func TestStatsRepo_UpsertRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteStatsRepo(db)
	ctx := context.Background()
	u := testutil.SeedUser(t, db)

	want := &domain.UserStats{
		TotalCheckIns:   8,
		CurrentStreak:   7,
		LongestStreak:   7,
		TotalCoins:      80,
		Badges:          []string{"newbie"},
		LastCheckInDate: "2025-01-08",
	}
	require.NoError(t, repo.Upsert(ctx, u.ID, want))

	got, err := repo.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStatsRepo_GetMissingIsZero(t *testing.T) {
	got, err := NewSQLiteStatsRepo(testutil.NewTestDB(t)).Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, &domain.UserStats{}, got)
}

func TestSettingsRepo(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	_, err := repo.Get(ctx, SettingCurrentUser)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Put(ctx, SettingCurrentUser, "u1"))
	require.NoError(t, repo.Put(ctx, SettingCurrentUser, "u2"))
	v, err := repo.Get(ctx, SettingCurrentUser)
	require.NoError(t, err)
	assert.Equal(t, "u2", v)
}
