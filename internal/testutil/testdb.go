package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/rich365/rich365/internal/db"
	"github.com/rich365/rich365/internal/domain"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// SeedUser inserts a user row and its empty stats row directly.
func SeedUser(t *testing.T, conn db.DBTX, opts ...UserOption) *domain.User {
	t.Helper()
	u := NewTestUser(opts...)
	ctx := context.Background()
	_, err := conn.ExecContext(ctx,
		`INSERT INTO users (id, username, avatar, mbti, role, goal, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.Avatar, string(u.Profile.PersonalityType), string(u.Profile.Role),
		u.Profile.Goal, u.CreatedAt.Format(time.RFC3339), u.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	if _, err := conn.ExecContext(ctx, `INSERT INTO user_stats (user_id) VALUES (?)`, u.ID); err != nil {
		t.Fatalf("seeding user stats: %v", err)
	}
	return u
}

// SeedStats overwrites the stats counters of a seeded user.
func SeedStats(t *testing.T, conn db.DBTX, userID string, streak, total int) {
	t.Helper()
	_, err := conn.ExecContext(context.Background(),
		`UPDATE user_stats SET current_streak = ?, total_check_ins = ?, longest_streak = MAX(longest_streak, ?)
		WHERE user_id = ?`, streak, total, streak, userID)
	if err != nil {
		t.Fatalf("seeding stats: %v", err)
	}
}
