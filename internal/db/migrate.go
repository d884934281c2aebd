package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := backfillUserStats(db); err != nil {
		return fmt.Errorf("backfilling user stats: %w", err)
	}
	return nil
}

// backfillUserStats gives every user a stats row so leaderboard joins see
// users that never checked in.
func backfillUserStats(db *sql.DB) error {
	_, err := db.Exec(`INSERT OR IGNORE INTO user_stats (user_id)
		SELECT id FROM users WHERE id NOT IN (SELECT user_id FROM user_stats)`)
	return err
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL DEFAULT '',
		avatar TEXT NOT NULL DEFAULT '',
		mbti TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL DEFAULT '',
		goal TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS user_stats (
		user_id TEXT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		total_check_ins INTEGER NOT NULL DEFAULT 0,
		current_streak INTEGER NOT NULL DEFAULT 0,
		longest_streak INTEGER NOT NULL DEFAULT 0,
		total_coins INTEGER NOT NULL DEFAULT 0,
		badges TEXT NOT NULL DEFAULT '[]',
		last_check_in_date TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS daily_actions (
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		date TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		emoji TEXT NOT NULL DEFAULT '',
		theme TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		PRIMARY KEY (user_id, date)
	)`,
	`ALTER TABLE daily_actions ADD COLUMN source TEXT NOT NULL DEFAULT 'template'`,
	`CREATE TABLE IF NOT EXISTS monthly_themes (
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		year INTEGER NOT NULL,
		relative_month INTEGER NOT NULL CHECK (relative_month BETWEEN 1 AND 12),
		theme TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		emoji TEXT NOT NULL DEFAULT '',
		start_date TEXT NOT NULL DEFAULT '',
		end_date TEXT NOT NULL DEFAULT '',
		is_generated INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (user_id, year, relative_month)
	)`,
	`CREATE TABLE IF NOT EXISTS check_ins (
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		date TEXT NOT NULL,
		action_date TEXT NOT NULL DEFAULT '',
		note TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		PRIMARY KEY (user_id, date)
	)`,
	`CREATE TABLE IF NOT EXISTS used_actions (
		year INTEGER NOT NULL,
		mbti TEXT NOT NULL,
		role TEXT NOT NULL,
		position INTEGER NOT NULL,
		title TEXT NOT NULL,
		PRIMARY KEY (year, mbti, role, title)
	)`,
	`CREATE TABLE IF NOT EXISTS app_settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_daily_actions_date ON daily_actions(user_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_check_ins_date ON check_ins(date)`,
	`CREATE INDEX IF NOT EXISTS idx_user_stats_streak ON user_stats(current_streak DESC, total_check_ins DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_user_stats_total ON user_stats(total_check_ins DESC, current_streak DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_used_actions_key ON used_actions(year, mbti, role, position)`,
}
