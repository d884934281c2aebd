package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rich365/rich365/internal/db"
	"github.com/rich365/rich365/internal/domain"
)

// SQLiteStatsRepo implements StatsRepo using a SQLite database.
type SQLiteStatsRepo struct {
	db db.DBTX
}

func NewSQLiteStatsRepo(conn db.DBTX) *SQLiteStatsRepo {
	return &SQLiteStatsRepo{db: conn}
}

func (r *SQLiteStatsRepo) Get(ctx context.Context, userID string) (*domain.UserStats, error) {
	query := `SELECT total_check_ins, current_streak, longest_streak, total_coins, badges, last_check_in_date
		FROM user_stats WHERE user_id = ?`
	var (
		s      domain.UserStats
		badges string
	)
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&s.TotalCheckIns,
		&s.CurrentStreak,
		&s.LongestStreak,
		&s.TotalCoins,
		&badges,
		&s.LastCheckInDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.UserStats{}, nil
		}
		return nil, fmt.Errorf("scanning user stats: %w", err)
	}
	s.Badges = decodeStrings(badges)
	return &s, nil
}

func (r *SQLiteStatsRepo) Upsert(ctx context.Context, userID string, s *domain.UserStats) error {
	query := `INSERT INTO user_stats (user_id, total_check_ins, current_streak, longest_streak,
			total_coins, badges, last_check_in_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			total_check_ins = excluded.total_check_ins,
			current_streak = excluded.current_streak,
			longest_streak = excluded.longest_streak,
			total_coins = excluded.total_coins,
			badges = excluded.badges,
			last_check_in_date = excluded.last_check_in_date`
	_, err := r.db.ExecContext(ctx, query,
		userID,
		s.TotalCheckIns,
		s.CurrentStreak,
		s.LongestStreak,
		s.TotalCoins,
		encodeStrings(s.Badges),
		s.LastCheckInDate,
	)
	if err != nil {
		return fmt.Errorf("upserting user stats: %w", err)
	}
	return nil
}
