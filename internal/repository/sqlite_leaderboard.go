package repository

import (
	"context"
	"fmt"

	"github.com/rich365/rich365/internal/db"
	"github.com/rich365/rich365/internal/domain"
)

// SQLiteLeaderboardRepo ranks users by their stored stats.
type SQLiteLeaderboardRepo struct {
	db db.DBTX
}

func NewSQLiteLeaderboardRepo(conn db.DBTX) *SQLiteLeaderboardRepo {
	return &SQLiteLeaderboardRepo{db: conn}
}

func orderFor(kind domain.LeaderboardKind) (primary, order string, err error) {
	switch kind {
	case domain.LeaderboardStreak:
		return "s.current_streak", "s.current_streak DESC, s.total_check_ins DESC, u.id", nil
	case domain.LeaderboardTotal:
		return "s.total_check_ins", "s.total_check_ins DESC, s.current_streak DESC, u.id", nil
	default:
		return "", "", fmt.Errorf("unknown leaderboard kind %q", kind)
	}
}

func (r *SQLiteLeaderboardRepo) Top(ctx context.Context, kind domain.LeaderboardKind, limit int) ([]domain.LeaderboardEntry, error) {
	_, order, err := orderFor(kind)
	if err != nil {
		return nil, err
	}
	query := `SELECT u.id, u.username, u.avatar, s.current_streak, s.total_check_ins
		FROM users u JOIN user_stats s ON s.user_id = u.id
		ORDER BY ` + order + ` LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.Username, &e.Avatar, &e.CurrentStreak, &e.TotalCheckIns); err != nil {
			return nil, fmt.Errorf("scanning leaderboard row: %w", err)
		}
		e.Rank = len(entries) + 1
		if e.Username == "" {
			e.Username = domain.DefaultUsername
		}
		if e.Avatar == "" {
			e.Avatar = domain.DefaultAvatar
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Rank counts users with a strictly greater value, plus one.
func (r *SQLiteLeaderboardRepo) Rank(ctx context.Context, userID string, kind domain.LeaderboardKind) (*domain.UserRank, error) {
	column, _, err := orderFor(kind)
	if err != nil {
		return nil, err
	}

	var value int
	err = r.db.QueryRowContext(ctx,
		`SELECT `+column+` FROM user_stats s WHERE s.user_id = ?`, userID).Scan(&value)
	if err != nil {
		return nil, fmt.Errorf("user stats %s: %w", userID, ErrNotFound)
	}

	var rank domain.UserRank
	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM user_stats s WHERE `+column+` > ?`, value).Scan(&rank.Rank)
	if err != nil {
		return nil, fmt.Errorf("counting higher ranks: %w", err)
	}
	rank.Rank++

	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM user_stats`).Scan(&rank.TotalUsers); err != nil {
		return nil, fmt.Errorf("counting users: %w", err)
	}
	return &rank, nil
}
