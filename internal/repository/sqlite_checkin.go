package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/rich365/rich365/internal/db"
	"github.com/rich365/rich365/internal/domain"
)

// SQLiteCheckInRepo implements CheckInRepo using a SQLite database.
type SQLiteCheckInRepo struct {
	db db.DBTX
}

func NewSQLiteCheckInRepo(conn db.DBTX) *SQLiteCheckInRepo {
	return &SQLiteCheckInRepo{db: conn}
}

func (r *SQLiteCheckInRepo) Create(ctx context.Context, c *domain.CheckIn) error {
	query := `INSERT INTO check_ins (user_id, date, action_date, note, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.UserID,
		c.Date,
		c.ActionDate,
		c.Note,
		c.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("check-in %s: %w", c.Date, ErrDuplicate)
		}
		return fmt.Errorf("inserting check-in: %w", err)
	}
	return nil
}

func (r *SQLiteCheckInRepo) Exists(ctx context.Context, userID, date string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM check_ins WHERE user_id = ? AND date = ?`, userID, date).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking check-in: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteCheckInRepo) ListDates(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT date FROM check_ins WHERE user_id = ? ORDER BY date`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing check-in dates: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scanning check-in date: %w", err)
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

func (r *SQLiteCheckInRepo) ListRange(ctx context.Context, userID, from, to string) ([]*domain.CheckIn, error) {
	query := `SELECT user_id, date, action_date, note, created_at FROM check_ins
		WHERE user_id = ? AND date >= ? AND date <= ? ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing check-ins: %w", err)
	}
	defer rows.Close()

	var out []*domain.CheckIn
	for rows.Next() {
		var (
			c         domain.CheckIn
			createdAt string
		)
		if err := rows.Scan(&c.UserID, &c.Date, &c.ActionDate, &c.Note, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning check-in: %w", err)
		}
		c.CreatedAt = parseTime(createdAt)
		out = append(out, &c)
	}
	return out, rows.Err()
}
