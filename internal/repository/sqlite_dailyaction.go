package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/rich365/rich365/internal/db"
	"github.com/rich365/rich365/internal/domain"
)

// SQLiteDailyActionRepo stores materialized daily actions keyed by
// (user_id, date).
type SQLiteDailyActionRepo struct {
	db db.DBTX
}

func NewSQLiteDailyActionRepo(conn db.DBTX) *SQLiteDailyActionRepo {
	return &SQLiteDailyActionRepo{db: conn}
}

// SourceServed marks template actions stored on first view rather than by
// a generation run.
const SourceServed = "served"

// maxBatchRows keeps each multi-row insert well below SQLite's bound
// parameter limit.
const maxBatchRows = 100

func (r *SQLiteDailyActionRepo) SaveBatch(ctx context.Context, userID, source string, actions []domain.DailyAction) error {
	now := nowUTC()
	for start := 0; start < len(actions); start += maxBatchRows {
		end := start + maxBatchRows
		if end > len(actions) {
			end = len(actions)
		}
		chunk := actions[start:end]

		var (
			b    strings.Builder
			args = make([]any, 0, len(chunk)*9)
		)
		b.WriteString(`INSERT OR REPLACE INTO daily_actions
			(user_id, date, title, description, emoji, theme, category, source, created_at) VALUES `)
		for i, a := range chunk {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString("(?, ?, ?, ?, ?, ?, ?, ?, ?)")
			args = append(args, userID, a.Date, a.Title, a.Description, a.Emoji, a.Theme, string(a.Category), source, now)
		}
		if _, err := r.db.ExecContext(ctx, b.String(), args...); err != nil {
			return fmt.Errorf("saving daily actions %d-%d: %w", start, end, err)
		}
	}
	return nil
}

func (r *SQLiteDailyActionRepo) Get(ctx context.Context, userID, date string) (*domain.DailyAction, error) {
	query := `SELECT date, title, description, emoji, theme, category
		FROM daily_actions WHERE user_id = ? AND date = ?`
	a, err := scanAction(r.db.QueryRowContext(ctx, query, userID, date))
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *SQLiteDailyActionRepo) ListRange(ctx context.Context, userID, from, to string) ([]domain.DailyAction, error) {
	query := `SELECT date, title, description, emoji, theme, category
		FROM daily_actions WHERE user_id = ? AND date >= ? AND date <= ?
		ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing daily actions: %w", err)
	}
	defer rows.Close()

	var actions []domain.DailyAction
	for rows.Next() {
		a, err := scanAction(rows)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, rows.Err()
}

func (r *SQLiteDailyActionRepo) Count(ctx context.Context, userID string) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM daily_actions WHERE user_id = ?`, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting daily actions: %w", err)
	}
	return n, nil
}

func (r *SQLiteDailyActionRepo) CountGenerated(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM daily_actions WHERE user_id = ? AND source != ?`, userID, SourceServed).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting generated actions: %w", err)
	}
	return n, nil
}

func (r *SQLiteDailyActionRepo) DeleteRange(ctx context.Context, userID, from, to string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM daily_actions WHERE user_id = ? AND date >= ? AND date <= ?`, userID, from, to)
	if err != nil {
		return fmt.Errorf("deleting daily actions: %w", err)
	}
	return nil
}

func scanAction(row scanner) (domain.DailyAction, error) {
	var (
		a        domain.DailyAction
		category string
	)
	if err := row.Scan(&a.Date, &a.Title, &a.Description, &a.Emoji, &a.Theme, &category); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return a, fmt.Errorf("daily action: %w", ErrNotFound)
		}
		return a, fmt.Errorf("scanning daily action: %w", err)
	}
	a.Category = domain.Category(category)
	return a, nil
}
