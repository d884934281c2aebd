package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rich365/rich365/internal/db"
	"github.com/rich365/rich365/internal/domain"
)

// SQLiteMonthlyThemeRepo stores planned month themes per user and year.
type SQLiteMonthlyThemeRepo struct {
	db db.DBTX
}

func NewSQLiteMonthlyThemeRepo(conn db.DBTX) *SQLiteMonthlyThemeRepo {
	return &SQLiteMonthlyThemeRepo{db: conn}
}

func (r *SQLiteMonthlyThemeRepo) SaveAll(ctx context.Context, themes []domain.PlannedTheme) error {
	query := `INSERT OR REPLACE INTO monthly_themes
		(user_id, year, relative_month, theme, description, emoji, start_date, end_date, is_generated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, t := range themes {
		_, err := r.db.ExecContext(ctx, query,
			t.UserID,
			t.Year,
			t.RelativeMonth,
			t.Theme,
			t.Description,
			t.Emoji,
			t.StartDate,
			t.EndDate,
			boolToInt(t.Generated),
		)
		if err != nil {
			return fmt.Errorf("saving theme %d/%d: %w", t.Year, t.RelativeMonth, err)
		}
	}
	return nil
}

const themeColumns = `user_id, year, relative_month, theme, description, emoji, start_date, end_date, is_generated`

func (r *SQLiteMonthlyThemeRepo) Get(ctx context.Context, userID string, year, month int) (*domain.PlannedTheme, error) {
	query := `SELECT ` + themeColumns + ` FROM monthly_themes WHERE user_id = ? AND year = ? AND relative_month = ?`
	t, err := scanTheme(r.db.QueryRowContext(ctx, query, userID, year, month))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *SQLiteMonthlyThemeRepo) ListByYear(ctx context.Context, userID string, year int) ([]domain.PlannedTheme, error) {
	query := `SELECT ` + themeColumns + ` FROM monthly_themes WHERE user_id = ? AND year = ? ORDER BY relative_month`
	rows, err := r.db.QueryContext(ctx, query, userID, year)
	if err != nil {
		return nil, fmt.Errorf("listing monthly themes: %w", err)
	}
	defer rows.Close()

	var themes []domain.PlannedTheme
	for rows.Next() {
		t, err := scanTheme(rows)
		if err != nil {
			return nil, err
		}
		themes = append(themes, t)
	}
	return themes, rows.Err()
}

func scanTheme(row scanner) (domain.PlannedTheme, error) {
	var (
		t         domain.PlannedTheme
		generated int
	)
	err := row.Scan(&t.UserID, &t.Year, &t.RelativeMonth, &t.Theme, &t.Description, &t.Emoji,
		&t.StartDate, &t.EndDate, &generated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return t, fmt.Errorf("monthly theme: %w", ErrNotFound)
		}
		return t, fmt.Errorf("scanning monthly theme: %w", err)
	}
	t.Generated = intToBool(generated)
	return t, nil
}
