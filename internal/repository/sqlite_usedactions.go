package repository

import (
	"context"
	"fmt"

	"github.com/rich365/rich365/internal/db"
	"github.com/rich365/rich365/internal/domain"
	"github.com/rich365/rich365/internal/scheduler"
)

// SQLiteUsedActionStore persists the per-year used-title ledger. Set
// replaces the whole ledger for a key in one transaction.
type SQLiteUsedActionStore struct {
	db  db.DBTX
	uow db.UnitOfWork
}

var _ scheduler.UsedActionStore = (*SQLiteUsedActionStore)(nil)

func NewSQLiteUsedActionStore(conn db.DBTX, uow db.UnitOfWork) *SQLiteUsedActionStore {
	return &SQLiteUsedActionStore{db: conn, uow: uow}
}

func (s *SQLiteUsedActionStore) Get(ctx context.Context, year int, p domain.PersonalityType, r domain.Role) (*scheduler.UsedSet, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT title FROM used_actions WHERE year = ? AND mbti = ? AND role = ? ORDER BY position`,
		year, string(p), string(r))
	if err != nil {
		return nil, fmt.Errorf("loading used actions: %w", err)
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scanning used action: %w", err)
		}
		titles = append(titles, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return scheduler.NewUsedSet(titles...), nil
}

func (s *SQLiteUsedActionStore) Set(ctx context.Context, year int, p domain.PersonalityType, r domain.Role, used *scheduler.UsedSet) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM used_actions WHERE year = ? AND mbti = ? AND role = ?`,
			year, string(p), string(r)); err != nil {
			return fmt.Errorf("clearing used actions: %w", err)
		}
		for i, title := range used.Titles() {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO used_actions (year, mbti, role, position, title) VALUES (?, ?, ?, ?, ?)`,
				year, string(p), string(r), i, title); err != nil {
				return fmt.Errorf("saving used action %q: %w", title, err)
			}
		}
		return nil
	})
}
