package testutil

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/rich365/rich365/internal/db"
	"github.com/rich365/rich365/internal/domain"
	"github.com/rich365/rich365/internal/scheduler"
)

// ErrInjected is the default failure returned by the failing doubles.
var ErrInjected = errors.New("injected failure")

// FailOnNthExecUoW injects an error on the Nth ExecContext call within a
// transaction, counting from 1. Reads pass through.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	injected := u.Err
	if injected == nil {
		injected = ErrInjected
	}
	wrapped := &failOnNthExec{DBTX: tx, failOn: u.FailOn, err: injected}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type failOnNthExec struct {
	db.DBTX
	count  atomic.Int32
	failOn int32
	err    error
}

func (f *failOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.count.Add(1) == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

// FailingUsedStore is a scheduler.UsedActionStore whose reads and writes
// fail, counting each attempt.
type FailingUsedStore struct {
	Gets atomic.Int32
	Sets atomic.Int32
}

var _ scheduler.UsedActionStore = (*FailingUsedStore)(nil)

func (s *FailingUsedStore) Get(context.Context, int, domain.PersonalityType, domain.Role) (*scheduler.UsedSet, error) {
	s.Gets.Add(1)
	return nil, ErrInjected
}

func (s *FailingUsedStore) Set(context.Context, int, domain.PersonalityType, domain.Role, *scheduler.UsedSet) error {
	s.Sets.Add(1)
	return ErrInjected
}
