package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rich365/rich365/internal/db"
	"github.com/rich365/rich365/internal/domain"
)

// SQLiteUserRepo implements UserRepo using a SQLite database.
type SQLiteUserRepo struct {
	db db.DBTX
}

// NewSQLiteUserRepo creates a new SQLiteUserRepo.
func NewSQLiteUserRepo(conn db.DBTX) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: conn}
}

const userColumns = `id, username, avatar, mbti, role, goal, created_at, updated_at`

func (r *SQLiteUserRepo) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (` + userColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		u.ID,
		u.Username,
		u.Avatar,
		string(u.Profile.PersonalityType),
		string(u.Profile.Role),
		u.Profile.Goal,
		u.CreatedAt.UTC().Format(time.RFC3339),
		u.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user %s: %w", u.ID, ErrDuplicate)
		}
		return fmt.Errorf("inserting user: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `INSERT OR IGNORE INTO user_stats (user_id) VALUES (?)`, u.ID); err != nil {
		return fmt.Errorf("initializing user stats: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteUserRepo) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET username = ?, avatar = ?, mbti = ?, role = ?, goal = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		u.Username,
		u.Avatar,
		string(u.Profile.PersonalityType),
		string(u.Profile.Role),
		u.Profile.Goal,
		nowUTC(),
		u.ID,
	)
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}
	return requireAffected(res, "user "+u.ID)
}

func (r *SQLiteUserRepo) UpdateDisplayInfo(ctx context.Context, id, username, avatar string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET username = ?, avatar = ?, updated_at = ? WHERE id = ?`,
		username, avatar, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("updating display info: %w", err)
	}
	return requireAffected(res, "user "+id)
}

func (r *SQLiteUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*domain.User, error) {
	var (
		u                    domain.User
		mbti, role           string
		createdAt, updatedAt string
	)
	err := row.Scan(&u.ID, &u.Username, &u.Avatar, &mbti, &role, &u.Profile.Goal, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	u.Profile.PersonalityType = domain.PersonalityType(mbti)
	u.Profile.Role = domain.Role(role)
	u.CreatedAt = parseTime(createdAt)
	u.UpdatedAt = parseTime(updatedAt)
	return &u, nil
}

func requireAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}
