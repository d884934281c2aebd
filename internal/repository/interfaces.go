package repository

import (
	"context"

	"github.com/rich365/rich365/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	UpdateDisplayInfo(ctx context.Context, id, username, avatar string) error
	List(ctx context.Context) ([]*domain.User, error)
}

type StatsRepo interface {
	// Get returns zeroed stats when the user has none yet.
	Get(ctx context.Context, userID string) (*domain.UserStats, error)
	Upsert(ctx context.Context, userID string, s *domain.UserStats) error
}

type DailyActionRepo interface {
	// SaveBatch upserts actions keyed by (user, date).
	SaveBatch(ctx context.Context, userID, source string, actions []domain.DailyAction) error
	Get(ctx context.Context, userID, date string) (*domain.DailyAction, error)
	// ListRange returns actions with from <= date <= to, ascending.
	ListRange(ctx context.Context, userID, from, to string) ([]domain.DailyAction, error)
	Count(ctx context.Context, userID string) (int, error)
	// CountGenerated counts rows written by generation, ignoring months
	// stored only because they were served from templates.
	CountGenerated(ctx context.Context, userID string) (int, error)
	DeleteRange(ctx context.Context, userID, from, to string) error
}

type MonthlyThemeRepo interface {
	SaveAll(ctx context.Context, themes []domain.PlannedTheme) error
	Get(ctx context.Context, userID string, year, month int) (*domain.PlannedTheme, error)
	ListByYear(ctx context.Context, userID string, year int) ([]domain.PlannedTheme, error)
}

type CheckInRepo interface {
	// Create returns ErrDuplicate when the user already checked in that day.
	Create(ctx context.Context, c *domain.CheckIn) error
	Exists(ctx context.Context, userID, date string) (bool, error)
	// ListDates returns every check-in date of the user, ascending.
	ListDates(ctx context.Context, userID string) ([]string, error)
	ListRange(ctx context.Context, userID, from, to string) ([]*domain.CheckIn, error)
}

type LeaderboardRepo interface {
	Top(ctx context.Context, kind domain.LeaderboardKind, limit int) ([]domain.LeaderboardEntry, error)
	Rank(ctx context.Context, userID string, kind domain.LeaderboardKind) (*domain.UserRank, error)
}

type SettingsRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
}
