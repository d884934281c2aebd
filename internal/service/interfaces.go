package service

import (
	"context"

	"github.com/rich365/rich365/internal/domain"
	"github.com/rich365/rich365/internal/intelligence"
	"github.com/rich365/rich365/internal/progress"
)

// CurrentUserKey is the app_settings key holding the active local user.
const CurrentUserKey = "current_user"

type ProfileService interface {
	// Onboard creates the local user on first run and updates the current
	// user afterwards. The user becomes current.
	Onboard(ctx context.Context, p domain.Profile, username, avatar string) (*domain.User, error)
	// SaveProfile creates or updates the user with the given id.
	SaveProfile(ctx context.Context, userID string, p domain.Profile, username, avatar string) (*domain.User, error)
	Get(ctx context.Context, userID string) (*domain.User, error)
	UpdateDisplayInfo(ctx context.Context, userID, username, avatar string) error
	// Current returns the last onboarded or selected user.
	Current(ctx context.Context) (*domain.User, error)
	Use(ctx context.Context, userID string) error
	List(ctx context.Context) ([]*domain.User, error)
}

type CalendarService interface {
	MonthActions(ctx context.Context, userID string, year, month int) ([]domain.DailyAction, error)
	DailyAction(ctx context.Context, userID, date string) (*domain.DailyAction, error)
	MonthTheme(ctx context.Context, userID string, year, month int) (*domain.MonthTheme, error)
	YearThemes(ctx context.Context, userID string, year int) ([]domain.MonthTheme, error)
}

type GenerationService interface {
	GenerateYear(ctx context.Context, userID string, year int) (*GenerationResult, error)
	// GenerateMonth replaces the stored actions of one month.
	GenerateMonth(ctx context.Context, userID string, year, month int) (*GenerationResult, error)
	GenerateYearlyPlan(ctx context.Context, userID string, year int) ([]domain.PlannedTheme, error)
	GoalActions(ctx context.Context, userID string) (*intelligence.GoalSuggestions, error)
	ValidateGoal(ctx context.Context, goal string) (*intelligence.GoalVerdict, error)
}

type CheckInService interface {
	// CheckIn records date (today when empty) and updates stats atomically.
	CheckIn(ctx context.Context, userID, date, note string) (*progress.Result, error)
	Stats(ctx context.Context, userID string) (*domain.UserStats, error)
	History(ctx context.Context, userID, from, to string) ([]*domain.CheckIn, error)
	Progress(ctx context.Context, userID string) (*ProgressReport, error)
}

type LeaderboardService interface {
	Top(ctx context.Context, kind domain.LeaderboardKind, limit int) ([]domain.LeaderboardEntry, error)
	Rank(ctx context.Context, userID string, kind domain.LeaderboardKind) (*domain.UserRank, error)
}

type ExportService interface {
	MonthICS(ctx context.Context, userID string, year, month int) ([]byte, error)
}

// GenerationResult summarizes one generation run.
type GenerationResult struct {
	Year           int
	Month          int // zero for a full year
	Saved          int
	Skipped        bool
	Source         intelligence.Source
	FallbackReason string
}

// ProgressReport is the gamification summary shown after check-ins.
type ProgressReport struct {
	Stats        domain.UserStats
	Earned       []domain.Badge
	NextBadge    *domain.Badge
	BadgeRemain  int
	Tree         domain.TreeLevel
	NextTree     *domain.TreeLevel
	TreeProgress float64
}
