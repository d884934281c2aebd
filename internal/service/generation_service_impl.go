package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rich365/rich365/internal/db"
	"github.com/rich365/rich365/internal/domain"
	"github.com/rich365/rich365/internal/intelligence"
	"github.com/rich365/rich365/internal/repository"
)

type generationService struct {
	users    repository.UserRepo
	actions  repository.DailyActionRepo
	uow      db.UnitOfWork
	drafts   intelligence.CalendarDraftService
	goals    intelligence.GoalService
	observer UseCaseObserver
}

func NewGenerationService(
	users repository.UserRepo,
	actions repository.DailyActionRepo,
	uow db.UnitOfWork,
	drafts intelligence.CalendarDraftService,
	goals intelligence.GoalService,
	observers ...UseCaseObserver,
) GenerationService {
	return &generationService{
		users:    users,
		actions:  actions,
		uow:      uow,
		drafts:   drafts,
		goals:    goals,
		observer: combineObservers(observers),
	}
}

func (s *generationService) user(ctx context.Context, userID string) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", userID, err)
	}
	if err := u.Profile.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *generationService) GenerateYear(ctx context.Context, userID string, year int) (res *GenerationResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"year": year}
	defer func() { report(ctx, s.observer, "generate-year", userID, startedAt, fields, err) }()

	u, err := s.user(ctx, userID)
	if err != nil {
		return nil, err
	}
	existing, err := s.actions.CountGenerated(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		fields["skipped"] = true
		return &GenerationResult{Year: year, Skipped: true}, nil
	}

	draft, err := s.drafts.FullYear(ctx, year, u.Profile)
	if err != nil {
		return nil, err
	}
	if err = s.save(ctx, userID, draft, "", ""); err != nil {
		return nil, err
	}
	fields["source"] = string(draft.Source)
	fields["saved"] = len(draft.Actions)
	return &GenerationResult{
		Year:           year,
		Saved:          len(draft.Actions),
		Source:         draft.Source,
		FallbackReason: draft.FallbackReason,
	}, nil
}

func (s *generationService) GenerateMonth(ctx context.Context, userID string, year, month int) (res *GenerationResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"year": year, "month": month}
	defer func() { report(ctx, s.observer, "generate-month", userID, startedAt, fields, err) }()

	u, err := s.user(ctx, userID)
	if err != nil {
		return nil, err
	}
	draft, err := s.drafts.Month(ctx, year, month, u.Profile)
	if err != nil {
		return nil, err
	}
	from := domain.FormatDate(year, month, 1)
	to := domain.FormatDate(year, month, domain.DaysInMonth(year, month))
	if err = s.save(ctx, userID, draft, from, to); err != nil {
		return nil, err
	}
	fields["source"] = string(draft.Source)
	fields["saved"] = len(draft.Actions)
	return &GenerationResult{
		Year:           year,
		Month:          month,
		Saved:          len(draft.Actions),
		Source:         draft.Source,
		FallbackReason: draft.FallbackReason,
	}, nil
}

// save writes draft in one transaction, first clearing [from, to] when set.
func (s *generationService) save(ctx context.Context, userID string, draft *intelligence.CalendarDraft, from, to string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteDailyActionRepo(tx)
		if from != "" {
			if err := repo.DeleteRange(ctx, userID, from, to); err != nil {
				return err
			}
		}
		return repo.SaveBatch(ctx, userID, string(draft.Source), draft.Actions)
	})
}

func (s *generationService) GenerateYearlyPlan(ctx context.Context, userID string, year int) (themes []domain.PlannedTheme, err error) {
	startedAt := time.Now()
	fields := map[string]any{"year": year}
	defer func() { report(ctx, s.observer, "generate-yearly-plan", userID, startedAt, fields, err) }()

	u, err := s.user(ctx, userID)
	if err != nil {
		return nil, err
	}
	plan, err := s.drafts.YearlyPlan(ctx, userID, year, u.Profile)
	if err != nil {
		return nil, err
	}
	for i := range plan.Themes {
		plan.Themes[i].Generated = plan.Source == intelligence.SourceAI
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteMonthlyThemeRepo(tx).SaveAll(ctx, plan.Themes)
	})
	if err != nil {
		return nil, err
	}
	fields["source"] = string(plan.Source)
	return plan.Themes, nil
}

func (s *generationService) GoalActions(ctx context.Context, userID string) (out *intelligence.GoalSuggestions, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { report(ctx, s.observer, "goal-actions", userID, startedAt, fields, err) }()

	u, err := s.user(ctx, userID)
	if err != nil {
		return nil, err
	}
	out, err = s.goals.GoalActions(ctx, u.Profile)
	if err != nil {
		return nil, err
	}
	fields["source"] = string(out.Source)
	return out, nil
}

func (s *generationService) ValidateGoal(ctx context.Context, goal string) (out *intelligence.GoalVerdict, err error) {
	startedAt := time.Now()
	defer func() { report(ctx, s.observer, "validate-goal", "", startedAt, nil, err) }()
	return s.goals.ValidateGoal(ctx, goal)
}
