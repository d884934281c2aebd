package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/rich365/rich365/internal/domain"
	"github.com/rich365/rich365/internal/intelligence"
	"github.com/rich365/rich365/internal/repository"
	"github.com/rich365/rich365/internal/theme"
)

// DefaultStoredEmoji replaces an empty emoji on stored actions.
const DefaultStoredEmoji = "📝"

const defaultMemoSize = 256

type calendarService struct {
	users    repository.UserRepo
	actions  repository.DailyActionRepo
	themes   repository.MonthlyThemeRepo
	selector intelligence.ActionSelector
	memo     *lru.Cache[string, []domain.DailyAction]
	locks    *keyedMutex
	logger   *slog.Logger
	observer UseCaseObserver
}

// NewCalendarService serves stored actions first and selector output
// otherwise. memoSize <= 0 uses the default.
func NewCalendarService(
	users repository.UserRepo,
	actions repository.DailyActionRepo,
	themes repository.MonthlyThemeRepo,
	selector intelligence.ActionSelector,
	memoSize int,
	logger *slog.Logger,
	observers ...UseCaseObserver,
) (CalendarService, error) {
	if memoSize <= 0 {
		memoSize = defaultMemoSize
	}
	memo, err := lru.New[string, []domain.DailyAction](memoSize)
	if err != nil {
		return nil, fmt.Errorf("creating calendar memo: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &calendarService{
		users:    users,
		actions:  actions,
		themes:   themes,
		selector: selector,
		memo:     memo,
		locks:    newKeyedMutex(),
		logger:   logger,
		observer: combineObservers(observers),
	}, nil
}

func (s *calendarService) profile(ctx context.Context, userID string) (domain.Profile, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("user %s: %w", userID, err)
	}
	if err := u.Profile.Validate(); err != nil {
		return domain.Profile{}, err
	}
	return u.Profile, nil
}

func (s *calendarService) MonthActions(ctx context.Context, userID string, year, month int) (out []domain.DailyAction, err error) {
	startedAt := time.Now()
	fields := map[string]any{"year": year, "month": month}
	defer func() { report(ctx, s.observer, "month-actions", userID, startedAt, fields, err) }()

	if !domain.ValidMonth(month) {
		return nil, domain.ErrInvalidMonth
	}
	p, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	from := domain.FormatDate(year, month, 1)
	to := domain.FormatDate(year, month, domain.DaysInMonth(year, month))
	stored, serr := s.actions.ListRange(ctx, userID, from, to)
	if serr != nil {
		s.logger.Warn("reading stored actions failed, using templates", "user_id", userID, "error", serr)
	}
	if len(stored) > 0 {
		fields["source"] = "stored"
		for i := range stored {
			if stored[i].Emoji == "" {
				stored[i].Emoji = DefaultStoredEmoji
			}
		}
		return stored, nil
	}

	fields["source"] = "template"
	return s.selectMonth(ctx, userID, year, month, p)
}

// selectMonth memoizes selector output and stores it for the user so later
// processes serve the same month. Calls sharing a used-title ledger (same
// year, personality and role) run one at a time.
func (s *calendarService) selectMonth(ctx context.Context, userID string, year, month int, p domain.Profile) ([]domain.DailyAction, error) {
	key := fmt.Sprintf("%d-%02d|%s|%s", year, month, p.PersonalityType, p.Role)
	if cached, ok := s.memo.Get(key); ok {
		s.persistServed(ctx, userID, cached)
		return cloneActions(cached), nil
	}

	unlock := s.locks.Lock(fmt.Sprintf("%d|%s|%s", year, p.PersonalityType, p.Role))
	defer unlock()

	if cached, ok := s.memo.Get(key); ok {
		s.persistServed(ctx, userID, cached)
		return cloneActions(cached), nil
	}
	from := domain.FormatDate(year, month, 1)
	to := domain.FormatDate(year, month, domain.DaysInMonth(year, month))
	if stored, err := s.actions.ListRange(ctx, userID, from, to); err == nil && len(stored) > 0 {
		return stored, nil
	}

	actions, err := s.selector.SelectMonthActions(ctx, year, month, p)
	if err != nil {
		return nil, err
	}
	s.memo.Add(key, actions)
	s.persistServed(ctx, userID, actions)
	return cloneActions(actions), nil
}

// persistServed records a template month as served. A failed write only
// costs stability across restarts.
func (s *calendarService) persistServed(ctx context.Context, userID string, actions []domain.DailyAction) {
	if err := s.actions.SaveBatch(ctx, userID, repository.SourceServed, actions); err != nil {
		s.logger.Warn("storing served actions failed", "user_id", userID, "error", err)
	}
}

func cloneActions(in []domain.DailyAction) []domain.DailyAction {
	return append([]domain.DailyAction(nil), in...)
}

func (s *calendarService) DailyAction(ctx context.Context, userID, date string) (*domain.DailyAction, error) {
	day, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}
	stored, err := s.actions.Get(ctx, userID, date)
	if err == nil {
		if stored.Emoji == "" {
			stored.Emoji = DefaultStoredEmoji
		}
		return stored, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		s.logger.Warn("reading stored action failed, using templates", "user_id", userID, "date", date, "error", err)
	}

	month, err := s.MonthActions(ctx, userID, day.Year(), int(day.Month()))
	if err != nil {
		return nil, err
	}
	for i := range month {
		if month[i].Date == date {
			return &month[i], nil
		}
	}
	return nil, fmt.Errorf("action for %s: %w", date, repository.ErrNotFound)
}

func (s *calendarService) MonthTheme(ctx context.Context, userID string, year, month int) (*domain.MonthTheme, error) {
	p, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	mt, err := theme.GetMonthTheme(month, p)
	if err != nil {
		return nil, err
	}

	planned, err := s.themes.Get(ctx, userID, year, month)
	switch {
	case err == nil:
		mt.Theme = planned.Theme
		if planned.Description != "" {
			mt.Description = planned.Description
		}
		if planned.Emoji != "" {
			mt.Emoji = planned.Emoji
		}
		return &mt, nil
	case !errors.Is(err, repository.ErrNotFound):
		s.logger.Warn("reading planned theme failed", "user_id", userID, "year", year, "month", month, "error", err)
	}

	stored, err := s.actions.ListRange(ctx, userID,
		domain.FormatDate(year, month, 1), domain.FormatDate(year, month, domain.DaysInMonth(year, month)))
	if err == nil && len(stored) > 0 && stored[0].Theme != "" {
		mt.Theme = stored[0].Theme
	}
	return &mt, nil
}

func (s *calendarService) YearThemes(ctx context.Context, userID string, year int) ([]domain.MonthTheme, error) {
	out := make([]domain.MonthTheme, 0, 12)
	for m := 1; m <= 12; m++ {
		mt, err := s.MonthTheme(ctx, userID, year, m)
		if err != nil {
			return nil, err
		}
		out = append(out, *mt)
	}
	return out, nil
}
