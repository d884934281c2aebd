// Package scheduler assigns catalogue actions to calendar days for a
// profile, ranking templates by relevance and avoiding repeats within a year.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/rich365/rich365/internal/catalogue"
	"github.com/rich365/rich365/internal/domain"
	"github.com/rich365/rich365/internal/theme"
)

// MonthSelection is the result of one month run.
type MonthSelection struct {
	Year    int
	Month   int
	Actions []domain.DailyAction
	// Fallbacks counts days filled by the seeded pick after the pool ran out.
	Fallbacks int
	// Degraded is set when the used set could not be read or written.
	Degraded bool
}

// Selector produces month calendars from a catalogue. It does not
// coordinate concurrent calls: callers serialize per (year, personality,
// role) when the no-repeat guarantee must hold.
type Selector struct {
	catalogue *catalogue.Catalogue
	store     UsedActionStore
	logger    *slog.Logger
}

type Option func(*Selector)

// WithLogger sets the logger used for store warnings.
func WithLogger(l *slog.Logger) Option {
	return func(s *Selector) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Selector. A nil store keeps no state between calls.
func New(cat *catalogue.Catalogue, store UsedActionStore, opts ...Option) *Selector {
	if store == nil {
		store = noopUsedStore{}
	}
	s := &Selector{
		catalogue: cat,
		store:     store,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SelectMonthActions returns one action per day of month, dates ascending.
func (s *Selector) SelectMonthActions(ctx context.Context, year, month int, p domain.Profile) ([]domain.DailyAction, error) {
	sel, err := s.SelectMonth(ctx, year, month, p)
	if err != nil {
		return nil, err
	}
	return sel.Actions, nil
}

// SelectMonth is SelectMonthActions with run metadata.
func (s *Selector) SelectMonth(ctx context.Context, year, month int, p domain.Profile) (*MonthSelection, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	mt, err := theme.GetMonthTheme(month, p)
	if err != nil {
		return nil, err
	}
	if s.catalogue == nil || s.catalogue.Size() == 0 {
		return nil, catalogue.ErrEmptyCatalogue
	}

	ranked := RankTemplates(s.catalogue.Templates(), p)
	sel := &MonthSelection{Year: year, Month: month}

	used, err := s.store.Get(ctx, year, p.PersonalityType, p.Role)
	if err != nil || used == nil {
		s.logger.WarnContext(ctx, "used actions unavailable, starting empty",
			"year", year, "mbti", p.PersonalityType, "role", p.Role, "error", errString(err))
		used = NewUsedSet()
		sel.Degraded = true
	}

	days := domain.DaysInMonth(year, month)
	sel.Actions = make([]domain.DailyAction, 0, days)
	for day := 1; day <= days; day++ {
		tpl, fresh := pick(ranked, used, Seed(p, month*100+day))
		if !fresh {
			sel.Fallbacks++
		}
		sel.Actions = append(sel.Actions, domain.DailyAction{
			Date:        domain.FormatDate(year, month, day),
			Title:       tpl.Title,
			Description: Personalize(tpl.Description, p.Role),
			Emoji:       tpl.Emoji,
			Theme:       mt.Theme,
			Category:    tpl.Category,
		})
	}

	if err := s.store.Set(ctx, year, p.PersonalityType, p.Role, used); err != nil {
		s.logger.WarnContext(ctx, "saving used actions failed",
			"year", year, "mbti", p.PersonalityType, "role", p.Role, "error", err.Error())
		sel.Degraded = true
	}
	return sel, nil
}

// pick returns the first unused ranked template, marking it used. When every
// title is used it falls back to a seeded index and reports fresh=false.
func pick(ranked []ScoredTemplate, used *UsedSet, seed int) (tpl domain.ActionTemplate, fresh bool) {
	for _, c := range ranked {
		if used.Add(c.Template.Title) {
			return c.Template, true
		}
	}
	idx := int(math.Floor(SeededRandom(seed) * float64(len(ranked))))
	if idx >= len(ranked) {
		idx = len(ranked) - 1
	}
	return ranked[idx].Template, false
}

// DailyAction regenerates the month containing date and returns that day's
// action, or nil when the month has no record for it. Each call re-runs and
// re-persists the whole month, so callers should memoize month results.
func (s *Selector) DailyAction(ctx context.Context, date time.Time, p domain.Profile) (*domain.DailyAction, error) {
	actions, err := s.SelectMonthActions(ctx, date.Year(), int(date.Month()), p)
	if err != nil {
		return nil, fmt.Errorf("selecting month for %s: %w", date.Format(domain.DateLayout), err)
	}
	want := date.Format(domain.DateLayout)
	for i := range actions {
		if actions[i].Date == want {
			return &actions[i], nil
		}
	}
	return nil, nil
}

// Explain returns the ranked scoring for p, highest first.
func (s *Selector) Explain(p domain.Profile) ([]ScoredTemplate, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if s.catalogue == nil || s.catalogue.Size() == 0 {
		return nil, catalogue.ErrEmptyCatalogue
	}
	return RankTemplates(s.catalogue.Templates(), p), nil
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
