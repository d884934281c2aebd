package intelligence

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rich365/rich365/internal/domain"
	"github.com/rich365/rich365/internal/llm"
	"github.com/rich365/rich365/internal/theme"
)

// Source tags where a draft came from.
type Source string

const (
	SourceAI       Source = "ai"
	SourceTemplate Source = "template"
)

// CalendarDraft is a batch of generated actions.
type CalendarDraft struct {
	Actions []domain.DailyAction
	Source  Source
	// FallbackReason is set when Source is SourceTemplate because the model
	// was unavailable or its output was unusable.
	FallbackReason string
}

// ThemePlan is a generated 12 month plan.
type ThemePlan struct {
	Themes         []domain.PlannedTheme
	Source         Source
	FallbackReason string
}

// ActionSelector is the deterministic generator used as fallback.
type ActionSelector interface {
	SelectMonthActions(ctx context.Context, year, month int, p domain.Profile) ([]domain.DailyAction, error)
}

// CalendarDraftService produces calendar content with an LLM and falls back
// to the deterministic selector on any failure.
type CalendarDraftService interface {
	FullYear(ctx context.Context, year int, p domain.Profile) (*CalendarDraft, error)
	Month(ctx context.Context, year, month int, p domain.Profile) (*CalendarDraft, error)
	YearlyPlan(ctx context.Context, userID string, year int, p domain.Profile) (*ThemePlan, error)
}

type calendarDraftService struct {
	client   llm.LLMClient
	selector ActionSelector
	logger   *slog.Logger
}

// NewCalendarDraftService creates a CalendarDraftService. client may be nil,
// in which case every call uses the selector.
func NewCalendarDraftService(client llm.LLMClient, selector ActionSelector, logger *slog.Logger) CalendarDraftService {
	if logger == nil {
		logger = slog.Default()
	}
	return &calendarDraftService{client: client, selector: selector, logger: logger}
}

func (s *calendarDraftService) FullYear(ctx context.Context, year int, p domain.Profile) (*CalendarDraft, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	themes := theme.YearThemes(p)
	from, to := domain.FormatDate(year, 1, 1), domain.FormatDate(year, 12, 31)

	themeFor := func(month int) string {
		if month < 1 || month > len(themes) {
			return ""
		}
		return themes[month-1].Theme
	}

	actions, err := s.generateActions(ctx, llm.TaskFullYear, buildFullYearPrompt(year, p, themes), from, to, themeFor)
	if err == nil {
		return &CalendarDraft{Actions: actions, Source: SourceAI}, nil
	}
	s.logger.Warn("full year generation fell back to templates", "year", year, "error", err)

	var all []domain.DailyAction
	for m := 1; m <= 12; m++ {
		month, serr := s.selector.SelectMonthActions(ctx, year, m, p)
		if serr != nil {
			return nil, fmt.Errorf("template fallback for %d-%02d: %w", year, m, serr)
		}
		all = append(all, month...)
	}
	return &CalendarDraft{Actions: all, Source: SourceTemplate, FallbackReason: err.Error()}, nil
}

func (s *calendarDraftService) Month(ctx context.Context, year, month int, p domain.Profile) (*CalendarDraft, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	mt, err := theme.GetMonthTheme(month, p)
	if err != nil {
		return nil, err
	}
	from := domain.FormatDate(year, month, 1)
	to := domain.FormatDate(year, month, domain.DaysInMonth(year, month))

	actions, err := s.generateActions(ctx, llm.TaskMonthActions, buildMonthPrompt(year, month, p, mt), from, to, func(int) string { return mt.Theme })
	if err == nil {
		// Month output always carries the month theme.
		for i := range actions {
			actions[i].Theme = mt.Theme
		}
		return &CalendarDraft{Actions: actions, Source: SourceAI}, nil
	}
	s.logger.Warn("month generation fell back to templates", "year", year, "month", month, "error", err)

	fallback, serr := s.selector.SelectMonthActions(ctx, year, month, p)
	if serr != nil {
		return nil, fmt.Errorf("template fallback for %d-%02d: %w", year, month, serr)
	}
	return &CalendarDraft{Actions: fallback, Source: SourceTemplate, FallbackReason: err.Error()}, nil
}

func (s *calendarDraftService) YearlyPlan(ctx context.Context, userID string, year int, p domain.Profile) (*ThemePlan, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	base := theme.YearThemes(p)

	byMonth, err := s.generateThemes(ctx, buildYearlyPlanPrompt(p, base))
	source, reason := SourceAI, ""
	if err != nil {
		s.logger.Warn("yearly plan fell back to templates", "year", year, "error", err)
		byMonth, source, reason = nil, SourceTemplate, err.Error()
	}

	plan := &ThemePlan{Themes: make([]domain.PlannedTheme, 0, 12), Source: source, FallbackReason: reason}
	for _, mt := range base {
		pt := domain.PlannedTheme{
			UserID:        userID,
			Year:          year,
			RelativeMonth: mt.Month,
			Theme:         mt.Theme,
			Description:   mt.Description,
			Emoji:         mt.Emoji,
			StartDate:     domain.FormatDate(year, mt.Month, 1),
			EndDate:       domain.FormatDate(year, mt.Month, domain.DaysInMonth(year, mt.Month)),
		}
		if r, ok := byMonth[mt.Month]; ok {
			pt.Theme = r.Theme
			if r.Description != "" {
				pt.Description = r.Description
			}
			if r.Emoji != "" {
				pt.Emoji = r.Emoji
			}
		}
		plan.Themes = append(plan.Themes, pt)
	}
	return plan, nil
}

func (s *calendarDraftService) generateActions(ctx context.Context, task llm.TaskType, prompt, from, to string, themeFor func(int) string) ([]domain.DailyAction, error) {
	if s.client == nil {
		return nil, llm.ErrNotConfigured
	}
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         task,
		SystemPrompt: advisorSystemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("llm %s failed: %w", task, err)
	}

	records, err := llm.ExtractJSONArray[actionRecord](resp.Text, requireAny[actionRecord])
	if err != nil {
		return nil, fmt.Errorf("parse %s output: %w", task, err)
	}
	actions, dropped := toActions(records, from, to, themeFor)
	if len(actions) == 0 {
		return nil, ErrNoValidRecords
	}
	if dropped > 0 {
		s.logger.Info("discarded invalid llm records", "task", task, "detail", describeDrop(len(actions), dropped))
	}
	return actions, nil
}

func (s *calendarDraftService) generateThemes(ctx context.Context, prompt string) (map[int]themeRecord, error) {
	if s.client == nil {
		return nil, llm.ErrNotConfigured
	}
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskYearlyPlan,
		SystemPrompt: advisorSystemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("llm %s failed: %w", llm.TaskYearlyPlan, err)
	}
	records, err := llm.ExtractJSONArray[themeRecord](resp.Text, requireAny[themeRecord])
	if err != nil {
		return nil, fmt.Errorf("parse %s output: %w", llm.TaskYearlyPlan, err)
	}
	byMonth := toThemes(records)
	if len(byMonth) == 0 {
		return nil, ErrNoValidRecords
	}
	return byMonth, nil
}
