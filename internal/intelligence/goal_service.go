package intelligence

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/rich365/rich365/internal/domain"
	"github.com/rich365/rich365/internal/llm"
	"github.com/rich365/rich365/internal/scheduler"
)

// ErrGoalRequired is returned when goal suggestions are requested without a goal.
var ErrGoalRequired = errors.New("goal is required")

const goalSuggestionCount = 3

// Ranker ranks catalogue templates for a profile.
type Ranker interface {
	Explain(p domain.Profile) ([]scheduler.ScoredTemplate, error)
}

// GoalSuggestions is the answer to a goal prompt.
type GoalSuggestions struct {
	Actions []string
	Source  Source
}

// GoalVerdict is the answer to a goal check.
type GoalVerdict struct {
	Valid      bool
	Suggestion string
}

// GoalService turns a free-text goal into suggestions.
type GoalService interface {
	GoalActions(ctx context.Context, p domain.Profile) (*GoalSuggestions, error)
	ValidateGoal(ctx context.Context, goal string) (*GoalVerdict, error)
}

type goalService struct {
	client llm.LLMClient
	ranker Ranker
	logger *slog.Logger
}

// NewGoalService creates a GoalService. client may be nil.
func NewGoalService(client llm.LLMClient, ranker Ranker, logger *slog.Logger) GoalService {
	if logger == nil {
		logger = slog.Default()
	}
	return &goalService{client: client, ranker: ranker, logger: logger}
}

func (s *goalService) GoalActions(ctx context.Context, p domain.Profile) (*GoalSuggestions, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	goal := strings.TrimSpace(p.Goal)
	if goal == "" {
		return nil, ErrGoalRequired
	}

	if s.client != nil {
		resp, err := s.client.Generate(ctx, llm.GenerateRequest{
			Task:         llm.TaskGoalActions,
			SystemPrompt: advisorSystemPrompt,
			UserPrompt:   buildGoalActionsPrompt(goal, p),
		})
		if err == nil {
			if items := parseNumberedLines(resp.Text, goalSuggestionCount); len(items) > 0 {
				return &GoalSuggestions{Actions: items, Source: SourceAI}, nil
			}
			err = ErrNoValidRecords
		}
		s.logger.Warn("goal actions fell back to templates", "error", err)
	}

	ranked, err := s.ranker.Explain(p)
	if err != nil {
		return nil, err
	}
	out := &GoalSuggestions{Source: SourceTemplate}
	for i := 0; i < len(ranked) && i < goalSuggestionCount; i++ {
		out.Actions = append(out.Actions, ranked[i].Template.Title)
	}
	return out, nil
}

func (s *goalService) ValidateGoal(ctx context.Context, goal string) (*GoalVerdict, error) {
	goal = strings.TrimSpace(goal)
	if goal == "" {
		return nil, ErrGoalRequired
	}
	if s.client == nil {
		return &GoalVerdict{Valid: true}, nil
	}
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:       llm.TaskGoalValidate,
		UserPrompt: buildGoalValidatePrompt(goal),
	})
	if err != nil {
		s.logger.Warn("goal validation unavailable, accepting goal", "error", err)
		return &GoalVerdict{Valid: true}, nil
	}
	valid, suggestion := parseVerdict(resp.Text)
	return &GoalVerdict{Valid: valid, Suggestion: suggestion}, nil
}
