package llm

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskFullYear     TaskType = "full_year"
	TaskYearlyPlan   TaskType = "yearly_plan"
	TaskMonthActions TaskType = "month_actions"
	TaskGoalActions  TaskType = "goal_actions"
	TaskGoalValidate TaskType = "goal_validate"
)

// Provider selects the model backend.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOllama Provider = "ollama"
)

const (
	defaultGeminiEndpoint = "https://generativelanguage.googleapis.com"
	defaultGeminiModel    = "gemini-2.5-flash"
	defaultOllamaEndpoint = "http://localhost:11434"
	defaultOllamaModel    = "llama3.2"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
	// JSON asks the provider for a JSON response body when supported.
	JSON bool
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Enabled    bool
	LogCalls   bool
	Provider   Provider
	Endpoint   string
	Model      string
	APIKey     string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig with sensible defaults.
// LLM is disabled by default.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Enabled:    false,
		LogCalls:   false,
		Provider:   ProviderGemini,
		Endpoint:   defaultGeminiEndpoint,
		Model:      defaultGeminiModel,
		TimeoutMs:  30000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskFullYear:     {Temperature: 0.8, MaxTokens: 65536, TimeoutMs: 180000, JSON: true},
			TaskYearlyPlan:   {Temperature: 0.9, MaxTokens: 2048, TimeoutMs: 30000, JSON: true},
			TaskMonthActions: {Temperature: 0.8, MaxTokens: 8192, TimeoutMs: 60000, JSON: true},
			TaskGoalActions:  {Temperature: 0.7, MaxTokens: 512, TimeoutMs: 15000},
			TaskGoalValidate: {Temperature: 0.1, MaxTokens: 128, TimeoutMs: 8000},
		},
	}
}

// envVars mirrors the RICH365_LLM_* variables. Zero values mean "unset".
type envVars struct {
	Enabled    bool   `envconfig:"ENABLED"`
	LogCalls   bool   `envconfig:"LOG_CALLS"`
	Provider   string `envconfig:"PROVIDER"`
	Endpoint   string `envconfig:"ENDPOINT"`
	Model      string `envconfig:"MODEL"`
	APIKey     string `envconfig:"API_KEY"`
	TimeoutMs  int    `envconfig:"TIMEOUT_MS"`
	MaxRetries int    `envconfig:"MAX_RETRIES" default:"-1"`

	FullYearTimeoutMs     int `envconfig:"FULL_YEAR_TIMEOUT_MS"`
	YearlyPlanTimeoutMs   int `envconfig:"YEARLY_PLAN_TIMEOUT_MS"`
	MonthActionsTimeoutMs int `envconfig:"MONTH_ACTIONS_TIMEOUT_MS"`
	GoalActionsTimeoutMs  int `envconfig:"GOAL_ACTIONS_TIMEOUT_MS"`
	GoalValidateTimeoutMs int `envconfig:"GOAL_VALIDATE_TIMEOUT_MS"`
}

// EnvPrefix is prepended to every LLM environment variable.
const EnvPrefix = "RICH365_LLM"

// LoadConfig reads LLM configuration from RICH365_LLM_* environment
// variables, falling back to defaults for any unset values.
func LoadConfig() (LLMConfig, error) {
	cfg := DefaultConfig()

	var env envVars
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return cfg, fmt.Errorf("reading llm environment: %w", err)
	}

	cfg.Enabled = env.Enabled
	cfg.LogCalls = env.LogCalls
	if env.Provider != "" {
		p := Provider(env.Provider)
		if p != ProviderGemini && p != ProviderOllama {
			return cfg, fmt.Errorf("unknown llm provider %q", env.Provider)
		}
		cfg.Provider = p
		if p == ProviderOllama {
			cfg.Endpoint = defaultOllamaEndpoint
			cfg.Model = defaultOllamaModel
		}
	}
	if env.Endpoint != "" {
		cfg.Endpoint = env.Endpoint
	}
	if env.Model != "" {
		cfg.Model = env.Model
	}
	cfg.APIKey = env.APIKey
	if env.TimeoutMs > 0 {
		cfg.TimeoutMs = env.TimeoutMs
	}
	if env.MaxRetries >= 0 {
		cfg.MaxRetries = env.MaxRetries
	}

	applyTaskTimeout(&cfg, TaskFullYear, env.FullYearTimeoutMs)
	applyTaskTimeout(&cfg, TaskYearlyPlan, env.YearlyPlanTimeoutMs)
	applyTaskTimeout(&cfg, TaskMonthActions, env.MonthActionsTimeoutMs)
	applyTaskTimeout(&cfg, TaskGoalActions, env.GoalActionsTimeoutMs)
	applyTaskTimeout(&cfg, TaskGoalValidate, env.GoalValidateTimeoutMs)

	return cfg, nil
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeout(cfg *LLMConfig, task TaskType, ms int) {
	if ms <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = ms
	cfg.Tasks[task] = tc
}
