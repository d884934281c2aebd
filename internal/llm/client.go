package llm

import (
	"context"
	"time"
)

// GenerateRequest holds the parameters for an LLM generation call.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil uses task default
	MaxTokens    *int     // nil uses task default
}

// GenerateResponse holds the result of an LLM generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// LLMClient provides access to a language model for text generation.
type LLMClient interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Available checks whether the model backend is reachable.
	Available(ctx context.Context) bool
}

// NewClient builds the client for cfg.Provider.
func NewClient(cfg LLMConfig, observer Observer) LLMClient {
	if cfg.Provider == ProviderOllama {
		return NewOllamaClient(cfg, observer)
	}
	return NewGeminiClient(cfg, observer)
}

// resolveParams applies per-task defaults to req.
func (c LLMConfig) resolveParams(req GenerateRequest) (temp float64, maxTok int, timeout time.Duration) {
	taskCfg := c.Tasks[req.Task]
	temp = taskCfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok = taskCfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}
	return temp, maxTok, time.Duration(c.TaskTimeout(req.Task)) * time.Millisecond
}

// attemptFunc performs one provider round trip bounded by ctx.
type attemptFunc func(ctx context.Context) (*GenerateResponse, error)

// caller runs attempts for one provider and reports every outcome to the
// observer exactly once.
type caller struct {
	cfg      LLMConfig
	observer Observer
}

func newCaller(cfg LLMConfig, observer Observer) caller {
	if observer == nil {
		observer = NoopObserver{}
	}
	return caller{cfg: cfg, observer: observer}
}

// do retries attempt up to cfg.MaxRetries extra times. Each attempt gets its
// own timeout; a cancelled parent or a permanent failure stops the loop.
func (c caller) do(ctx context.Context, task TaskType, timeout time.Duration, attempt attemptFunc) (*GenerateResponse, error) {
	start := time.Now()
	var lastErr error

	for i := 0; i <= c.cfg.MaxRetries; i++ {
		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		resp, err := attempt(attemptCtx)
		timedOut := attemptCtx.Err() != nil
		cancel()

		if err == nil {
			resp.LatencyMs = time.Since(start).Milliseconds()
			if resp.Model == "" {
				resp.Model = c.cfg.Model
			}
			c.report(task, start, nil)
			return resp, nil
		}
		lastErr = classify(err, timedOut)
		if ctx.Err() != nil || isPermanent(lastErr) {
			break
		}
	}

	c.report(task, start, lastErr)
	return nil, lastErr
}

func (c caller) report(task TaskType, start time.Time, err error) {
	c.observer.OnCallComplete(LLMCallEvent{
		Task:      task,
		Model:     c.cfg.Model,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
}
