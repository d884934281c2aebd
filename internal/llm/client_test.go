package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) LLMConfig {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Provider = ProviderOllama
	cfg.Endpoint = endpoint
	cfg.Model = "llama3.2"
	return cfg
}

// goalTimeout sets the goal-actions timeout in milliseconds.
func goalTimeout(cfg LLMConfig, ms int) LLMConfig {
	cfg.Tasks = map[TaskType]TaskConfig{
		TaskGoalActions: {Temperature: 0.1, MaxTokens: 512, TimeoutMs: ms},
	}
	return cfg
}

func ollamaServer(t *testing.T, h http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func replyOllama(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ollamaResponse{Model: "llama3.2", Response: text})
}

var goalPrompt = GenerateRequest{Task: TaskGoalActions, UserPrompt: "test"}

type captureObserver struct {
	fn func(LLMCallEvent)
}

func (o *captureObserver) OnCallComplete(e LLMCallEvent) { o.fn(e) }

func TestOllamaClient_Generate_Success(t *testing.T) {
	srv := ollamaServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req ollamaRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3.2", req.Model)
		assert.False(t, req.Stream)
		assert.Empty(t, req.Format)
		assert.Equal(t, "system prompt", req.System)
		assert.Equal(t, "user prompt", req.Prompt)
		replyOllama(w, "1. 记录今天的三笔支出")
	})

	resp, err := NewOllamaClient(testConfig(srv.URL), nil).Generate(context.Background(), GenerateRequest{
		Task:         TaskGoalActions,
		SystemPrompt: "system prompt",
		UserPrompt:   "user prompt",
	})
	require.NoError(t, err)
	assert.Equal(t, "1. 记录今天的三笔支出", resp.Text)
	assert.Equal(t, "llama3.2", resp.Model)
	assert.GreaterOrEqual(t, resp.LatencyMs, int64(0))
}

func TestOllamaClient_Generate_JSONTaskSetsFormat(t *testing.T) {
	srv := ollamaServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req ollamaRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "json", req.Format)
		replyOllama(w, "[]")
	})

	_, err := NewOllamaClient(testConfig(srv.URL), nil).Generate(context.Background(), GenerateRequest{Task: TaskYearlyPlan, UserPrompt: "plan"})
	require.NoError(t, err)
}

func TestOllamaClient_Generate_Failures(t *testing.T) {
	slow := func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}
	badRequest := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("bad request"))
	}

	tests := []struct {
		name     string
		handler  http.HandlerFunc // nil dials a closed port
		timeout  int
		wantErr  error
		wantCode string
	}{
		{name: "timeout", handler: slow, timeout: 50, wantErr: ErrTimeout, wantCode: "TIMEOUT"},
		{name: "unreachable", timeout: 1000, wantErr: ErrUnavailable, wantCode: "UNAVAILABLE"},
		{name: "client error", handler: badRequest, timeout: 1000, wantErr: ErrRetryExhausted, wantCode: "UNKNOWN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			endpoint := "http://127.0.0.1:1"
			if tt.handler != nil {
				endpoint = ollamaServer(t, tt.handler).URL
			}
			cfg := goalTimeout(testConfig(endpoint), tt.timeout)
			cfg.MaxRetries = 0

			var events []LLMCallEvent
			obs := &captureObserver{fn: func(e LLMCallEvent) { events = append(events, e) }}

			_, err := NewOllamaClient(cfg, obs).Generate(context.Background(), goalPrompt)
			assert.ErrorIs(t, err, tt.wantErr)
			require.Len(t, events, 1)
			assert.False(t, events[0].Success)
			assert.Equal(t, tt.wantCode, events[0].ErrorCode)
		})
	}
}

func TestOllamaClient_Generate_Retries(t *testing.T) {
	tests := []struct {
		name    string
		timeout int
		first   func(w http.ResponseWriter)
	}{
		{
			name:    "after server error",
			timeout: 1000,
			first: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte("internal error"))
			},
		},
		{
			name:    "after timeout",
			timeout: 50,
			first: func(w http.ResponseWriter) {
				time.Sleep(120 * time.Millisecond)
				replyOllama(w, "late")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var attempts atomic.Int32
			srv := ollamaServer(t, func(w http.ResponseWriter, r *http.Request) {
				if attempts.Add(1) == 1 {
					tt.first(w)
					return
				}
				replyOllama(w, "ok")
			})
			cfg := goalTimeout(testConfig(srv.URL), tt.timeout)
			cfg.MaxRetries = 1

			resp, err := NewOllamaClient(cfg, nil).Generate(context.Background(), goalPrompt)
			require.NoError(t, err)
			assert.Equal(t, "ok", resp.Text)
			assert.Equal(t, int32(2), attempts.Load())
		})
	}
}

func TestOllamaClient_Generate_CancelledParentStopsRetries(t *testing.T) {
	var attempts atomic.Int32
	srv := ollamaServer(t, func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})
	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 3

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewOllamaClient(cfg, nil).Generate(ctx, goalPrompt)
	assert.Error(t, err)
	assert.LessOrEqual(t, attempts.Load(), int32(1))
}

func TestOllamaClient_ObserverOnSuccess(t *testing.T) {
	srv := ollamaServer(t, func(w http.ResponseWriter, r *http.Request) { replyOllama(w, "ok") })

	var captured LLMCallEvent
	obs := &captureObserver{fn: func(e LLMCallEvent) { captured = e }}
	_, err := NewOllamaClient(testConfig(srv.URL), obs).Generate(context.Background(), goalPrompt)

	require.NoError(t, err)
	assert.Equal(t, TaskGoalActions, captured.Task)
	assert.Equal(t, "llama3.2", captured.Model)
	assert.True(t, captured.Success)
	assert.Empty(t, captured.ErrorCode)
}

func TestOllamaClient_Available(t *testing.T) {
	srv := ollamaServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tags", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	assert.True(t, NewOllamaClient(testConfig(srv.URL), nil).Available(context.Background()))
	assert.False(t, NewOllamaClient(testConfig("http://127.0.0.1:1"), nil).Available(context.Background()))
}

func TestNewClient_SelectsProvider(t *testing.T) {
	cfg := DefaultConfig()
	_, isGemini := NewClient(cfg, nil).(*geminiClient)
	assert.True(t, isGemini)

	cfg.Provider = ProviderOllama
	_, isOllama := NewClient(cfg, nil).(*ollamaClient)
	assert.True(t, isOllama)
}

func TestMultiObserver_FansOut(t *testing.T) {
	var a, b int
	m := MultiObserver{
		&captureObserver{fn: func(LLMCallEvent) { a++ }},
		nil,
		&captureObserver{fn: func(LLMCallEvent) { b++ }},
	}
	m.OnCallComplete(LLMCallEvent{Task: TaskGoalActions})
	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
}

func TestLogObserver_LogsFailuresAtWarn(t *testing.T) {
	var buf bytes.Buffer
	o := NewLogObserver(slog.New(slog.NewTextHandler(&buf, nil)))

	o.OnCallComplete(LLMCallEvent{Task: TaskFullYear, Model: "m", LatencyMs: 12, Success: true})
	o.OnCallComplete(LLMCallEvent{Task: TaskGoalValidate, Model: "m", ErrorCode: "TIMEOUT"})

	out := buf.String()
	assert.Contains(t, out, "level=INFO msg=\"llm call\" task=full_year")
	assert.Contains(t, out, "level=WARN msg=\"llm call failed\"")
	assert.Contains(t, out, "code=TIMEOUT")
}
