package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ollamaClient implements LLMClient using the Ollama HTTP API.
type ollamaClient struct {
	caller
	http *resty.Client
}

// NewOllamaClient creates an LLMClient that talks to a local Ollama instance.
func NewOllamaClient(cfg LLMConfig, observer Observer) LLMClient {
	c := resty.New().
		SetBaseURL(strings.TrimRight(cfg.Endpoint, "/")).
		SetHeader("Content-Type", "application/json")
	return &ollamaClient{caller: newCaller(cfg, observer), http: c}
}

// ollamaRequest is the body of POST /api/generate.
type ollamaRequest struct {
	Model   string        `json:"model"`
	System  string        `json:"system,omitempty"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Format  string        `json:"format,omitempty"`
	Options ollamaOptions `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

// ollamaResponse is the non-streaming reply.
type ollamaResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
}

func (c *ollamaClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	temp, maxTok, timeout := c.cfg.resolveParams(req)
	body := ollamaRequest{
		Model:  c.cfg.Model,
		System: req.SystemPrompt,
		Prompt: req.UserPrompt,
		Options: ollamaOptions{
			Temperature: temp,
			NumPredict:  maxTok,
		},
	}
	if c.cfg.Tasks[req.Task].JSON {
		body.Format = "json"
	}

	return c.do(ctx, req.Task, timeout, func(ctx context.Context) (*GenerateResponse, error) {
		out, err := c.post(ctx, &body)
		if err != nil {
			return nil, err
		}
		return &GenerateResponse{Text: out.Response, Model: out.Model}, nil
	})
}

func (c *ollamaClient) post(ctx context.Context, body *ollamaRequest) (*ollamaResponse, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post("/api/generate")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("ollama returned status %d: %s", resp.StatusCode(), resp.String())
	}

	var out ollamaResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &out, nil
}

func (c *ollamaClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	resp, err := c.http.R().SetContext(ctx).Get("/api/tags")
	if err != nil {
		return false
	}
	return resp.StatusCode() == http.StatusOK
}
