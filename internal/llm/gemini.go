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

// geminiClient implements LLMClient against the Gemini generateContent REST
// API.
type geminiClient struct {
	caller
	http *resty.Client
}

// NewGeminiClient creates an LLMClient for Google's Gemini API. Requests are
// authenticated with cfg.APIKey.
func NewGeminiClient(cfg LLMConfig, observer Observer) LLMClient {
	c := resty.New().
		SetBaseURL(strings.TrimRight(cfg.Endpoint, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-goog-api-key", cfg.APIKey)
	return &geminiClient{caller: newCaller(cfg, observer), http: c}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature      float64 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	Contents          []geminiContent        `json:"contents"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
	ModelVersion string `json:"modelVersion"`
}

func (c *geminiClient) path(suffix string) string {
	return "/v1beta/models/" + c.cfg.Model + suffix
}

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if c.cfg.APIKey == "" {
		c.report(req.Task, time.Now(), ErrNotConfigured)
		return nil, fmt.Errorf("%w: missing API key", ErrNotConfigured)
	}

	temp, maxTok, timeout := c.cfg.resolveParams(req)
	body := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: req.UserPrompt}}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     temp,
			MaxOutputTokens: maxTok,
		},
	}
	if req.SystemPrompt != "" {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.SystemPrompt}}}
	}
	if c.cfg.Tasks[req.Task].JSON {
		body.GenerationConfig.ResponseMimeType = "application/json"
	}

	return c.do(ctx, req.Task, timeout, func(ctx context.Context) (*GenerateResponse, error) {
		out, err := c.doRequest(ctx, body)
		if err != nil {
			return nil, err
		}
		return &GenerateResponse{Text: out.text(), Model: out.ModelVersion}, nil
	})
}

func (c *geminiClient) doRequest(ctx context.Context, body geminiRequest) (*geminiResponse, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(&body).
		Post(c.path(":generateContent"))
	if err != nil {
		return nil, err
	}

	switch code := resp.StatusCode(); {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return nil, fmt.Errorf("%w: gemini returned status %d", ErrNotConfigured, code)
	case code != http.StatusOK:
		return nil, fmt.Errorf("gemini returned status %d: %s", code, resp.String())
	}

	var out geminiResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if len(out.Candidates) == 0 {
		reason := out.PromptFeedback.BlockReason
		if reason == "" {
			reason = "no candidates"
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidOutput, reason)
	}
	return &out, nil
}

func (r *geminiResponse) text() string {
	var b strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

func (c *geminiClient) Available(ctx context.Context) bool {
	if c.cfg.APIKey == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	resp, err := c.http.R().SetContext(ctx).Get(c.path(""))
	if err != nil {
		return false
	}
	return resp.StatusCode() == http.StatusOK
}
