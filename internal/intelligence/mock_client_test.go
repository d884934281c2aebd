package intelligence

import (
	"context"

	"github.com/rich365/rich365/internal/catalogue"
	"github.com/rich365/rich365/internal/domain"
	"github.com/rich365/rich365/internal/llm"
	"github.com/rich365/rich365/internal/scheduler"
)

// mockLLMClient returns a canned response and records the last request.
type mockLLMClient struct {
	response string
	err      error
	calls    int
	last     llm.GenerateRequest
}

func (m *mockLLMClient) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.calls++
	m.last = req
	if m.err != nil {
		return nil, m.err
	}
	return &llm.GenerateResponse{Text: m.response, Model: "test"}, nil
}

func (m *mockLLMClient) Available(ctx context.Context) bool {
	return m.err == nil
}

func testProfile() domain.Profile {
	return domain.Profile{PersonalityType: "INTJ", Role: domain.RoleEntrepreneur, Goal: "年底前副业月入一万"}
}

func testSelector() *scheduler.Selector {
	return scheduler.New(catalogue.Default(), nil)
}
