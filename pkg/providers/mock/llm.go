package mock

import (
	"context"

	"github.com/harunnryd/toolbelt/pkg/llm"
)

// LLMConfig scripts the adapter's behavior for tests.
type LLMConfig struct {
	Text      string
	ToolCalls []llm.ToolCall
	Err       error
}

// LLMAdapter returns scripted responses and records the requests it saw.
type LLMAdapter struct {
	cfg      LLMConfig
	Requests []llm.Request
}

func NewLLMAdapter(cfg LLMConfig) *LLMAdapter {
	return &LLMAdapter{cfg: cfg}
}

func (m *LLMAdapter) Name() string { return "mock" }

func (m *LLMAdapter) Generate(_ context.Context, req llm.Request) (llm.Response, error) {
	m.Requests = append(m.Requests, req)
	if m.cfg.Err != nil {
		return llm.Response{}, m.cfg.Err
	}
	return llm.Response{Text: m.cfg.Text, ToolCalls: m.cfg.ToolCalls}, nil
}
