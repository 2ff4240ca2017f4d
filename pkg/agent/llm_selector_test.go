package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/harunnryd/toolbelt/pkg/llm"
	"github.com/harunnryd/toolbelt/pkg/providers/mock"
	"github.com/harunnryd/toolbelt/pkg/tool"
)

func TestLLMSelectorMapsToolCalls(t *testing.T) {
	adapter := mock.NewLLMAdapter(mock.LLMConfig{
		ToolCalls: []llm.ToolCall{
			{ID: "call-1", Name: "get_weather", Arguments: map[string]any{"city": "Paris"}},
			{ID: "call-2", Name: "get_current_time", Arguments: map[string]any{"city": "Paris"}},
		},
	})
	selector := LLMSelector{Adapter: adapter}

	sel, err := selector.Select(context.Background(), "weather and time in Paris", bothTools)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(sel.Invocations) != 2 {
		t.Fatalf("expected two invocations, got %+v", sel.Invocations)
	}
	if sel.Invocations[0].Tool != "get_weather" || sel.Invocations[1].Tool != "get_current_time" {
		t.Fatalf("tool call order must be preserved: %+v", sel.Invocations)
	}
	if sel.Invocations[0].Args["city"] != "Paris" {
		t.Fatalf("arguments must pass through, got %v", sel.Invocations[0].Args)
	}
	if len(adapter.Requests) != 1 || len(adapter.Requests[0].Tools) != 2 {
		t.Fatalf("adapter must receive the tool descriptors, got %+v", adapter.Requests)
	}
}

func TestLLMSelectorPlainTextBecomesAnswer(t *testing.T) {
	adapter := mock.NewLLMAdapter(mock.LLMConfig{Text: "  Paris is in France.  "})
	sel, err := LLMSelector{Adapter: adapter}.Select(context.Background(), "where is Paris?", bothTools)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(sel.Invocations) != 0 {
		t.Fatalf("expected no invocations, got %+v", sel.Invocations)
	}
	if sel.Answer != "Paris is in France." {
		t.Fatalf("unexpected answer: %q", sel.Answer)
	}
}

func TestLLMSelectorPropagatesAdapterError(t *testing.T) {
	adapter := mock.NewLLMAdapter(mock.LLMConfig{Err: errors.New("rate limited")})
	_, err := LLMSelector{Adapter: adapter}.Select(context.Background(), "anything", nil)
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestSingleToolSelectorForcesTool(t *testing.T) {
	sel, err := SingleToolSelector{Tool: "get_current_time"}.Select(context.Background(), "time in Tokyo", []tool.Descriptor{})
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(sel.Invocations) != 1 || sel.Invocations[0].Tool != "get_current_time" {
		t.Fatalf("expected forced tool, got %+v", sel.Invocations)
	}
	if sel.Invocations[0].Args["city"] != "Tokyo" {
		t.Fatalf("expected city Tokyo, got %v", sel.Invocations[0].Args)
	}
}
