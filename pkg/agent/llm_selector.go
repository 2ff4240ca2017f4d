package agent

import (
	"context"
	"strings"

	"github.com/harunnryd/toolbelt/pkg/errorsx"
	"github.com/harunnryd/toolbelt/pkg/llm"
	"github.com/harunnryd/toolbelt/pkg/tool"
)

const defaultSystemPrompt = "You are a helpful agent who can answer user questions about the time and weather in a city. " +
	"Call the provided tools when they apply; otherwise answer directly."

// LLMSelector delegates tool selection to a language model behind an
// llm.Adapter. Tool calls returned by the model become the ordered
// invocation list; plain text becomes a direct answer.
type LLMSelector struct {
	Adapter llm.Adapter
	System  string
}

func (s LLMSelector) Select(ctx context.Context, task string, tools []tool.Descriptor) (Selection, error) {
	system := s.System
	if system == "" {
		system = defaultSystemPrompt
	}
	req := llm.Request{System: system, Task: task}
	for _, d := range tools {
		req.Tools = append(req.Tools, llm.Tool{
			Name:        d.Name,
			Description: d.Description,
			Schema:      d.Schema,
		})
	}

	resp, err := s.Adapter.Generate(ctx, req)
	if err != nil {
		return Selection{}, errorsx.Wrap(err, errorsx.ReasonSelectorGenerate)
	}

	var sel Selection
	for _, call := range resp.ToolCalls {
		sel.Invocations = append(sel.Invocations, Invocation{Tool: call.Name, Args: call.Arguments})
	}
	if len(sel.Invocations) == 0 {
		sel.Answer = strings.TrimSpace(resp.Text)
		if sel.Answer == "" {
			sel.Answer = "I don't have an answer for that."
		}
	}
	return sel, nil
}
