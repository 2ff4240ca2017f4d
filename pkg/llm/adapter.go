package llm

import "context"

// Tool describes a callable surfaced to the selection model.
type Tool struct {
	Name        string
	Description string
	Schema      map[string]any
}

// ToolCall is one invocation requested by the model.
type ToolCall struct {
	ID        string
	Name      string
	Arguments map[string]any
}

// Request carries one task and the tools available for it.
type Request struct {
	System string
	Task   string
	Tools  []Tool
}

// Response is the model's answer: either tool calls to perform, or plain
// text when no tool is needed.
type Response struct {
	Text         string
	FinishReason string
	ToolCalls    []ToolCall
}

// Adapter generates a selection response for a task.
type Adapter interface {
	Generate(ctx context.Context, req Request) (Response, error)
	Name() string
}
