package agent

import (
	"context"
	"strings"

	"github.com/harunnryd/toolbelt/pkg/tool"
)

// Invocation names one registered tool and the arguments to pass it.
type Invocation struct {
	Tool string
	Args map[string]any
}

// Selection is the outcome of the delegated selection step: either an
// ordered list of invocations, or a direct answer when no tool applies.
type Selection struct {
	Invocations []Invocation
	Answer      string
}

// Selector decides which tools serve a task. It receives the task and the
// registered tool descriptors; it never invokes anything itself. Any
// deterministic rule or learned model can satisfy this.
type Selector interface {
	Select(ctx context.Context, task string, tools []tool.Descriptor) (Selection, error)
}

// extractCity pulls a city name out of phrasings like "the weather in Paris"
// or "what time is it in New York?". Empty when the task has no "in" clause.
func extractCity(task string) string {
	lower := strings.ToLower(task)
	idx := strings.LastIndex(lower, " in ")
	if idx < 0 {
		return ""
	}
	city := task[idx+len(" in "):]
	city = strings.TrimSpace(city)
	city = strings.TrimRight(city, "?!.,;")
	return strings.TrimSpace(city)
}
