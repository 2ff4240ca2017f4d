package agent

import (
	"context"
	"strings"

	"github.com/harunnryd/toolbelt/pkg/tool"
)

// RuleSelector is a deterministic keyword router. It only ever picks tools
// that are actually registered, so a trimmed-down registry narrows its
// routing instead of producing lookup failures.
type RuleSelector struct{}

func (RuleSelector) Select(_ context.Context, task string, tools []tool.Descriptor) (Selection, error) {
	available := make(map[string]bool, len(tools))
	for _, d := range tools {
		available[d.Name] = true
	}

	lower := strings.ToLower(task)
	city := extractCity(task)
	args := map[string]any{}
	if city != "" {
		args["city"] = city
	}

	var sel Selection
	if strings.Contains(lower, "weather") && available["get_weather"] {
		sel.Invocations = append(sel.Invocations, Invocation{Tool: "get_weather", Args: args})
	}
	if strings.Contains(lower, "time") && available["get_current_time"] {
		sel.Invocations = append(sel.Invocations, Invocation{Tool: "get_current_time", Args: args})
	}
	if len(sel.Invocations) == 0 {
		sel.Answer = "I can answer questions about the weather and the current time in a city."
	}
	return sel, nil
}

// SingleToolSelector forces every task through one named tool, for the
// explicit tool selection flag on the CLI.
type SingleToolSelector struct {
	Tool string
}

func (s SingleToolSelector) Select(_ context.Context, task string, _ []tool.Descriptor) (Selection, error) {
	args := map[string]any{}
	if city := extractCity(task); city != "" {
		args["city"] = city
	} else if strings.TrimSpace(task) != "" {
		args["city"] = strings.TrimSpace(task)
	}
	return Selection{Invocations: []Invocation{{Tool: s.Tool, Args: args}}}, nil
}
