package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/harunnryd/toolbelt/pkg/tool"
)

// Outcome is the uniform record returned for a whole task run.
type Outcome struct {
	Task      string      `json:"task"`
	Status    tool.Status `json:"status"`
	ToolsUsed []string    `json:"tools_used"`
	Result    string      `json:"result"`
}

// Agent owns the lifecycle of a single task execution: selection is
// delegated to its Selector, while invocation, error capture and result
// aggregation happen here. Tools run one at a time in selection order.
//
// Policies, fixed and tested:
//   - a selected tool missing from the registry aborts the run immediately
//     (it is not recorded in ToolsUsed, since it was never invoked);
//   - a tool returning an error envelope aborts the remaining tools; the
//     failing tool is recorded in ToolsUsed and its message becomes Result;
//   - on success, Result is every report joined by a newline;
//   - zero selected tools is a success carrying the selector's answer.
type Agent struct {
	registry *tool.Registry
	selector Selector
	logger   *slog.Logger

	sealOnce sync.Once
}

func New(registry *tool.Registry, selector Selector, logger *slog.Logger) *Agent {
	if logger == nil {
		logger = slog.Default()
	}
	return &Agent{registry: registry, selector: selector, logger: logger}
}

func (a *Agent) Registry() *tool.Registry { return a.registry }

// Run executes one task. It is total: no failure propagates past this call;
// anything unexpected becomes an error outcome.
func (a *Agent) Run(ctx context.Context, task string) (out Outcome) {
	used := make([]string, 0, 2)
	defer func() {
		if r := recover(); r != nil {
			out = errorOutcome(task, used, fmt.Sprintf("internal error: %v", r))
		}
	}()

	// Registration and dispatch never interleave: the first run ends the
	// registration phase for good.
	a.sealOnce.Do(a.registry.Seal)

	log := a.logger.With(slog.String("run_id", uuid.NewString()))
	log.Debug("run_started", slog.String("task", task))

	sel, err := a.selector.Select(ctx, task, a.registry.Descriptors())
	if err != nil {
		log.Error("selection_failed", slog.String("error", err.Error()))
		return errorOutcome(task, used, fmt.Sprintf("selecting tools: %v", err))
	}

	if len(sel.Invocations) == 0 {
		log.Debug("run_direct_answer")
		return Outcome{Task: task, Status: tool.StatusSuccess, ToolsUsed: used, Result: sel.Answer}
	}

	reports := make([]string, 0, len(sel.Invocations))
	for _, inv := range sel.Invocations {
		if err := ctx.Err(); err != nil {
			log.Warn("run_cancelled", slog.String("tool", inv.Tool))
			return errorOutcome(task, used, fmt.Sprintf("run cancelled: %v", err))
		}

		t, err := a.registry.Lookup(inv.Tool)
		if err != nil {
			log.Error("tool_missing", slog.String("tool", inv.Tool))
			return errorOutcome(task, used, fmt.Sprintf("tool %q is not registered", inv.Tool))
		}

		used = append(used, inv.Tool)
		res := t.Invoke(ctx, inv.Args)
		log.Debug("tool_invoked",
			slog.String("tool", inv.Tool),
			slog.String("status", string(res.Status)),
		)
		if res.Status != tool.StatusSuccess {
			log.Warn("tool_failed",
				slog.String("tool", inv.Tool),
				slog.String("error", res.ErrorMessage),
			)
			return errorOutcome(task, used, res.ErrorMessage)
		}
		reports = append(reports, res.Report)
	}

	return Outcome{
		Task:      task,
		Status:    tool.StatusSuccess,
		ToolsUsed: used,
		Result:    strings.Join(reports, "\n"),
	}
}

func errorOutcome(task string, used []string, message string) Outcome {
	return Outcome{Task: task, Status: tool.StatusError, ToolsUsed: used, Result: message}
}
