// Package toolbelt wires configuration, the tool registry and a selector
// into a ready-to-run dispatch agent.
package toolbelt

import (
	"fmt"
	"log/slog"

	"github.com/harunnryd/toolbelt/pkg/agent"
	"github.com/harunnryd/toolbelt/pkg/configutil"
	"github.com/harunnryd/toolbelt/pkg/logging"
	"github.com/harunnryd/toolbelt/pkg/providers/openai"
	"github.com/harunnryd/toolbelt/pkg/tool"
	"github.com/harunnryd/toolbelt/pkg/toolkit"
)

const Version = "dev"

// App holds one configured agent and its registry.
type App struct {
	Config   Config
	Registry *tool.Registry
	Agent    *agent.Agent
	Logger   *slog.Logger
}

// New builds the registry, registers the built-in tools and constructs the
// dispatcher. Registration failures here are fatal to startup; they never
// surface mid-run.
func New(cfg Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = logging.InitLogger(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)
	}

	registry := tool.NewRegistry()
	if err := toolkit.RegisterDefaults(registry, cfg.Toolkit); err != nil {
		return nil, fmt.Errorf("register built-in tools: %w", err)
	}
	if registry.Len() == 0 {
		return nil, fmt.Errorf("no tools registered")
	}

	selector, err := buildSelector(cfg.Selector)
	if err != nil {
		return nil, err
	}

	agentLogger := logging.NewComponentLogger(logger, "agent")
	return &App{
		Config:   cfg,
		Registry: registry,
		Agent:    agent.New(registry, selector, agentLogger),
		Logger:   logger,
	}, nil
}

func buildSelector(cfg SelectorConfig) (agent.Selector, error) {
	switch cfg.Provider {
	case "", "rule":
		return agent.RuleSelector{}, nil
	case "openai":
		var settings openai.Config
		if err := configutil.DecodeSettings(cfg.Settings, &settings); err != nil {
			return nil, fmt.Errorf("decode openai selector settings: %w", err)
		}
		if err := configutil.RequireString(settings.APIKey, "selector.settings.api_key"); err != nil {
			return nil, err
		}
		return agent.LLMSelector{Adapter: openai.NewAdapter(settings)}, nil
	default:
		return nil, fmt.Errorf("unknown selector provider %q", cfg.Provider)
	}
}
