package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harunnryd/toolbelt/pkg/agent"
	"github.com/harunnryd/toolbelt/pkg/errorsx"
	"github.com/harunnryd/toolbelt/pkg/logging"
	"github.com/harunnryd/toolbelt/pkg/repl"
	"github.com/harunnryd/toolbelt/pkg/tool"
	"github.com/harunnryd/toolbelt/pkg/toolbelt"
)

// errTaskFailed marks an error outcome that was already rendered; main
// turns it into a non-zero exit without printing anything further.
var errTaskFailed = errors.New("task failed")

type rootOptions struct {
	configPath string
	logLevel   string
	forcedTool string
	listTools  bool
	output     string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "toolbelt [task]",
		Short: "Dispatch natural-language tasks to registered tools",
		Long: "toolbelt routes a task to zero or more registered tools (current weather,\n" +
			"local time) and prints a uniform outcome. Without a task it enters an\n" +
			"interactive loop.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to configuration file")
	cmd.Flags().StringVarP(&opts.logLevel, "log-level", "l", "", "log level (debug|info|warn|error)")
	cmd.Flags().StringVarP(&opts.forcedTool, "tool", "t", "", "force a specific tool for the task")
	cmd.Flags().BoolVar(&opts.listTools, "list-tools", false, "list all available tools and exit")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "output format (text|json)")
	return cmd
}

func run(cmd *cobra.Command, opts *rootOptions, args []string) error {
	if opts.output != "text" && opts.output != "json" {
		return fmt.Errorf("unknown output format %q", opts.output)
	}

	cfg, err := toolbelt.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	logger := logging.InitLogger(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	app, err := toolbelt.New(cfg, logger)
	if err != nil {
		return err
	}

	if opts.listTools {
		repl.PrintTools(cmd.OutOrStdout(), app.Registry)
		return nil
	}

	runner := app.Agent
	if opts.forcedTool != "" {
		if _, err := app.Registry.Lookup(opts.forcedTool); err != nil {
			return errorsx.Wrap(err, errorsx.ReasonToolNotFound)
		}
		selector := agent.SingleToolSelector{Tool: opts.forcedTool}
		runner = agent.New(app.Registry, selector, app.Logger)
	}

	render := func(out agent.Outcome) {
		renderOutcome(cmd, opts.output, out)
	}

	if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
		out := runner.Run(cmd.Context(), args[0])
		render(out)
		if out.Status == tool.StatusError {
			return errTaskFailed
		}
		return nil
	}

	repl.PrintBanner(cmd.OutOrStdout(), toolbelt.Version)
	loop := &repl.REPL{
		Agent:    runner,
		Registry: app.Registry,
		In:       cmd.InOrStdin(),
		Out:      cmd.OutOrStdout(),
		Render:   render,
	}
	return loop.Run(cmd.Context())
}

func renderOutcome(cmd *cobra.Command, format string, out agent.Outcome) {
	w := cmd.OutOrStdout()
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		return
	}
	toolsUsed := "None"
	if len(out.ToolsUsed) > 0 {
		toolsUsed = strings.Join(out.ToolsUsed, ", ")
	}
	fmt.Fprintf(w, "Task: %s\n", out.Task)
	fmt.Fprintf(w, "Status: %s\n", out.Status)
	fmt.Fprintf(w, "Tools used: %s\n", toolsUsed)
	fmt.Fprintf(w, "Result: %s\n", out.Result)
}
