// Package repl implements the interactive loop entered when the CLI gets no
// task argument.
package repl

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dimiro1/banner"

	"github.com/harunnryd/toolbelt/pkg/agent"
	"github.com/harunnryd/toolbelt/pkg/tool"
)

// PrintBanner writes the startup banner.
func PrintBanner(w io.Writer, version string) {
	tpl := "{{ .Title \"TOOLBELT\" \"\" 0 }}\nVersion: " + version + "\n"
	banner.Init(w, true, false, bytes.NewBufferString(tpl))
}

// REPL reads tasks line by line and dispatches each through the agent.
// "exit" and "quit" leave the loop, "tools" lists the registered tools.
type REPL struct {
	Agent    *agent.Agent
	Registry *tool.Registry
	In       io.Reader
	Out      io.Writer

	// Render formats one outcome; the CLI supplies text or JSON rendering.
	Render func(agent.Outcome)
}

func (r *REPL) Run(ctx context.Context) error {
	fmt.Fprintln(r.Out, "Interactive mode. Type 'exit' or 'quit' to leave, 'tools' to list available tools.")
	scanner := bufio.NewScanner(r.In)
	for {
		fmt.Fprint(r.Out, "\nEnter task: ")
		if !scanner.Scan() {
			fmt.Fprintln(r.Out)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		task := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(task) {
		case "":
			continue
		case "exit", "quit":
			return nil
		case "tools":
			PrintTools(r.Out, r.Registry)
			continue
		}
		r.Render(r.Agent.Run(ctx, task))
	}
}

// PrintTools lists tool names and descriptions in registration order.
func PrintTools(w io.Writer, registry *tool.Registry) {
	descriptions := registry.Descriptions()
	fmt.Fprintln(w, "Available tools:")
	for _, name := range registry.Names() {
		fmt.Fprintf(w, "  - %s: %s\n", name, descriptions[name])
	}
}
