// Package assistant implements the user-facing assistants: each one pairs a
// system prompt and a toolset with the shared agent loop.
package assistant

import (
	"context"
	"fmt"

	"github.com/assist-sh/assist/agent"
	"github.com/assist-sh/assist/config"
	"github.com/assist-sh/assist/llm"
	"github.com/assist-sh/assist/session"
	"github.com/assist-sh/assist/tools"
	"github.com/assist-sh/assist/ui"
)

// resolveToolset returns the active tools for an assistant. A config toolset
// with the assistant's name replaces the built-in default.
func resolveToolset(cfg *config.Config, registry *tools.Registry, name string, defaults []string) ([]tools.Tool, error) {
	names := defaults
	if override, ok := cfg.GetToolset(name); ok {
		names = override.Tools
	}
	return registry.Resolve(names)
}

// oneShot runs a single agent turn with no tools and returns the model's
// text answer. Used by the assistants that only need one completion.
func oneShot(ctx context.Context, cfg *config.Config, client llm.LLMClient, systemPrompt, task string) (string, error) {
	a := agent.New(cfg, session.NewEphemeral("oneshot"), nil, agent.ModeAuto, client, systemPrompt)
	a.MaxIterations = 1

	resp, err := a.ProcessUserInput(ctx, task, agent.ProcessCallbacks{})
	if err != nil {
		return "", err
	}
	return resp.Message.Content, nil
}

// progressCallbacks prints tool activity while an agent works, in the shape
// used by the scaffolding assistants.
func progressCallbacks(verbosity agent.ToolVerbosity) agent.ProcessCallbacks {
	return agent.ProcessCallbacks{
		OnToolCall: func(tc session.ToolCall) {
			switch verbosity {
			case agent.ToolVerbosityAll:
				ui.Infof("> %s %v", tc.Name, tc.Args)
			case agent.ToolVerbosityInfo:
				ui.Infof("> %s", tc.Name)
			}
		},
		OnToolResult: func(tc session.ToolCall, result string) {
			if verbosity == agent.ToolVerbosityAll {
				ui.Infof("  %s", result)
			}
		},
		ShouldExecuteTool: func(tc session.ToolCall) bool {
			return ui.Confirm(fmt.Sprintf("Allow tool call '%s'?", tc.Name))
		},
		OnWarning: func(warning string) {
			ui.Infof("Warning: %s", warning)
		},
	}
}
