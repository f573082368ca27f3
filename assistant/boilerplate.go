package assistant

import (
	"context"

	"github.com/assist-sh/assist/agent"
	"github.com/assist-sh/assist/config"
	"github.com/assist-sh/assist/llm"
	"github.com/assist-sh/assist/session"
	"github.com/assist-sh/assist/tools"
	"github.com/assist-sh/assist/ui"
)

const boilerplateSystemPrompt = `You are a software architect and developer assistant. Your goal is to help the user
scaffold a new project by creating directories and files based on their request.

First, think step-by-step about the file structure and content needed to fulfill
the user's request. Then, call the available tools sequentially to create the
project. Do not try to create a file inside a directory that hasn't been created yet.

Once you have created all the necessary files and directories, respond with a
final confirmation message summarizing what you have done.`

// boilerplateMaxIterations bounds the scaffolding loop; each file or
// directory costs one tool round trip.
const boilerplateMaxIterations = 10

var boilerplateToolset = []string{"create_directory", "create_file"}

// Boilerplate generates project scaffolding from a natural language
// description.
func Boilerplate(ctx context.Context, cfg *config.Config, client llm.LLMClient, registry *tools.Registry, description string, mode agent.Mode) error {
	activeTools, err := resolveToolset(cfg, registry, "boilerplate", boilerplateToolset)
	if err != nil {
		return err
	}

	ui.Infof("Starting boilerplate generation...")

	a := agent.New(cfg, session.NewEphemeral("boilerplate"), activeTools, mode, client, boilerplateSystemPrompt)
	a.MaxIterations = boilerplateMaxIterations

	callbacks := progressCallbacks(agent.ToolVerbosityInfo)
	resp, err := a.ProcessUserInput(ctx, description, callbacks)
	if err != nil {
		return err
	}

	if resp.Interrupted {
		ui.Infof("Warning: max iterations reached before the agent could finish.")
		return nil
	}

	ui.Infof("\nBoilerplate generation complete!")
	if resp.Message != nil && resp.Message.Content != "" {
		ui.PrintMarkdown(resp.Message.Content)
	}
	return nil
}
