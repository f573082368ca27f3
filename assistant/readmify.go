package assistant

import (
	"context"
	"fmt"
	"os"

	"github.com/assist-sh/assist/agent"
	"github.com/assist-sh/assist/config"
	"github.com/assist-sh/assist/errors"
	"github.com/assist-sh/assist/llm"
	"github.com/assist-sh/assist/session"
	"github.com/assist-sh/assist/tools"
	"github.com/assist-sh/assist/ui"
)

const readmifySystemPrompt = `You are an expert technical writer specializing in creating high-quality README.md files for software projects.
Your goal is to understand the project structure and content by exploring it with the available tools, and then generate a comprehensive README.md.

Make use of the tools available to you to accomplish this task.

Your process should be:
1. Start by listing the files in the root directory (".") to get an overview.
2. Use summarize_path and read_file on key files to understand the project's purpose, dependencies, and main logic.
3. Use get_git_history to understand recent changes.
4. Once you have a good understanding, call the write_readme tool with the full, well-structured markdown content.`

// readmifyMaxIterations allows enough round trips for the agent to explore a
// project before writing.
const readmifyMaxIterations = 25

var readmifyToolset = []string{
	"list_files_and_dirs",
	"read_file",
	"summarize_path",
	"get_git_history",
	"get_git_commit",
	"write_readme",
}

// Readmify explores a project directory with the agent and writes a
// README.md for it. The agent runs rooted at the target path so every tool
// operates on project-relative paths.
func Readmify(ctx context.Context, cfg *config.Config, client llm.LLMClient, registry *tools.Registry, path string, mode agent.Mode) error {
	registry.Register(&tools.SummarizePathTool{
		Summarize: func(ctx context.Context, paths []string) (string, error) {
			return DoSummarize(ctx, cfg, client, paths)
		},
	})
	registry.Register(&tools.WriteReadmeTool{Dir: ".", Confirm: ui.Confirm})

	activeTools, err := resolveToolset(cfg, registry, "readmify", readmifyToolset)
	if err != nil {
		return err
	}

	originalWd, err := os.Getwd()
	if err != nil {
		return errors.Wrapf(err, "could not get working directory")
	}
	if err := os.Chdir(path); err != nil {
		return errors.Wrapf(err, "could not enter project directory '%s'", path)
	}
	defer os.Chdir(originalWd)

	ui.Infof("Analyzing project at '%s' to generate README...", path)

	a := agent.New(cfg, session.NewEphemeral("readmify"), activeTools, mode, client, readmifySystemPrompt)
	a.MaxIterations = readmifyMaxIterations

	task := fmt.Sprintf("Please generate a README.md file for the project located at '%s'. Start by exploring the project using the available tools.", path)
	resp, err := a.ProcessUserInput(ctx, task, progressCallbacks(agent.ToolVerbosityInfo))
	if err != nil {
		return err
	}

	if resp.Interrupted {
		ui.Infof("\nWarning: max iterations reached before the agent could finish.")
	} else {
		ui.Infof("\nREADME generation process complete!")
	}
	return nil
}
