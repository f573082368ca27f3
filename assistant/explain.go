package assistant

import (
	"context"
	"fmt"

	"github.com/assist-sh/assist/config"
	"github.com/assist-sh/assist/llm"
	"github.com/assist-sh/assist/ui"
)

const explainSystemPrompt = `You are a highly experienced Unix system administrator and command line expert. Given a Bash command,
output a detailed explanation of what the command does, including its components and their roles.
Also provide one or 2 examples on how to use that command in a real-world scenario.
If the input provided is a complex command (e.g., a pipeline), break it down into its components
and explain each part.

Use simple language that is easy to understand and format the output using Markdown for readability.`

// Explain prints a detailed Markdown explanation of a shell command.
func Explain(ctx context.Context, cfg *config.Config, client llm.LLMClient, command string) error {
	task := fmt.Sprintf("Explain the following command: '%s'", command)

	sp := ui.NewSpinner("Thinking...")
	content, err := oneShot(ctx, cfg, client, explainSystemPrompt, task)
	sp.Stop()
	if err != nil {
		return err
	}

	if content == "" {
		content = "The AI failed to generate a description."
	}
	ui.PrintMarkdown(content)
	return nil
}
