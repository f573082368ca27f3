package assistant

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/assist-sh/assist/config"
	"github.com/assist-sh/assist/errors"
	"github.com/assist-sh/assist/llm"
	"github.com/assist-sh/assist/ui"
)

const manSystemPrompt = `You are a helpful AI assistant. The user will provide the name of a Unix command.
Your job is to read the man page (provided as context) for that command and produce:
1. A concise summary of what the command does.
2. The most useful/common options (with a brief description for each).
3. 2-3 practical usage examples.
Respond in a clear, beginner-friendly format using Markdown.
If the man page is very long, focus only on the most important highlights.
Don't include any follow up options. Don't ask if the user needs more clarifications or has any questions.`

// Man fetches a man page and prints a summarized, beginner-friendly version.
func Man(ctx context.Context, cfg *config.Config, client llm.LLMClient, page string) error {
	manPage, err := fetchManPage(ctx, page)
	if err != nil {
		return errors.New("could not find a man page for '%s'", page)
	}

	task := fmt.Sprintf("Here is the man page for '%s':\n\n%s\n\nSummarize it as described, using Markdown for formatting.", page, manPage)

	sp := ui.NewSpinner("Summarizing man page...")
	content, err := oneShot(ctx, cfg, client, manSystemPrompt, task)
	sp.Stop()
	if err != nil {
		return err
	}

	if content == "" {
		content = "The AI failed to generate a summary."
	}
	ui.PrintMarkdown(content)
	return nil
}

func fetchManPage(ctx context.Context, page string) (string, error) {
	cmd := exec.CommandContext(ctx, "man", page)
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}
	if len(output) == 0 {
		return "", errors.New("empty man page")
	}
	return string(output), nil
}
