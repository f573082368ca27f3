package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/assist-sh/assist/config"
	"github.com/assist-sh/assist/errors"
	"github.com/assist-sh/assist/llm"
	"github.com/assist-sh/assist/ui"
)

const doSystemPrompt = `You are a highly experienced Unix system administrator and command line expert.
Given a natural language task, your goal is to provide a safe and effective Bash command.

Your response must be a single JSON object with exactly these fields:
1. "command": The corresponding Bash command. If no command is suitable, provide an empty string.
2. "risk_assessment": A numerical rating of the command's potential risk:
   - 0: Safe to run (e.g., read-only operations like ls, cat, grep).
   - 1: Potentially destructive (e.g., modifies or deletes user files like mv, cp, rm).
   - 2: High risk (e.g., requires sudo, alters system files, affects security/availability).
3. "explanation": A clear, concise explanation of what the command does.
4. "disclaimer": A warning about potential consequences if the risk is 1 or 2. An empty string for risk 0.

Respond with the JSON object only. No prose before or after it.`

// CommandSuggestion is the model's answer for a natural-language task: the
// command to run plus the metadata shown to the user before execution.
type CommandSuggestion struct {
	Command        string `json:"command"`
	RiskAssessment int    `json:"risk_assessment"`
	Explanation    string `json:"explanation"`
	Disclaimer     string `json:"disclaimer"`
}

// Do translates a natural language description into a shell command, shows
// it with its risk assessment, and runs it after user confirmation.
func Do(ctx context.Context, cfg *config.Config, client llm.LLMClient, description string) error {
	sp := ui.NewSpinner("Thinking...")
	suggestion, err := SuggestShellCommand(ctx, cfg, client, description)
	sp.Stop()
	if err != nil {
		return err
	}
	if suggestion.Command == "" {
		return errors.New("could not generate a command for the given prompt")
	}

	fmt.Printf("Suggested command:\n  %s\n\n", suggestion.Command)
	fmt.Printf("Explanation:\n  %s\n\n", suggestion.Explanation)
	if suggestion.RiskAssessment > 0 && suggestion.Disclaimer != "" {
		fmt.Printf("⚠️  Disclaimer:\n  %s\n\n", suggestion.Disclaimer)
	}

	if !ui.Confirm("Do you want to run this command?") {
		return nil
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", suggestion.Command)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// SuggestShellCommand asks the model for a CommandSuggestion. A reply that
// cannot be decoded degrades to an empty-command suggestion explaining the
// failure, mirroring how an unusable answer is presented to the user.
func SuggestShellCommand(ctx context.Context, cfg *config.Config, client llm.LLMClient, description string) (*CommandSuggestion, error) {
	content, err := oneShot(ctx, cfg, client, doSystemPrompt, description)
	if err != nil {
		return nil, err
	}

	var suggestion CommandSuggestion
	if err := json.Unmarshal([]byte(ExtractJSON(content)), &suggestion); err != nil {
		return &CommandSuggestion{
			Explanation: "Error: The AI failed to return a valid command.",
		}, nil
	}
	return &suggestion, nil
}

// ExtractJSON pulls the first JSON object out of a model reply, tolerating
// markdown code fences and surrounding prose.
func ExtractJSON(content string) string {
	content = strings.TrimSpace(content)

	if idx := strings.Index(content, "```"); idx >= 0 {
		rest := content[idx+3:]
		rest = strings.TrimPrefix(rest, "json")
		if end := strings.Index(rest, "```"); end >= 0 {
			content = rest[:end]
		} else {
			content = rest
		}
	}

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		return content[start : end+1]
	}
	return strings.TrimSpace(content)
}
