package tools

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/assist-sh/assist/errors"
)

// CommandTimeout bounds how long a model-requested shell command may run.
const CommandTimeout = 60 * time.Second

// RunCommandTool runs a shell command on behalf of the model. Execution is
// gated twice: the command must match the configured allowlist (when one is
// set), and the confirm callback must approve it. A denial is reported back
// to the model as a tool result rather than an error so the conversation can
// continue.
type RunCommandTool struct {
	allowedCommands []string
	confirm         func(prompt string) bool
}

// NewRunCommandTool builds a command tool with an explicit allowlist and
// confirmation callback. Used by tests and by assistants that bring their
// own approval flow.
func NewRunCommandTool(allowed []string, confirm func(string) bool) *RunCommandTool {
	return &RunCommandTool{allowedCommands: allowed, confirm: confirm}
}

func (t *RunCommandTool) Name() string { return "run_command" }

func (t *RunCommandTool) Description() string {
	desc := "Runs a shell command and returns its standard output and standard error."
	if len(t.allowedCommands) == 0 {
		return desc
	}
	var b strings.Builder
	b.WriteString(desc)
	b.WriteString("\nAllowed command patterns:\n")
	for _, cmd := range t.allowedCommands {
		fmt.Fprintf(&b, "- %s\n", cmd)
	}
	return b.String()
}

func (t *RunCommandTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"command": stringProp("The shell command to execute."),
	}, "command")
}

func (t *RunCommandTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	command, err := stringArg(args, "command")
	if err != nil {
		return "", err
	}

	if len(t.allowedCommands) > 0 && !isCommandAllowed(command, t.allowedCommands) {
		return "", errors.New("command '%s' is not in the list of allowed commands", command)
	}

	if t.confirm == nil || !t.confirm(fmt.Sprintf("Run command '%s'?", command)) {
		return "Aborted by user. Command not executed.", nil
	}

	ctx, cancel := context.WithTimeout(ctx, CommandTimeout)
	defer cancel()

	// The model composes pipelines and redirections, so hand the string to
	// the shell instead of splitting it ourselves.
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	stdout, err := cmd.Output()

	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Sprintf("Error: command timed out after %s.", CommandTimeout), nil
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Sprintf("Command failed with exit code %d.\nSTDOUT:\n%s\nSTDERR:\n%s",
				exitErr.ExitCode(), strings.TrimSpace(string(stdout)), strings.TrimSpace(string(exitErr.Stderr))), nil
		}
		return "", errors.Wrapf(err, "failed to start command")
	}

	output := strings.TrimSpace(string(stdout))
	if output == "" {
		return "Command executed successfully with no output.", nil
	}
	return fmt.Sprintf("STDOUT:\n%s", output), nil
}
