package tools

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/assist-sh/assist/errors"
)

// GitHistoryTool returns recent commit history, used when generating project
// documentation.
type GitHistoryTool struct{}

func (t *GitHistoryTool) Name() string { return "get_git_history" }
func (t *GitHistoryTool) Description() string {
	return "Retrieves the most recent git commit history for the project. Returns the last 'limit' commits (default 10)."
}
func (t *GitHistoryTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"limit": integerProp("How many commits to return. Defaults to 10."),
	})
}

func (t *GitHistoryTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	limit := 10
	// JSON numbers decode as float64.
	if v, ok := args["limit"].(float64); ok && v > 0 {
		limit = int(v)
	}

	cmd := exec.CommandContext(ctx, "git", "log", fmt.Sprintf("-n%d", limit), "--pretty=format:%h - %an, %ar : %s")
	output, err := cmd.Output()
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return "", errors.New("this does not appear to be a git repository")
		}
		return "", errors.Wrapf(err, "git command not found; is git installed and in your PATH?")
	}
	return string(output), nil
}

// GitShowTool returns the details and diff of a single commit.
type GitShowTool struct{}

func (t *GitShowTool) Name() string { return "get_git_commit" }
func (t *GitShowTool) Description() string {
	return "Retrieves the details and changes for a specific git commit hash."
}
func (t *GitShowTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"commit_hash": stringProp("The commit hash to inspect."),
	}, "commit_hash")
}

func (t *GitShowTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	hash, err := stringArg(args, "commit_hash")
	if err != nil {
		return "", err
	}

	cmd := exec.CommandContext(ctx, "git", "show", hash)
	output, err := cmd.Output()
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return "", errors.New("could not find commit hash '%s'", hash)
		}
		return "", errors.Wrapf(err, "git command not found; is git installed and in your PATH?")
	}
	return string(output), nil
}
