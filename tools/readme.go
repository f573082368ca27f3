package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/assist-sh/assist/errors"
)

// WriteReadmeTool writes the generated README.md into the project directory.
// Overwriting an existing README requires approval through the confirm
// callback; a refusal is reported to the model as a tool result.
type WriteReadmeTool struct {
	Dir     string
	Confirm func(prompt string) bool
}

func (t *WriteReadmeTool) Name() string { return "write_readme" }
func (t *WriteReadmeTool) Description() string {
	return "Writes the provided markdown content to a README.md file in the project directory. Asks for confirmation before overwriting an existing README.md."
}
func (t *WriteReadmeTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"content": stringProp("The full markdown content of the README."),
	}, "content")
}

func (t *WriteReadmeTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	content, err := stringArg(args, "content")
	if err != nil {
		return "", err
	}

	path := filepath.Join(t.Dir, "README.md")
	if _, err := os.Stat(path); err == nil {
		if t.Confirm == nil || !t.Confirm(fmt.Sprintf("'%s' already exists. Overwrite?", path)) {
			return "Aborted by user. README.md was not overwritten.", nil
		}
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", errors.Wrapf(err, "error writing README.md")
	}
	return fmt.Sprintf("Successfully wrote README.md to %s", path), nil
}
