package tools

import (
	"context"
)

// Summarizer produces a summary for a set of paths. The assistant package
// supplies an implementation backed by the summarize assistant; the
// indirection keeps this package free of an import cycle.
type Summarizer func(ctx context.Context, paths []string) (string, error)

// SummarizePathTool lets an exploring agent request a quick summary of a
// file or directory instead of reading its full content.
type SummarizePathTool struct {
	Summarize Summarizer
}

func (t *SummarizePathTool) Name() string { return "summarize_path" }
func (t *SummarizePathTool) Description() string {
	return "Provides a quick summary of a file or an overview of a directory's contents. Useful for a high-level understanding without reading the full content."
}
func (t *SummarizePathTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"path": stringProp("The file or directory to summarize."),
	}, "path")
}

func (t *SummarizePathTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	path, err := stringArg(args, "path")
	if err != nil {
		return "", err
	}
	return t.Summarize(ctx, []string{path})
}
