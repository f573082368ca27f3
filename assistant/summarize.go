package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/assist-sh/assist/config"
	"github.com/assist-sh/assist/llm"
	"github.com/assist-sh/assist/ui"
)

const summarizeSystemPrompt = `You are a helpful assistant that summarizes the content of files or directories.
If the input is a code file, provide a concise, high-level description of its purpose and main functions.
If the input is a markdown or text file, summarize the main points.
If the input is a directory, provide an overview of its purpose and list the main files and their roles.`

// promptCharLimit approximates 1k tokens (1 token ~= 4 chars) to keep the
// summarization prompt concise.
const promptCharLimit = 4000

// maxCharsPerFile caps how much of each file goes into a sample.
const maxCharsPerFile = 800

// pathSample is the snippet of one file or directory fed to the model.
type pathSample struct {
	File      string       `json:"file,omitempty"`
	Directory string       `json:"directory,omitempty"`
	Snippet   string       `json:"snippet,omitempty"`
	Overview  []pathSample `json:"overview,omitempty"`
	Path      string       `json:"path,omitempty"`
	Error     string       `json:"error,omitempty"`
}

// Summarize reads samples from the given paths, asks the model for a
// summary and prints it as markdown.
func Summarize(ctx context.Context, cfg *config.Config, client llm.LLMClient, paths []string) error {
	sp := ui.NewSpinner("Summarizing...")
	content, err := DoSummarize(ctx, cfg, client, paths)
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

// DoSummarize builds the sampling prompt and runs a single completion. It is
// also the backing implementation of the summarize_path tool.
func DoSummarize(ctx context.Context, cfg *config.Config, client llm.LLMClient, paths []string) (string, error) {
	var samples []pathSample
	currentSize := 0
	truncated := false

	for _, path := range paths {
		sample := readSampleOfPath(path)
		data, err := json.Marshal(sample)
		if err != nil {
			continue
		}
		if currentSize+len(data) > promptCharLimit {
			truncated = true
			break
		}
		samples = append(samples, sample)
		currentSize += len(data)
	}

	promptContent, err := json.MarshalIndent(samples, "", "  ")
	if err != nil {
		return "", err
	}
	task := fmt.Sprintf("Summarize the following files/directories:\n\n%s", promptContent)
	if truncated {
		task += fmt.Sprintf("\n\n... (input truncated to fit within the prompt limit of %d characters)", promptCharLimit)
	}

	return oneShot(ctx, cfg, client, summarizeSystemPrompt, task)
}

func readSampleOfPath(path string) pathSample {
	info, err := os.Stat(path)
	if err != nil {
		return pathSample{Path: path, Error: fmt.Sprintf("%s doesn't appear to be valid", path)}
	}
	if info.IsDir() {
		return readSampleOfDir(path)
	}
	return readSampleOfFile(path)
}

func readSampleOfFile(path string) pathSample {
	data, err := os.ReadFile(path)
	if err != nil {
		return pathSample{File: path, Error: err.Error()}
	}
	snippet := string(data)
	if len(snippet) > maxCharsPerFile {
		snippet = snippet[:maxCharsPerFile] + "\n... (truncated)"
	}
	return pathSample{File: path, Snippet: snippet}
}

func readSampleOfDir(path string) pathSample {
	entries, err := os.ReadDir(path)
	if err != nil {
		return pathSample{Directory: path, Error: err.Error()}
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var overview []pathSample
	for _, name := range names {
		overview = append(overview, readSampleOfFile(filepath.Join(path, name)))
	}
	return pathSample{Directory: path, Overview: overview}
}
