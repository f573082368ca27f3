package assistant

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assist-sh/assist/config"
	"github.com/assist-sh/assist/llm"
	"github.com/assist-sh/assist/session"
)

func TestReadSampleOfFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "short.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0644))

	sample := readSampleOfFile(path)
	assert.Equal(t, path, sample.File)
	assert.Equal(t, "hello world", sample.Snippet)
	assert.Empty(t, sample.Error)
}

func TestReadSampleOfFileTruncates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "long.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("a", maxCharsPerFile*2)), 0644))

	sample := readSampleOfFile(path)
	assert.True(t, strings.HasSuffix(sample.Snippet, "(truncated)"))
	assert.Less(t, len(sample.Snippet), maxCharsPerFile+50)
}

func TestReadSampleOfMissingPath(t *testing.T) {
	sample := readSampleOfPath(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Contains(t, sample.Error, "doesn't appear to be valid")
}

func TestReadSampleOfDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("bee"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("ay"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))

	sample := readSampleOfPath(dir)
	assert.Equal(t, dir, sample.Directory)
	require.Len(t, sample.Overview, 2)
	// Files are sampled in sorted order; nested directories are skipped.
	assert.Equal(t, filepath.Join(dir, "a.txt"), sample.Overview[0].File)
	assert.Equal(t, filepath.Join(dir, "b.txt"), sample.Overview[1].File)
}

func TestDoSummarize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")
	require.NoError(t, os.WriteFile(path, []byte("remember the milk"), 0644))

	mock := &llm.MockLLMClient{Responses: []*session.Message{
		{Role: "assistant", Content: "A shopping reminder."},
	}}

	out, err := DoSummarize(context.Background(), &config.Config{}, mock, []string{path})
	require.NoError(t, err)
	assert.Equal(t, "A shopping reminder.", out)

	require.Len(t, mock.Requests, 1)
	request := mock.Requests[0]
	task := request[len(request)-1].Content
	assert.Contains(t, task, "remember the milk")
	assert.Contains(t, task, "notes.md")
	assert.NotContains(t, task, "input truncated")
}

func TestDoSummarizeTruncatesLongInput(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		path := filepath.Join(dir, name+".txt")
		require.NoError(t, os.WriteFile(path, []byte(strings.Repeat(name, maxCharsPerFile)), 0644))
		paths = append(paths, path)
	}

	mock := &llm.MockLLMClient{Responses: []*session.Message{
		{Role: "assistant", Content: "summary"},
	}}

	_, err := DoSummarize(context.Background(), &config.Config{}, mock, paths)
	require.NoError(t, err)

	request := mock.Requests[0]
	task := request[len(request)-1].Content
	assert.Contains(t, task, "input truncated")
	// The last files never made it into the prompt.
	assert.NotContains(t, task, "h.txt")
}
