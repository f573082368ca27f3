// Package session stores conversation history for the assistant on disk so
// chat sessions can be listed and resumed across invocations.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/assist-sh/assist/errors"
)

// ToolCall records a single tool invocation requested by the model.
type ToolCall struct {
	ToolCallID string                 `json:"tool_call_id"`
	Name       string                 `json:"name"`
	Args       map[string]interface{} `json:"args,omitempty"`
}

// Message is one entry in the conversation history.
// Role is one of "system", "user", "assistant" or "tool". A "tool" message
// carries exactly one ToolCall identifying which call it answers.
type Message struct {
	Role      string     `json:"role"`
	Content   string     `json:"content"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
}

// Session is a named conversation persisted under .assist/sessions.
type Session struct {
	Name     string    `json:"name"`
	Messages []Message `json:"messages"`
	path     string
}

// New creates a new session with the given name.
func New(name string) (*Session, error) {
	path, err := sessionPath(name)
	if err != nil {
		return nil, err
	}
	return &Session{Name: name, Messages: []Message{}, path: path}, nil
}

// NewEphemeral creates a session that is never persisted. One-shot
// assistants use it so their conversations don't accumulate on disk.
func NewEphemeral(name string) *Session {
	return &Session{Name: name, Messages: []Message{}}
}

// Load reads an existing session from disk.
func Load(name string) (*Session, error) {
	path, err := sessionPath(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read session '%s'", name)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrapf(err, "could not parse session file %s", path)
	}
	s.path = path
	return &s, nil
}

// List returns the names of all saved sessions, sorted.
func List() ([]string, error) {
	entries, err := os.ReadDir(sessionDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "could not list sessions")
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// Save writes the current session state to disk. Ephemeral sessions are a
// no-op.
func (s *Session) Save() error {
	if s.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "failed to serialize session '%s'", s.Name)
	}
	return os.WriteFile(s.path, data, 0644)
}

// AddMessage appends a message to the session history.
func (s *Session) AddMessage(msg Message) {
	s.Messages = append(s.Messages, msg)
}

func sessionDir() string {
	return filepath.Join(".assist", "sessions")
}

func sessionPath(name string) (string, error) {
	dir := sessionDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrapf(err, "could not create session directory")
	}
	return filepath.Join(dir, name+".json"), nil
}
