package session

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRoundTrip(t *testing.T) {
	t.Chdir(t.TempDir())

	s, err := New("demo")
	require.NoError(t, err)

	s.AddMessage(Message{Role: "system", Content: "be brief"})
	s.AddMessage(Message{Role: "user", Content: "hello"})
	s.AddMessage(Message{
		Role:    "assistant",
		Content: "",
		ToolCalls: []ToolCall{
			{ToolCallID: "call_1", Name: "read_file", Args: map[string]interface{}{"path": "a.txt"}},
		},
	})
	require.NoError(t, s.Save())

	loaded, err := Load("demo")
	require.NoError(t, err)
	assert.Equal(t, "demo", loaded.Name)
	require.Len(t, loaded.Messages, 3)
	assert.Equal(t, "hello", loaded.Messages[1].Content)
	require.Len(t, loaded.Messages[2].ToolCalls, 1)
	assert.Equal(t, "read_file", loaded.Messages[2].ToolCalls[0].Name)

	// A reloaded session keeps saving to the same file.
	loaded.AddMessage(Message{Role: "user", Content: "again"})
	require.NoError(t, loaded.Save())
}

func TestList(t *testing.T) {
	t.Chdir(t.TempDir())

	names, err := List()
	require.NoError(t, err)
	assert.Empty(t, names)

	for _, name := range []string{"zeta", "alpha"} {
		s, err := New(name)
		require.NoError(t, err)
		require.NoError(t, s.Save())
	}

	names, err = List()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, names)
}

func TestLoadMissingSession(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load("nope")
	assert.Error(t, err)
}

func TestEphemeralSessionIsNotPersisted(t *testing.T) {
	t.Chdir(t.TempDir())

	s := NewEphemeral("scratch")
	s.AddMessage(Message{Role: "user", Content: "hi"})
	require.NoError(t, s.Save())

	_, err := os.Stat(sessionDir())
	assert.True(t, os.IsNotExist(err))
}
