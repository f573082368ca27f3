package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assist-sh/assist/session"
)

func TestNewClientUnknownProvider(t *testing.T) {
	_, err := NewClient(context.Background(), "carrier-pigeon", "rfc1149")
	assert.ErrorContains(t, err, "unknown llm provider")
}

func TestMockClientScriptedResponses(t *testing.T) {
	mock := &MockLLMClient{Responses: []*session.Message{
		{Role: "assistant", Content: "first"},
		{Role: "assistant", Content: "second"},
	}}

	msg, err := mock.Chat(context.Background(), []session.Message{{Role: "user", Content: "a"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, "first", msg.Content)

	msg, err = mock.Chat(context.Background(), []session.Message{{Role: "user", Content: "b"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, "second", msg.Content)

	require.Len(t, mock.Requests, 2)
	assert.Equal(t, "b", mock.Requests[1][0].Content)
}

func TestMockClientParrotsWithoutScript(t *testing.T) {
	mock := &MockLLMClient{}
	msg, err := mock.Chat(context.Background(), []session.Message{{Role: "user", Content: "ping"}}, nil)
	require.NoError(t, err)
	assert.Contains(t, msg.Content, "ping")
}
