package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assist-sh/assist/config"
	"github.com/assist-sh/assist/errors"
	"github.com/assist-sh/assist/llm"
	"github.com/assist-sh/assist/session"
	"github.com/assist-sh/assist/tools"
)

type fakeTool struct {
	name   string
	result string
	err    error
	calls  []map[string]interface{}
}

func (f *fakeTool) Name() string        { return f.name }
func (f *fakeTool) Description() string { return "a tool used in tests" }
func (f *fakeTool) Parameters() map[string]interface{} {
	return map[string]interface{}{"type": "object", "properties": map[string]interface{}{}}
}

func (f *fakeTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	f.calls = append(f.calls, args)
	if f.err != nil {
		return "", f.err
	}
	return f.result, nil
}

func toolCallMessage(id, name string, args map[string]interface{}) *session.Message {
	return &session.Message{
		Role:      "assistant",
		ToolCalls: []session.ToolCall{{ToolCallID: id, Name: name, Args: args}},
	}
}

func newTestAgent(mock *llm.MockLLMClient, activeTools []tools.Tool, mode Mode) *Agent {
	return New(&config.Config{}, session.NewEphemeral("test"), activeTools, mode, mock, "You are a test assistant.")
}

func TestProcessUserInputPlainAnswer(t *testing.T) {
	mock := &llm.MockLLMClient{Responses: []*session.Message{
		{Role: "assistant", Content: "hello back"},
	}}
	a := newTestAgent(mock, nil, ModeAuto)

	var said string
	resp, err := a.ProcessUserInput(context.Background(), "hello", ProcessCallbacks{
		OnAssistantMessage: func(m string) { said = m },
	})
	require.NoError(t, err)
	assert.False(t, resp.Interrupted)
	assert.Equal(t, "hello back", resp.Message.Content)
	assert.Equal(t, "hello back", said)

	// system, user, assistant
	require.Len(t, a.Session.Messages, 3)
	assert.Equal(t, "system", a.Session.Messages[0].Role)
	assert.Equal(t, "user", a.Session.Messages[1].Role)
}

func TestProcessUserInputToolRoundTrip(t *testing.T) {
	lookup := &fakeTool{name: "lookup", result: "42"}
	mock := &llm.MockLLMClient{Responses: []*session.Message{
		toolCallMessage("call_1", "lookup", map[string]interface{}{"q": "answer"}),
		{Role: "assistant", Content: "the answer is 42"},
	}}
	a := newTestAgent(mock, []tools.Tool{lookup}, ModeAuto)

	resp, err := a.ProcessUserInput(context.Background(), "what is the answer?", ProcessCallbacks{})
	require.NoError(t, err)
	assert.False(t, resp.Interrupted)
	assert.Equal(t, "the answer is 42", resp.Message.Content)

	require.Len(t, lookup.calls, 1)
	assert.Equal(t, "answer", lookup.calls[0]["q"])

	// The tool result is fed back to the model on the second request.
	require.Len(t, mock.Requests, 2)
	second := mock.Requests[1]
	last := second[len(second)-1]
	assert.Equal(t, "tool", last.Role)
	assert.Equal(t, "42", last.Content)
	require.Len(t, last.ToolCalls, 1)
	assert.Equal(t, "call_1", last.ToolCalls[0].ToolCallID)
}

func TestProcessUserInputUnknownTool(t *testing.T) {
	mock := &llm.MockLLMClient{Responses: []*session.Message{
		toolCallMessage("call_1", "missing", nil),
		{Role: "assistant", Content: "done"},
	}}
	a := newTestAgent(mock, nil, ModeAuto)

	_, err := a.ProcessUserInput(context.Background(), "go", ProcessCallbacks{})
	require.NoError(t, err)

	second := mock.Requests[1]
	last := second[len(second)-1]
	assert.Equal(t, "Error: tool 'missing' not found.", last.Content)
}

func TestProcessUserInputToolError(t *testing.T) {
	broken := &fakeTool{name: "broken", err: errors.New("disk on fire")}
	mock := &llm.MockLLMClient{Responses: []*session.Message{
		toolCallMessage("call_1", "broken", nil),
		{Role: "assistant", Content: "done"},
	}}
	a := newTestAgent(mock, []tools.Tool{broken}, ModeAuto)

	_, err := a.ProcessUserInput(context.Background(), "go", ProcessCallbacks{})
	require.NoError(t, err)

	second := mock.Requests[1]
	last := second[len(second)-1]
	assert.Contains(t, last.Content, "Error:")
	assert.Contains(t, last.Content, "disk on fire")
}

func TestPromptModeDenial(t *testing.T) {
	lookup := &fakeTool{name: "lookup", result: "42"}
	mock := &llm.MockLLMClient{Responses: []*session.Message{
		toolCallMessage("call_1", "lookup", nil),
		{Role: "assistant", Content: "understood"},
	}}
	a := newTestAgent(mock, []tools.Tool{lookup}, ModePrompt)

	_, err := a.ProcessUserInput(context.Background(), "go", ProcessCallbacks{
		ShouldExecuteTool: func(tc session.ToolCall) bool { return false },
	})
	require.NoError(t, err)

	assert.Empty(t, lookup.calls)
	second := mock.Requests[1]
	last := second[len(second)-1]
	assert.Equal(t, "Tool execution denied by user.", last.Content)
}

func TestAutoModeIgnoresConfirmationCallback(t *testing.T) {
	lookup := &fakeTool{name: "lookup", result: "42"}
	mock := &llm.MockLLMClient{Responses: []*session.Message{
		toolCallMessage("call_1", "lookup", nil),
		{Role: "assistant", Content: "done"},
	}}
	a := newTestAgent(mock, []tools.Tool{lookup}, ModeAuto)

	_, err := a.ProcessUserInput(context.Background(), "go", ProcessCallbacks{
		ShouldExecuteTool: func(tc session.ToolCall) bool { return false },
	})
	require.NoError(t, err)
	assert.Len(t, lookup.calls, 1)
}

func TestMaxIterationsInterrupts(t *testing.T) {
	lookup := &fakeTool{name: "lookup", result: "more"}
	mock := &llm.MockLLMClient{Responses: []*session.Message{
		toolCallMessage("call_1", "lookup", nil),
		toolCallMessage("call_2", "lookup", nil),
	}}
	a := newTestAgent(mock, []tools.Tool{lookup}, ModeAuto)
	a.MaxIterations = 2

	var warning string
	resp, err := a.ProcessUserInput(context.Background(), "loop forever", ProcessCallbacks{
		OnWarning: func(w string) { warning = w },
	})
	require.NoError(t, err)
	assert.True(t, resp.Interrupted)
	assert.Contains(t, warning, "maximum iterations")
	assert.Len(t, lookup.calls, 2)
}

func TestInvalidMaxIterations(t *testing.T) {
	a := newTestAgent(&llm.MockLLMClient{}, nil, ModeAuto)
	a.MaxIterations = 0

	_, err := a.ProcessUserInput(context.Background(), "hi", ProcessCallbacks{})
	assert.Error(t, err)
}

func TestLLMErrorAbortsTurn(t *testing.T) {
	mock := &llm.MockLLMClient{Err: errors.New("provider unreachable")}
	a := newTestAgent(mock, nil, ModeAuto)

	_, err := a.ProcessUserInput(context.Background(), "hi", ProcessCallbacks{})
	assert.ErrorContains(t, err, "provider unreachable")
}

func TestResumedSessionKeepsSystemPrompt(t *testing.T) {
	sess := session.NewEphemeral("resumed")
	sess.AddMessage(session.Message{Role: "system", Content: "original prompt"})
	sess.AddMessage(session.Message{Role: "user", Content: "earlier question"})

	New(&config.Config{}, sess, nil, ModeAuto, &llm.MockLLMClient{}, "replacement prompt")

	assert.Equal(t, "original prompt", sess.Messages[0].Content)
	assert.Len(t, sess.Messages, 2)
}
