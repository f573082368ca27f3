package llm

import (
	"context"

	"github.com/assist-sh/assist/errors"
	"github.com/assist-sh/assist/session"
	"github.com/assist-sh/assist/tools"
)

// LLMClient is the interface for interacting with a Large Language Model.
// Implementations translate the internal message and tool representations to
// a provider's wire format and back.
type LLMClient interface {
	Chat(ctx context.Context, messages []session.Message, availableTools []tools.Tool) (*session.Message, error)
}

// NewClient builds an LLM client for the configured provider. Credentials
// come from the environment (ANTHROPIC_API_KEY, OPENAI_API_KEY,
// GEMINI_API_KEY, or the AWS credential chain for bedrock).
func NewClient(ctx context.Context, provider, model string) (LLMClient, error) {
	switch provider {
	case "anthropic":
		return NewAnthropicLLMClient(ctx, model)
	case "openai":
		return NewOpenAILLMClient(ctx, model)
	case "gemini":
		return NewGeminiLLMClient(ctx, model)
	case "bedrock":
		return NewBedrockLLMClient(ctx, model)
	case "mock":
		return &MockLLMClient{}, nil
	default:
		return nil, errors.New("unknown llm provider '%s' (expected anthropic, openai, gemini or bedrock)", provider)
	}
}

// MockLLMClient replays scripted responses. With an empty script it parrots
// the last message back, which is enough for a smoke test without a key.
type MockLLMClient struct {
	Responses []*session.Message
	Err       error

	// Requests records every message history the mock received, for
	// assertions on prompt construction.
	Requests [][]session.Message
}

func (m *MockLLMClient) Chat(ctx context.Context, messages []session.Message, availableTools []tools.Tool) (*session.Message, error) {
	snapshot := make([]session.Message, len(messages))
	copy(snapshot, messages)
	m.Requests = append(m.Requests, snapshot)

	if m.Err != nil {
		return nil, m.Err
	}
	if len(m.Responses) > 0 {
		resp := m.Responses[0]
		m.Responses = m.Responses[1:]
		return resp, nil
	}

	last := ""
	if len(messages) > 0 {
		last = messages[len(messages)-1].Content
	}
	return &session.Message{Role: "assistant", Content: "I am a mock LLM. You said: '" + last + "'."}, nil
}
