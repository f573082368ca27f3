package agent

import (
	"context"

	"github.com/assist-sh/assist/config"
	"github.com/assist-sh/assist/errors"
	"github.com/assist-sh/assist/llm"
	"github.com/assist-sh/assist/session"
	"github.com/assist-sh/assist/tools"
)

// Mode controls whether tool calls run automatically or require approval.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModePrompt Mode = "prompt"
)

// ToolVerbosity controls how much tool traffic the interaction layer shows.
type ToolVerbosity string

const (
	ToolVerbosityNone ToolVerbosity = "none"
	ToolVerbosityInfo ToolVerbosity = "info"
	ToolVerbosityAll  ToolVerbosity = "all"
)

// DefaultMaxIterations bounds the LLM/tool loop for a single user turn.
const DefaultMaxIterations = 25

// ProcessCallbacks lets each interaction mode customize how agent events are
// handled while sharing the same processing loop.
type ProcessCallbacks struct {
	OnAssistantMessage func(message string)
	OnToolCall         func(toolCall session.ToolCall)
	OnToolResult       func(toolCall session.ToolCall, result string)
	ShouldExecuteTool  func(toolCall session.ToolCall) bool
	OnWarning          func(warning string)
}

// Response is the outcome of one user turn. Interrupted reports that the
// iteration budget ran out before the model finished.
type Response struct {
	Message     *session.Message
	Interrupted bool
}

// Agent drives the conversation: it forwards the session history to the LLM,
// executes requested tool calls and feeds the results back until the model
// produces a final answer.
type Agent struct {
	Config         *config.Config
	Session        *session.Session
	LLMClient      llm.LLMClient
	AvailableTools []tools.Tool
	Mode           Mode
	Verbosity      ToolVerbosity
	MaxIterations  int
}

// New creates an agent. If the session is empty and a system prompt is
// given, the prompt becomes the first message; a resumed session keeps its
// original system prompt.
func New(cfg *config.Config, sess *session.Session, activeTools []tools.Tool, mode Mode, client llm.LLMClient, systemPrompt string) *Agent {
	if systemPrompt != "" && len(sess.Messages) == 0 {
		sess.AddMessage(session.Message{Role: "system", Content: systemPrompt})
	}
	return &Agent{
		Config:         cfg,
		Session:        sess,
		LLMClient:      client,
		AvailableTools: activeTools,
		Mode:           mode,
		Verbosity:      ToolVerbosityNone,
		MaxIterations:  DefaultMaxIterations,
	}
}

// ProcessUserInput runs one user turn: LLM -> tools -> LLM until the model
// answers without tool calls or the iteration budget is exhausted. Tool
// failures are reported back to the model as tool results so the
// conversation can recover; only transport-level failures abort the turn.
func (a *Agent) ProcessUserInput(ctx context.Context, userInput string, callbacks ProcessCallbacks) (*Response, error) {
	if a.MaxIterations <= 0 {
		return nil, errors.New("max iterations must be positive, got %d", a.MaxIterations)
	}

	a.Session.AddMessage(session.Message{Role: "user", Content: userInput})

	var assistantResponse *session.Message
	for i := 0; i < a.MaxIterations; i++ {
		var err error
		assistantResponse, err = a.LLMClient.Chat(ctx, a.Session.Messages, a.AvailableTools)
		if err != nil {
			return nil, errors.Wrapf(err, "LLM chat failed")
		}

		a.Session.AddMessage(*assistantResponse)

		if len(assistantResponse.ToolCalls) == 0 {
			if callbacks.OnAssistantMessage != nil && assistantResponse.Content != "" {
				callbacks.OnAssistantMessage(assistantResponse.Content)
			}
			a.saveSession(callbacks)
			return &Response{Message: assistantResponse}, nil
		}

		for _, toolCall := range assistantResponse.ToolCalls {
			if callbacks.OnToolCall != nil {
				callbacks.OnToolCall(toolCall)
			}

			result := a.executeToolCall(ctx, toolCall, callbacks)

			if callbacks.OnToolResult != nil {
				callbacks.OnToolResult(toolCall, result)
			}
			a.Session.AddMessage(session.Message{
				Role:      "tool",
				Content:   result,
				ToolCalls: []session.ToolCall{toolCall},
			})
		}
	}

	if callbacks.OnWarning != nil {
		callbacks.OnWarning("maximum iterations reached before the agent could finish")
	}
	a.saveSession(callbacks)
	return &Response{Message: assistantResponse, Interrupted: true}, nil
}

// executeToolCall resolves and runs a single tool call, turning every
// failure mode into a result string for the model.
func (a *Agent) executeToolCall(ctx context.Context, toolCall session.ToolCall, callbacks ProcessCallbacks) string {
	var tool tools.Tool
	for _, t := range a.AvailableTools {
		if t.Name() == toolCall.Name {
			tool = t
			break
		}
	}
	if tool == nil {
		return "Error: tool '" + toolCall.Name + "' not found."
	}

	if a.Mode == ModePrompt && callbacks.ShouldExecuteTool != nil && !callbacks.ShouldExecuteTool(toolCall) {
		return "Tool execution denied by user."
	}

	result, err := tool.Execute(ctx, toolCall.Args)
	if err != nil {
		return "Error: " + err.Error()
	}
	return result
}

func (a *Agent) saveSession(callbacks ProcessCallbacks) {
	if err := a.Session.Save(); err != nil && callbacks.OnWarning != nil {
		callbacks.OnWarning("failed to save session: " + err.Error())
	}
}
