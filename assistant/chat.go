package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/elk-language/go-prompt"
	istrings "github.com/elk-language/go-prompt/strings"

	"github.com/assist-sh/assist/agent"
	"github.com/assist-sh/assist/config"
	"github.com/assist-sh/assist/llm"
	"github.com/assist-sh/assist/session"
	"github.com/assist-sh/assist/tools"
	"github.com/assist-sh/assist/ui"
)

const chatSystemPrompt = `You are a general-purpose AI assistant running in a command-line environment.
You can help with a wide range of topics - from writing, coding, and troubleshooting
to general knowledge - but you are especially skilled at working with command-line tools,
Bash scripting, and Unix-based systems. You can access special tools that allow you to interact
with the user's environment.

Not all tools will succeed - some actions may be denied or blocked by the user -
so you must be resilient and able to continue the conversation even when a tool call fails.

Always be concise and clear, especially when helping with technical or Bash-related tasks.
Explain commands when useful, and warn about potentially destructive operations.
Assume you're working in a Unix-like terminal unless told otherwise.

While you're optimized for the command line, you can help with anything the user
might ask - from explaining concepts to writing code, reviewing documents, or offering
advice - just like any general assistant.

You always aim to be helpful, safe, and user-respecting.`

var chatToolset = []string{
	"get_current_working_directory",
	"list_files_and_dirs",
	"read_file",
	"create_directory",
	"create_file",
	"run_command",
	"summarize_path",
}

// chatSession drives the interactive REPL around the agent.
type chatSession struct {
	agent    *agent.Agent
	ctx      context.Context
	exitFlag bool
}

// Chat runs an interactive, tool-augmented conversation. The session is
// persisted after every turn so it can be resumed later.
func Chat(ctx context.Context, cfg *config.Config, client llm.LLMClient, registry *tools.Registry, sess *session.Session, mode agent.Mode, verbosity agent.ToolVerbosity) error {
	registry.Register(&tools.SummarizePathTool{
		Summarize: func(ctx context.Context, paths []string) (string, error) {
			return DoSummarize(ctx, cfg, client, paths)
		},
	})

	toolset := chatToolset
	if override, ok := cfg.GetToolset("chat"); ok {
		toolset = override.Tools
	}
	// MCP servers contribute their tools on top of the configured set.
	toolset = append(append([]string{}, toolset...), registry.MCPToolNames()...)

	activeTools, err := registry.Resolve(toolset)
	if err != nil {
		return err
	}

	a := agent.New(cfg, sess, activeTools, mode, client, chatSystemPrompt)
	a.Verbosity = verbosity

	ui.Infof("Chat session '%s'. Type /exit to leave.", sess.Name)
	s := &chatSession{agent: a, ctx: ctx}

	p := prompt.New(
		s.execute,
		prompt.WithCompleter(s.completer),
		prompt.WithPrefix("> "),
		prompt.WithTitle("assist"),
		prompt.WithExitChecker(func(in string, breakline bool) bool {
			return s.exitFlag
		}),
		prompt.WithKeyBind(prompt.KeyBind{
			Key: prompt.ControlC,
			Fn: func(p *prompt.Prompt) bool {
				s.exitFlag = true
				return false
			},
		}),
	)
	p.Run()
	return nil
}

// execute handles one line of user input in the REPL.
func (s *chatSession) execute(input string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return
	}
	if input == "/exit" || input == "/quit" {
		s.exitFlag = true
		return
	}

	callbacks := agent.ProcessCallbacks{
		OnAssistantMessage: func(message string) {
			ui.PrintMarkdown(message)
		},
		OnToolCall: func(tc session.ToolCall) {
			if s.agent.Verbosity != agent.ToolVerbosityNone {
				ui.Infof("> %s", tc.Name)
			}
		},
		OnToolResult: func(tc session.ToolCall, result string) {
			if s.agent.Verbosity == agent.ToolVerbosityAll {
				ui.Infof("  %s", result)
			}
		},
		ShouldExecuteTool: func(tc session.ToolCall) bool {
			return ui.Confirm(fmt.Sprintf("Allow tool call '%s'?", tc.Name))
		},
		OnWarning: func(warning string) {
			ui.Infof("Warning: %s", warning)
		},
	}

	if _, err := s.agent.ProcessUserInput(s.ctx, input, callbacks); err != nil {
		ui.Errorf("%v", err)
	}
}

// completer suggests the REPL's slash commands.
func (s *chatSession) completer(d prompt.Document) ([]prompt.Suggest, istrings.RuneNumber, istrings.RuneNumber) {
	text := d.TextBeforeCursor()
	endIndex := d.CurrentRuneIndex()
	w := d.GetWordBeforeCursor()
	startIndex := endIndex - istrings.RuneCountInString(w)

	if !strings.HasPrefix(text, "/") {
		return []prompt.Suggest{}, startIndex, endIndex
	}

	suggestions := []prompt.Suggest{
		{Text: "/exit", Description: "Leave the chat session"},
		{Text: "/quit", Description: "Leave the chat session"},
	}
	return prompt.FilterHasPrefix(suggestions, w, true), startIndex, endIndex
}
