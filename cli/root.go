// Package cli implements the assist command-line surface.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/assist-sh/assist/agent"
	"github.com/assist-sh/assist/config"
	"github.com/assist-sh/assist/errors"
	"github.com/assist-sh/assist/llm"
	"github.com/assist-sh/assist/tools"
	"github.com/assist-sh/assist/ui"
)

// App holds state shared by all subcommands.
type App struct {
	mode          string
	toolVerbosity string
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

// NewRootCmd builds the full command tree. Exposed for tests.
func NewRootCmd() *cobra.Command {
	app := &App{}

	rootCmd := &cobra.Command{
		Use:           "assist",
		Short:         "An AI-powered command-line assistant to supercharge your terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&app.mode, "mode", "m", "auto",
		"Tool execution mode: 'auto' or 'prompt' (confirm every tool call)")
	rootCmd.PersistentFlags().StringVar(&app.toolVerbosity, "tool-verbosity", "none",
		"Tool verbosity level: 'none', 'info', or 'all'")

	rootCmd.AddCommand(
		app.newChatCmd(),
		app.newDoCmd(),
		app.newExplainCmd(),
		app.newManCmd(),
		app.newSummarizeCmd(),
		app.newBoilerplateCmd(),
		app.newReadmifyCmd(),
	)

	return rootCmd
}

// setup loads the configuration and builds the LLM client for it.
func (app *App) setup(ctx context.Context) (*config.Config, llm.LLMClient, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	client, err := llm.NewClient(ctx, cfg.LLMClient, cfg.Model)
	if err != nil {
		return nil, nil, err
	}
	return cfg, client, nil
}

// newRegistry builds the tool registry with the terminal confirmation flow.
func (app *App) newRegistry(cfg *config.Config) *tools.Registry {
	return tools.NewRegistry(cfg, ui.Confirm)
}

func (app *App) agentMode() (agent.Mode, error) {
	switch app.mode {
	case "auto":
		return agent.ModeAuto, nil
	case "prompt":
		return agent.ModePrompt, nil
	default:
		return "", errors.New("invalid mode '%s'. Must be 'auto' or 'prompt'", app.mode)
	}
}

func (app *App) verbosity() (agent.ToolVerbosity, error) {
	switch app.toolVerbosity {
	case "none":
		return agent.ToolVerbosityNone, nil
	case "info":
		return agent.ToolVerbosityInfo, nil
	case "all":
		return agent.ToolVerbosityAll, nil
	default:
		return "", errors.New("invalid tool verbosity '%s'. Must be 'none', 'info', or 'all'", app.toolVerbosity)
	}
}

// defaultSessionName names a fresh chat session after the working directory
// and the current time.
func defaultSessionName() string {
	wd, err := os.Getwd()
	if err != nil {
		wd = "assist"
	}
	return fmt.Sprintf("%s_%s", filepath.Base(wd), time.Now().Format("2006-01-02_15-04-05"))
}
