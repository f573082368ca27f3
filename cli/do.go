package cli

import (
	"github.com/spf13/cobra"

	"github.com/assist-sh/assist/assistant"
)

func (app *App) newDoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "do <prompt>",
		Short: "Run a shell command based on a natural language description.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, client, err := app.setup(ctx)
			if err != nil {
				return err
			}
			return assistant.Do(ctx, cfg, client, args[0])
		},
	}
}
