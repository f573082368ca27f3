package cli

import (
	"github.com/spf13/cobra"

	"github.com/assist-sh/assist/assistant"
)

func (app *App) newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <cmd>",
		Short: "Get a detailed explanation of any given shell command.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, client, err := app.setup(ctx)
			if err != nil {
				return err
			}
			return assistant.Explain(ctx, cfg, client, args[0])
		},
	}
}
