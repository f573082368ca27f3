package cli

import (
	"github.com/spf13/cobra"

	"github.com/assist-sh/assist/assistant"
)

func (app *App) newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "man <page>",
		Short: "Summarizes and explains in simple terms, with examples, the contents of a man page.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, client, err := app.setup(ctx)
			if err != nil {
				return err
			}
			return assistant.Man(ctx, cfg, client, args[0])
		},
	}
}
