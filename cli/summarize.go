package cli

import (
	"github.com/spf13/cobra"

	"github.com/assist-sh/assist/assistant"
)

func (app *App) newSummarizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summarize <paths...>",
		Short: "Summarizes the content of a given file or directory.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, client, err := app.setup(ctx)
			if err != nil {
				return err
			}
			return assistant.Summarize(ctx, cfg, client, args)
		},
	}
}
