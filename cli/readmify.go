package cli

import (
	"github.com/spf13/cobra"

	"github.com/assist-sh/assist/assistant"
)

func (app *App) newReadmifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "readmify [path]",
		Short: "Generates a README.md file for a project directory.",
		Long:  "Generates a README.md file for a project directory. Defaults to the current directory.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}

			ctx := cmd.Context()
			cfg, client, err := app.setup(ctx)
			if err != nil {
				return err
			}
			mode, err := app.agentMode()
			if err != nil {
				return err
			}
			registry := app.newRegistry(cfg)
			defer registry.Close()
			return assistant.Readmify(ctx, cfg, client, registry, path, mode)
		},
	}
}
