package cli

import (
	"github.com/spf13/cobra"

	"github.com/assist-sh/assist/assistant"
)

func (app *App) newBoilerplateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "boilerplate <description>",
		Short: "Generates project boilerplate from a description.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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
			return assistant.Boilerplate(ctx, cfg, client, registry, args[0], mode)
		},
	}
}
