package cli

import (
	"github.com/spf13/cobra"

	"github.com/assist-sh/assist/assistant"
	"github.com/assist-sh/assist/errors"
	"github.com/assist-sh/assist/session"
	"github.com/assist-sh/assist/ui"
)

func (app *App) newChatCmd() *cobra.Command {
	var list bool
	var resume string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Just chat with an AI from the command line.",
		Long: `Just chat with an AI from the command line.
The AI will have access to your local shell and can execute commands (if you allow). Go nuts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list && resume != "" {
				return errors.New("cannot use --list and --resume at the same time")
			}

			if list {
				names, err := session.List()
				if err != nil {
					return err
				}
				if len(names) == 0 {
					ui.Infof("No saved chat sessions.")
					return nil
				}
				for _, name := range names {
					ui.Infof("%s", name)
				}
				return nil
			}

			ctx := cmd.Context()
			cfg, client, err := app.setup(ctx)
			if err != nil {
				return err
			}

			var sess *session.Session
			if resume != "" {
				sess, err = session.Load(resume)
				if err != nil {
					return errors.Wrapf(err, "error resuming session '%s'", resume)
				}
				ui.Infof("Resuming session: %s", resume)
			} else {
				sess, err = session.New(defaultSessionName())
				if err != nil {
					return err
				}
			}

			mode, err := app.agentMode()
			if err != nil {
				return err
			}
			verbosity, err := app.verbosity()
			if err != nil {
				return err
			}

			registry := app.newRegistry(cfg)
			defer registry.Close()
			if err := registry.StartMCPServers(ctx, cfg.AdditionalMCPServers); err != nil {
				return err
			}

			return assistant.Chat(ctx, cfg, client, registry, sess, mode, verbosity)
		},
	}

	cmd.Flags().BoolVarP(&list, "list", "l", false, "List any previous chat sessions.")
	cmd.Flags().StringVarP(&resume, "resume", "r", "", "Resume the provided chat session.")

	return cmd
}
