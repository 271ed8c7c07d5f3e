package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcrae/bullscows/internal/services/session"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Start an interactive game session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			flow := session.NewFlow(
				app.AccountService,
				app.StatsService,
				app.RoundController,
				cmd.InOrStdin(),
				cmd.OutOrStdout(),
				logger,
				cfg.DefaultDigits,
			)
			return flow.Run(cmd.Context())
		},
	}
}
