package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "stats <username>",
		Short: "Show a player's recorded games",
		Long: `stats prints a player's recorded games in chronological order.

By default the full history is shown; --days restricts it to games won
within the last N days.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]

			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			records, err := app.StatsService.QueryRecent(cmd.Context(), username, days)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintf(out, "No recorded games for %s.\n", username)
				return nil
			}

			fmt.Fprintf(out, "%d recorded games for %s:\n", len(records), username)
			for _, record := range records {
				fmt.Fprintf(out, "- %s: %d attempts, %.2f seconds\n",
					record.Timestamp.Format(time.RFC3339), record.Attempts, record.Duration)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Only show games from the last N days (0 = all)")

	return cmd
}
