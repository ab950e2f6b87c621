package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newSessionsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List stored sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sessions, err := app.sessions.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list stored sessions: %w", err)
			}

			if len(sessions) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "no stored sessions")
				return err
			}

			for _, session := range sessions {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n",
					session.Account, session.SavedAt.Format(time.RFC3339))
			}

			return nil
		},
	}
}
