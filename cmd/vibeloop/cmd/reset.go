package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (s *session) ResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete stored data; the sample team is seeded on next use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s.app.Store.Clear(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "storage cleared")
			return nil
		},
	}
}
