package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vibeloop/vibeloop/internal/app"
	"github.com/vibeloop/vibeloop/internal/config"
	"github.com/vibeloop/vibeloop/internal/logger"
)

// session carries the wired app between the root hooks and subcommands.
type session struct {
	app *app.App
}

// Execute runs the CLI and releases storage afterwards, including when a
// subcommand fails.
func Execute() error {
	s := &session{}
	defer func() {
		_ = s.close()
	}()
	return s.root().Execute()
}

func (s *session) root() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "vibeloop",
		Short:        "Team mood and daily goals from the terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger.InitWriter(os.Stderr, cfg.IsDevelopment(), cfg.SentryDSN)

			a, err := app.New(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}
			s.app = a
			return nil
		},
	}

	rootCmd.AddCommand(s.MembersCmd())
	rootCmd.AddCommand(s.MoodCmd())
	rootCmd.AddCommand(s.GoalCmd())
	rootCmd.AddCommand(s.StatsCmd())
	rootCmd.AddCommand(s.WatchCmd())
	rootCmd.AddCommand(s.ResetCmd())

	return rootCmd
}

func (s *session) close() error {
	if s.app == nil {
		return nil
	}
	err := s.app.Close()
	s.app = nil
	return err
}
