package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vibeloop/vibeloop/internal/service"
)

const clearScreen = "\033[H\033[2J"

func (s *session) WatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Redraw the team board on every refresh until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			svc := s.app.MemberService
			stopRefresh, err := svc.StartAutoRefresh(ctx)
			if err != nil {
				return err
			}
			defer stopRefresh()

			out := cmd.OutOrStdout()
			svc.Fetch(ctx)

			for {
				select {
				case <-ctx.Done():
					return nil
				case <-svc.Changes():
					if svc.Loading() {
						continue
					}
					fmt.Fprint(out, clearScreen)
					fmt.Fprintln(out, renderMembers(svc.Members()))
					fmt.Fprintln(out, renderStats(service.Stats(svc.Members())))
					if msg := svc.ErrorMessage(); msg != "" {
						fmt.Fprintln(out, errorStyle.Render(msg))
					}
				}
			}
		},
	}
}
