package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vibeloop/vibeloop/internal/model"
)

func (s *session) GoalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage daily goals",
	}

	cmd.AddCommand(s.goalAddCmd())
	cmd.AddCommand(s.goalSetCmd("done", "Mark a goal as completed", true))
	cmd.AddCommand(s.goalSetCmd("undo", "Mark a goal as not completed", false))
	cmd.AddCommand(s.goalRemoveCmd())
	return cmd
}

func (s *session) goalAddCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "add <memberId> <description>",
		Short: "Add a goal for a member",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = model.Day(time.Now())
			}

			goal, err := s.app.GoalService.Create(cmd.Context(), model.CreateGoalRequest{
				MemberID:    args[0],
				Description: strings.Join(args[1:], " "),
				Date:        date,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "added %s: %s (%s)\n", goal.ID, goal.Description, goal.Date)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Goal date as YYYY-MM-DD (default: today)")
	return cmd
}

func (s *session) goalSetCmd(use, short string, completed bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <goalId>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goal, err := s.app.GoalService.Toggle(cmd.Context(), args[0], completed)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", checkbox(goal.Completed), goal.Description)
			return nil
		},
	}
}

func (s *session) goalRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <goalId>",
		Aliases: []string{"delete"},
		Short:   "Delete a goal",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := s.app.GoalService.Remove(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}
