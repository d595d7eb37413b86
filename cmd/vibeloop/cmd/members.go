package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vibeloop/vibeloop/internal/model"
	"github.com/vibeloop/vibeloop/internal/service"
)

func (s *session) MembersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "members",
		Short: "List team members with their mood and today's goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := s.app.MemberService
			svc.Fetch(cmd.Context())
			if msg := svc.ErrorMessage(); msg != "" {
				return errors.New(msg)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderMembers(svc.Members()))
			return nil
		},
	}
}

func (s *session) MoodCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "mood <memberId> <mood>",
		Short:     "Set a member's mood",
		Long:      "Set a member's mood. One of: great, good, neutral, low, stressed.",
		Args:      cobra.ExactArgs(2),
		ValidArgs: moodNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			mood, err := model.ParseMood(args[1])
			if err != nil {
				return err
			}

			member, err := s.app.MemberService.UpdateMood(cmd.Context(), args[0], model.UpdateMoodRequest{Mood: mood})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s %s\n", member.Name, mood.Emoji(), mood)
			return nil
		},
	}
}

func (s *session) StatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show today's goal completion and mood breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := s.app.MemberService
			svc.Fetch(cmd.Context())
			if msg := svc.ErrorMessage(); msg != "" {
				return errors.New(msg)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderStats(service.Stats(svc.Members())))
			return nil
		},
	}
}

func moodNames() []string {
	names := make([]string, len(model.Moods))
	for i, m := range model.Moods {
		names[i] = string(m)
	}
	return names
}
