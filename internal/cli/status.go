package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/existflow/tutordesk/internal/model"
	"github.com/existflow/tutordesk/internal/validation"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [YYYY-MM-DD]",
		Short: "Show the urgency status a task on a date would get",
		Long: `Show the urgency status a task due on the given date would have today.

Examples:
  tutordesk status 2025-01-20`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sessionFrom(cmd)
			if err != nil {
				return err
			}
			date, err := validation.ParseDate(args[0])
			if err != nil {
				return NewErrorHandler().HandleSimple(err)
			}
			days := model.DaysUntil(s.user.Now(), date)
			status := model.StatusForDays(days)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", args[0], status, daysPhrase(days))
			return nil
		},
	}
}
