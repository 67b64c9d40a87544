package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/existflow/tutordesk/internal/logger"
	"github.com/existflow/tutordesk/internal/model"
	"github.com/existflow/tutordesk/internal/validation"
)

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks"},
		Short:   "Manage tasks",
		Long: `List, add, remove and inspect tasks. A task's status is derived from
its date: DUE_SOON within 3 days (or overdue), DUE_THIS_WEEK within 7 days,
LONG_TERM otherwise.

Examples:
  tutordesk task list
  tutordesk task list --status soon
  tutordesk task add --subject Fizyka --client 2 --date 2025-01-20 --time 16:00
  tutordesk task rm 1` + sessionNote,
	}

	cmd.AddCommand(newTaskListCmd())
	cmd.AddCommand(newTaskAddCmd())
	cmd.AddCommand(newTaskRemoveCmd())
	cmd.AddCommand(newTaskShowCmd())
	return cmd
}

func newTaskListCmd() *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sessionFrom(cmd)
			if err != nil {
				return err
			}
			if status == "" {
				return printTasks(cmd.OutOrStdout(), s.user, "All tasks", s.user.ListTasks())
			}
			st, err := model.ParseTaskStatus(status)
			if err != nil {
				return err
			}
			return printTasks(cmd.OutOrStdout(), s.user, st.Label(), s.user.FilterTasksByStatus(st))
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (soon, week, long)")
	return cmd
}

type taskAddOptions struct {
	subject     string
	description string
	client      string
	date        string
	time        string
}

func newTaskAddCmd() *cobra.Command {
	opts := &taskAddOptions{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new task",
		Long: `Add a new task for an existing client.

Examples:
  tutordesk task add --subject Fizyka --client 2 --date 2025-01-20 --time 16:00
  tutordesk task add -s Chemia -c 1 --time 09:30 -d "Rozdział 4"   # date defaults to today` + sessionNote,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sessionFrom(cmd)
			if err != nil {
				return err
			}
			return runTaskAdd(cmd.OutOrStdout(), s.user, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.subject, "subject", "s", "", "Subject")
	cmd.Flags().StringVarP(&opts.client, "client", "c", "", "Client id")
	cmd.Flags().StringVar(&opts.date, "date", "", "Date (YYYY-MM-DD), default today")
	cmd.Flags().StringVar(&opts.time, "time", "", "Time (HH:mm)")
	cmd.Flags().StringVarP(&opts.description, "description", "d", "", "Free-form notes")
	return cmd
}

func runTaskAdd(w io.Writer, user *model.User, opts *taskAddOptions) error {
	eh := NewErrorHandler()

	clientID, err := validation.ClientID(opts.client)
	if err != nil {
		return eh.Handle("add task", err)
	}
	c, err := user.GetClientByID(clientID)
	if err != nil {
		return eh.Handle("add task", err)
	}

	date := opts.date
	if date == "" {
		date = user.Now().Format(validation.DateLayout)
	}

	t, err := model.NewTask(opts.subject, opts.description, clientID, date, opts.time)
	if err != nil {
		logger.Debug("Task rejected", logger.F("error", err.Error()))
		return eh.Handle("add task", err)
	}
	id := user.AddTask(t)
	status := t.StatusAt(user.Now())
	logger.Info("Task added", logger.F("id", id), logger.F("client", clientID), logger.F("status", status.String()))
	fmt.Fprintf(w, "✓ Added task %d for %s: %s on %s at %s [%s]\n",
		id, c.StudentName(), t.Subject(), t.DateS(), t.TimeS(), status)
	return nil
}

func newTaskRemoveCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:     "remove [task-id]",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove a task",
		Long:    `Remove a task by id. Tasks after it move up one id.` + sessionNote,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sessionFrom(cmd)
			if err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			t, err := s.user.GetTaskByID(id)
			if err != nil {
				return NewErrorHandler().Handle("remove task", err)
			}

			if s.cfg.ConfirmDelete && !yes {
				fmt.Fprintf(cmd.OutOrStdout(), "About to remove: %s on %s (ID: %d)\n", t.Subject(), t.DateS(), id)
				if !confirm(cmd.InOrStdin(), cmd.OutOrStdout()) {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			if err := s.user.RemoveTask(id); err != nil {
				return NewErrorHandler().Handle("remove task", err)
			}
			logger.Info("Task removed", logger.F("id", id))
			fmt.Fprintf(cmd.OutOrStdout(), "🗑️  Removed task %d: %s\n", id, t.Subject())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func newTaskShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [task-id]",
		Short: "Show a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sessionFrom(cmd)
			if err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			t, err := s.user.GetTaskByID(id)
			if err != nil {
				return NewErrorHandler().Handle("show task", err)
			}

			now := s.user.Now()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Task %d\n", t.ID())
			fmt.Fprintf(w, "  Subject:     %s\n", t.Subject())
			fmt.Fprintf(w, "  Client:      %s\n", clientLabel(s.user, t.ClientID()))
			fmt.Fprintf(w, "  When:        %s\n", t.Due(time.Local).Format("Mon 2006-01-02 15:04"))
			fmt.Fprintf(w, "  Status:      %s (%s)\n", t.StatusAt(now), daysPhrase(model.DaysUntil(now, t.Date())))
			fmt.Fprintf(w, "  Description: %s\n", t.Description())
			return nil
		},
	}
}

func daysPhrase(days int) string {
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days == -1:
		return "yesterday"
	case days < 0:
		return fmt.Sprintf("%d days ago", -days)
	default:
		return fmt.Sprintf("in %d days", days)
	}
}
