package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/existflow/tutordesk/internal/logger"
	"github.com/existflow/tutordesk/internal/model"
)

func newClientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "client",
		Aliases: []string{"clients"},
		Short:   "Manage clients",
		Long: `List, add, remove and inspect clients.

Examples:
  tutordesk client list
  tutordesk client add --student Ala --parent Maria --phone 501502503
  tutordesk client show 2
  tutordesk client rm 3` + sessionNote,
	}

	cmd.AddCommand(newClientListCmd())
	cmd.AddCommand(newClientAddCmd())
	cmd.AddCommand(newClientRemoveCmd())
	cmd.AddCommand(newClientShowCmd())
	return cmd
}

func newClientListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List clients",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sessionFrom(cmd)
			if err != nil {
				return err
			}
			return printClients(cmd.OutOrStdout(), s.user)
		},
	}
}

type clientAddOptions struct {
	student     string
	parent      string
	phone       string
	description string
}

func newClientAddCmd() *cobra.Command {
	opts := &clientAddOptions{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new client",
		Long: `Add a new client. Names must start with a capital letter; the phone
number is optional but must be exactly 9 digits when given.

Examples:
  tutordesk client add --student Ala --parent Maria
  tutordesk client add -s Ala -p Maria --phone 501502503 -d "Matura 2025"` + sessionNote,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sessionFrom(cmd)
			if err != nil {
				return err
			}
			return runClientAdd(cmd.OutOrStdout(), s.user, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.student, "student", "s", "", "Student name")
	cmd.Flags().StringVarP(&opts.parent, "parent", "p", "", "Parent name")
	cmd.Flags().StringVar(&opts.phone, "phone", "", "Phone number (9 digits)")
	cmd.Flags().StringVarP(&opts.description, "description", "d", "", "Free-form notes")
	return cmd
}

func runClientAdd(w io.Writer, user *model.User, opts *clientAddOptions) error {
	c, err := model.NewClient(opts.student, opts.parent, opts.phone, opts.description)
	if err != nil {
		logger.Debug("Client rejected", logger.F("error", err.Error()))
		return NewErrorHandler().Handle("add client", err)
	}
	id := user.AddClient(c)
	logger.Info("Client added", logger.F("id", id))
	fmt.Fprintf(w, "✓ Added client %d: %s (parent: %s)\n", id, c.StudentName(), c.ParentName())
	return nil
}

func newClientRemoveCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:     "remove [client-id]",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove a client",
		Long: `Remove a client by id. Clients after it move up one id. Tasks that
refer to the client are kept.` + sessionNote,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sessionFrom(cmd)
			if err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := s.user.GetClientByID(id)
			if err != nil {
				return NewErrorHandler().Handle("remove client", err)
			}

			if s.cfg.ConfirmDelete && !yes {
				fmt.Fprintf(cmd.OutOrStdout(), "About to remove: %s (ID: %d)\n", c.StudentName(), id)
				if !confirm(cmd.InOrStdin(), cmd.OutOrStdout()) {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			if err := s.user.RemoveClient(id); err != nil {
				return NewErrorHandler().Handle("remove client", err)
			}
			logger.Info("Client removed", logger.F("id", id))
			fmt.Fprintf(cmd.OutOrStdout(), "🗑️  Removed client %d: %s\n", id, c.StudentName())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func newClientShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [client-id]",
		Short: "Show a client and their tasks",
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
			c, err := s.user.GetClientByID(id)
			if err != nil {
				return NewErrorHandler().Handle("show client", err)
			}

			w := cmd.OutOrStdout()
			phone := c.PhoneNumber()
			if !c.HasPhoneNumber() {
				phone = "-"
			}
			fmt.Fprintf(w, "Client %d\n", c.ID())
			fmt.Fprintf(w, "  Student:     %s\n", c.StudentName())
			fmt.Fprintf(w, "  Parent:      %s\n", c.ParentName())
			fmt.Fprintf(w, "  Phone:       %s\n", phone)
			fmt.Fprintf(w, "  Description: %s\n", c.Description())

			var tasks []*model.Task
			for _, t := range s.user.ListTasks() {
				if t.ClientID() == c.ID() {
					tasks = append(tasks, t)
				}
			}
			return printTasks(w, s.user, "Tasks of "+c.StudentName(), tasks)
		},
	}
}

// confirm asks a yes/no question, defaulting to no
func confirm(in io.Reader, out io.Writer) bool {
	fmt.Fprint(out, "Are you sure? [y/N]: ")
	line, _ := bufio.NewReader(in).ReadString('\n')
	answer := strings.TrimSpace(line)
	return answer == "y" || answer == "Y"
}
