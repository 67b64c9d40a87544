package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/existflow/tutordesk/internal/validation"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check a value against a field rule",
		Long: `Run a single field rule and report whether the value is accepted.
Exits non-zero when it is not.

Examples:
  tutordesk check phone 501502503
  tutordesk check name --field parent maria
  tutordesk check date 2024-02-30
  tutordesk check time 9:15`,
	}

	cmd.AddCommand(checkRule("phone", "Check a phone number (empty or 9 digits)", validation.PhoneNumber))
	cmd.AddCommand(checkRule("subject", "Check a task subject", validation.Subject))
	cmd.AddCommand(checkRule("date", "Check a YYYY-MM-DD date", func(v string) error {
		_, err := validation.ParseDate(v)
		return err
	}))
	cmd.AddCommand(checkRule("time", "Check an HH:mm time", func(v string) error {
		_, err := validation.ParseTime(v)
		return err
	}))

	var field string
	nameCmd := checkRule("name", "Check a student or parent name", func(v string) error {
		switch field {
		case "student":
			return validation.Name(validation.FieldStudentName, v)
		case "parent":
			return validation.Name(validation.FieldParentName, v)
		default:
			return fmt.Errorf("unknown name field %q: use student or parent", field)
		}
	})
	nameCmd.Flags().StringVar(&field, "field", "student", "Which name: student or parent")
	cmd.AddCommand(nameCmd)

	return cmd
}

// checkRule builds a subcommand that applies rule to its single argument
func checkRule(name, short string, rule func(string) error) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [value]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rule(args[0]); err != nil {
				return NewErrorHandler().HandleSimple(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s %q is valid\n", name, args[0])
			return nil
		},
	}
}
