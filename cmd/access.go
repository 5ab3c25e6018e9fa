package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"loan-compare/repository"
)

var accessCmd = &cobra.Command{
	Use:   "access",
	Short: "Manage the paid user registry",
	Long: `Inspect or fix up paid access records.

Subcommands:
  grant - Record a paid email by hand
  check - Look up an email in the registry

Examples:
  loancmp access grant user@example.com pay_29ab7
  loancmp access check user@example.com`,
}

var accessGrantCmd = &cobra.Command{
	Use:   "grant <email> <payment-id>",
	Short: "Record a paid email",
	Args:  cobra.ExactArgs(2),
	RunE:  runAccessGrant,
}

var accessCheckCmd = &cobra.Command{
	Use:   "check <email>",
	Short: "Look up an email in the registry",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccessCheck,
}

func init() {
	rootCmd.AddCommand(accessCmd)
	accessCmd.AddCommand(accessGrantCmd)
	accessCmd.AddCommand(accessCheckCmd)
}

func runAccessGrant(cmd *cobra.Command, args []string) error {
	return withApp(func(a *app) error {
		user, err := a.access.Grant(args[0], args[1], time.Now())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Granted %s (payment %s)\n", args[0], user.PaymentID)
		return nil
	})
}

func runAccessCheck(cmd *cobra.Command, args []string) error {
	return withApp(func(a *app) error {
		user, err := a.access.Lookup(args[0])
		if errors.Is(err, repository.ErrNotFound) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s has no paid access\n", args[0])
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s paid with %s on %s\n", args[0], user.PaymentID, user.Timestamp.Format(time.RFC3339))
		return nil
	})
}
