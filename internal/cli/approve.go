package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newApproveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approve",
		Short: "Manage pending scientist accounts (owners only)",
	}
	cmd.AddCommand(
		newApproveListCmd(app),
		newApproveGrantCmd(app),
		newApproveRejectCmd(app),
	)
	return cmd
}

func newApproveListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List scientists awaiting approval",
		RunE: func(cmd *cobra.Command, args []string) error {
			pending, err := app.Owner.PendingScientists(cmd.Context())
			if err != nil {
				return err
			}
			if len(pending) == 0 {
				fmt.Println("No pending scientists.")
				return nil
			}
			for _, u := range pending {
				fmt.Printf("%s  %s <%s> (org %s)\n", u.ID, u.Name, u.Email, u.OrganizationID)
			}
			return nil
		},
	}
}

func newApproveGrantCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "grant <user-id>",
		Short: "Approve a pending scientist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.Owner.Approve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Approved %s <%s>.\n", u.Name, u.Email)
			return nil
		},
	}
}

func newApproveRejectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reject <user-id>",
		Short: "Reject a pending scientist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Owner.Reject(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Rejected.")
			return nil
		},
	}
}
