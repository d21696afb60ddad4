package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/getwaylabs/getway/pkg/model"
)

func printUser(u *model.User) {
	fmt.Printf("%s <%s>\n", u.Name, u.Email)
	fmt.Printf("  Role:     %s\n", u.Role)
	if u.OrganizationID != "" {
		fmt.Printf("  Org:      %s\n", u.OrganizationID)
	}
	if u.Role == model.RoleScientist {
		if u.IsApproved {
			fmt.Println("  Approval: approved")
		} else {
			fmt.Println("  Approval: pending")
		}
	}
	if u.LastLogin != nil {
		fmt.Printf("  Last login: %s\n", humanize.Time(*u.LastLogin))
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the cached session (no network call)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := app.Auth.IsAuthenticated(cmd.Context())
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Not logged in.")
				return nil
			}
			u, err := app.Auth.CurrentUser(cmd.Context())
			if err != nil {
				return err
			}
			if u == nil {
				fmt.Println("Logged in (no cached profile; run 'getway profile').")
				return nil
			}
			printUser(u)
			return nil
		},
	}
}

func newProfileCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Fetch the latest profile from the server",
		Long: "Fetch the profile from the server and refresh the local cache, " +
			"picking up role or approval changes made since login.",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.Auth.Profile(cmd.Context())
			if err != nil {
				return err
			}
			printUser(u)
			return nil
		},
	}
}
