package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getwaylabs/getway/internal/auth"
	"github.com/getwaylabs/getway/pkg/model"
)

func newRegisterCmd(app *App) *cobra.Command {
	var form auth.RegistrationForm
	var role string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a GetWay account",
		Long: "Create a GetWay account. Customer and owner accounts are usable " +
			"immediately; scientist accounts wait for owner approval before the " +
			"analytics endpoints open up.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if form.Name == "" {
				if form.Name, err = promptLine("Name"); err != nil {
					return err
				}
			}
			if form.Email == "" {
				if form.Email, err = promptLine("Email"); err != nil {
					return err
				}
			}
			if form.Password == "" {
				if form.Password, err = promptPassword("Password"); err != nil {
					return err
				}
			}
			form.Role = model.Role(role)

			res, err := app.Auth.Register(cmd.Context(), form)
			if err != nil {
				return err
			}

			if res.Session != nil {
				if res.Session.User != nil {
					fmt.Printf("Welcome, %s! You are logged in.\n", res.Session.User.Name)
				} else {
					fmt.Println("You are logged in.")
				}
				return nil
			}
			if res.Message != "" {
				fmt.Println(res.Message)
			} else {
				fmt.Println("Registration received.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Name, "name", "", "Full name (prompted if omitted)")
	cmd.Flags().StringVar(&form.Email, "email", "", "Email address (prompted if omitted)")
	cmd.Flags().StringVar(&form.Password, "password", "", "Password (prompted if omitted)")
	cmd.Flags().StringVar(&role, "role", "customer", "Account role: customer, scientist, or owner")
	cmd.Flags().StringVar(&form.OrganizationID, "org", "", "Organization ID (required for scientists)")
	cmd.Flags().StringVar(&form.Age, "age", "", "Age (optional)")
	cmd.Flags().StringVar(&form.Cars, "cars", "", "Number of cars in household (optional)")
	cmd.Flags().StringVar(&form.Motorbikes, "motorbikes", "", "Number of motorbikes in household (optional)")
	cmd.Flags().StringSliceVar(&form.CommuteModes, "commute", nil, "Usual commute modes (bus, train, metro, bicycle, walk)")
	return cmd
}
