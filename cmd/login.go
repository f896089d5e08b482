package cmd

import (
	"fmt"

	"github.com/smartres/smartres/internal/models"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Start a session with a name and gender",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		genderArg, _ := cmd.Flags().GetString("gender")

		gender, err := models.ParseGender(genderArg)
		if err != nil {
			return err
		}

		sched, err := newScheduler()
		if err != nil {
			return err
		}
		defer sched.Close()

		if err := sched.Login(models.User{Name: name, Gender: gender}); err != nil {
			return err
		}
		fmt.Printf("Logged in as %s (%s)\n", name, gender)
		return nil
	},
}

func init() {
	loginCmd.Flags().String("name", "", "Display name for new reservations")
	loginCmd.Flags().String("gender", "", "male or female")
	loginCmd.MarkFlagRequired("gender")
	rootCmd.AddCommand(loginCmd)
}
