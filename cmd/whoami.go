package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session user",
	RunE: func(cmd *cobra.Command, args []string) error {
		sched, err := newScheduler()
		if err != nil {
			return err
		}
		defer sched.Close()

		if sched.CurrentUser == nil {
			fmt.Println("Not logged in")
			return nil
		}
		fmt.Printf("%s (%s)\n", sched.CurrentUser.Name, sched.CurrentUser.Gender)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
