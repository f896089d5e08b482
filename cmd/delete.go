package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <reservation-id>",
	Short: "Delete a reservation by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dateArg, _ := cmd.Flags().GetString("date")
		selected, err := parseDate(dateArg)
		if err != nil {
			return err
		}

		sched, err := newScheduler()
		if err != nil {
			return err
		}
		defer sched.Close()

		sched.View.SelectDate(selected)
		removed := sched.Delete(args[0])
		if removed == nil {
			fmt.Printf("No reservation with id %s\n", args[0])
			return nil
		}
		fmt.Printf("Deleted %s on %s (%s)\n", removed.Slot, removed.DateStr, removed.Name)
		return nil
	},
}

func init() {
	deleteCmd.Flags().String("date", "", "Date the reservation is expected on (default today)")
	rootCmd.AddCommand(deleteCmd)
}
