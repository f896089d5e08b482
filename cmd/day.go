package cmd

import (
	"fmt"
	"time"

	"github.com/smartres/smartres/internal/models"
	"github.com/smartres/smartres/internal/scheduler"
	"github.com/spf13/cobra"
)

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Show the three slots and reservations for one date",
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
		key := scheduler.DateKey(selected)
		list := sched.ReservationsForSelected()

		fmt.Printf("%s — %d reservation(s)\n", key, len(list))
		for _, slot := range models.Slots {
			fmt.Printf("\n%s (%s)\n", slot.Label, slot.Time)
			empty := true
			for _, r := range list {
				if r.Slot != slot.Key {
					continue
				}
				empty = false
				created := time.UnixMilli(r.CreatedAt).Format("2006-01-02 15:04")
				fmt.Printf("  %-12s %s (%s)  booked %s\n", r.ID, r.Name, r.Gender, created)
			}
			if empty {
				fmt.Println("  (free)")
			}
		}
		return nil
	},
}

func init() {
	dayCmd.Flags().String("date", "", "Date to show, YYYY-MM-DD (default today)")
	rootCmd.AddCommand(dayCmd)
}
