package cmd

import (
	"fmt"

	"github.com/smartres/smartres/internal/scheduler"
	"github.com/spf13/cobra"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show a month of the reservation calendar",
	RunE: func(cmd *cobra.Command, args []string) error {
		monthOffset, _ := cmd.Flags().GetInt("month")
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
		if dateArg != "" {
			// Start the cursor on the selected date's month before applying the offset.
			sched.View.CurrentDate = selected
		}
		sched.View.ChangeMonth(monthOffset)

		printMonth(sched)
		return nil
	},
}

func printMonth(sched *scheduler.Scheduler) {
	cursor := sched.View.CurrentDate
	selectedKey := scheduler.DateKey(sched.View.SelectedDate)

	fmt.Printf("%22s\n", cursor.Format("January 2006"))
	fmt.Println(" Sun  Mon  Tue  Wed  Thu  Fri  Sat")

	for _, week := range sched.View.MonthGrid() {
		for _, day := range week {
			if day == 0 {
				fmt.Print("     ")
				continue
			}
			key := fmt.Sprintf("%04d-%02d-%02d", cursor.Year(), int(cursor.Month()), day)
			marker := " "
			if n := len(sched.Reservations[key]); n > 0 {
				marker = fmt.Sprintf("%d", n)
			}
			if key == selectedKey {
				fmt.Printf("[%2d%s]", day, marker)
			} else {
				fmt.Printf(" %2d%s ", day, marker)
			}
		}
		fmt.Println()
	}
	fmt.Printf("\nSelected: %s (%d reservations)\n", selectedKey, len(sched.Reservations[selectedKey]))
}

func init() {
	calendarCmd.Flags().Int("month", 0, "Month offset from the selected date's month (e.g. -1, 2)")
	calendarCmd.Flags().String("date", "", "Selected date, YYYY-MM-DD (default today)")
	rootCmd.AddCommand(calendarCmd)
}
