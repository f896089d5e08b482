package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/smartres/smartres/internal/models"
	"github.com/smartres/smartres/internal/scheduler"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <morning|lunch|dinner>",
	Short: "Reserve a slot on a date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := models.ParseSlotTime(args[0])
		if err != nil {
			return err
		}
		dateArg, _ := cmd.Flags().GetString("date")
		yes, _ := cmd.Flags().GetBool("yes")

		selected, err := parseDate(dateArg)
		if err != nil {
			return err
		}

		sched, err := newScheduler()
		if err != nil {
			return err
		}
		defer sched.Close()

		if sched.CurrentUser == nil {
			return fmt.Errorf("not logged in; run `smartres login` first")
		}

		sched.View.SelectDate(selected)
		sched.OpenAddModal(slot)

		key := scheduler.DateKey(selected)
		if !yes {
			fmt.Printf("Reserve %s on %s for %s (%s)? [y/N] ", slot, key, sched.CurrentUser.Name, sched.CurrentUser.Gender)
			answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
				fmt.Println("Cancelled")
				sched.View.CloseModal()
				return nil
			}
		}

		created := sched.ConfirmAdd()
		if created == nil {
			fmt.Println("Nothing to add")
			return nil
		}
		fmt.Printf("Reserved %s on %s (id %s)\n", created.Slot, created.DateStr, created.ID)
		return nil
	},
}

func init() {
	addCmd.Flags().String("date", "", "Date to book, YYYY-MM-DD (default today)")
	addCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(addCmd)
}
