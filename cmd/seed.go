package cmd

import (
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/smartres/smartres/internal/factories"
	"github.com/smartres/smartres/internal/models"
	"github.com/smartres/smartres/internal/scheduler"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the store with generated demo reservations",
	RunE: func(cmd *cobra.Command, args []string) error {
		sched, err := newScheduler()
		if err != nil {
			return err
		}
		defer sched.Close()

		cfg := sched.Config
		factory := factories.NewReservationFactory(cfg.Seed)

		// Work on a private copy and persist once at the end; per-record
		// persistence is pointless for a bulk fill.
		next := make(models.ReservationMap, len(sched.Reservations)+cfg.SeedDays)
		for k, v := range sched.Reservations {
			next[k] = v
		}

		bar := progressbar.Default(int64(cfg.SeedDays), "seeding")
		total := 0
		start := time.Now()
		for i := 0; i < cfg.SeedDays; i++ {
			day := start.AddDate(0, 0, i)
			key := scheduler.DateKey(day)
			list := append([]models.Reservation(nil), next[key]...)
			for n := factory.PerDay(cfg.SeedMaxPerDay); n > 0; n-- {
				list = append(list, factory.CreateReservation(key, day))
				total++
			}
			next[key] = list
			bar.Add(1)
		}

		sched.Reservations = next
		if err := scheduler.PersistReservations(sched.Local, next); err != nil {
			return err
		}
		fmt.Printf("Seeded %d reservations across %d days\n", total, cfg.SeedDays)
		return nil
	},
}

func init() {
	seedCmd.Flags().Int("days", 30, "Number of days to seed, starting today")
	seedCmd.Flags().Int("max-per-day", 3, "Maximum reservations per day")
	seedCmd.Flags().Int64("seed", 42, "Random seed")

	viper.BindPFlag("seed_days", seedCmd.Flags().Lookup("days"))
	viper.BindPFlag("seed_max_per_day", seedCmd.Flags().Lookup("max-per-day"))
	viper.BindPFlag("seed", seedCmd.Flags().Lookup("seed"))

	rootCmd.AddCommand(seedCmd)
}
