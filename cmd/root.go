package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/smartres/smartres/internal/models"
	"github.com/smartres/smartres/internal/scheduler"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "smartres",
	Short: "Local-first reservation scheduler for the three daily slots",
	Long: `smartres keeps a personal reservation calendar with three fixed slots per
day (Morning, Lunch, Dinner). Everything lives on this machine: reservations
in a durable JSON store, the logged-in identity in a session store that is
gone after a reboot or an explicit logout.`,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.smartres.yaml)")

	rootCmd.PersistentFlags().String("data-dir", "", "Directory for the durable reservation store")
	rootCmd.PersistentFlags().String("session-dir", "", "Directory for the session store")
	rootCmd.PersistentFlags().String("event-sink", "", "Change-event sink: none, console, file or kafka")
	rootCmd.PersistentFlags().String("kafka-broker-list", "", "Kafka broker list for the kafka event sink")

	viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	viper.BindPFlag("session_dir", rootCmd.PersistentFlags().Lookup("session-dir"))
	viper.BindPFlag("event_sink", rootCmd.PersistentFlags().Lookup("event-sink"))
	viper.BindPFlag("kafka_broker_list", rootCmd.PersistentFlags().Lookup("kafka-broker-list"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
	viper.AutomaticEnv()
}

// newScheduler loads the config and hydrates both stores. Every subcommand
// starts here.
func newScheduler() (*scheduler.Scheduler, error) {
	cfg, err := models.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return scheduler.New(cfg)
}

// parseDate reads a "YYYY-MM-DD" argument in local time; an empty value
// means today.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
