package models

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type CloudStorage struct {
	Provider   string `mapstructure:"provider"`
	BucketName string `mapstructure:"bucket_name"`
	Region     string `mapstructure:"region"`
}

type Config struct {
	DataDir    string `mapstructure:"data_dir"`
	SessionDir string `mapstructure:"session_dir"`

	EventSink       string `mapstructure:"event_sink"`
	EventPath       string `mapstructure:"event_path"`
	KafkaBrokerList string `mapstructure:"kafka_broker_list"`

	ExportFormat      string `mapstructure:"export_format"`
	ExportPath        string `mapstructure:"export_path"`
	ExportFolder      string `mapstructure:"export_folder"`
	ExportDestination string `mapstructure:"export_destination"`

	CloudStorage CloudStorage `mapstructure:"cloud_storage"`

	SeedDays      int   `mapstructure:"seed_days"`
	SeedMaxPerDay int   `mapstructure:"seed_max_per_day"`
	Seed          int64 `mapstructure:"seed"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("unable to resolve home directory: %w", err)
		}
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".smartres")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	setDefaults()

	// Running without a config file is fine; the defaults and flags cover
	// everything. A file that exists but fails to parse is still an error.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}

func setDefaults() {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	viper.SetDefault("data_dir", filepath.Join(home, ".smartres"))
	viper.SetDefault("session_dir", defaultSessionDir())
	viper.SetDefault("event_sink", EventSinkNone)
	viper.SetDefault("event_path", filepath.Join(home, ".smartres", "events"))
	viper.SetDefault("kafka_broker_list", "localhost:9092")
	viper.SetDefault("export_format", ExportFormatJSON)
	viper.SetDefault("export_path", ".")
	viper.SetDefault("export_folder", "smartres_export")
	viper.SetDefault("export_destination", ExportDestinationLocal)
	viper.SetDefault("cloud_storage.provider", "s3")
	viper.SetDefault("cloud_storage.region", "us-east-1")
	viper.SetDefault("seed_days", 30)
	viper.SetDefault("seed_max_per_day", 3)
	viper.SetDefault("seed", 42)
}

// defaultSessionDir picks a volatile directory so the session record, like
// browser session storage, does not outlive the machine session.
func defaultSessionDir() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, "smartres")
	}
	return filepath.Join(os.TempDir(), fmt.Sprintf("smartres-%d", os.Getuid()))
}
