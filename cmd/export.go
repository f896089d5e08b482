package cmd

import (
	"fmt"

	"github.com/smartres/smartres/internal/export"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all reservations as JSON, CSV or Parquet",
	RunE: func(cmd *cobra.Command, args []string) error {
		sched, err := newScheduler()
		if err != nil {
			return err
		}
		defer sched.Close()

		dest, err := export.New(sched.Config).Run(sched.Reservations)
		if err != nil {
			return err
		}
		fmt.Printf("Exported %d date(s) to %s\n", len(sched.Reservations), dest)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("format", "json", "Export format: json, csv or parquet")
	exportCmd.Flags().String("output", ".", "Base path for local exports")
	exportCmd.Flags().String("folder", "smartres_export", "Folder (or object prefix) for export files")
	exportCmd.Flags().String("destination", "local", "Export destination: local or s3")
	exportCmd.Flags().String("bucket", "", "Bucket name for cloud destinations")
	exportCmd.Flags().String("region", "", "Region for cloud destinations")

	viper.BindPFlag("export_format", exportCmd.Flags().Lookup("format"))
	viper.BindPFlag("export_path", exportCmd.Flags().Lookup("output"))
	viper.BindPFlag("export_folder", exportCmd.Flags().Lookup("folder"))
	viper.BindPFlag("export_destination", exportCmd.Flags().Lookup("destination"))
	viper.BindPFlag("cloud_storage.bucket_name", exportCmd.Flags().Lookup("bucket"))
	viper.BindPFlag("cloud_storage.region", exportCmd.Flags().Lookup("region"))

	rootCmd.AddCommand(exportCmd)
}
