package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "deliverytime",
	Short: "Food delivery time prediction service",
	Long: `deliverytime serves delivery time predictions for food orders. It geocodes
restaurant and customer addresses, resolves the road distance between them and
runs a gradient boosted tree and LSTM ensemble over the encoded order to
estimate the delivery time in minutes. It can also generate synthetic training
datasets in CSV, JSON or Parquet.`,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")
}

func initConfig() {
	viper.SetDefault("server.addr", ":5000")
	viper.SetDefault("server.read_timeout", "15s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("geocoding.base_url", "https://nominatim.openstreetmap.org")
	viper.SetDefault("geocoding.user_agent", "DeliveryTimePredictionApp/2.0")
	viper.SetDefault("geocoding.timeout", "10s")
	viper.SetDefault("routing.base_url", "https://router.project-osrm.org")
	viper.SetDefault("routing.timeout", "15s")
	viper.SetDefault("models.dir", "models")
	viper.SetDefault("sink.kind", "console")
	viper.SetDefault("dataset.seed", 42)
	viper.SetDefault("dataset.samples", 5000)
	viper.SetDefault("dataset.span_days", 90)
	viper.SetDefault("dataset.output_format", "csv")
	viper.SetDefault("dataset.output_path", "delivery_dataset.csv")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
