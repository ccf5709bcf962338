package cmd

import (
	"fmt"
	"os"

	"github.com/givihq/deliverytime/internal/generator"
	"github.com/givihq/deliverytime/internal/models"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic delivery dataset",
	Long: `generate writes a reproducible synthetic dataset of delivery orders for
model training. Delivery times respond to distance, traffic, weather, peak
hours and delivery partner experience.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		if err := generator.WriteDataset(cfg.Dataset); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating dataset: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d orders to %s\n", cfg.Dataset.Samples, cfg.Dataset.OutputPath)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().Int64("seed", 42, "Random seed for dataset generation")
	generateCmd.Flags().Int("samples", 5000, "Number of orders to generate")
	generateCmd.Flags().Int("span-days", 90, "Number of days the orders spread over")
	generateCmd.Flags().String("output-format", "csv", "Output format (csv, json, parquet)")
	generateCmd.Flags().String("output-path", "delivery_dataset.csv", "Output file path")

	viper.BindPFlag("dataset.seed", generateCmd.Flags().Lookup("seed"))
	viper.BindPFlag("dataset.samples", generateCmd.Flags().Lookup("samples"))
	viper.BindPFlag("dataset.span_days", generateCmd.Flags().Lookup("span-days"))
	viper.BindPFlag("dataset.output_format", generateCmd.Flags().Lookup("output-format"))
	viper.BindPFlag("dataset.output_path", generateCmd.Flags().Lookup("output-path"))
}
