package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kondate/internal/models"
	"kondate/internal/session"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Draws repeatedly with one filter and reports the distribution",
	Long: `simulate runs many independent draws with the same filter over the same
candidate set and tallies how often each dish was picked. Each draw is also
emitted as a decision event to the configured output destination.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		records, err := loadCatalog(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
			os.Exit(1)
		}

		f, err := filterFromFlags()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		sess := session.New(cfg, records)
		if err := sess.Simulate(f, cfg.Draws); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().Int("draws", 1000, "Number of draws to run")
	simulateCmd.Flags().String("output-format", "console", "Event output format: console, csv, json or parquet")
	simulateCmd.Flags().String("output-path", "", "Base directory for event output files (empty writes to the console)")
	simulateCmd.Flags().String("output-folder", "kondate_output", "Folder under the output path")

	viper.BindPFlag("draws", simulateCmd.Flags().Lookup("draws"))
	viper.BindPFlag("output_format", simulateCmd.Flags().Lookup("output-format"))
	viper.BindPFlag("output_path", simulateCmd.Flags().Lookup("output-path"))
	viper.BindPFlag("output_folder", simulateCmd.Flags().Lookup("output-folder"))
}
