package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/securecart-labs/securecart360/internal/config"
	"github.com/securecart-labs/securecart360/internal/store"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the CSV datasets into the SQLite database",
	Long: `
Rebuild the SecureCart360 database from the generated CSV files.

The existing database file is deleted outright, the schema is recreated with
foreign keys, all five datasets are bulk-inserted inside one transaction, and
an audit entry records the run. Prints row counts and revenue metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			color.Red("ERROR: %v", err)
			return err
		}
		if err := cfg.Validate(); err != nil {
			color.Red("ERROR: invalid config: %v", err)
			return err
		}

		loader := store.NewLoader(cfg.DataDir, cfg.DBPath)

		color.Cyan("Loading CSV data into %s...", cfg.DBPath)
		summary, err := loader.Run(cmd.Context())
		if err != nil {
			color.Red("ERROR: %v", err)
			return err
		}

		color.Green("Summary:")
		for _, count := range summary.Counts {
			fmt.Printf("  %s: %d\n", count.Table, count.Rows)
		}
		fmt.Printf("  total_revenue: %.2f\n", summary.TotalRevenue)
		fmt.Printf("  avg_order_value: %.2f\n", summary.AvgOrderValue)
		color.Green("Database created at %s", cfg.DBPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
}
