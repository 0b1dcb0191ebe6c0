package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/securecart-labs/securecart360/internal/config"
	"github.com/securecart-labs/securecart360/internal/report"
)

var insightsTop int

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Derive fraud-risk insights from the loaded database",
	Long: `
Run the two read-only insight queries against the loaded database: the
fraud risk-level distribution and the top customers by HIGH-risk orders.

Results are printed and written as CSV artifacts into the insights directory.
Risk levels are derived at query time from payment risk score, device change
and high value flags; nothing is stored.`,
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

		reporter, err := report.Open(cfg.DBPath)
		if err != nil {
			color.Red("ERROR: %v", err)
			return err
		}
		defer reporter.Close()

		ctx := cmd.Context()

		buckets, err := reporter.RiskDistribution(ctx)
		if err != nil {
			color.Red("ERROR: %v", err)
			return err
		}
		if len(buckets) == 0 {
			color.Yellow("No fraud data found. Run 'securecart load' first.")
		} else {
			color.Green("Fraud risk distribution:")
			for _, b := range buckets {
				fmt.Printf("  %-6s %d\n", b.Level, b.Count)
			}
			path, err := report.WriteDistribution(buckets, cfg.InsightsDir)
			if err != nil {
				color.Red("ERROR: %v", err)
				return err
			}
			color.Cyan("Saved %s", path)
		}

		customers, err := reporter.TopHighRiskCustomers(ctx, insightsTop)
		if err != nil {
			color.Red("ERROR: %v", err)
			return err
		}
		if len(customers) == 0 {
			color.Yellow("No high-risk customers found.")
			return nil
		}
		color.Green("Top high-risk customers:")
		for _, c := range customers {
			fmt.Printf("  %-8s %-24s %d\n", c.CustomerID, c.FullName, c.HighRiskOrders)
		}
		path, err := report.WriteTopCustomers(customers, cfg.InsightsDir)
		if err != nil {
			color.Red("ERROR: %v", err)
			return err
		}
		color.Cyan("Saved %s", path)
		return nil
	},
}

func init() {
	insightsCmd.Flags().IntVar(&insightsTop, "top", 10, "number of high-risk customers to rank")

	rootCmd.AddCommand(insightsCmd)
}
