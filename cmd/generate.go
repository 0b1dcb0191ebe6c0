package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/securecart-labs/securecart360/internal/config"
	"github.com/securecart-labs/securecart360/internal/generator"
)

var (
	genSeed      int64
	genCustomers int
	genOrders    int
	genOutputDir string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the synthetic CSV datasets",
	Long: `
Generate the five SecureCart360 CSV files (customers, products, orders,
order_items, fraud_signals) from a seeded random source.

The same seed reproduces the same dataset structure; dates are offsets from
the current time, so absolute dates shift between runs on different days.

Examples:
  securecart generate
  securecart generate --seed 7 --customers 200 --orders 1000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		genCfg := generator.DefaultConfig()
		genCfg.Customers = cfg.Generator.Customers
		genCfg.Orders = cfg.Generator.Orders
		genCfg.Seed = cfg.Generator.Seed
		outputDir := cfg.DataDir

		if cmd.Flags().Changed("seed") {
			genCfg.Seed = genSeed
		}
		if cmd.Flags().Changed("customers") {
			genCfg.Customers = genCustomers
		}
		if cmd.Flags().Changed("orders") {
			genCfg.Orders = genOrders
		}
		if cmd.Flags().Changed("output-dir") {
			outputDir = genOutputDir
		}

		dataset := generator.New(genCfg).Generate()
		if err := generator.WriteDataset(dataset, outputDir); err != nil {
			color.Red("ERROR: %v", err)
			return err
		}

		color.Green("Generated data in %s", outputDir)
		color.Cyan("  customers: %d, products: %d, orders: %d, order_items: %d, fraud_signals: %d",
			len(dataset.Customers), len(dataset.Products), len(dataset.Orders),
			len(dataset.OrderItems), len(dataset.FraudSignals))
		return nil
	},
}

func init() {
	generateCmd.Flags().Int64Var(&genSeed, "seed", config.DefaultSeed, "random seed for deterministic generation")
	generateCmd.Flags().IntVar(&genCustomers, "customers", config.DefaultCustomers, "number of customers to generate")
	generateCmd.Flags().IntVar(&genOrders, "orders", config.DefaultOrders, "number of orders to generate")
	generateCmd.Flags().StringVar(&genOutputDir, "output-dir", config.DefaultDataDir, "directory to write the CSV files")

	rootCmd.AddCommand(generateCmd)
}
