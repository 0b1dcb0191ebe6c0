package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.2.0"
)

var rootCmd = &cobra.Command{
	Use:   "securecart",
	Short: "SecureCart360 synthetic e-commerce data pipeline",
	Long: `
SecureCart360 synthesizes a fake e-commerce dataset (customers, products,
orders, order items, fraud signals) as CSV files, loads it into a SQLite
database with referential integrity, and derives fraud-risk insights from it.

Commands run in sequence:
  generate   write the five CSV datasets
  load       rebuild the database from the CSVs
  insights   derive risk-level summaries from the database`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./securecart.config.json)")
	rootCmd.Version = Version
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("securecart.config")
	}

	viper.AutomaticEnv()

	// A missing config file is fine; defaults cover everything.
	viper.ReadInConfig()
}
