package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	DataDir     string    `json:"data_dir" mapstructure:"data_dir"`
	DBPath      string    `json:"db_path" mapstructure:"db_path"`
	InsightsDir string    `json:"insights_dir" mapstructure:"insights_dir"`
	Generator   Generator `json:"generator" mapstructure:"generator"`
}

// Generator holds the dataset sizing knobs. Zero values fall back to the
// compiled-in defaults so a config file only needs to name what it changes.
type Generator struct {
	Customers int   `json:"customers" mapstructure:"customers"`
	Orders    int   `json:"orders" mapstructure:"orders"`
	Seed      int64 `json:"seed" mapstructure:"seed"`
}

const (
	DefaultDataDir     = "data"
	DefaultDBPath      = "ecommerce.db"
	DefaultInsightsDir = "insights"
	DefaultCustomers   = 50
	DefaultOrders      = 120
	DefaultSeed        = 42
)

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set defaults
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBPath
	}
	if cfg.InsightsDir == "" {
		cfg.InsightsDir = DefaultInsightsDir
	}
	if cfg.Generator.Customers == 0 {
		cfg.Generator.Customers = DefaultCustomers
	}
	if cfg.Generator.Orders == 0 {
		cfg.Generator.Orders = DefaultOrders
	}
	if cfg.Generator.Seed == 0 {
		cfg.Generator.Seed = DefaultSeed
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("db_path cannot be empty")
	}
	if c.InsightsDir == "" {
		return fmt.Errorf("insights_dir cannot be empty")
	}
	if c.Generator.Customers < 1 {
		return fmt.Errorf("generator.customers must be at least 1, got %d", c.Generator.Customers)
	}
	if c.Generator.Orders < 1 {
		return fmt.Errorf("generator.orders must be at least 1, got %d", c.Generator.Orders)
	}
	return nil
}
