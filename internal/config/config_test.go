package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DataDir != "data" {
		t.Errorf("Expected data_dir to be 'data', got '%s'", cfg.DataDir)
	}
	if cfg.DBPath != "ecommerce.db" {
		t.Errorf("Expected db_path to be 'ecommerce.db', got '%s'", cfg.DBPath)
	}
	if cfg.InsightsDir != "insights" {
		t.Errorf("Expected insights_dir to be 'insights', got '%s'", cfg.InsightsDir)
	}
	if cfg.Generator.Customers != 50 {
		t.Errorf("Expected generator.customers to be 50, got %d", cfg.Generator.Customers)
	}
	if cfg.Generator.Orders != 120 {
		t.Errorf("Expected generator.orders to be 120, got %d", cfg.Generator.Orders)
	}
	if cfg.Generator.Seed != 42 {
		t.Errorf("Expected generator.seed to be 42, got %d", cfg.Generator.Seed)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	viper.Reset()
	viper.Set("data_dir", "datasets")
	viper.Set("db_path", "shop.db")
	viper.Set("generator.customers", 200)
	viper.Set("generator.seed", 7)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DataDir != "datasets" {
		t.Errorf("Expected data_dir to be 'datasets', got '%s'", cfg.DataDir)
	}
	if cfg.DBPath != "shop.db" {
		t.Errorf("Expected db_path to be 'shop.db', got '%s'", cfg.DBPath)
	}
	if cfg.Generator.Customers != 200 {
		t.Errorf("Expected generator.customers to be 200, got %d", cfg.Generator.Customers)
	}
	if cfg.Generator.Seed != 7 {
		t.Errorf("Expected generator.seed to be 7, got %d", cfg.Generator.Seed)
	}
	// Untouched keys keep their defaults.
	if cfg.Generator.Orders != 120 {
		t.Errorf("Expected generator.orders to be 120, got %d", cfg.Generator.Orders)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"empty data dir", func(c *Config) { c.DataDir = "" }, true},
		{"empty db path", func(c *Config) { c.DBPath = "" }, true},
		{"empty insights dir", func(c *Config) { c.InsightsDir = "" }, true},
		{"zero customers", func(c *Config) { c.Generator.Customers = 0 }, true},
		{"negative orders", func(c *Config) { c.Generator.Orders = -1 }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{
				DataDir:     "data",
				DBPath:      "ecommerce.db",
				InsightsDir: "insights",
				Generator:   Generator{Customers: 50, Orders: 120, Seed: 42},
			}
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("Expected a validation error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}
