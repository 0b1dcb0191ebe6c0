package generator

import "time"

// Config drives the synthetic data generator.
type Config struct {
	Customers        int
	Orders           int
	MinSignupAgeDays int
	MaxSignupAgeDays int
	Seed             int64
	// Now anchors every relative date. Zero means time.Now().UTC(); tests
	// pin it so two runs with the same seed produce identical output.
	Now time.Time
}

// DefaultConfig returns the baseline dataset shape: 50 customers, 10 catalog
// products, 120 orders.
func DefaultConfig() Config {
	return Config{
		Customers:        50,
		Orders:           120,
		MinSignupAgeDays: 30,
		MaxSignupAgeDays: 900,
		Seed:             42,
	}
}
