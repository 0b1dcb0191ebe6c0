package report

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/securecart-labs/securecart360/internal/store"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name         string
		score        float64
		deviceChange bool
		highValue    bool
		want         Level
	}{
		{"high score alone", 0.9, false, false, LevelHigh},
		{"score at high boundary", 0.75, false, false, LevelHigh},
		{"device change forces high", 0.1, true, false, LevelHigh},
		{"high value forces high", 0.1, false, true, LevelHigh},
		{"both flags with high score", 0.9, true, true, LevelHigh},
		{"medium score no flags", 0.5, false, false, LevelMedium},
		{"score at medium boundary", 0.4, false, false, LevelMedium},
		{"low score no flags", 0.1, false, false, LevelLow},
		{"score just below medium", 0.39, false, false, LevelLow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.score, tc.deviceChange, tc.highValue); got != tc.want {
				t.Errorf("Classify(%v, %v, %v) = %s, expected %s",
					tc.score, tc.deviceChange, tc.highValue, got, tc.want)
			}
		})
	}
}

type signalRow struct {
	orderID      int
	customerID   int
	score        float64
	deviceChange int
	highValue    int
}

func newTestDB(t *testing.T, customers []string, signals []signalRow) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	// One connection so every statement sees the same in-memory database.
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	if err := store.CreateSchema(ctx, db); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	for i, name := range customers {
		_, err := db.ExecContext(ctx,
			"INSERT INTO customers (customer_id, full_name, email, signup_date, country, loyalty_tier) VALUES (?, ?, ?, ?, ?, ?)",
			fmt.Sprint(i+1), name, fmt.Sprintf("c%d@example.com", i+1), "2024-01-01", "India", "Silver")
		if err != nil {
			t.Fatalf("failed to insert customer: %v", err)
		}
	}

	for _, s := range signals {
		_, err := db.ExecContext(ctx,
			"INSERT INTO orders (order_id, customer_id, order_date, order_total, payment_method, order_status) VALUES (?, ?, ?, ?, ?, ?)",
			fmt.Sprint(s.orderID), fmt.Sprint(s.customerID), "2025-01-05 10:00:00", 100.0, "Card", "COMPLETED")
		if err != nil {
			t.Fatalf("failed to insert order: %v", err)
		}
		_, err = db.ExecContext(ctx,
			"INSERT INTO fraud_signals (order_id, ip_country, billing_country, device_change_flag, high_value_flag, payment_risk_score) VALUES (?, ?, ?, ?, ?, ?)",
			fmt.Sprint(s.orderID), "India", "India", s.deviceChange, s.highValue, s.score)
		if err != nil {
			t.Fatalf("failed to insert fraud signal: %v", err)
		}
	}

	return db
}

func TestRiskDistribution(t *testing.T) {
	db := newTestDB(t,
		[]string{"Asha Patel"},
		[]signalRow{
			{1, 1, 0.90, 0, 0},
			{2, 1, 0.20, 1, 0},
			{3, 1, 0.50, 0, 0},
			{4, 1, 0.10, 0, 0},
		})

	buckets, err := New(db).RiskDistribution(context.Background())
	if err != nil {
		t.Fatalf("RiskDistribution failed: %v", err)
	}

	want := []RiskBucket{
		{LevelHigh, 2},
		{LevelMedium, 1},
		{LevelLow, 1},
	}
	if !reflect.DeepEqual(buckets, want) {
		t.Errorf("RiskDistribution = %v, expected %v", buckets, want)
	}
}

func TestRiskDistributionEmpty(t *testing.T) {
	db := newTestDB(t, nil, nil)

	buckets, err := New(db).RiskDistribution(context.Background())
	if err != nil {
		t.Fatalf("RiskDistribution failed: %v", err)
	}
	if len(buckets) != 0 {
		t.Errorf("Expected no buckets for an empty database, got %v", buckets)
	}
}

func TestTopHighRiskCustomers(t *testing.T) {
	db := newTestDB(t,
		[]string{"Asha Patel", "Rohan Sharma", "Mira Iyer"},
		[]signalRow{
			{1, 1, 0.90, 0, 0},
			{2, 1, 0.80, 0, 0},
			{3, 2, 0.10, 1, 0},
			{4, 3, 0.10, 0, 0}, // LOW, must not rank
		})

	ranked, err := New(db).TopHighRiskCustomers(context.Background(), 10)
	if err != nil {
		t.Fatalf("TopHighRiskCustomers failed: %v", err)
	}

	want := []CustomerRisk{
		{CustomerID: "1", FullName: "Asha Patel", HighRiskOrders: 2},
		{CustomerID: "2", FullName: "Rohan Sharma", HighRiskOrders: 1},
	}
	if !reflect.DeepEqual(ranked, want) {
		t.Errorf("TopHighRiskCustomers = %v, expected %v", ranked, want)
	}

	limited, err := New(db).TopHighRiskCustomers(context.Background(), 1)
	if err != nil {
		t.Fatalf("TopHighRiskCustomers with limit failed: %v", err)
	}
	if len(limited) != 1 || limited[0].CustomerID != "1" {
		t.Errorf("Expected only the top customer with limit 1, got %v", limited)
	}
}

func TestOpenRefusesMissingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecommerce.db")

	if _, err := Open(path); err == nil {
		t.Fatal("Expected an error for a missing database file")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Expected Open not to create a database file, stat returned %v", err)
	}
}
