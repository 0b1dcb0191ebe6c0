package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestWriteDistribution(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "insights")

	buckets := []RiskBucket{{LevelHigh, 5}, {LevelLow, 2}}
	path, err := WriteDistribution(buckets, dir)
	if err != nil {
		t.Fatalf("WriteDistribution failed: %v", err)
	}
	if filepath.Base(path) != DistributionFile {
		t.Errorf("Expected artifact named %s, got %s", DistributionFile, path)
	}

	records := readArtifact(t, path)
	want := [][]string{
		{"fraud_risk_level", "cnt"},
		{"HIGH", "5"},
		{"LOW", "2"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("Artifact rows %v, expected %v", records, want)
	}
}

func TestWriteTopCustomers(t *testing.T) {
	dir := t.TempDir()

	customers := []CustomerRisk{{CustomerID: "7", FullName: "Asha Patel", HighRiskOrders: 3}}
	path, err := WriteTopCustomers(customers, dir)
	if err != nil {
		t.Fatalf("WriteTopCustomers failed: %v", err)
	}

	records := readArtifact(t, path)
	want := [][]string{
		{"customer_id", "full_name", "high_risk_orders"},
		{"7", "Asha Patel", "3"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("Artifact rows %v, expected %v", records, want)
	}
}

func readArtifact(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return records
}
