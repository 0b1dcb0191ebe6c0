package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const (
	DistributionFile = "fraud_distribution.csv"
	TopCustomersFile = "high_risk_users.csv"
)

// WriteDistribution writes the risk-level distribution artifact into dir.
func WriteDistribution(buckets []RiskBucket, dir string) (string, error) {
	rows := make([][]string, len(buckets))
	for i, b := range buckets {
		rows[i] = []string{string(b.Level), strconv.Itoa(b.Count)}
	}
	return writeArtifact(dir, DistributionFile, []string{"fraud_risk_level", "cnt"}, rows)
}

// WriteTopCustomers writes the high-risk customer ranking artifact into dir.
func WriteTopCustomers(customers []CustomerRisk, dir string) (string, error) {
	rows := make([][]string, len(customers))
	for i, c := range customers {
		rows[i] = []string{c.CustomerID, c.FullName, strconv.Itoa(c.HighRiskOrders)}
	}
	return writeArtifact(dir, TopCustomersFile, []string{"customer_id", "full_name", "high_risk_orders"}, rows)
}

func writeArtifact(dir, name string, header []string, rows [][]string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create insights directory: %w", err)
	}

	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return "", fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return path, nil
}
