package generator

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// CSV file names and their header rows. The loader matches these headers
// against the database schema column for column, so order matters.
const (
	CustomersFile    = "customers.csv"
	ProductsFile     = "products.csv"
	OrdersFile       = "orders.csv"
	OrderItemsFile   = "order_items.csv"
	FraudSignalsFile = "fraud_signals.csv"
)

var (
	customerHeader    = []string{"customer_id", "full_name", "email", "signup_date", "country", "loyalty_tier"}
	productHeader     = []string{"product_id", "product_name", "category", "price", "sku"}
	orderHeader       = []string{"order_id", "customer_id", "order_date", "order_total", "payment_method", "order_status"}
	orderItemHeader   = []string{"item_id", "order_id", "product_id", "quantity", "unit_price"}
	fraudSignalHeader = []string{"order_id", "ip_country", "billing_country", "device_change_flag", "high_value_flag", "payment_risk_score"}
)

// WriteDataset writes the five CSV files into dir, creating it if absent and
// silently overwriting existing files.
func WriteDataset(ds Dataset, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	files := []struct {
		name   string
		header []string
		rows   [][]string
	}{
		{CustomersFile, customerHeader, customerRows(ds.Customers)},
		{ProductsFile, productHeader, productRows(ds.Products)},
		{OrdersFile, orderHeader, orderRows(ds.Orders)},
		{OrderItemsFile, orderItemHeader, orderItemRows(ds.OrderItems)},
		{FraudSignalsFile, fraudSignalHeader, fraudSignalRows(ds.FraudSignals)},
	}

	for _, f := range files {
		if err := writeCSV(filepath.Join(dir, f.name), f.header, f.rows); err != nil {
			return err
		}
	}
	return nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}

func customerRows(customers []Customer) [][]string {
	rows := make([][]string, len(customers))
	for i, c := range customers {
		rows[i] = []string{
			strconv.Itoa(c.ID),
			c.FullName,
			c.Email,
			c.SignupDate,
			c.Country,
			c.LoyaltyTier,
		}
	}
	return rows
}

func productRows(products []Product) [][]string {
	rows := make([][]string, len(products))
	for i, p := range products {
		rows[i] = []string{
			strconv.Itoa(p.ID),
			p.Name,
			p.Category,
			formatAmount(p.Price),
			p.SKU,
		}
	}
	return rows
}

func orderRows(orders []Order) [][]string {
	rows := make([][]string, len(orders))
	for i, o := range orders {
		rows[i] = []string{
			strconv.Itoa(o.ID),
			strconv.Itoa(o.CustomerID),
			o.OrderDate,
			formatAmount(o.Total),
			o.PaymentMethod,
			o.Status,
		}
	}
	return rows
}

func orderItemRows(items []OrderItem) [][]string {
	rows := make([][]string, len(items))
	for i, it := range items {
		rows[i] = []string{
			strconv.Itoa(it.ID),
			strconv.Itoa(it.OrderID),
			strconv.Itoa(it.ProductID),
			strconv.Itoa(it.Quantity),
			formatAmount(it.UnitPrice),
		}
	}
	return rows
}

func fraudSignalRows(signals []FraudSignal) [][]string {
	rows := make([][]string, len(signals))
	for i, s := range signals {
		rows[i] = []string{
			strconv.Itoa(s.OrderID),
			s.IPCountry,
			s.BillingCountry,
			strconv.Itoa(s.DeviceChangeFlag),
			strconv.Itoa(s.HighValueFlag),
			formatAmount(s.PaymentRiskScore),
		}
	}
	return rows
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
