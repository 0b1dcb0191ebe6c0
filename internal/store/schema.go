package store

import (
	"context"
	"database/sql"
)

// tableSpec declares a loaded table: its DDL, the exact CSV columns it
// expects, and the source file name inside the data directory. Key columns
// stay TEXT on purpose; only quantity, the two flags and the audit id are
// native integers.
type tableSpec struct {
	name    string
	file    string
	columns []string
	create  string
}

var customersTable = tableSpec{
	name:    "customers",
	file:    "customers.csv",
	columns: []string{"customer_id", "full_name", "email", "signup_date", "country", "loyalty_tier"},
	create: `CREATE TABLE customers (
		customer_id TEXT PRIMARY KEY,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL,
		signup_date TEXT NOT NULL,
		country TEXT NOT NULL,
		loyalty_tier TEXT NOT NULL
	)`,
}

var productsTable = tableSpec{
	name:    "products",
	file:    "products.csv",
	columns: []string{"product_id", "product_name", "category", "price", "sku"},
	create: `CREATE TABLE products (
		product_id TEXT PRIMARY KEY,
		product_name TEXT NOT NULL,
		category TEXT NOT NULL,
		price REAL NOT NULL,
		sku TEXT NOT NULL
	)`,
}

var ordersTable = tableSpec{
	name:    "orders",
	file:    "orders.csv",
	columns: []string{"order_id", "customer_id", "order_date", "order_total", "payment_method", "order_status"},
	create: `CREATE TABLE orders (
		order_id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL,
		order_date TEXT NOT NULL,
		order_total REAL NOT NULL,
		payment_method TEXT NOT NULL,
		order_status TEXT NOT NULL,
		FOREIGN KEY (customer_id) REFERENCES customers(customer_id)
	)`,
}

var orderItemsTable = tableSpec{
	name:    "order_items",
	file:    "order_items.csv",
	columns: []string{"item_id", "order_id", "product_id", "quantity", "unit_price"},
	create: `CREATE TABLE order_items (
		item_id TEXT PRIMARY KEY,
		order_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		unit_price REAL NOT NULL,
		FOREIGN KEY (order_id) REFERENCES orders(order_id),
		FOREIGN KEY (product_id) REFERENCES products(product_id)
	)`,
}

var fraudSignalsTable = tableSpec{
	name:    "fraud_signals",
	file:    "fraud_signals.csv",
	columns: []string{"order_id", "ip_country", "billing_country", "device_change_flag", "high_value_flag", "payment_risk_score"},
	create: `CREATE TABLE fraud_signals (
		order_id TEXT PRIMARY KEY,
		ip_country TEXT NOT NULL,
		billing_country TEXT NOT NULL,
		device_change_flag INTEGER NOT NULL,
		high_value_flag INTEGER NOT NULL,
		payment_risk_score REAL NOT NULL,
		FOREIGN KEY (order_id) REFERENCES orders(order_id)
	)`,
}

const auditLogCreate = `CREATE TABLE audit_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	action TEXT NOT NULL,
	timestamp TEXT NOT NULL,
	detail TEXT
)`

// loadOrder lists the CSV-backed tables with referenced tables before
// referencing ones, so foreign keys are satisfiable during the bulk load.
var loadOrder = []tableSpec{
	customersTable,
	productsTable,
	ordersTable,
	orderItemsTable,
	fraudSignalsTable,
}

// ReportTables names every table in row-count reporting order.
var ReportTables = []string{"customers", "products", "orders", "order_items", "fraud_signals", "audit_log"}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// CreateSchema creates the six tables in dependency order on a fresh
// database.
func CreateSchema(ctx context.Context, db execer) error {
	for _, t := range loadOrder {
		if _, err := db.ExecContext(ctx, t.create); err != nil {
			return &StoreError{Op: "create table " + t.name, Err: err}
		}
	}
	if _, err := db.ExecContext(ctx, auditLogCreate); err != nil {
		return &StoreError{Op: "create table audit_log", Err: err}
	}
	return nil
}
