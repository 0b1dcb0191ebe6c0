package report

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sort"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

// Level is the derived fraud risk classification. It is computed from the
// stored signal fields at query time and never persisted.
type Level string

const (
	LevelHigh   Level = "HIGH"
	LevelMedium Level = "MEDIUM"
	LevelLow    Level = "LOW"
)

// Classify derives the risk level of one fraud signal: HIGH when the payment
// risk score reaches 0.75 or either flag is set, MEDIUM when the score is in
// [0.4, 0.75) with neither flag, LOW otherwise.
func Classify(score float64, deviceChange, highValue bool) Level {
	switch {
	case score >= 0.75 || deviceChange || highValue:
		return LevelHigh
	case score >= 0.4:
		return LevelMedium
	default:
		return LevelLow
	}
}

// RiskBucket is one row of the risk-level distribution.
type RiskBucket struct {
	Level Level
	Count int
}

// CustomerRisk is one row of the top high-risk customers ranking.
type CustomerRisk struct {
	CustomerID     string
	FullName       string
	HighRiskOrders int
}

// Reporter runs read-only insight queries against a loaded database.
type Reporter struct {
	db *sql.DB
}

// Open connects to an existing database file read-only. It refuses to create
// one: insights are a pure consumer of the loader's output.
func Open(dbPath string) (*Reporter, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("database %s not found, run the loader first: %w", dbPath, err)
	}
	db, err := sql.Open("sqlite3", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", dbPath, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database %s: %w", dbPath, err)
	}
	return &Reporter{db: db}, nil
}

// New wraps an existing connection, mainly for tests.
func New(db *sql.DB) *Reporter {
	return &Reporter{db: db}
}

func (r *Reporter) Close() error {
	return r.db.Close()
}

// RiskDistribution classifies every fraud signal and counts per level,
// ordered HIGH, MEDIUM, LOW. Levels with no signals are omitted, matching
// a grouped SQL aggregate.
func (r *Reporter) RiskDistribution(ctx context.Context) ([]RiskBucket, error) {
	query, args, err := sq.Select("f.payment_risk_score", "f.device_change_flag", "f.high_value_flag").
		From("fraud_signals f").
		Join("orders o ON o.order_id = f.order_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build distribution query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query fraud signals: %w", err)
	}
	defer rows.Close()

	counts := make(map[Level]int)
	for rows.Next() {
		var score float64
		var deviceChange, highValue int
		if err := rows.Scan(&score, &deviceChange, &highValue); err != nil {
			return nil, fmt.Errorf("failed to scan fraud signal: %w", err)
		}
		counts[Classify(score, deviceChange == 1, highValue == 1)]++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate fraud signals: %w", err)
	}

	var buckets []RiskBucket
	for _, level := range []Level{LevelHigh, LevelMedium, LevelLow} {
		if counts[level] > 0 {
			buckets = append(buckets, RiskBucket{Level: level, Count: counts[level]})
		}
	}
	return buckets, nil
}

// TopHighRiskCustomers ranks customers by their number of HIGH-classified
// orders, descending, ties broken by customer id for stable output.
func (r *Reporter) TopHighRiskCustomers(ctx context.Context, limit int) ([]CustomerRisk, error) {
	query, args, err := sq.Select(
		"o.customer_id", "c.full_name",
		"f.payment_risk_score", "f.device_change_flag", "f.high_value_flag",
	).
		From("orders o").
		Join("fraud_signals f ON f.order_id = o.order_id").
		Join("customers c ON c.customer_id = o.customer_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build high-risk query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query high-risk orders: %w", err)
	}
	defer rows.Close()

	type customer struct {
		name  string
		count int
	}
	byID := make(map[string]*customer)
	for rows.Next() {
		var id, name string
		var score float64
		var deviceChange, highValue int
		if err := rows.Scan(&id, &name, &score, &deviceChange, &highValue); err != nil {
			return nil, fmt.Errorf("failed to scan high-risk order: %w", err)
		}
		if Classify(score, deviceChange == 1, highValue == 1) != LevelHigh {
			continue
		}
		if c, ok := byID[id]; ok {
			c.count++
		} else {
			byID[id] = &customer{name: name, count: 1}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate high-risk orders: %w", err)
	}

	ranked := make([]CustomerRisk, 0, len(byID))
	for id, c := range byID {
		ranked = append(ranked, CustomerRisk{CustomerID: id, FullName: c.name, HighRiskOrders: c.count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].HighRiskOrders != ranked[j].HighRiskOrders {
			return ranked[i].HighRiskOrders > ranked[j].HighRiskOrders
		}
		return ranked[i].CustomerID < ranked[j].CustomerID
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}
