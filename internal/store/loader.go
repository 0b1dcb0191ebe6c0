package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

const auditAction = "load_into_sqlite"

// insertBatchSize bounds the number of rows per multi-row INSERT so the
// statement stays well under SQLite's bound-variable limit.
const insertBatchSize = 200

// Loader materializes the generated CSV files into a fresh SQLite database.
// Every run is a full rebuild: the database file is deleted and recreated,
// never migrated. Only the audit log accumulates: its rows are carried over
// from the previous file before deletion, then the run appends its own entry.
type Loader struct {
	dataDir string
	dbPath  string
}

func NewLoader(dataDir, dbPath string) *Loader {
	return &Loader{dataDir: dataDir, dbPath: dbPath}
}

// TableCount pairs a table name with its loaded row count.
type TableCount struct {
	Table string
	Rows  int64
}

// Summary reports the outcome of one load run.
type Summary struct {
	Counts        []TableCount
	TotalRevenue  float64
	AvgOrderValue float64
}

// CSVPaths returns the five expected input files in load order.
func (l *Loader) CSVPaths() []string {
	paths := make([]string, len(loadOrder))
	for i, t := range loadOrder {
		paths[i] = filepath.Join(l.dataDir, t.file)
	}
	return paths
}

// CheckInputs verifies that every expected CSV exists, reporting all missing
// paths at once.
func (l *Loader) CheckInputs() error {
	var missing []string
	for _, path := range l.CSVPaths() {
		if _, err := os.Stat(path); err != nil {
			missing = append(missing, path)
		}
	}
	if len(missing) > 0 {
		return &MissingInputError{Paths: missing}
	}
	return nil
}

// Run executes the full load: input checks, CSV parsing, database rebuild,
// bulk inserts, audit entry, and the summary queries. Everything between
// schema creation and the audit entry runs in a single transaction, so a
// partial failure leaves an empty database rather than a half-loaded one.
func (l *Loader) Run(ctx context.Context) (*Summary, error) {
	if err := l.CheckInputs(); err != nil {
		return nil, err
	}

	// Parse and validate every CSV before the destructive rebuild, so a
	// malformed input never costs the previous database.
	data := make(map[string][][]any, len(loadOrder))
	for _, t := range loadOrder {
		rows, err := readRows(filepath.Join(l.dataDir, t.file), t.columns)
		if err != nil {
			return nil, err
		}
		data[t.name] = rows
	}

	auditHistory := l.readAuditHistory(ctx)

	if err := l.removeDatabase(); err != nil {
		return nil, err
	}

	db, err := openDatabase(l.dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, &StoreError{Op: "begin transaction", Err: err}
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	if err := CreateSchema(ctx, tx); err != nil {
		return nil, err
	}

	for _, t := range loadOrder {
		if err := insertRows(ctx, tx, t, data[t.name]); err != nil {
			return nil, err
		}
	}

	if err := restoreAuditHistory(ctx, tx, auditHistory); err != nil {
		return nil, err
	}
	if err := insertAuditEntry(ctx, tx); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, &StoreError{Op: "commit", Err: err}
	}
	committed = true

	return l.summarize(ctx, db)
}

// removeDatabase deletes the database file plus any SQLite WAL siblings.
func (l *Loader) removeDatabase() error {
	for _, path := range []string{l.dbPath, l.dbPath + "-wal", l.dbPath + "-shm"} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return &StoreError{Op: "remove " + path, Err: err}
		}
	}
	return nil
}

func openDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, &StoreError{Op: "open database", Err: err}
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StoreError{Op: "ping database", Err: err}
	}
	return db, nil
}

func insertRows(ctx context.Context, tx *sql.Tx, t tableSpec, rows [][]any) error {
	for start := 0; start < len(rows); start += insertBatchSize {
		end := min(start+insertBatchSize, len(rows))

		builder := sq.Insert(t.name).Columns(t.columns...)
		for _, row := range rows[start:end] {
			builder = builder.Values(row...)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return &StoreError{Op: "build insert for " + t.name, Err: err}
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return &StoreError{Op: "insert into " + t.name, Err: err}
		}
	}
	return nil
}

type auditEntry struct {
	id        int64
	action    string
	timestamp string
	detail    sql.NullString
}

// readAuditHistory pulls existing audit rows from the database about to be
// rebuilt, so the log keeps accumulating across runs. A missing or unusable
// file just means an empty history.
func (l *Loader) readAuditHistory(ctx context.Context) []auditEntry {
	if _, err := os.Stat(l.dbPath); err != nil {
		return nil
	}
	db, err := sql.Open("sqlite3", "file:"+l.dbPath+"?mode=ro")
	if err != nil {
		return nil
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, "SELECT id, action, timestamp, detail FROM audit_log ORDER BY id")
	if err != nil {
		return nil
	}
	defer rows.Close()

	var entries []auditEntry
	for rows.Next() {
		var e auditEntry
		if err := rows.Scan(&e.id, &e.action, &e.timestamp, &e.detail); err != nil {
			return nil
		}
		entries = append(entries, e)
	}
	if rows.Err() != nil {
		return nil
	}
	return entries
}

func restoreAuditHistory(ctx context.Context, tx *sql.Tx, entries []auditEntry) error {
	if len(entries) == 0 {
		return nil
	}
	builder := sq.Insert("audit_log").Columns("id", "action", "timestamp", "detail")
	for _, e := range entries {
		builder = builder.Values(e.id, e.action, e.timestamp, e.detail)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return &StoreError{Op: "build audit history insert", Err: err}
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return &StoreError{Op: "restore audit history", Err: err}
	}
	return nil
}

func insertAuditEntry(ctx context.Context, tx *sql.Tx) error {
	files := make([]string, len(loadOrder))
	for i, t := range loadOrder {
		files[i] = t.file
	}
	detail := "Loaded CSVs: " + strings.Join(files, ", ")

	query, args, err := sq.Insert("audit_log").
		Columns("action", "timestamp", "detail").
		Values(auditAction, time.Now().UTC().Format(time.RFC3339), detail).
		ToSql()
	if err != nil {
		return &StoreError{Op: "build audit insert", Err: err}
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return &StoreError{Op: "insert audit entry", Err: err}
	}
	return nil
}

func (l *Loader) summarize(ctx context.Context, db *sql.DB) (*Summary, error) {
	summary := &Summary{}

	for _, table := range ReportTables {
		query, args, err := sq.Select("COUNT(*)").From(table).ToSql()
		if err != nil {
			return nil, &StoreError{Op: "build count for " + table, Err: err}
		}
		var count int64
		if err := db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
			return nil, &StoreError{Op: "count " + table, Err: err}
		}
		summary.Counts = append(summary.Counts, TableCount{Table: table, Rows: count})
	}

	query, args, err := sq.Select(
		"ROUND(COALESCE(SUM(order_total), 0), 2)",
		"ROUND(COALESCE(AVG(order_total), 0), 2)",
	).From("orders").ToSql()
	if err != nil {
		return nil, &StoreError{Op: "build revenue query", Err: err}
	}
	if err := db.QueryRowContext(ctx, query, args...).Scan(&summary.TotalRevenue, &summary.AvgOrderValue); err != nil {
		return nil, &StoreError{Op: "query revenue metrics", Err: err}
	}

	return summary, nil
}
