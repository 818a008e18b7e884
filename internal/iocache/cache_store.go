// Package iocache is for caching file-snapshot lookups, both within a
// run (in memory) and across runs (durable store).
package iocache

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/apkasten906/ai-pairing-metrics/internal/contract"
	"github.com/apkasten906/ai-pairing-metrics/schema"
	_ "github.com/go-sql-driver/mysql"  // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib"  // PostgreSQL driver
	_ "modernc.org/sqlite"              // SQLite driver
)

// SnapshotTableName is the single table used by the durable store.
const SnapshotTableName = "pairmetrics_snapshots"

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// CacheStoreImpl handles durable snapshot storage using various database backends.
type CacheStoreImpl struct {
	db        *sql.DB
	tableName string
	backend   schema.DatabaseBackend
}

var _ contract.CacheStore = &CacheStoreImpl{} // Compile-time check

// NewCacheStore initializes and returns a new CacheStore based on the backend type.
func NewCacheStore(tableName string, backend schema.DatabaseBackend, connStr string) (contract.CacheStore, error) {
	// Validate table name to prevent SQL injection
	if !tableNamePattern.MatchString(tableName) {
		return nil, fmt.Errorf("invalid table name %q", tableName)
	}

	var db *sql.DB
	var err error

	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetCacheDBFilePath()
		}
		db, err = sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite cache at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		db, err = sql.Open("mysql", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL cache: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=secret dbname=postgres
		db, err = sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL cache: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		// Return a no-op store for disabled caching
		return &CacheStoreImpl{db: nil, tableName: tableName, backend: backend}, nil

	default:
		return nil, fmt.Errorf("unsupported cache backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}

	// Ping to verify connection (skip for NoneBackend)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	// Create the table schema
	query := getCreateTableQuery(tableName, backend)
	if _, err := db.Exec(query); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	return &CacheStoreImpl{db: db, tableName: tableName, backend: backend}, nil
}

// getCreateTableQuery returns the CREATE TABLE query for the given backend.
func getCreateTableQuery(tableName string, backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				cache_key VARCHAR(512) PRIMARY KEY,
				cache_value BLOB NOT NULL,
				cache_timestamp BIGINT NOT NULL
			);
		`, tableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				cache_key TEXT PRIMARY KEY,
				cache_value BYTEA NOT NULL,
				cache_timestamp BIGINT NOT NULL
			);
		`, tableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				cache_key TEXT PRIMARY KEY,
				cache_value BLOB NOT NULL,
				cache_timestamp INTEGER NOT NULL
			);
		`, tableName)
	}
}

// Get retrieves a value by key from the store.
func (ps *CacheStoreImpl) Get(key string) ([]byte, bool, error) {
	if ps.backend == schema.NoneBackend || ps.db == nil {
		return nil, false, nil
	}

	var value []byte
	query := fmt.Sprintf(`SELECT cache_value FROM %s WHERE cache_key = %s`, ps.tableName, ps.getPlaceholder(1))
	row := ps.db.QueryRow(query, key)

	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

// Set inserts or replaces a key/value pair in the store.
func (ps *CacheStoreImpl) Set(key string, value []byte) error {
	if ps.backend == schema.NoneBackend || ps.db == nil {
		return nil
	}

	query := ps.getUpsertQuery()
	_, err := ps.db.Exec(query, key, value, time.Now().Unix())
	return err
}

// Clear removes all entries from the store.
func (ps *CacheStoreImpl) Clear() error {
	if ps.backend == schema.NoneBackend || ps.db == nil {
		return nil
	}
	_, err := ps.db.Exec(fmt.Sprintf("DELETE FROM %s", ps.tableName))
	return err
}

// getPlaceholder returns the n-th parameter placeholder for the backend.
func (ps *CacheStoreImpl) getPlaceholder(n int) string {
	switch ps.backend {
	case schema.PostgreSQLBackend:
		return fmt.Sprintf("$%d", n)
	default: // SQLite and MySQL
		return "?"
	}
}

// getUpsertQuery returns the UPSERT query for the backend.
func (ps *CacheStoreImpl) getUpsertQuery() string {
	switch ps.backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (cache_key, cache_value, cache_timestamp) VALUES (?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE cache_value = new.cache_value, cache_timestamp = new.cache_timestamp`, ps.tableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (cache_key, cache_value, cache_timestamp) VALUES ($1, $2, $3)
			ON CONFLICT (cache_key) DO UPDATE SET cache_value = EXCLUDED.cache_value, cache_timestamp = EXCLUDED.cache_timestamp`, ps.tableName)

	default: // SQLite
		return fmt.Sprintf(`INSERT OR REPLACE INTO %s (cache_key, cache_value, cache_timestamp) VALUES (?, ?, ?)`, ps.tableName)
	}
}

// Close closes the underlying DB connection.
func (ps *CacheStoreImpl) Close() error {
	if ps.db != nil {
		return ps.db.Close()
	}
	return nil
}

// GetStatus returns status information about the cache store.
func (ps *CacheStoreImpl) GetStatus() (schema.CacheStatus, error) {
	status := schema.CacheStatus{
		Backend:   string(ps.backend),
		Connected: ps.db != nil,
	}

	if ps.backend == schema.NoneBackend || ps.db == nil {
		return status, nil
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", ps.tableName)
	if err := ps.db.QueryRow(countQuery).Scan(&status.TotalEntries); err != nil {
		return status, fmt.Errorf("failed to get total entries: %w", err)
	}

	if status.TotalEntries == 0 {
		return status, nil
	}

	var lastTs, oldestTs int64
	lastQuery := fmt.Sprintf("SELECT MAX(cache_timestamp) FROM %s", ps.tableName)
	if err := ps.db.QueryRow(lastQuery).Scan(&lastTs); err != nil {
		return status, fmt.Errorf("failed to get last entry time: %w", err)
	}
	status.LastEntryTime = time.Unix(lastTs, 0)

	oldestQuery := fmt.Sprintf("SELECT MIN(cache_timestamp) FROM %s", ps.tableName)
	if err := ps.db.QueryRow(oldestQuery).Scan(&oldestTs); err != nil {
		return status, fmt.Errorf("failed to get oldest entry time: %w", err)
	}
	status.OldestEntryTime = time.Unix(oldestTs, 0)

	// Estimate table size. For SQLite, page_count * page_size covers the
	// whole file; for the server backends a rough per-row estimate is fine.
	if ps.backend == schema.SQLiteBackend {
		sizeQuery := "SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size()"
		if err := ps.db.QueryRow(sizeQuery).Scan(&status.TableSizeBytes); err != nil {
			status.TableSizeBytes = 0
		}
	} else {
		status.TableSizeBytes = status.TotalEntries * 1000
	}

	return status, nil
}
