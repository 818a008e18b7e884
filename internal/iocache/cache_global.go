package iocache

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/apkasten906/ai-pairing-metrics/internal/contract"
	"github.com/apkasten906/ai-pairing-metrics/schema"
)

// Global snapshot store for main logic.
var (
	globalStore contract.CacheStore
	initOnce    sync.Once
	closeOnce   sync.Once
)

// InitCaching initializes the global snapshot store.
func InitCaching(backend schema.DatabaseBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		store, err := NewCacheStore(SnapshotTableName, backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize snapshot caching: %w", err)
			return
		}
		globalStore = store
	})

	return initErr
}

// Store returns the global snapshot store, or nil if caching was never
// initialized.
func Store() contract.CacheStore {
	return globalStore
}

// CloseCaching should be called on application shutdown.
func CloseCaching() { // called in main defer
	closeOnce.Do(func() {
		if globalStore != nil {
			_ = globalStore.Close()
		}
	})
}

// ClearCache clears the snapshot cache for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the table.
// For NoneBackend, it does nothing.
func ClearCache(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if connStr != "" {
			dbFilePath = connStr
		}
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		return clearSQLTable("mysql", connStr, SnapshotTableName)

	case schema.PostgreSQLBackend:
		return clearSQLTable("pgx", connStr, SnapshotTableName)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported cache backend for clearing: %s", backend)
	}
}

// clearSQLTable connects to the SQL database and drops the table if it exists.
func clearSQLTable(driverName, connStr, tableName string) error {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", tableName)
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", tableName, err)
	}

	return nil
}

// PrintCacheStatus prints snapshot cache status information.
func PrintCacheStatus(status schema.CacheStatus) {
	fmt.Printf("Cache Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Entries: %d\n", status.TotalEntries)
	if status.TotalEntries > 0 {
		fmt.Printf("Last Entry: %s\n", status.LastEntryTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Oldest Entry: %s\n", status.OldestEntryTime.Format("2006-01-02 15:04:05"))
	}
	fmt.Printf("Table Size: %d bytes\n", status.TableSizeBytes)
}
