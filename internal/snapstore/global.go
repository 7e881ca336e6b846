package snapstore

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/pulseboard/pulseboard/schema"
)

// snapshotTable is the name of the table for snapshot caching.
const snapshotTable = "pulseboard_snapshots"

// Global Manager instance for main logic.
var (
	Manager   = &SnapshotStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// GetDBFilePath returns the path to the SQLite DB file for snapshot storage.
func GetDBFilePath() string {
	return contract.GetSnapshotDBFilePath()
}

// InitSnapshots initializes the global snapshot manager.
// backend can be empty to disable snapshot initialization.
func InitSnapshots(backend schema.DatabaseBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		if backend == "" {
			return
		}
		store, err := NewSnapshotStore(snapshotTable, backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize snapshot store: %w", err)
			return
		}
		Manager.Lock()
		defer Manager.Unlock()
		Manager.snapshots = store
	})

	// After once.Do, initErr will contain any error from the initialization block.
	return initErr
}

// CloseSnapshots should be called on application shutdown.
func CloseSnapshots() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.snapshots != nil {
			_ = Manager.snapshots.Close()
		}
	})
}

// ClearSnapshots clears the snapshot cache for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the table.
// For NoneBackend, it does nothing.
func ClearSnapshots(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		return clearSQLTable("mysql", connStr, snapshotTable)

	case schema.PostgreSQLBackend:
		return clearSQLTable("pgx", connStr, snapshotTable)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported snapshot backend for clearing: %s", backend)
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
