package cmd

import (
	"fmt"

	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/pulseboard/pulseboard/internal/snapstore"
	"github.com/pulseboard/pulseboard/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cacheSetup loads minimal configuration needed for cache operations.
// This is used by commands that need snapshot access without full shared setup.
func cacheSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get snapshot-related config values
	backend := schema.DatabaseBackend(viper.GetString("snapshot-backend"))
	connStr := viper.GetString("snapshot-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize snapshots with the loaded config
	if err := snapstore.InitSnapshots(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize snapshots: %w", err)
	}

	cfg.SnapshotBackend = backend
	cfg.SnapshotDBConnect = connStr

	return nil
}

// cacheSetupWrapper wraps cacheSetup to provide PreRunE for cache commands.
func cacheSetupWrapper(_ *cobra.Command, _ []string) error {
	return cacheSetup()
}

// cacheCmd focused on snapshot cache management.
//
// Note: Cache subcommands use minimal initialization (cacheSetup) instead of
// the full sharedSetup used by formatting commands. This avoids input file
// handling and complex config processing for simple cache operations.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the snapshot cache (improves repeatability)",
	Long: `Manage the snapshot cache of upstream metric series.

Pulseboard freezes loaded series into a snapshot store so repeated runs
format the exact same data, and so cached series can be exported to
Parquet for offline analysis.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status - Show snapshot statistics and connection info
  clear  - Remove all cached snapshots

Examples:
  # Check snapshot status
  pulseboard cache status

  # Clear snapshots after upstream data changed
  pulseboard cache clear`,
}

// cacheClearCmd clears the snapshot cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached snapshots",
	Long: `Delete all cached snapshots from the configured backend.

Use this when:
- Upstream data was corrected or restated
- Snapshots may be stale or corrupted
- Testing formatting without cached data

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the snapshot table

Examples:
  # Clear SQLite snapshots (default)
  pulseboard cache clear

  # Clear MySQL snapshots (set connection string via env variable)
  PULSEBOARD_SNAPSHOT_BACKEND=mysql PULSEBOARD_SNAPSHOT_DB_CONNECT="..." pulseboard cache clear`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := snapstore.ClearSnapshots(cfg.SnapshotBackend, contract.GetSnapshotDBFilePath(), cfg.SnapshotDBConnect); err != nil {
			contract.LogFatal("Failed to clear snapshots", err)
		}
		fmt.Println("Snapshots cleared successfully.")
	},
}

// cacheStatusCmd shows snapshot status.
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display snapshot statistics and connection details",
	Long: `Show detailed information about the snapshot cache.

Displays:
- Backend type and connection status
- Total number of cached snapshots
- Last and oldest snapshot timestamps
- Snapshot database size

Use this to:
- Verify the store is working and connected
- Monitor snapshot growth over time
- Debug snapshot-related issues

Examples:
  # Check snapshot status
  pulseboard cache status`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := snapstore.Manager.GetSnapshotStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get snapshot status", err)
		}
		snapstore.PrintSnapshotStatus(status)
	},
}
