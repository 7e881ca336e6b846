package cmd

import (
	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/pulseboard/pulseboard/internal/snapstore"
	"github.com/pulseboard/pulseboard/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// snapshotsMigrateSetup loads minimal configuration needed for migrate
// operations. This specialized setup does NOT initialize stores or create
// tables, allowing migrations to run on a fresh database.
func snapshotsMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(viper.GetString("snapshot-backend"))
	connStr := viper.GetString("snapshot-db-connect")

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.SnapshotBackend = backend
	cfg.SnapshotDBConnect = connStr

	return nil
}

// snapshotsCmd groups snapshot data operations.
var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "Export and migrate the snapshot store",
	Long: `Operate on the snapshot store's data and schema.

Subcommands:
  export  - Export cached snapshots to a Parquet file
  migrate - Run schema migrations on the snapshot database

Examples:
  # Export snapshots for offline analysis
  pulseboard snapshots export --output-file dump

  # Migrate the snapshot schema to the latest version
  pulseboard snapshots migrate`,
}

// snapshotsExportCmd exports cached snapshots to Parquet.
var snapshotsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export cached snapshots to a Parquet file",
	Long: `Export every cached snapshot to a Parquet file.

Each snapshot is flattened to one row per named field per point, so the
output loads directly into Spark, Pandas, DuckDB or any other
Parquet-compatible tool.

The --output-file flag is the file prefix; the command appends
".snapshots.parquet".

Examples:
  # Export SQLite snapshots (default backend)
  pulseboard snapshots export --output-file dump

  # Export from PostgreSQL
  pulseboard snapshots export --snapshot-backend postgresql \
    --snapshot-db-connect "host=localhost dbname=pulseboard" --output-file dump`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := snapstore.ExecuteSnapshotExport(viper.GetString("output-file")); err != nil {
			contract.LogFatal("Failed to export snapshots", err)
		}
	},
}

// snapshotsMigrateCmd runs snapshot store migrations.
var snapshotsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run schema migrations on the snapshot database",
	Long: `Apply versioned schema migrations to the snapshot database.

Migrations are embedded in the binary and run against the configured
backend. By default the database migrates to the latest version.

Use --target-version to:
  -1  migrate to the latest version (default)
   0  roll back all migrations
   N  migrate to a specific version

Examples:
  # Migrate to the latest schema
  pulseboard snapshots migrate

  # Roll everything back
  pulseboard snapshots migrate --target-version 0`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return snapshotsMigrateSetup()
	},
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := snapstore.MigrateSnapshots(cfg.SnapshotBackend, cfg.SnapshotDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to migrate snapshots", err)
		}
	},
}
