// Package cmd defines the command-line interface for pulseboard.
package cmd

import (
	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/pulseboard/pulseboard/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(funnelCmd)
	rootCmd.AddCommand(trendCmd)
	rootCmd.AddCommand(quarterlyCmd)
	rootCmd.AddCommand(cohortCmd)
	rootCmd.AddCommand(bucketsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(snapshotsCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Add the snapshots subcommands to the parent snapshots command
	snapshotsCmd.AddCommand(snapshotsExportCmd)
	snapshotsCmd.AddCommand(snapshotsMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("title", "", "Title used for chart exports and download filenames")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("api-url", "", "Upstream dashboard API base URL")
	rootCmd.PersistentFlags().String("snapshot-backend", string(schema.SQLiteBackend), "Snapshot backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("snapshot-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of trendCmd to Viper
	trendCmd.Flags().StringP("key", "k", "", "Value field to read from each point")
	trendCmd.Flags().IntP("window", "w", contract.DefaultWindow, "Moving-average period")
	if err := viper.BindPFlags(trendCmd.Flags()); err != nil {
		contract.LogFatal("Error binding trend flags", err)
	}

	// Bind all flags of quarterlyCmd to Viper
	quarterlyCmd.Flags().String("keys", "", "Comma-separated value fields to sum per quarter")
	if err := viper.BindPFlags(quarterlyCmd.Flags()); err != nil {
		contract.LogFatal("Error binding quarterly flags", err)
	}

	// Bind all flags of snapshotsMigrateCmd to Viper
	snapshotsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(snapshotsMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding snapshots migrate flags", err)
	}
}
