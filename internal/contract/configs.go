package contract

import (
	"fmt"
	"strings"

	"github.com/pulseboard/pulseboard/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 1
	DefaultWindow      = 3 // moving-average period
)

// Config holds the runtime configuration for a formatting run.
// This struct remains the "final, validated" config.
type Config struct {
	InputFile   string   // Positional source file argument
	Key         string   // Value field read by trend formatters
	Keys        []string // Value fields summed by quarterly rollups
	Window      int      // Moving-average period
	Title       string   // Chart/export title
	ResultLimit int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)

	APIBaseURL string // Upstream dashboard API base URL

	SnapshotBackend   schema.DatabaseBackend
	SnapshotDBConnect string // Please use env var as this is plaintext

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputFileStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Limit             int    `mapstructure:"limit"`
	Precision         int    `mapstructure:"precision"`
	Output            string `mapstructure:"output"`
	OutputFile        string `mapstructure:"output-file"`
	Title             string `mapstructure:"title"`
	Width             int    `mapstructure:"width"`
	Color             string `mapstructure:"color"`
	APIBaseURL        string `mapstructure:"api-url"`
	SnapshotBackend   string `mapstructure:"snapshot-backend"`
	SnapshotDBConnect string `mapstructure:"snapshot-db-connect"`

	// --- Fields from trendCmd.Flags() ---
	Key    string `mapstructure:"key"`
	Window int    `mapstructure:"window"`

	// --- Fields from quarterlyCmd.Flags() ---
	Keys string `mapstructure:"keys"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Keys != nil {
		clone.Keys = make([]string, len(c.Keys))
		copy(clone.Keys, c.Keys)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.InputFile = input.InputFileStr
	cfg.OutputFile = input.OutputFile
	cfg.Title = input.Title
	cfg.Width = input.Width
	cfg.Key = strings.TrimSpace(input.Key)
	cfg.APIBaseURL = strings.TrimSpace(input.APIBaseURL)

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Window Validation ---
	if input.Window < 1 {
		return fmt.Errorf("window must be at least 1 (received %d)", input.Window)
	}
	cfg.Window = input.Window

	// --- 3. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}

	// --- 4. Backend Validation ---
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}

	// --- 5. Keys Processing ---
	cfg.Keys = nil
	if input.Keys != "" {
		for part := range strings.SplitSeq(input.Keys, ",") {
			trimmed := strings.TrimSpace(part)
			if trimmed != "" {
				cfg.Keys = append(cfg.Keys, trimmed)
			}
		}
	}

	return nil
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("snapshot-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("snapshot-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfig validates the snapshot backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.SnapshotBackend = schema.DatabaseBackend(strings.ToLower(input.SnapshotBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.SnapshotBackend]; !ok {
		return fmt.Errorf("invalid snapshot backend '%s'. must be sqlite, mysql, postgresql, none", input.SnapshotBackend)
	}
	cfg.SnapshotDBConnect = input.SnapshotDBConnect
	return ValidateDatabaseConnectionString(cfg.SnapshotBackend, cfg.SnapshotDBConnect)
}
