package schema

// Custom string types for type safety.
type (
	// DerivedKey represents keys used for derived display fields.
	DerivedKey string

	// OutputMode represents the format of the output.
	OutputMode string

	// ChartKind represents how a series is drawn.
	ChartKind string

	// NotificationKind represents the severity class of a notification.
	NotificationKind string

	// DatabaseBackend represents the database backend for snapshot caching.
	DatabaseBackend string
)

// Derived keys used by the data formatters.
const (
	DerivedConversionRate DerivedKey = "conversion_rate" // stage[i+1] / stage[i] * 100
	DerivedDropoff        DerivedKey = "dropoff"         // 100 - conversion_rate
	DerivedPercentOfTop   DerivedKey = "percent_of_top"  // value / first value * 100
	DerivedCumulative     DerivedKey = "cumulative"      // running sum
	DerivedGrowth         DerivedKey = "growth"          // period-over-period growth pct
	DerivedMovingAvg      DerivedKey = "moving_avg"      // simple windowed mean
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All chart kinds supported.
const (
	LineChart ChartKind = "line"
	BarChart  ChartKind = "bar"
	AreaChart ChartKind = "area"
)

// All notification kinds supported.
const (
	SuccessNotification NotificationKind = "success"
	ErrorNotification   NotificationKind = "error"
	InfoNotification    NotificationKind = "info"
	WarningNotification NotificationKind = "warning"
)

// All snapshot cache backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidChartKinds lists all valid chart kinds.
var ValidChartKinds = map[ChartKind]struct{}{
	LineChart: {},
	BarChart:  {},
	AreaChart: {},
}

// ValidNotificationKinds lists all valid notification kinds.
var ValidNotificationKinds = map[NotificationKind]struct{}{
	SuccessNotification: {},
	ErrorNotification:   {},
	InfoNotification:    {},
	WarningNotification: {},
}

// ValidDatabaseBackends lists all valid snapshot cache backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
