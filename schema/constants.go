package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the per-commit report.
	OutputMode string

	// DatabaseBackend represents the database backend for snapshot caching.
	DatabaseBackend string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv" // default
	TextOut    OutputMode = "text"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All cache backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidOutputModes is the set of output modes accepted by --output.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends is the set of backends accepted by --cache-backend.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
