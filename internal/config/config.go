package config

// Default database file names used when no DSN is configured. Both live in
// the working directory, one file per storage domain.
const (
	DefaultLogbookDSN  = "moto-soul.db"
	DefaultExplorerDSN = "moto-explorer.db"
)

// StructuredConfig is the top-level configuration container for moto-soul.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string
	// embedded in exported snapshots.
	App App `envPrefix:"APP_"`

	// Storage holds the SQLite settings of both storage domains.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). It is stamped into every exported snapshot.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration of the two storage domains. Each domain
// owns its own database file, mirroring the one-database-per-app layout of
// the installation this data model comes from.
type Storage struct {
	// Logbook holds settings for the trip/maintenance/fuel database.
	Logbook DB `envPrefix:"LOGBOOK_"`

	// Explorer holds settings for the restaurants/links/waypoints database.
	Explorer DB `envPrefix:"EXPLORER_"`
}

// DB holds connection settings for one SQLite database.
type DB struct {
	// DSN is the SQLite file path (e.g. "moto-soul.db" or an absolute path).
	// Env: STORAGE_LOGBOOK_DSN / STORAGE_EXPLORER_DSN
	DSN string `env:"DSN"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Unset DSNs fall back to [DefaultLogbookDSN] and [DefaultExplorerDSN], so a
// flagless, env-less run works out of the box.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	if cfg.Storage.Logbook.DSN == "" {
		cfg.Storage.Logbook.DSN = DefaultLogbookDSN
	}
	if cfg.Storage.Explorer.DSN == "" {
		cfg.Storage.Explorer.DSN = DefaultExplorerDSN
	}
	if cfg.App.Version == "" {
		cfg.App.Version = "1.0.0"
	}

	return cfg, cfg.validate()
}
