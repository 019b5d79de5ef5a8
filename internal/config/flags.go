package config

import (
	"flag"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-l/-logbook-dsn  logbook database file path
//	-e/-explorer-dsn explorer database file path
//	-app-version     version string stamped into snapshot exports
//	-c/-config       json file path with configs
func ParseFlags() *StructuredConfig {
	var logbookDSN string
	var explorerDSN string
	var appVersion string
	var jsonConfigPath string

	flag.StringVar(&logbookDSN, "l", "", "Logbook database file path")
	flag.StringVar(&logbookDSN, "logbook-dsn", "", "Logbook database file path (alias)")
	flag.StringVar(&explorerDSN, "e", "", "Explorer database file path")
	flag.StringVar(&explorerDSN, "explorer-dsn", "", "Explorer database file path (alias)")
	flag.StringVar(&appVersion, "app-version", "", "Application version")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Version: appVersion,
		},
		Storage: Storage{
			Logbook:  DB{DSN: logbookDSN},
			Explorer: DB{DSN: explorerDSN},
		},
		JSONFilePath: jsonConfigPath,
	}
}
