package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The two domains must not share one database file: each owns its own set of
// collections and migrations run independently per file.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.Logbook.DSN == "" || cfg.Storage.Explorer.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Logbook.DSN == cfg.Storage.Explorer.DSN {
		return ErrInvalidStorageConfigs
	}

	return nil
}
