package store

import (
	"context"
	"fmt"

	"github.com/pbianchi/moto-soul/internal/config"
	"github.com/pbianchi/moto-soul/internal/logger"
)

// Storages groups the repositories of both storage domains into a single
// value that can be passed around the service layer.
type Storages struct {
	// Logbook is the trip/maintenance/fuel repository backed by the
	// logbook database file.
	Logbook LogbookRepository

	// Explorer is the restaurants/links/waypoints repository backed by the
	// explorer database file.
	Explorer ExplorerRepository
}

// NewStorages initialises both storage domains using the supplied
// configuration and logger. For each domain it:
//  1. Opens an SQLite connection to the configured file path, creating the
//     database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Builds a record store and the typed repository on top of it.
//
// The explorer domain is additionally seeded with its default emergency
// contacts when the contacts collection is empty.
//
// Returns an error if either database cannot be opened or migrated.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	logbookDB, err := NewConnectSQLite(ctx, cfg.Logbook, log)
	if err != nil {
		return nil, fmt.Errorf("logbook connection error: %w", err)
	}
	if err := logbookDB.Migrate(); err != nil {
		return nil, fmt.Errorf("logbook migration failed: %w", err)
	}

	explorerDB, err := NewConnectSQLite(ctx, cfg.Explorer, log)
	if err != nil {
		return nil, fmt.Errorf("explorer connection error: %w", err)
	}
	if err := explorerDB.Migrate(); err != nil {
		return nil, fmt.Errorf("explorer migration failed: %w", err)
	}

	storages := &Storages{
		Logbook:  NewLogbookRepository(NewRecordStore(logbookDB, log), log),
		Explorer: NewExplorerRepository(NewRecordStore(explorerDB, log), log),
	}

	if err := storages.Explorer.EnsureDefaultContacts(ctx); err != nil {
		return nil, fmt.Errorf("seeding default contacts failed: %w", err)
	}

	return storages, nil
}
