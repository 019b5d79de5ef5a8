package store

import (
	"database/sql"

	"github.com/pbianchi/moto-soul/internal/logger"
	"github.com/pbianchi/moto-soul/migrations"
)

// DB wraps a single SQLite connection used by one storage domain. Each
// domain (logbook, explorer) opens its own DB; they never share a file.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
