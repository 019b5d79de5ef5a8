package service

import (
	"context"

	"github.com/pbianchi/moto-soul/models"
)

// LogbookBackupService exports and restores the complete logbook domain
// through the repository's public operations.
type LogbookBackupService interface {
	Export(ctx context.Context) (models.LogbookSnapshot, error)
	Import(ctx context.Context, snapshot models.LogbookSnapshot) error
}

// ExplorerBackupService exports and restores the complete explorer domain.
type ExplorerBackupService interface {
	Export(ctx context.Context) (models.ExplorerSnapshot, error)
	Import(ctx context.Context, snapshot models.ExplorerSnapshot) error
}
