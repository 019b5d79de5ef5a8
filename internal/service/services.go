package service

import (
	"github.com/pbianchi/moto-soul/internal/config"
	"github.com/pbianchi/moto-soul/internal/logger"
	"github.com/pbianchi/moto-soul/internal/store"
)

type Services struct {
	LogbookBackup  LogbookBackupService
	ExplorerBackup ExplorerBackupService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		LogbookBackup:  NewLogbookBackupService(storages.Logbook, cfg.App.Version, logger),
		ExplorerBackup: NewExplorerBackupService(storages.Explorer, cfg.App.Version, logger),
	}
}
