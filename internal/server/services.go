package server

import (
	"refresh-tracker/internal/config"
	"refresh-tracker/internal/conformity"
	"refresh-tracker/internal/destruction"
	"refresh-tracker/internal/equipment"
	"refresh-tracker/internal/filestore"
	"refresh-tracker/internal/handlers"
	"refresh-tracker/internal/ingest"
	"refresh-tracker/internal/inventory"
	"refresh-tracker/internal/lifecycle"
	"refresh-tracker/internal/normalize"
	"refresh-tracker/internal/repotentiation"
	"refresh-tracker/internal/users"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NewServices собирает сервисы поверх одного подключения к БД.
func NewServices(cfg *config.Config, db *gorm.DB, log *logrus.Logger) handlers.Services {
	dates := normalize.NewDateNormalizer(cfg.MonthFirst())
	files := filestore.New(cfg.UploadsDir)
	eq := equipment.NewService(db, dates)

	return handlers.Services{
		Users:          users.NewService(db, log),
		Equipment:      eq,
		Inventory:      inventory.NewService(db, log),
		Lifecycle:      lifecycle.NewTracker(db, log),
		Repotentiation: repotentiation.NewService(db, dates, log),
		Destruction:    destruction.NewService(db, files, dates, cfg.MaxVideoSize, log),
		Conformity:     conformity.NewService(db, files, eq, cfg.MaxActaSize, log),
		Importer:       ingest.NewImporter(db, dates, log),
	}
}
