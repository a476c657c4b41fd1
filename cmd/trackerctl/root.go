package main

import (
	"context"
	"encoding/json"
	"os"

	"refresh-tracker/internal/config"
	"refresh-tracker/internal/database"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "trackerctl",
		Short:        "Refresh tracker maintenance tools",
		SilenceUsage: true,
	}
	cmd.AddCommand(newMigrateCmd(), newImportCmd(), newCreateUserCmd())
	return cmd
}

// openDB читает конфиг, подключается и мигрирует схему.
func openDB(ctx context.Context) (*config.Config, *gorm.DB, *logrus.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	log := cfg.NewLogger()
	db, err := database.Connect(ctx, cfg.DBDriver, cfg.DBDSN, log)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, nil, nil, err
	}
	return cfg, db, log, nil
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
