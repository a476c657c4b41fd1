package main

import (
	"refresh-tracker/internal/database"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, log, err := openDB(cmd.Context())
			if err != nil {
				return err
			}
			if seed {
				if err := database.SeedAdmin(db, cfg.AdminUsername, cfg.AdminPassword, log); err != nil {
					return err
				}
			}
			log.Info("schema is up to date")
			return nil
		},
	}

	cmd.Flags().BoolVar(&seed, "seed-admin", true, "Create the configured admin if no admin exists")
	return cmd
}
