package main

import (
	"os"
	"path/filepath"

	"refresh-tracker/internal/ingest"
	"refresh-tracker/internal/normalize"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	var (
		entity string
		file   string
		actor  string
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a CSV file (avances, ram, ssd, repotenciacion, destruccion)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := ingest.SchemaFor(ingest.Entity(entity)); !ok {
				return errors.Wrapf(ingest.ErrUnknownEntity, "%q", entity)
			}
			cfg, db, log, err := openDB(cmd.Context())
			if err != nil {
				return err
			}

			f, err := os.Open(file)
			if err != nil {
				return errors.Wrap(err, "open csv")
			}
			defer f.Close()

			im := ingest.NewImporter(db, normalize.NewDateNormalizer(cfg.MonthFirst()), log)
			res, err := im.Import(cmd.Context(), ingest.Entity(entity), filepath.Base(file), f, actor)
			if err != nil {
				return err
			}
			return writeJSON(res)
		},
	}

	cmd.Flags().StringVar(&entity, "entity", "", "Upload entity (required)")
	cmd.Flags().StringVar(&file, "file", "", "Path to the CSV file (required)")
	cmd.Flags().StringVar(&actor, "actor", "trackerctl", "Name recorded as the uploader")
	_ = cmd.MarkFlagRequired("entity")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
