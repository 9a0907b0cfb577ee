package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dailystar-data/police-story-go/internal/application/services"
	"github.com/dailystar-data/police-story-go/internal/infrastructure/persistence/archive"
	"github.com/dailystar-data/police-story-go/internal/infrastructure/persistence/database"
	"github.com/dailystar-data/police-story-go/pkg/config"
)

func newArchiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Write the current datasets to the archive database",
		Long: `archive builds the content store and stores its officer and absconded
datasets for both locales as one snapshot. It writes to Turso when
TURSO_DATABASE_URL and TURSO_AUTH_TOKEN are set, otherwise to the local
sqlite file at ARCHIVE_PATH.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path, _ := cmd.Flags().GetString("path"); path != "" {
				config.ArchivePath = path
			}

			c, err := buildContainer(cmd)
			if err != nil {
				return err
			}

			db, err := database.Open(cmd.Context(), database.Settings{
				Path:         config.ArchivePath,
				TursoURL:     config.TursoDatabaseURL,
				TursoToken:   config.TursoAuthToken,
				MaxOpenConns: config.DBMaxOpenConns,
				MaxIdleConns: config.DBMaxIdleConns,
			}, c.Logger)
			if err != nil {
				return err
			}
			defer db.Close()

			svc := services.NewArchiveService(archive.NewRepository(db, c.Logger), c.Logger)
			summary, err := svc.Archive(cmd.Context(), c.Store)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "archived snapshot %s to %s: %d officer rows, %d absconded rows\n",
				summary.ID, db.Driver, summary.OfficerCount, summary.AbscondedCount)
			return nil
		},
	}
	cmd.Flags().String("path", "", "sqlite archive file (default: ARCHIVE_PATH)")
	return cmd
}
