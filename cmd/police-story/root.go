package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dailystar-data/police-story-go/internal/application/container"
	"github.com/dailystar-data/police-story-go/internal/infrastructure/observability/logging"
	"github.com/dailystar-data/police-story-go/pkg/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "police-story",
		Short: "Bilingual content service for the police command responsibility story",
		Long: `police-story builds the English and Bengali content trees for the story,
serves them over HTTP, validates them, archives the datasets and renders
the article to static HTML.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("dataset-dir", "", "directory holding officers_<locale>.json and absconded_<locale>.json (default: embedded datasets)")
	root.PersistentFlags().BoolP("verbose", "v", false, "log content and validation details to stderr")

	root.AddCommand(
		newServeCmd(),
		newValidateCmd(),
		newArchiveCmd(),
		newRenderCmd(),
	)
	return root
}

// buildContainer applies the shared flags on top of pkg/config and builds
// the content store.
func buildContainer(cmd *cobra.Command) (*container.Container, error) {
	if dir, _ := cmd.Flags().GetString("dataset-dir"); dir != "" {
		config.DatasetDir = dir
	}

	level := slog.LevelWarn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		Writer:       cmd.ErrOrStderr(),
		DefaultLevel: level,
	})
	if err != nil {
		return nil, err
	}
	return container.NewFromConfig(logger)
}
