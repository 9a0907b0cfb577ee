package main

import (
	"github.com/spf13/cobra"

	"github.com/dailystar-data/police-story-go/internal/application/startup"
	"github.com/dailystar-data/police-story-go/pkg/config"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Build the content store and serve the API and rendered article",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dir, _ := cmd.Flags().GetString("dataset-dir"); dir != "" {
				config.DatasetDir = dir
			}
			if port, _ := cmd.Flags().GetString("port"); port != "" {
				config.Port = port
			}
			return startup.Initialize(cmd.Context())
		},
	}
	cmd.Flags().String("port", "", "listen port (default: PORT or 8080)")
	return cmd
}
