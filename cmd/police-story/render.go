package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the article for one locale to static HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tag, _ := cmd.Flags().GetString("locale")
			outPath, _ := cmd.Flags().GetString("out")

			c, err := buildContainer(cmd)
			if err != nil {
				return err
			}
			lc, err := c.Store.Get(tag)
			if err != nil {
				return err
			}

			if outPath == "" || outPath == "-" {
				return c.Renderer.RenderArticle(cmd.OutOrStdout(), lc)
			}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", outPath, err)
			}
			if err := c.Renderer.RenderArticle(f, lc); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to close %s: %w", outPath, err)
			}
			return nil
		},
	}
	cmd.Flags().StringP("locale", "l", "en", "locale key or tag to render")
	cmd.Flags().StringP("out", "o", "-", "output file, - for stdout")
	return cmd
}
