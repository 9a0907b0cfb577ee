package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dailystar-data/police-story-go/internal/application/services"
	domainservices "github.com/dailystar-data/police-story-go/internal/domain/services"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Build both locale trees and print the integrity report",
		Long: `validate builds the content store exactly as serve does and prints every
integrity finding. It exits non-zero when the store cannot be built or the
report contains errors.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			c, err := buildContainer(cmd)
			if err != nil {
				var integrityErr *services.IntegrityError
				if errors.As(err, &integrityErr) {
					fmt.Fprintln(out, "store rejected")
					printReport(out, integrityErr.Report)
					return fmt.Errorf("content has %d integrity error(s)", len(integrityErr.Report.Errors()))
				}
				return err
			}

			report := c.Store.Report()
			fmt.Fprintf(out, "snapshot %s\n", c.Store.SnapshotID())
			printReport(out, report)
			return nil
		},
	}
}

func printReport(out io.Writer, report *domainservices.IntegrityReport) {
	fmt.Fprintf(out, "report %s\n", report.ID)
	for _, issue := range report.Issues {
		loc := "-"
		if issue.Locale != "" {
			loc = string(issue.Locale)
		}
		fmt.Fprintf(out, "%-7s %-22s %-2s %s\n", issue.Severity, issue.Code, loc, issue.Message)
	}
	fmt.Fprintf(out, "%d error(s), %d warning(s)\n", len(report.Errors()), len(report.Warnings()))
}
