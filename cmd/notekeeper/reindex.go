package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dtroode/notekeeper/internal/model"
)

var reindexPurge bool

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Rebuild and store the encrypted search index",
	Args:  cobra.NoArgs,
	RunE: runWithApp(func(ctx context.Context, a *app, cmd *cobra.Command, _ []string) error {
		if reindexPurge {
			if err := a.engine.Reset(ctx); err != nil {
				return err
			}
		}
		report, err := a.engine.Rebuild(ctx)
		if err != nil {
			return err
		}
		printReport(cmd.OutOrStdout(), report)
		return nil
	}),
}

func init() {
	reindexCmd.Flags().BoolVar(&reindexPurge, "purge", false, "delete the stored index before rebuilding")
	rootCmd.AddCommand(reindexCmd)
}

func printReport(w io.Writer, report model.BuildReport) {
	fmt.Fprintf(w, "indexed %d notes\n", report.Indexed)
	for _, f := range report.Failures {
		fmt.Fprintf(w, "  %s %s: %v\n", color.RedString("skipped"), f.ID, f.Err)
	}
}
