package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dtroode/notekeeper/internal/model"
)

var (
	putTitle string
	putTags  []string
	putID    string
)

var putCmd = &cobra.Command{
	Use:   "put [content...]",
	Short: "Encrypt and store a note",
	Args:  cobra.ArbitraryArgs,
	RunE: runWithApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		id := model.NewDocumentID()
		if putID != "" {
			var err error
			if id, err = model.ParseDocumentID(putID); err != nil {
				return err
			}
		}

		content := model.NoteContent{
			Title:   putTitle,
			Content: strings.Join(args, " "),
			Tags:    putTags,
		}

		blob, err := a.notes.EncryptNote(ctx, id, a.owner, content)
		if err != nil {
			return err
		}
		if err := a.client.PutNote(ctx, id, blob); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓")+" stored note "+color.CyanString(id.String()))

		a.engine.Invalidate()
		report, err := a.engine.Rebuild(ctx)
		if err != nil {
			return err
		}
		printReport(cmd.OutOrStdout(), report)
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(putCmd)
	putCmd.Flags().StringVarP(&putTitle, "title", "t", "", "Note title")
	putCmd.Flags().StringSliceVar(&putTags, "tags", nil, "Comma separated tags")
	putCmd.Flags().StringVar(&putID, "id", "", "Replace the note with this id")
}
