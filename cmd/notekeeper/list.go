package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dtroode/notekeeper/internal/model"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes, including ones that cannot be decrypted",
	Args:  cobra.NoArgs,
	RunE: runWithApp(func(ctx context.Context, a *app, cmd *cobra.Command, _ []string) error {
		stored, err := a.client.GetNotes(ctx)
		if err != nil {
			return err
		}
		renderNotes(cmd.OutOrStdout(), a.notes.DecryptAll(ctx, stored))
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func renderNotes(w io.Writer, notes []model.DecryptedNote) {
	for _, n := range notes {
		date := n.Timestamp.Format(dateLayout)
		if n.Undecryptable() {
			fmt.Fprintf(w, "%s  %s  %s\n", n.ID, date, color.RedString(model.UndecryptableTitle))
			continue
		}
		line := fmt.Sprintf("%s  %s  %s", n.ID, date, n.Title)
		if len(n.Tags) > 0 {
			line += "  " + color.YellowString("#"+strings.Join(n.Tags, " #"))
		}
		fmt.Fprintln(w, line)
	}
}
