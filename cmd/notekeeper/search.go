package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dtroode/notekeeper/internal/model"
)

const dateLayout = "2006-01-02"

type searchFlags struct {
	max       int
	sort      string
	from      string
	to        string
	content   bool
	noTitle   bool
	noTags    bool
	noContent bool
}

var sf searchFlags

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search notes through the encrypted index",
	Args:  cobra.MinimumNArgs(1),
	RunE: runWithApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		opts, err := sf.options()
		if err != nil {
			return err
		}

		results, err := a.session.Search(ctx, strings.Join(args, " "), opts)
		if err != nil {
			return err
		}
		renderResults(cmd.OutOrStdout(), results)
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(searchCmd)
	f := searchCmd.Flags()
	f.IntVarP(&sf.max, "max", "n", 20, "Maximum number of results")
	f.StringVar(&sf.sort, "sort", string(model.SortByRelevance), "Sort by relevance, date or title")
	f.StringVar(&sf.from, "from", "", "Only notes on or after this date (YYYY-MM-DD)")
	f.StringVar(&sf.to, "to", "", "Only notes on or before this date (YYYY-MM-DD)")
	f.BoolVar(&sf.content, "content", false, "Print the decrypted body of each result")
	f.BoolVar(&sf.noTitle, "no-title", false, "Do not match titles")
	f.BoolVar(&sf.noTags, "no-tags", false, "Do not match tags")
	f.BoolVar(&sf.noContent, "no-content", false, "Do not match note bodies")
}

func (f searchFlags) options() (model.SearchOptions, error) {
	opts := model.DefaultSearchOptions()
	opts.MaxResults = f.max
	opts.SearchTitle = !f.noTitle
	opts.SearchTags = !f.noTags
	opts.SearchContent = !f.noContent
	opts.IncludeContent = f.content

	switch by := model.SortBy(f.sort); by {
	case model.SortByRelevance, model.SortByDate, model.SortByTitle:
		opts.SortBy = by
	default:
		return opts, fmt.Errorf("unknown sort %q", f.sort)
	}

	if f.from == "" && f.to == "" {
		return opts, nil
	}

	var r model.DateRange
	if f.from != "" {
		start, err := time.Parse(dateLayout, f.from)
		if err != nil {
			return opts, fmt.Errorf("invalid --from: %w", err)
		}
		r.Start = start
	}
	if f.to != "" {
		end, err := time.Parse(dateLayout, f.to)
		if err != nil {
			return opts, fmt.Errorf("invalid --to: %w", err)
		}
		// whole day, inclusive
		r.End = end.Add(24*time.Hour - time.Nanosecond)
	}
	opts.DateRange = &r

	return opts, nil
}

func renderResults(w io.Writer, results []model.SearchResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "no matches")
		return
	}
	for _, r := range results {
		fmt.Fprintf(w, "%s  %s  %s  %s\n",
			color.CyanString("%6.2f", r.RelevanceScore),
			r.Timestamp.Format(dateLayout),
			r.Title,
			color.YellowString(strings.Join(r.Tags, ",")))
		if r.Content != nil {
			fmt.Fprintf(w, "        %s\n", *r.Content)
		}
	}
}
