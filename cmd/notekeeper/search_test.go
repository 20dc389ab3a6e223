package main

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/notekeeper/internal/model"
)

func init() {
	color.NoColor = true
}

func TestSearchFlags_Options(t *testing.T) {
	opts, err := searchFlags{max: 5, sort: "date"}.options()
	require.NoError(t, err)
	assert.Equal(t, 5, opts.MaxResults)
	assert.Equal(t, model.SortByDate, opts.SortBy)
	assert.True(t, opts.SearchTitle)
	assert.True(t, opts.SearchTags)
	assert.True(t, opts.SearchContent)
	assert.Nil(t, opts.DateRange)

	opts, err = searchFlags{max: 20, sort: "relevance", noTitle: true, noTags: true, content: true}.options()
	require.NoError(t, err)
	assert.False(t, opts.SearchTitle)
	assert.False(t, opts.SearchTags)
	assert.True(t, opts.SearchContent)
	assert.True(t, opts.IncludeContent)

	_, err = searchFlags{sort: "size"}.options()
	assert.Error(t, err)
}

func TestSearchFlags_DateRange(t *testing.T) {
	opts, err := searchFlags{sort: "relevance", from: "2024-03-01", to: "2024-03-31"}.options()
	require.NoError(t, err)
	require.NotNil(t, opts.DateRange)

	assert.True(t, opts.DateRange.Contains(time.Date(2024, 3, 31, 23, 59, 0, 0, time.UTC)))
	assert.False(t, opts.DateRange.Contains(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, opts.DateRange.Contains(time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)))

	opts, err = searchFlags{sort: "relevance", from: "2024-03-01"}.options()
	require.NoError(t, err)
	assert.True(t, opts.DateRange.End.IsZero())

	_, err = searchFlags{sort: "relevance", to: "31/03/2024"}.options()
	assert.Error(t, err)
}

func TestRenderResults(t *testing.T) {
	var buf bytes.Buffer
	renderResults(&buf, nil)
	assert.Equal(t, "no matches\n", buf.String())

	body := "weekly budget review"
	buf.Reset()
	renderResults(&buf, []model.SearchResult{{
		DocumentID:     model.DocumentIDFromUint64(1),
		Title:          "Budget",
		Tags:           []string{"work", "finance"},
		Timestamp:      time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
		RelevanceScore: 4,
		Content:        &body,
	}})
	out := buf.String()
	assert.Contains(t, out, "  4.00  2024-05-02  Budget  work,finance")
	assert.Contains(t, out, body)
}

func TestRenderNotes_ShowsPlaceholders(t *testing.T) {
	ts := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	notes := []model.DecryptedNote{
		{Document: model.Document{ID: model.DocumentIDFromUint64(1), Timestamp: ts, Title: "Groceries", Tags: []string{"home"}}},
		{Document: model.Document{ID: model.DocumentIDFromUint64(2), Timestamp: ts, Title: model.UndecryptableTitle}, Err: errors.New("bad blob")},
	}

	var buf bytes.Buffer
	renderNotes(&buf, notes)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Equal(t, "1  2024-01-02  Groceries  #home", string(lines[0]))
	assert.Equal(t, "2  2024-01-02  "+model.UndecryptableTitle, string(lines[1]))
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, model.BuildReport{
		Indexed:  3,
		Failures: []model.DocumentFailure{{ID: model.DocumentIDFromUint64(9), Err: model.ErrDecryptionFailed}},
	})
	assert.Contains(t, buf.String(), "indexed 3 notes")
	assert.Contains(t, buf.String(), "skipped 9: decryption failed")
}
