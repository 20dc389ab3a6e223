package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/notekeeper/internal/model"
	"github.com/dtroode/notekeeper/internal/testutil"
)

func indexOf(docs ...model.Document) model.SearchIndex {
	return NewBuilder(nil, testutil.MakeNoopLogger()).BuildIndex(docs)
}

func TestRank_ContentFrequencyOnly(t *testing.T) {
	index := indexOf(meetingNotes())

	results := Rank(index, TokenizeQuery("budget"), model.DefaultSearchOptions())

	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].MatchedTermCount)
	assert.Equal(t, 4.0, results[0].RelevanceScore)
}

func TestRank_Weights(t *testing.T) {
	index := indexOf(meetingNotes())
	opts := model.DefaultSearchOptions()

	tests := []struct {
		name    string
		query   string
		score   float64
		matched int
	}{
		// title +10, frequency 1*2
		{name: "title term", query: "meeting", score: 12, matched: 1},
		// tag +8, frequency 1*2
		{name: "tag term", query: "work", score: 10, matched: 1},
		// partial: "disc" is a substring of "discussed"
		{name: "partial term", query: "disc", score: 1, matched: 1},
		// partial: "budgets" contains "budget"
		{name: "partial reverse", query: "budgets", score: 1, matched: 1},
		// (4 + 0) / 2
		{name: "one of two terms", query: "budget zebra", score: 2, matched: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Rank(index, TokenizeQuery(tt.query), opts)
			require.Len(t, results, 1)
			assert.Equal(t, tt.score, results[0].RelevanceScore)
			assert.Equal(t, tt.matched, results[0].MatchedTermCount)
		})
	}
}

func TestRank_NoMatchExcluded(t *testing.T) {
	index := indexOf(meetingNotes())
	assert.Empty(t, Rank(index, TokenizeQuery("zebra"), model.DefaultSearchOptions()))
}

func TestRank_FieldToggles(t *testing.T) {
	index := indexOf(meetingNotes())

	opts := model.DefaultSearchOptions()
	opts.SearchContent = false
	opts.SearchTags = false

	results := Rank(index, TokenizeQuery("meeting"), opts)
	require.Len(t, results, 1)
	assert.Equal(t, 10.0, results[0].RelevanceScore)

	assert.Empty(t, Rank(index, TokenizeQuery("budget"), opts))
}

func TestRank_Monotonic(t *testing.T) {
	opts := model.DefaultSearchOptions()
	terms := TokenizeQuery("budget")
	prev := -1.0

	content := "budget"
	for i := 0; i < 5; i++ {
		doc := meetingNotes()
		doc.Content = content
		results := Rank(indexOf(doc), terms, opts)
		require.Len(t, results, 1)
		assert.GreaterOrEqual(t, results[0].RelevanceScore, prev)
		prev = results[0].RelevanceScore
		content += " budget"
	}
}

func TestRank_SortAndLimit(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	docs := []model.Document{
		{ID: model.DocumentIDFromUint64(1), Title: "Charlie", Content: "plan", Timestamp: base},
		{ID: model.DocumentIDFromUint64(2), Title: "alpha", Content: "plan plan plan", Timestamp: base.Add(48 * time.Hour)},
		{ID: model.DocumentIDFromUint64(3), Title: "Bravo", Content: "plan plan", Timestamp: base.Add(24 * time.Hour)},
	}
	index := indexOf(docs...)
	terms := TokenizeQuery("plan")

	ids := func(rs []model.SearchResult) []uint64 {
		out := make([]uint64, len(rs))
		for i, r := range rs {
			out[i] = uint64(r.DocumentID[15])
		}
		return out
	}

	opts := model.DefaultSearchOptions()
	assert.Equal(t, []uint64{2, 3, 1}, ids(Rank(index, terms, opts)))

	opts.SortBy = model.SortByDate
	assert.Equal(t, []uint64{2, 3, 1}, ids(Rank(index, terms, opts)))

	opts.SortBy = model.SortByTitle
	assert.Equal(t, []uint64{2, 3, 1}, ids(Rank(index, terms, opts)))

	opts.SortBy = model.SortByRelevance
	opts.MaxResults = 2
	assert.Equal(t, []uint64{2, 3}, ids(Rank(index, terms, opts)))
}

func TestRank_SortByDateDiffersFromRelevance(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	index := indexOf(
		model.Document{ID: model.DocumentIDFromUint64(1), Title: "x", Content: "plan plan plan", Timestamp: base},
		model.Document{ID: model.DocumentIDFromUint64(2), Title: "y", Content: "plan", Timestamp: base.Add(time.Hour)},
	)
	opts := model.DefaultSearchOptions()
	opts.SortBy = model.SortByDate

	results := Rank(index, TokenizeQuery("plan"), opts)
	require.Len(t, results, 2)
	assert.Equal(t, model.DocumentIDFromUint64(2), results[0].DocumentID)
}

func TestRank_DateRange(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	index := indexOf(
		model.Document{ID: model.DocumentIDFromUint64(1), Content: "plan", Timestamp: base},
		model.Document{ID: model.DocumentIDFromUint64(2), Content: "plan", Timestamp: base.Add(72 * time.Hour)},
	)
	opts := model.DefaultSearchOptions()
	opts.DateRange = &model.DateRange{Start: base.Add(time.Hour), End: base.Add(100 * time.Hour)}

	results := Rank(index, TokenizeQuery("plan"), opts)
	require.Len(t, results, 1)
	assert.Equal(t, model.DocumentIDFromUint64(2), results[0].DocumentID)
}
