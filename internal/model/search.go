package model

import (
	"time"
)

// SearchIndexVersion is the current layout version of SearchIndex.
const SearchIndexVersion = 1

// HistorySize bounds the search history ring.
const HistorySize = 10

// IndexEntry is the term-frequency summary of one document.
type IndexEntry struct {
	DocumentID    DocumentID     `json:"documentId"`
	Title         string         `json:"title"`
	Tags          []string       `json:"tags"`
	Timestamp     time.Time      `json:"timestamp"`
	TermFrequency map[string]int `json:"termFrequency"`
	WordCount     int            `json:"wordCount"`
}

// SearchIndex is the aggregate index over all of an owner's documents.
type SearchIndex struct {
	Version int          `json:"version"`
	BuiltAt time.Time    `json:"builtAt"`
	Entries []IndexEntry `json:"entries"`
}

// SortBy selects the result ordering.
type SortBy string

const (
	// SortByRelevance orders by descending relevance score.
	SortByRelevance SortBy = "relevance"
	// SortByDate orders by descending timestamp.
	SortByDate SortBy = "date"
	// SortByTitle orders by ascending title.
	SortByTitle SortBy = "title"
)

// DateRange bounds results by timestamp. Zero bounds are open.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range, bounds included.
func (r DateRange) Contains(t time.Time) bool {
	if !r.Start.IsZero() && t.Before(r.Start) {
		return false
	}
	if !r.End.IsZero() && t.After(r.End) {
		return false
	}
	return true
}

// SearchOptions tunes a query.
type SearchOptions struct {
	MaxResults     int
	SearchTitle    bool
	SearchTags     bool
	SearchContent  bool
	SortBy         SortBy
	DateRange      *DateRange
	IncludeContent bool
}

// DefaultSearchOptions searches every field and returns up to 20 results by relevance.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		MaxResults:    20,
		SearchTitle:   true,
		SearchTags:    true,
		SearchContent: true,
		SortBy:        SortByRelevance,
	}
}

// SearchResult is one ranked document.
type SearchResult struct {
	DocumentID       DocumentID
	Title            string
	Tags             []string
	Timestamp        time.Time
	RelevanceScore   float64
	MatchedTermCount int
	// Content is set only when requested and the note could be decrypted.
	Content *string
}

// HistoryEntry records one issued query.
type HistoryEntry struct {
	Query       string
	IssuedAt    time.Time
	ResultCount int
}

// BuildReport summarises an index rebuild.
type BuildReport struct {
	Indexed  int
	Failures []DocumentFailure
}
