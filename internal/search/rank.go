package search

import (
	"sort"
	"strings"

	"github.com/dtroode/notekeeper/internal/model"
)

const (
	titleMatchScore   = 10
	tagMatchScore     = 8
	frequencyWeight   = 2
	partialMatchScore = 1
)

// Rank scores every entry of index against the query terms, filters, sorts
// and truncates according to opts.
func Rank(index model.SearchIndex, terms []string, opts model.SearchOptions) []model.SearchResult {
	limit := opts.MaxResults
	if limit <= 0 {
		limit = model.DefaultSearchOptions().MaxResults
	}

	results := make([]model.SearchResult, 0)
	for _, entry := range index.Entries {
		total, matched := scoreEntry(entry, terms, opts)
		if matched == 0 {
			continue
		}
		if opts.DateRange != nil && !opts.DateRange.Contains(entry.Timestamp) {
			continue
		}

		results = append(results, model.SearchResult{
			DocumentID:       entry.DocumentID,
			Title:            entry.Title,
			Tags:             append([]string(nil), entry.Tags...),
			Timestamp:        entry.Timestamp,
			RelevanceScore:   float64(total) / float64(max(len(terms), 1)),
			MatchedTermCount: matched,
		})
	}

	sortResults(results, opts.SortBy)

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func scoreEntry(entry model.IndexEntry, terms []string, opts model.SearchOptions) (total, matched int) {
	title := strings.ToLower(entry.Title)

	for _, term := range terms {
		score := 0

		if opts.SearchTitle && strings.Contains(title, term) {
			score += titleMatchScore
		}
		if opts.SearchTags && tagsContain(entry.Tags, term) {
			score += tagMatchScore
		}
		if opts.SearchContent {
			if freq, ok := entry.TermFrequency[term]; ok {
				score += freq * frequencyWeight
			} else if partialMatch(entry.TermFrequency, term) {
				score += partialMatchScore
			}
		}

		if score > 0 {
			total += score
			matched++
		}
	}

	return total, matched
}

func tagsContain(tags []string, term string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func partialMatch(tf map[string]int, term string) bool {
	for indexed := range tf {
		if strings.Contains(indexed, term) || strings.Contains(term, indexed) {
			return true
		}
	}
	return false
}

func sortResults(results []model.SearchResult, by model.SortBy) {
	switch by {
	case model.SortByDate:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Timestamp.After(results[j].Timestamp)
		})
	case model.SortByTitle:
		sort.SliceStable(results, func(i, j int) bool {
			return strings.ToLower(results[i].Title) < strings.ToLower(results[j].Title)
		})
	default:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].RelevanceScore > results[j].RelevanceScore
		})
	}
}
