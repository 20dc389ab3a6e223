package search

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dtroode/notekeeper/internal/model"
)

// DefaultDebounce is the quiet period used when none is configured.
const DefaultDebounce = 300 * time.Millisecond

// Searcher runs one query.
type Searcher interface {
	Search(ctx context.Context, query string, opts model.SearchOptions) ([]model.SearchResult, error)
}

// ApplyFunc receives the results of a debounced search that is still the latest one.
type ApplyFunc func(results []model.SearchResult, err error)

// Session memoises results, keeps a bounded history and debounces live search.
type Session struct {
	engine   Searcher
	debounce time.Duration
	now      func() time.Time

	mu      sync.Mutex
	memo    map[string][]model.SearchResult
	history []model.HistoryEntry
	seq     uint64
	gen     uint64
	timer   *time.Timer
	closed  bool
}

// NewSession creates a session. debounce <= 0 selects DefaultDebounce.
func NewSession(engine Searcher, debounce time.Duration) *Session {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Session{
		engine:   engine,
		debounce: debounce,
		now:      time.Now,
		memo:     make(map[string][]model.SearchResult),
	}
}

// Search returns memoised results for (query, opts) or runs the query.
func (s *Session) Search(ctx context.Context, query string, opts model.SearchOptions) ([]model.SearchResult, error) {
	query = strings.TrimSpace(query)
	key := memoKey(query, opts)

	s.mu.Lock()
	cached, ok := s.memo[key]
	gen := s.gen
	s.mu.Unlock()
	if ok {
		s.record(query, len(cached))
		return cloneResults(cached), nil
	}

	results, err := s.engine.Search(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	// A Clear during the query makes its results stale for the memo.
	s.mu.Lock()
	if s.gen == gen {
		s.memo[key] = cloneResults(results)
	}
	s.mu.Unlock()
	s.record(query, len(results))

	return results, nil
}

// SearchDebounced schedules query after the quiet period. A newer call
// cancels a pending one; apply only sees results of the latest call.
// It returns the sequence number of the scheduled request.
func (s *Session) SearchDebounced(ctx context.Context, query string, opts model.SearchOptions, apply ApplyFunc) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	seq := s.seq

	if s.timer != nil {
		s.timer.Stop()
	}
	if s.closed {
		return seq
	}

	s.timer = time.AfterFunc(s.debounce, func() {
		if !s.isLatest(seq) {
			return
		}
		results, err := s.Search(ctx, query, opts)
		if !s.isLatest(seq) {
			return
		}
		apply(results, err)
	})

	return seq
}

func (s *Session) isLatest(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed && seq == s.seq
}

// Clear drops memoised results and supersedes any pending or in-flight debounced search.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.memo = make(map[string][]model.SearchResult)
	s.gen++
	s.seq++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// History returns recent queries, newest first.
func (s *Session) History() []model.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.HistoryEntry(nil), s.history...)
}

// ClearHistory empties the history.
func (s *Session) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}

// Close stops the pending debounced search. The session is unusable for
// debounced searches afterwards.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Session) record(query string, count int) {
	if query == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := model.HistoryEntry{Query: query, IssuedAt: s.now(), ResultCount: count}
	history := make([]model.HistoryEntry, 0, model.HistorySize)
	history = append(history, entry)
	for _, h := range s.history {
		if h.Query == query {
			continue
		}
		if len(history) == model.HistorySize {
			break
		}
		history = append(history, h)
	}
	s.history = history
}

func memoKey(query string, opts model.SearchOptions) string {
	var dr string
	if opts.DateRange != nil {
		dr = opts.DateRange.Start.Format(time.RFC3339Nano) + ".." + opts.DateRange.End.Format(time.RFC3339Nano)
	}
	return fmt.Sprintf("%s\x00%d|%t|%t|%t|%s|%s|%t",
		query, opts.MaxResults, opts.SearchTitle, opts.SearchTags, opts.SearchContent,
		opts.SortBy, dr, opts.IncludeContent)
}

func cloneResults(in []model.SearchResult) []model.SearchResult {
	out := make([]model.SearchResult, len(in))
	copy(out, in)
	for i := range out {
		if out[i].Tags != nil {
			out[i].Tags = append([]string(nil), out[i].Tags...)
		}
		if out[i].Content != nil {
			content := *out[i].Content
			out[i].Content = &content
		}
	}
	return out
}
