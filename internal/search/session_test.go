package search

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/notekeeper/internal/model"
)

// echoSearcher returns one result titled with the query.
type echoSearcher struct {
	calls atomic.Int64

	mu      sync.Mutex
	queries []string
	// block, when set, holds queries equal to blockQuery until closed.
	block      chan struct{}
	blockQuery string
	entered    chan struct{}
	enterOnce  sync.Once
	err        error
}

func (s *echoSearcher) Search(ctx context.Context, query string, _ model.SearchOptions) ([]model.SearchResult, error) {
	s.calls.Add(1)
	s.mu.Lock()
	s.queries = append(s.queries, query)
	s.mu.Unlock()

	if s.block != nil && query == s.blockQuery {
		if s.entered != nil {
			s.enterOnce.Do(func() { close(s.entered) })
		}
		<-s.block
	}
	if s.err != nil {
		return nil, s.err
	}
	body := "body of " + query
	return []model.SearchResult{{Title: query, Tags: []string{"tag"}, Content: &body}}, nil
}

func TestSession_Search_Memoises(t *testing.T) {
	engine := &echoSearcher{}
	s := NewSession(engine, time.Millisecond)
	opts := model.DefaultSearchOptions()

	first, err := s.Search(context.Background(), "budget", opts)
	require.NoError(t, err)
	second, err := s.Search(context.Background(), "  budget ", opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, engine.calls.Load())

	other := opts
	other.SortBy = model.SortByDate
	_, err = s.Search(context.Background(), "budget", other)
	require.NoError(t, err)
	assert.EqualValues(t, 2, engine.calls.Load())

	// Mutating returned results does not leak into the memo.
	first[0].Title = "changed"
	first[0].Tags[0] = "changed"
	*first[0].Content = "changed"
	third, err := s.Search(context.Background(), "budget", opts)
	require.NoError(t, err)
	assert.Equal(t, "budget", third[0].Title)
	assert.Equal(t, []string{"tag"}, third[0].Tags)
	assert.Equal(t, "body of budget", *third[0].Content)

	third[0].Tags[0] = "again"
	*third[0].Content = "again"
	fourth, err := s.Search(context.Background(), "budget", opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"tag"}, fourth[0].Tags)
	assert.Equal(t, "body of budget", *fourth[0].Content)
	assert.EqualValues(t, 2, engine.calls.Load())
}

func TestSession_Search_ErrorNotMemoised(t *testing.T) {
	engine := &echoSearcher{err: errors.New("offline")}
	s := NewSession(engine, time.Millisecond)

	_, err := s.Search(context.Background(), "budget", model.DefaultSearchOptions())
	require.Error(t, err)

	engine.err = nil
	results, err := s.Search(context.Background(), "budget", model.DefaultSearchOptions())
	require.NoError(t, err)
	assert.Len(t, results, 1)
	assert.EqualValues(t, 2, engine.calls.Load())
	assert.Len(t, s.History(), 1)
}

func TestSession_Clear(t *testing.T) {
	engine := &echoSearcher{}
	s := NewSession(engine, time.Millisecond)

	_, err := s.Search(context.Background(), "budget", model.DefaultSearchOptions())
	require.NoError(t, err)
	s.Clear()
	_, err = s.Search(context.Background(), "budget", model.DefaultSearchOptions())
	require.NoError(t, err)

	assert.EqualValues(t, 2, engine.calls.Load())
	assert.Len(t, s.History(), 1)
}

func TestSession_Clear_DuringSearch(t *testing.T) {
	engine := &echoSearcher{
		block:      make(chan struct{}),
		blockQuery: "budget",
		entered:    make(chan struct{}),
	}
	s := NewSession(engine, time.Millisecond)

	done := make(chan error, 1)
	go func() {
		_, err := s.Search(context.Background(), "budget", model.DefaultSearchOptions())
		done <- err
	}()

	select {
	case <-engine.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("search never started")
	}

	s.Clear()
	close(engine.block)
	require.NoError(t, <-done)

	_, err := s.Search(context.Background(), "budget", model.DefaultSearchOptions())
	require.NoError(t, err)
	assert.EqualValues(t, 2, engine.calls.Load())
}

func TestSession_History(t *testing.T) {
	s := NewSession(&echoSearcher{}, time.Millisecond)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		_, err := s.Search(ctx, fmt.Sprintf("query%d", i), model.DefaultSearchOptions())
		require.NoError(t, err)
	}

	history := s.History()
	require.Len(t, history, model.HistorySize)
	assert.Equal(t, "query11", history[0].Query)
	assert.Equal(t, "query2", history[len(history)-1].Query)
	assert.Equal(t, 1, history[0].ResultCount)

	_, err := s.Search(ctx, "query5", model.DefaultSearchOptions())
	require.NoError(t, err)

	history = s.History()
	require.Len(t, history, model.HistorySize)
	assert.Equal(t, "query5", history[0].Query)
	seen := make(map[string]bool)
	for _, h := range history {
		assert.False(t, seen[h.Query], "duplicate %s", h.Query)
		seen[h.Query] = true
	}

	s.ClearHistory()
	assert.Empty(t, s.History())
}

func TestSession_SearchDebounced_Coalesces(t *testing.T) {
	engine := &echoSearcher{}
	s := NewSession(engine, 30*time.Millisecond)
	defer s.Close()

	applied := make(chan string, 4)
	apply := func(results []model.SearchResult, err error) {
		assert.NoError(t, err)
		applied <- results[0].Title
	}

	s.SearchDebounced(context.Background(), "bu", model.DefaultSearchOptions(), apply)
	s.SearchDebounced(context.Background(), "bud", model.DefaultSearchOptions(), apply)
	last := s.SearchDebounced(context.Background(), "budget", model.DefaultSearchOptions(), apply)
	assert.EqualValues(t, 3, last)

	select {
	case got := <-applied:
		assert.Equal(t, "budget", got)
	case <-time.After(2 * time.Second):
		t.Fatal("debounced search never applied")
	}

	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, applied)
	assert.EqualValues(t, 1, engine.calls.Load())
}

func TestSession_SearchDebounced_DiscardsStale(t *testing.T) {
	engine := &echoSearcher{
		block:      make(chan struct{}),
		blockQuery: "slow",
		entered:    make(chan struct{}),
	}
	s := NewSession(engine, 5*time.Millisecond)
	defer s.Close()

	applied := make(chan string, 4)
	apply := func(results []model.SearchResult, _ error) {
		applied <- results[0].Title
	}

	s.SearchDebounced(context.Background(), "slow", model.DefaultSearchOptions(), apply)

	select {
	case <-engine.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("first search never started")
	}

	s.SearchDebounced(context.Background(), "fast", model.DefaultSearchOptions(), apply)

	select {
	case got := <-applied:
		assert.Equal(t, "fast", got)
	case <-time.After(2 * time.Second):
		t.Fatal("latest search never applied")
	}

	close(engine.block)
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, applied)
}

func TestSession_Close(t *testing.T) {
	engine := &echoSearcher{}
	s := NewSession(engine, 10*time.Millisecond)

	var applied atomic.Bool
	s.SearchDebounced(context.Background(), "budget", model.DefaultSearchOptions(), func([]model.SearchResult, error) {
		applied.Store(true)
	})
	s.Close()
	s.SearchDebounced(context.Background(), "budget", model.DefaultSearchOptions(), func([]model.SearchResult, error) {
		applied.Store(true)
	})

	time.Sleep(60 * time.Millisecond)
	assert.False(t, applied.Load())
	assert.Zero(t, engine.calls.Load())
}

func TestNewSession_DefaultDebounce(t *testing.T) {
	s := NewSession(&echoSearcher{}, 0)
	assert.Equal(t, DefaultDebounce, s.debounce)
}
