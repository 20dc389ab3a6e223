package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dtroode/notekeeper/internal/logger"
	"github.com/dtroode/notekeeper/internal/model"
)

// State is the lifecycle state of an Engine's index.
type State int

const (
	// StateNotIndexed means no index is loaded.
	StateNotIndexed State = iota
	// StateIndexing means a rebuild is running.
	StateIndexing
	// StateIndexed means an index is loaded and queries run against it.
	StateIndexed
	// StateError means the last rebuild failed. It behaves like StateNotIndexed.
	StateError
)

func (s State) String() string {
	switch s {
	case StateNotIndexed:
		return "not_indexed"
	case StateIndexing:
		return "indexing"
	case StateIndexed:
		return "indexed"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// NoteOpener decrypts a single note.
type NoteOpener interface {
	DecryptNote(ctx context.Context, id model.DocumentID, owner, blob string) (model.NoteContent, error)
}

// Engine answers queries for one owner against the encrypted index.
type Engine struct {
	owner   string
	store   model.NoteStore
	builder *Builder
	codec   *IndexCodec
	notes   NoteOpener
	logger  *logger.Logger

	buildMu sync.Mutex

	mu       sync.Mutex
	state    State
	index    *model.SearchIndex
	listener func(from, to State)
}

// NewEngine creates a query engine in StateNotIndexed.
func NewEngine(
	owner string,
	store model.NoteStore,
	builder *Builder,
	codec *IndexCodec,
	notes NoteOpener,
	logger *logger.Logger,
) *Engine {
	return &Engine{
		owner:   owner,
		store:   store,
		builder: builder,
		codec:   codec,
		notes:   notes,
		logger:  logger,
		state:   StateNotIndexed,
	}
}

// SetStateListener registers fn to be called on every state transition.
func (e *Engine) SetStateListener(fn func(from, to State)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listener = fn
}

// State returns the current state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Invalidate drops the loaded index so the next query reloads it.
func (e *Engine) Invalidate() {
	e.mu.Lock()
	e.index = nil
	e.mu.Unlock()
	e.transition(StateNotIndexed)
}

func (e *Engine) transition(to State) {
	e.mu.Lock()
	from := e.state
	e.state = to
	fn := e.listener
	e.mu.Unlock()

	if fn != nil && from != to {
		fn(from, to)
	}
}

// Rebuild fetches and decrypts every note, builds a fresh index and stores
// it. Undecryptable notes are reported, not fatal.
func (e *Engine) Rebuild(ctx context.Context) (model.BuildReport, error) {
	e.buildMu.Lock()
	defer e.buildMu.Unlock()

	return e.rebuildLocked(ctx)
}

// rebuildLocked must be called with buildMu held.
func (e *Engine) rebuildLocked(ctx context.Context) (model.BuildReport, error) {
	e.transition(StateIndexing)

	index, report, err := e.rebuild(ctx)
	if err != nil {
		e.transition(StateError)
		e.logger.Error("Search index rebuild failed", "error", err)
		return report, fmt.Errorf("%w: %w", model.ErrIndexBuildFailed, err)
	}

	e.mu.Lock()
	e.index = &index
	e.mu.Unlock()
	e.transition(StateIndexed)

	e.logger.Info("Search index rebuilt", "indexed", report.Indexed, "skipped", len(report.Failures))

	return report, nil
}

// Reset deletes the stored index and drops the loaded one. The next query
// builds from scratch.
func (e *Engine) Reset(ctx context.Context) error {
	e.buildMu.Lock()
	defer e.buildMu.Unlock()

	if err := e.store.DeleteSearchIndex(ctx); err != nil {
		return fmt.Errorf("failed to delete index: %w", err)
	}

	e.mu.Lock()
	e.index = nil
	e.mu.Unlock()
	e.transition(StateNotIndexed)

	e.logger.Info("Search index reset")

	return nil
}

func (e *Engine) rebuild(ctx context.Context) (model.SearchIndex, model.BuildReport, error) {
	notes, err := e.store.GetNotes(ctx)
	if err != nil {
		return model.SearchIndex{}, model.BuildReport{}, fmt.Errorf("failed to fetch notes: %w", err)
	}

	index, report := e.builder.Rebuild(ctx, notes)

	if err := e.codec.Save(ctx, e.owner, index); err != nil {
		return model.SearchIndex{}, report, err
	}

	return index, report, nil
}

func (e *Engine) loadedIndex() *model.SearchIndex {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.index
}

// ensureIndex returns the loaded index, loading it or, when none is stored,
// building it. Concurrent callers share one load or build.
func (e *Engine) ensureIndex(ctx context.Context) (*model.SearchIndex, error) {
	if idx := e.loadedIndex(); idx != nil {
		return idx, nil
	}

	e.buildMu.Lock()
	defer e.buildMu.Unlock()

	if idx := e.loadedIndex(); idx != nil {
		return idx, nil
	}

	index, err := e.codec.Load(ctx, e.owner)
	if err == nil {
		e.mu.Lock()
		e.index = &index
		e.mu.Unlock()
		e.transition(StateIndexed)
		return &index, nil
	}
	if !errors.Is(err, model.ErrIndexNotFound) {
		return nil, fmt.Errorf("failed to load index: %w", err)
	}

	e.logger.Info("No search index stored, building")
	if _, err := e.rebuildLocked(ctx); err != nil {
		return nil, err
	}

	idx := e.loadedIndex()
	if idx == nil {
		return nil, model.ErrIndexBuildFailed
	}
	return idx, nil
}

// Search ranks the owner's documents against query.
func (e *Engine) Search(ctx context.Context, query string, opts model.SearchOptions) ([]model.SearchResult, error) {
	terms := TokenizeQuery(query)
	if len([]rune(strings.TrimSpace(query))) < 2 || len(terms) == 0 {
		return []model.SearchResult{}, nil
	}

	index, err := e.ensureIndex(ctx)
	if err != nil {
		return nil, err
	}

	results := Rank(*index, terms, opts)

	if opts.IncludeContent && len(results) > 0 {
		e.attachContent(ctx, results)
	}

	return results, nil
}

// attachContent decrypts bodies for results only. A note that cannot be
// opened keeps its result without content.
func (e *Engine) attachContent(ctx context.Context, results []model.SearchResult) {
	notes, err := e.store.GetNotes(ctx)
	if err != nil {
		e.logger.Warn("Failed to fetch notes for result content", "error", err)
		return
	}

	byID := make(map[model.DocumentID]model.StoredNote, len(notes))
	for _, n := range notes {
		byID[n.ID] = n
	}

	for i := range results {
		note, ok := byID[results[i].DocumentID]
		if !ok {
			continue
		}
		content, err := e.notes.DecryptNote(ctx, note.ID, note.Owner, note.Blob)
		if err != nil {
			e.logger.Warn("Failed to decrypt result content", "document_id", note.ID.String(), "error", err)
			continue
		}
		body := content.Content
		results[i].Content = &body
	}
}
