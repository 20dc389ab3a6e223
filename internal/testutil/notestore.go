package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/dtroode/notekeeper/internal/model"
)

// NoteStore is an in-memory model.NoteStore for a single owner.
type NoteStore struct {
	Owner string

	mu    sync.Mutex
	notes []model.StoredNote
	index string

	GetNotesCalls          int
	GetSearchIndexCalls    int
	PutSearchIndexCalls    int
	DeleteSearchIndexCalls int

	GetNotesErr error
}

// NewNoteStore returns an empty store for owner.
func NewNoteStore(owner string) *NoteStore {
	return &NoteStore{Owner: owner}
}

// PutNote implements model.NoteStore.
func (s *NoteStore) PutNote(_ context.Context, id model.DocumentID, blob string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes[i].Blob = blob
			s.notes[i].Timestamp = time.Now()
			return nil
		}
	}
	s.notes = append(s.notes, model.StoredNote{ID: id, Owner: s.Owner, Blob: blob, Timestamp: time.Now()})
	return nil
}

// AddRaw stores a note as-is, including a chosen timestamp.
func (s *NoteStore) AddRaw(note model.StoredNote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = append(s.notes, note)
}

// GetNotes implements model.NoteStore.
func (s *NoteStore) GetNotes(_ context.Context) ([]model.StoredNote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.GetNotesCalls++
	if s.GetNotesErr != nil {
		return nil, s.GetNotesErr
	}
	return append([]model.StoredNote(nil), s.notes...), nil
}

// PutSearchIndex implements model.NoteStore.
func (s *NoteStore) PutSearchIndex(_ context.Context, blob string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.PutSearchIndexCalls++
	s.index = blob
	return nil
}

// GetSearchIndex implements model.NoteStore.
func (s *NoteStore) GetSearchIndex(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.GetSearchIndexCalls++
	if s.index == "" {
		return "", model.ErrNotFound
	}
	return s.index, nil
}

// DeleteSearchIndex implements model.NoteStore.
func (s *NoteStore) DeleteSearchIndex(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.DeleteSearchIndexCalls++
	s.index = ""
	return nil
}

// Index returns the stored index blob.
func (s *NoteStore) Index() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}
