package model

import (
	"context"
	"time"
)

// UndecryptableTitle is shown in listings in place of a note that could not be opened.
const UndecryptableTitle = "[undecryptable]"

// NoteStore is the remote encrypted blob store. The owner is implied by the caller's identity.
type NoteStore interface {
	PutNote(ctx context.Context, id DocumentID, blob string) error
	GetNotes(ctx context.Context) ([]StoredNote, error)
	PutSearchIndex(ctx context.Context, blob string) error
	// GetSearchIndex returns ErrNotFound when no index has been stored.
	GetSearchIndex(ctx context.Context) (string, error)
	// DeleteSearchIndex removes the stored index, if any.
	DeleteSearchIndex(ctx context.Context) error
}

// NoteRepository persists notes on the server side.
type NoteRepository interface {
	Upsert(ctx context.Context, note StoredNote) (StoredNote, error)
	GetByOwner(ctx context.Context, owner string) ([]StoredNote, error)
}

// StoredNote is a note as the remote store sees it: an opaque blob.
type StoredNote struct {
	ID        DocumentID
	Owner     string
	Blob      string
	Timestamp time.Time
}

// NoteContent is the plaintext payload carried inside a note blob.
type NoteContent struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// Document is a decrypted note.
type Document struct {
	ID        DocumentID
	Owner     string
	Timestamp time.Time
	Title     string
	Content   string
	Tags      []string
}

// DecryptedNote is the outcome of opening one stored note. Err is set when the
// note could not be opened and Document then holds a placeholder.
type DecryptedNote struct {
	Document
	Err error
}

// Undecryptable reports whether the note is a placeholder.
func (n DecryptedNote) Undecryptable() bool {
	return n.Err != nil
}

// DocumentFailure records a note skipped during a batch operation.
type DocumentFailure struct {
	ID  DocumentID
	Err error
}
