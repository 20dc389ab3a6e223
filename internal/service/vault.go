package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dtroode/notekeeper/internal/encryption"
	"github.com/dtroode/notekeeper/internal/logger"
	"github.com/dtroode/notekeeper/internal/model"
)

// maxIndexBlobSize caps a stored search index.
const maxIndexBlobSize = 64 << 20

// Vault is the server side of the note store. It keeps opaque blobs and
// never sees keys.
type Vault struct {
	noteStore model.NoteRepository
	storage   model.Storage
	logger    *logger.Logger
	now       func() time.Time
}

// NewVault creates a Vault over a note repository and an object store for index blobs.
func NewVault(noteStore model.NoteRepository, storage model.Storage, logger *logger.Logger) *Vault {
	return &Vault{
		noteStore: noteStore,
		storage:   storage,
		logger:    logger,
		now:       time.Now,
	}
}

// PutNote creates or replaces the note id of owner.
func (s *Vault) PutNote(ctx context.Context, owner string, id model.DocumentID, blob string) (model.StoredNote, error) {
	if owner == "" {
		return model.StoredNote{}, fmt.Errorf("%w: owner is empty", model.ErrInvalidArgument)
	}
	if id == model.IndexDocumentID {
		return model.StoredNote{}, fmt.Errorf("%w: document id is reserved", model.ErrInvalidArgument)
	}
	if _, err := encryption.ParseBlob(blob); err != nil {
		return model.StoredNote{}, fmt.Errorf("%w: %w", model.ErrInvalidArgument, err)
	}

	note, err := s.noteStore.Upsert(ctx, model.StoredNote{
		ID:        id,
		Owner:     owner,
		Blob:      blob,
		Timestamp: s.now().UTC(),
	})
	if err != nil {
		return model.StoredNote{}, fmt.Errorf("failed to save note: %w", err)
	}

	s.logger.Debug("Vault service: note stored",
		"owner", owner,
		"document_id", id.String())

	return note, nil
}

// GetNotes returns every note of owner.
func (s *Vault) GetNotes(ctx context.Context, owner string) ([]model.StoredNote, error) {
	if owner == "" {
		return nil, fmt.Errorf("%w: owner is empty", model.ErrInvalidArgument)
	}

	notes, err := s.noteStore.GetByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get notes by owner: %w", err)
	}

	return notes, nil
}

// PutSearchIndex replaces the stored search index of owner.
func (s *Vault) PutSearchIndex(ctx context.Context, owner string, blob string) error {
	if owner == "" {
		return fmt.Errorf("%w: owner is empty", model.ErrInvalidArgument)
	}
	if len(blob) > maxIndexBlobSize {
		return fmt.Errorf("%w: index blob too large", model.ErrInvalidArgument)
	}
	if _, err := encryption.ParseBlob(blob); err != nil {
		return fmt.Errorf("%w: %w", model.ErrInvalidArgument, err)
	}

	key := IndexObjectKey(owner)
	if err := s.storage.Upload(ctx, key, bytes.NewReader([]byte(blob)), int64(len(blob))); err != nil {
		return fmt.Errorf("failed to upload index: %w", err)
	}

	s.logger.Debug("Vault service: search index stored",
		"owner", owner,
		"size", len(blob))

	return nil
}

// GetSearchIndex returns the stored search index of owner, or model.ErrNotFound.
func (s *Vault) GetSearchIndex(ctx context.Context, owner string) (string, error) {
	if owner == "" {
		return "", fmt.Errorf("%w: owner is empty", model.ErrInvalidArgument)
	}

	key := IndexObjectKey(owner)
	exists, err := s.storage.Exists(ctx, key)
	if err != nil {
		return "", fmt.Errorf("failed to stat index: %w", err)
	}
	if !exists {
		return "", model.ErrNotFound
	}

	reader, err := s.storage.Download(ctx, key)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", model.ErrNotFound
		}
		return "", fmt.Errorf("failed to download index: %w", err)
	}
	defer func() {
		if err := reader.Close(); err != nil {
			s.logger.Error("Failed to close index reader", "error", err)
		}
	}()

	data, err := io.ReadAll(io.LimitReader(reader, maxIndexBlobSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read index: %w", err)
	}
	if len(data) > maxIndexBlobSize {
		return "", fmt.Errorf("stored index exceeds %d bytes", maxIndexBlobSize)
	}

	return string(data), nil
}

// DeleteSearchIndex removes the owner's stored index. Removing an absent index is not an error.
func (s *Vault) DeleteSearchIndex(ctx context.Context, owner string) error {
	if owner == "" {
		return fmt.Errorf("%w: owner is empty", model.ErrInvalidArgument)
	}

	if err := s.storage.Delete(ctx, IndexObjectKey(owner)); err != nil {
		return fmt.Errorf("failed to delete index: %w", err)
	}

	s.logger.Info("Search index deleted", "owner", owner)
	return nil
}

// IndexObjectKey is the object key of owner's index blob. The owner is hashed
// so object names carry no principal.
func IndexObjectKey(owner string) string {
	sum := sha256.Sum256([]byte(owner))
	return "index/" + hex.EncodeToString(sum[:])
}
