package service

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dtroode/notekeeper/internal/encryption"
	"github.com/dtroode/notekeeper/internal/logger"
	"github.com/dtroode/notekeeper/internal/model"
)

// DefaultDecryptConcurrency bounds DecryptAll when no limit is configured.
const DefaultDecryptConcurrency = 16

// KeyDeriver yields per-note keys.
type KeyDeriver interface {
	DeriveKey(ctx context.Context, id model.DocumentID, owner string) (*encryption.Key, error)
}

// Notes encrypts and decrypts note payloads with per-note keys.
type Notes struct {
	keys        KeyDeriver
	logger      *logger.Logger
	concurrency int
}

// NewNotes creates a note codec. concurrency <= 0 selects DefaultDecryptConcurrency.
func NewNotes(keys KeyDeriver, logger *logger.Logger, concurrency int) *Notes {
	if concurrency <= 0 {
		concurrency = DefaultDecryptConcurrency
	}
	return &Notes{
		keys:        keys,
		logger:      logger,
		concurrency: concurrency,
	}
}

// EncryptNote serialises and encrypts content for (id, owner).
func (s *Notes) EncryptNote(ctx context.Context, id model.DocumentID, owner string, content model.NoteContent) (string, error) {
	key, err := s.keys.DeriveKey(ctx, id, owner)
	if err != nil {
		return "", fmt.Errorf("failed to derive note key: %w", err)
	}

	plaintext, err := json.Marshal(content)
	if err != nil {
		return "", fmt.Errorf("failed to encode note: %w", err)
	}

	blob, err := encryption.Encrypt(key, plaintext)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt note: %w", err)
	}

	return blob.String(), nil
}

// DecryptNote opens a note blob. Every failure wraps model.ErrDecryptionFailed.
func (s *Notes) DecryptNote(ctx context.Context, id model.DocumentID, owner, blobText string) (model.NoteContent, error) {
	blob, err := encryption.ParseBlob(blobText)
	if err != nil {
		return model.NoteContent{}, fmt.Errorf("%w: %w", model.ErrDecryptionFailed, err)
	}

	key, err := s.keys.DeriveKey(ctx, id, owner)
	if err != nil {
		return model.NoteContent{}, fmt.Errorf("%w: %w", model.ErrDecryptionFailed, err)
	}

	plaintext, err := encryption.Decrypt(key, blob)
	if err != nil {
		return model.NoteContent{}, fmt.Errorf("%w: %w", model.ErrDecryptionFailed, err)
	}

	var content model.NoteContent
	if err := json.Unmarshal(plaintext, &content); err != nil {
		return model.NoteContent{}, fmt.Errorf("%w: malformed note payload: %v", model.ErrDecryptionFailed, err)
	}

	return content, nil
}

// DecryptAll opens every note concurrently. The result has one element per
// input note, in input order; failures become placeholders with Err set.
func (s *Notes) DecryptAll(ctx context.Context, notes []model.StoredNote) []model.DecryptedNote {
	out := make([]model.DecryptedNote, len(notes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, note := range notes {
		g.Go(func() error {
			out[i] = s.decryptOne(gctx, note)
			return nil
		})
	}
	_ = g.Wait()

	return out
}

func (s *Notes) decryptOne(ctx context.Context, note model.StoredNote) model.DecryptedNote {
	doc := model.Document{
		ID:        note.ID,
		Owner:     note.Owner,
		Timestamp: note.Timestamp,
	}

	content, err := s.DecryptNote(ctx, note.ID, note.Owner, note.Blob)
	if err != nil {
		s.logger.Warn("Skipping undecryptable note", "document_id", note.ID.String(), "error", err)
		doc.Title = model.UndecryptableTitle
		return model.DecryptedNote{Document: doc, Err: err}
	}

	doc.Title = content.Title
	doc.Content = content.Content
	doc.Tags = content.Tags

	return model.DecryptedNote{Document: doc}
}
