package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dtroode/notekeeper/internal/encryption"
	"github.com/dtroode/notekeeper/internal/model"
)

// IndexKeyDeriver yields the index-scope key of an owner.
type IndexKeyDeriver interface {
	DeriveIndexKey(ctx context.Context, owner string) (*encryption.Key, error)
}

// IndexCodec persists the search index as one encrypted blob.
type IndexCodec struct {
	store model.NoteStore
	keys  IndexKeyDeriver
}

// NewIndexCodec creates an IndexCodec.
func NewIndexCodec(store model.NoteStore, keys IndexKeyDeriver) *IndexCodec {
	return &IndexCodec{store: store, keys: keys}
}

// Save encrypts index under the owner's index key and uploads it.
func (c *IndexCodec) Save(ctx context.Context, owner string, index model.SearchIndex) error {
	key, err := c.keys.DeriveIndexKey(ctx, owner)
	if err != nil {
		return fmt.Errorf("failed to derive index key: %w", err)
	}

	plaintext, err := json.Marshal(index)
	if err != nil {
		return fmt.Errorf("failed to encode index: %w", err)
	}

	blob, err := encryption.Encrypt(key, plaintext)
	if err != nil {
		return fmt.Errorf("failed to encrypt index: %w", err)
	}

	if err := c.store.PutSearchIndex(ctx, blob.String()); err != nil {
		return fmt.Errorf("failed to store index: %w", err)
	}

	return nil
}

// Load downloads and decrypts the owner's index. It returns
// model.ErrIndexNotFound when none has been stored.
func (c *IndexCodec) Load(ctx context.Context, owner string) (model.SearchIndex, error) {
	text, err := c.store.GetSearchIndex(ctx)
	if errors.Is(err, model.ErrNotFound) {
		return model.SearchIndex{}, model.ErrIndexNotFound
	}
	if err != nil {
		return model.SearchIndex{}, fmt.Errorf("failed to fetch index: %w", err)
	}

	blob, err := encryption.ParseBlob(text)
	if err != nil {
		return model.SearchIndex{}, err
	}

	key, err := c.keys.DeriveIndexKey(ctx, owner)
	if err != nil {
		return model.SearchIndex{}, fmt.Errorf("failed to derive index key: %w", err)
	}

	plaintext, err := encryption.Decrypt(key, blob)
	if err != nil {
		return model.SearchIndex{}, err
	}

	var index model.SearchIndex
	if err := json.Unmarshal(plaintext, &index); err != nil {
		return model.SearchIndex{}, fmt.Errorf("failed to decode index: %w", err)
	}

	return index, nil
}
