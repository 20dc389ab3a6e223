package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/dtroode/notekeeper/internal/encryption"
	"github.com/dtroode/notekeeper/internal/keyissuance"
	"github.com/dtroode/notekeeper/internal/logger"
	"github.com/dtroode/notekeeper/internal/model"
)

const (
	// NoteKeyContext names the derivation of per-note keys.
	NoteKeyContext = "notekeeper/note-key/v1"
	// IndexKeyContext names the derivation of the search index key.
	IndexKeyContext = "notekeeper/search-index/v1"
)

// Keys derives document keys through the key-issuance authority and caches them.
type Keys struct {
	authority model.KeyAuthority
	cache     model.KeyCache
	logger    *logger.Logger

	inflight singleflight.Group

	vkMu            sync.Mutex
	verificationKey string
}

// NewKeys creates a key derivation service.
func NewKeys(authority model.KeyAuthority, cache model.KeyCache, logger *logger.Logger) *Keys {
	return &Keys{
		authority: authority,
		cache:     cache,
		logger:    logger,
	}
}

// DeriveKey returns the key for a note, deriving and caching it on a miss.
// Concurrent calls for the same (id, owner) share one authority round-trip.
func (s *Keys) DeriveKey(ctx context.Context, id model.DocumentID, owner string) (*encryption.Key, error) {
	if id == model.IndexDocumentID {
		return nil, fmt.Errorf("%w: document id is reserved", model.ErrInvalidArgument)
	}
	return s.derive(ctx, id, owner, NoteKeyContext)
}

// DeriveIndexKey returns the key that protects owner's search index.
func (s *Keys) DeriveIndexKey(ctx context.Context, owner string) (*encryption.Key, error) {
	return s.derive(ctx, model.IndexDocumentID, owner, IndexKeyContext)
}

func (s *Keys) derive(ctx context.Context, id model.DocumentID, owner, derivationContext string) (*encryption.Key, error) {
	if owner == "" {
		return nil, fmt.Errorf("%w: owner is empty", model.ErrInvalidArgument)
	}

	key, ok, err := s.cache.Get(ctx, id, owner)
	if err != nil {
		s.logger.Warn("Key cache lookup failed, deriving", "document_id", id.String(), "error", err)
	}
	if ok {
		return key, nil
	}

	// The flight outlives any single caller; each caller still honours its own ctx.
	flightCtx := context.WithoutCancel(ctx)
	ch := s.inflight.DoChan(model.CacheKey(id, owner), func() (interface{}, error) {
		return s.deriveAndStore(flightCtx, id, owner, derivationContext)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			s.logger.Debug("Key derivation coalesced", "document_id", id.String())
		}
		return res.Val.(*encryption.Key), nil
	}
}

func (s *Keys) deriveAndStore(ctx context.Context, id model.DocumentID, owner, derivationContext string) (*encryption.Key, error) {
	// A caller that lost the race to the previous flight finds the key here.
	if key, ok, err := s.cache.Get(ctx, id, owner); err == nil && ok {
		return key, nil
	}

	transport, err := keyissuance.NewTransportKeyPair()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrKeyDerivationFailed, err)
	}
	defer transport.Discard()

	pkg, err := s.authority.RequestEncryptedKey(ctx, id, owner, transport.PublicKey())
	if err != nil {
		return nil, fmt.Errorf("%w: request encrypted key: %w", model.ErrKeyDerivationFailed, err)
	}

	vk, err := s.getVerificationKey(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: request verification key: %w", model.ErrKeyDerivationFailed, err)
	}

	material, err := transport.Open(pkg, vk, model.DerivationInput(id, owner))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrKeyDerivationFailed, err)
	}

	key, err := keyissuance.DeriveSymmetricKey(material, derivationContext)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrKeyDerivationFailed, err)
	}

	if err := s.cache.Put(ctx, id, owner, key); err != nil {
		s.logger.Error("Failed to cache derived key", "document_id", id.String(), "error", err)
	}

	s.logger.Debug("Derived document key", "document_id", id.String())

	return key, nil
}

func (s *Keys) getVerificationKey(ctx context.Context) (string, error) {
	s.vkMu.Lock()
	defer s.vkMu.Unlock()

	if s.verificationKey != "" {
		return s.verificationKey, nil
	}

	vk, err := s.authority.RequestVerificationKey(ctx)
	if err != nil {
		return "", err
	}
	if vk == "" {
		return "", errors.New("empty verification key")
	}
	s.verificationKey = vk

	return vk, nil
}
