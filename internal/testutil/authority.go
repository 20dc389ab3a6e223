package testutil

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dtroode/notekeeper/internal/encryption"
	"github.com/dtroode/notekeeper/internal/keyissuance"
	"github.com/dtroode/notekeeper/internal/model"
)

// Authority is an in-process key-issuance authority that counts calls.
type Authority struct {
	Issuer *keyissuance.Issuer

	// Gate, when set, blocks RequestEncryptedKey until it is closed.
	Gate chan struct{}
	// Err, when set, fails RequestEncryptedKey.
	Err error

	KeyRequests          atomic.Int64
	VerificationRequests atomic.Int64
}

// NewAuthority returns an Authority with fixed seeds, so keys are stable across instances.
func NewAuthority(t testing.TB) *Authority {
	t.Helper()
	iss, err := keyissuance.NewIssuer(bytes.Repeat([]byte{0x42}, 32), bytes.Repeat([]byte{0x24}, ed25519.SeedSize))
	require.NoError(t, err)
	return &Authority{Issuer: iss}
}

// RequestEncryptedKey implements model.KeyAuthority.
func (a *Authority) RequestEncryptedKey(ctx context.Context, id model.DocumentID, owner string, transportPublicKey []byte) (string, error) {
	a.KeyRequests.Add(1)
	if a.Gate != nil {
		select {
		case <-a.Gate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if a.Err != nil {
		return "", a.Err
	}
	return a.Issuer.Issue(model.DerivationInput(id, owner), transportPublicKey)
}

// RequestVerificationKey implements model.KeyAuthority.
func (a *Authority) RequestVerificationKey(_ context.Context) (string, error) {
	a.VerificationRequests.Add(1)
	return a.Issuer.VerificationKey(), nil
}

// KeyCache is an in-memory model.KeyCache.
type KeyCache struct {
	mu   sync.Mutex
	keys map[string]*encryption.Key
}

// NewKeyCache returns an empty KeyCache.
func NewKeyCache() *KeyCache {
	return &KeyCache{keys: make(map[string]*encryption.Key)}
}

// Get implements model.KeyCache.
func (c *KeyCache) Get(_ context.Context, id model.DocumentID, owner string) (*encryption.Key, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	k, ok := c.keys[model.CacheKey(id, owner)]
	return k, ok, nil
}

// Put implements model.KeyCache.
func (c *KeyCache) Put(_ context.Context, id model.DocumentID, owner string, key *encryption.Key) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.keys[model.CacheKey(id, owner)]; !ok {
		c.keys[model.CacheKey(id, owner)] = key
	}
	return nil
}

// Len returns the number of cached keys.
func (c *KeyCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.keys)
}
