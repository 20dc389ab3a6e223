package model

import (
	"context"

	"github.com/dtroode/notekeeper/internal/encryption"
)

// KeyAuthority is the remote key-issuance authority.
type KeyAuthority interface {
	// RequestEncryptedKey returns a hex-encoded key package sealed to transportPublicKey.
	RequestEncryptedKey(ctx context.Context, id DocumentID, owner string, transportPublicKey []byte) (string, error)
	// RequestVerificationKey returns the hex-encoded, protocol-global verification key.
	RequestVerificationKey(ctx context.Context) (string, error)
}

// KeyCache is the durable local mapping (document, owner) -> derived key.
// Entries are append-only.
type KeyCache interface {
	Get(ctx context.Context, id DocumentID, owner string) (*encryption.Key, bool, error)
	Put(ctx context.Context, id DocumentID, owner string, key *encryption.Key) error
}
