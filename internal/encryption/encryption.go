// Package encryption implements the symmetric codec used for notes and the
// search index: AES-256-GCM with a random 12-byte nonce prepended to the
// ciphertext.
package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

const (
	// KeySize is the size of a raw AES-256 key.
	KeySize = 32
	// NonceSize is the size of the IV prefix of every blob.
	NonceSize = 12
	// MinBlobSize is the shortest blob that can possibly decrypt.
	MinBlobSize = NonceSize + 1
)

// ErrInvalidCiphertext is returned when a blob is too short or fails authentication.
var ErrInvalidCiphertext = errors.New("invalid ciphertext")

// Key is a usable symmetric key. Its raw bytes never leave this package.
type Key struct {
	raw  []byte
	aead cipher.AEAD
}

// NewKey builds a Key from raw key material of KeySize bytes.
func NewKey(raw []byte) (*Key, error) {
	if len(raw) != KeySize {
		return nil, fmt.Errorf("key must be %d bytes, got %d", KeySize, len(raw))
	}

	block, err := aes.NewCipher(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create gcm: %w", err)
	}

	k := make([]byte, KeySize)
	copy(k, raw)

	return &Key{raw: k, aead: aead}, nil
}

// GenerateKey creates a Key from fresh random bytes.
func GenerateKey() (*Key, error) {
	raw := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return nil, fmt.Errorf("failed to read random key: %w", err)
	}
	return NewKey(raw)
}

// Blob is IV || ciphertext (tag included).
type Blob []byte

// String returns the base64 text form of the blob.
func (b Blob) String() string {
	return base64.StdEncoding.EncodeToString(b)
}

// ParseBlob decodes the base64 text form of a blob.
func ParseBlob(s string) (Blob, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCiphertext, err)
	}
	if len(raw) < MinBlobSize {
		return nil, fmt.Errorf("%w: blob is %d bytes", ErrInvalidCiphertext, len(raw))
	}
	return Blob(raw), nil
}

// Encrypt seals plaintext under key with a fresh random nonce.
func Encrypt(key *Key, plaintext []byte) (Blob, error) {
	if key == nil {
		return nil, errors.New("key is nil")
	}

	nonce := make([]byte, NonceSize, NonceSize+len(plaintext)+key.aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to read nonce: %w", err)
	}

	return Blob(key.aead.Seal(nonce, nonce, plaintext, nil)), nil
}

// Decrypt opens a blob produced by Encrypt.
func Decrypt(key *Key, blob Blob) ([]byte, error) {
	if key == nil {
		return nil, errors.New("key is nil")
	}
	if len(blob) < MinBlobSize {
		return nil, fmt.Errorf("%w: blob is %d bytes", ErrInvalidCiphertext, len(blob))
	}

	plaintext, err := key.aead.Open(nil, blob[:NonceSize], blob[NonceSize:], nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCiphertext, err)
	}

	return plaintext, nil
}

// WrapKey encrypts k under kek so it can be stored at rest.
func WrapKey(kek, k *Key) (Blob, error) {
	if k == nil {
		return nil, errors.New("key is nil")
	}
	return Encrypt(kek, k.raw)
}

// UnwrapKey reverses WrapKey.
func UnwrapKey(kek *Key, wrapped Blob) (*Key, error) {
	raw, err := Decrypt(kek, wrapped)
	if err != nil {
		return nil, fmt.Errorf("failed to unwrap key: %w", err)
	}
	return NewKey(raw)
}

// Equal reports whether two keys hold the same material.
func (k *Key) Equal(other *Key) bool {
	if k == nil || other == nil {
		return k == other
	}
	return subtle.ConstantTimeCompare(k.raw, other.raw) == 1
}
