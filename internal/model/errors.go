package model

import (
	"errors"

	"github.com/dtroode/notekeeper/internal/encryption"
)

var (
	// ErrNotFound is returned by stores when the requested item does not exist.
	ErrNotFound = errors.New("not found")
	// ErrPermissionDenied is returned when a caller asks for another owner's material.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrInvalidArgument is returned for malformed requests.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnauthenticated is returned when the remote rejects the caller's token.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrKeyDerivationFailed means the key-issuance exchange for a document did not
	// yield a verified key. It is never retried automatically.
	ErrKeyDerivationFailed = errors.New("key derivation failed")
	// ErrInvalidCiphertext means a blob was truncated or failed authentication.
	ErrInvalidCiphertext = encryption.ErrInvalidCiphertext
	// ErrDecryptionFailed wraps any failure to open a single note.
	ErrDecryptionFailed = errors.New("decryption failed")
	// ErrIndexNotFound means no search index has been persisted yet.
	ErrIndexNotFound = errors.New("search index not found")
	// ErrIndexBuildFailed means a rebuild of the search index failed.
	ErrIndexBuildFailed = errors.New("search index build failed")
)
