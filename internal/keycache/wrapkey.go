package keycache

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dtroode/notekeeper/internal/encryption"
)

const wrapKeyFileName = "wrap.key"

// LoadWrapKey returns the local wrapping key. A non-empty hexKey wins;
// otherwise the key is read from dataDir, or generated and written there
// with owner-only permissions on first use.
func LoadWrapKey(dataDir, hexKey string) (*encryption.Key, error) {
	if hexKey != "" {
		raw, err := hex.DecodeString(strings.TrimSpace(hexKey))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wrap key: %w", err)
		}
		return encryption.NewKey(raw)
	}

	path := filepath.Join(dataDir, wrapKeyFileName)
	data, err := os.ReadFile(path)
	if err == nil {
		raw, err := hex.DecodeString(strings.TrimSpace(string(data)))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wrap key file: %w", err)
		}
		return encryption.NewKey(raw)
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read wrap key file: %w", err)
	}

	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	raw := make([]byte, encryption.KeySize)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("failed to generate wrap key: %w", err)
	}
	key, err := encryption.NewKey(raw)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, []byte(hex.EncodeToString(raw)), 0o600); err != nil {
		return nil, fmt.Errorf("failed to write wrap key file: %w", err)
	}

	return key, nil
}
