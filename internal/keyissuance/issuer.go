package keyissuance

import (
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/nacl/box"
)

// Issuer is a reference key-issuance authority. Key material is a
// deterministic function of the master seed and the binding input, so the
// same (document, owner) always yields the same key.
type Issuer struct {
	masterSeed []byte
	signingKey ed25519.PrivateKey
}

// NewIssuer builds an Issuer from a master seed and a 32-byte ed25519 seed.
func NewIssuer(masterSeed, signingSeed []byte) (*Issuer, error) {
	if len(masterSeed) < 32 {
		return nil, errors.New("master seed must be at least 32 bytes")
	}
	if len(signingSeed) != ed25519.SeedSize {
		return nil, fmt.Errorf("signing seed must be %d bytes", ed25519.SeedSize)
	}
	return &Issuer{
		masterSeed: append([]byte(nil), masterSeed...),
		signingKey: ed25519.NewKeyFromSeed(signingSeed),
	}, nil
}

// NewIssuerFromHex builds an Issuer from hex-encoded seeds.
func NewIssuerFromHex(masterSeedHex, signingSeedHex string) (*Issuer, error) {
	master, err := hex.DecodeString(masterSeedHex)
	if err != nil {
		return nil, fmt.Errorf("failed to decode master seed: %w", err)
	}
	signing, err := hex.DecodeString(signingSeedHex)
	if err != nil {
		return nil, fmt.Errorf("failed to decode signing seed: %w", err)
	}
	return NewIssuer(master, signing)
}

// VerificationKey returns the hex-encoded public verification key.
func (i *Issuer) VerificationKey() string {
	return hex.EncodeToString(i.signingKey.Public().(ed25519.PublicKey))
}

// Issue derives key material for input and seals it to transportPublicKey.
func (i *Issuer) Issue(input, transportPublicKey []byte) (string, error) {
	if len(transportPublicKey) != 32 {
		return "", fmt.Errorf("transport public key must be 32 bytes, got %d", len(transportPublicKey))
	}
	var recipient [32]byte
	copy(recipient[:], transportPublicKey)

	mac := hmac.New(sha256.New, i.masterSeed)
	mac.Write(input)
	material := mac.Sum(nil)

	sig := ed25519.Sign(i.signingKey, signedMessage(input, material))
	payload := append(material, sig...)

	sealed, err := box.SealAnonymous(nil, payload, &recipient, rand.Reader)
	if err != nil {
		return "", fmt.Errorf("failed to seal key package: %w", err)
	}

	return hex.EncodeToString(sealed), nil
}
