// Package keyissuance holds both ends of the key-issuance exchange: the
// client-side transport key pair and package verification, and a reference
// Issuer that plays the authority.
//
// A key package is box.SealAnonymous(material || signature) addressed to the
// one-time transport public key, where signature is an ed25519 signature by
// the authority over packageDomain || input || material.
package keyissuance

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/nacl/box"

	"github.com/dtroode/notekeeper/internal/encryption"
)

const (
	// MaterialSize is the size of the key material carried in a package.
	MaterialSize = 32

	packageDomain = "notekeeper/key-package/v1"
)

var (
	// ErrMalformedPackage is returned for packages that cannot be decoded or opened.
	ErrMalformedPackage = errors.New("malformed key package")
	// ErrVerification is returned when the authority's signature does not verify.
	ErrVerification = errors.New("key package verification failed")
)

// TransportKeyPair is a one-time key pair used to receive a single key package.
type TransportKeyPair struct {
	public  *[32]byte
	private *[32]byte
}

// NewTransportKeyPair generates a fresh key pair from a secure random source.
func NewTransportKeyPair() (*TransportKeyPair, error) {
	pub, priv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate transport key pair: %w", err)
	}
	return &TransportKeyPair{public: pub, private: priv}, nil
}

// PublicKey returns the bytes to present to the authority.
func (p *TransportKeyPair) PublicKey() []byte {
	return append([]byte(nil), p.public[:]...)
}

// Discard zeroes the private half. The pair is unusable afterwards.
func (p *TransportKeyPair) Discard() {
	if p.private == nil {
		return
	}
	for i := range p.private {
		p.private[i] = 0
	}
	p.private = nil
}

// Open decrypts a hex-encoded key package with the transport private key and
// verifies it against the hex-encoded verification key and the binding input.
func (p *TransportKeyPair) Open(packageHex, verificationKeyHex string, input []byte) ([]byte, error) {
	if p.private == nil {
		return nil, errors.New("transport key pair already discarded")
	}

	sealed, err := hex.DecodeString(packageHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPackage, err)
	}
	vk, err := ParseVerificationKey(verificationKeyHex)
	if err != nil {
		return nil, err
	}

	opened, ok := box.OpenAnonymous(nil, sealed, p.public, p.private)
	if !ok {
		return nil, fmt.Errorf("%w: cannot open with transport key", ErrMalformedPackage)
	}
	if len(opened) != MaterialSize+ed25519.SignatureSize {
		return nil, fmt.Errorf("%w: unexpected payload size %d", ErrMalformedPackage, len(opened))
	}

	material, sig := opened[:MaterialSize], opened[MaterialSize:]
	if !ed25519.Verify(vk, signedMessage(input, material), sig) {
		return nil, ErrVerification
	}

	return material, nil
}

// ParseVerificationKey decodes a hex-encoded ed25519 public key.
func ParseVerificationKey(s string) (ed25519.PublicKey, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: verification key: %v", ErrMalformedPackage, err)
	}
	if len(raw) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: verification key is %d bytes", ErrMalformedPackage, len(raw))
	}
	return ed25519.PublicKey(raw), nil
}

// DeriveSymmetricKey expands verified key material into an AES key bound to a
// named derivation context.
func DeriveSymmetricKey(material []byte, context string) (*encryption.Key, error) {
	raw := make([]byte, encryption.KeySize)
	r := hkdf.New(sha256.New, material, nil, []byte(context))
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, fmt.Errorf("failed to expand key material: %w", err)
	}
	return encryption.NewKey(raw)
}

func signedMessage(input, material []byte) []byte {
	msg := make([]byte, 0, len(packageDomain)+len(input)+len(material))
	msg = append(msg, packageDomain...)
	msg = append(msg, input...)
	return append(msg, material...)
}
