package service

import (
	"context"
	"fmt"

	"github.com/dtroode/notekeeper/internal/keyissuance"
	"github.com/dtroode/notekeeper/internal/logger"
	"github.com/dtroode/notekeeper/internal/model"
)

// Authority is the server side of key issuance. A caller only obtains
// packages for documents it owns.
type Authority struct {
	issuer *keyissuance.Issuer
	logger *logger.Logger
}

// NewAuthority creates an Authority around issuer.
func NewAuthority(issuer *keyissuance.Issuer, logger *logger.Logger) *Authority {
	return &Authority{issuer: issuer, logger: logger}
}

// RequestEncryptedKey issues the key package of (id, owner) sealed to transportPublicKey.
func (s *Authority) RequestEncryptedKey(ctx context.Context, caller string, id model.DocumentID, owner string, transportPublicKey []byte) (string, error) {
	if owner == "" {
		return "", fmt.Errorf("%w: owner is empty", model.ErrInvalidArgument)
	}
	if caller != owner {
		s.logger.Warn("Authority service: key requested for foreign owner",
			"caller", caller,
			"owner", owner)
		return "", model.ErrPermissionDenied
	}

	pkg, err := s.issuer.Issue(model.DerivationInput(id, owner), transportPublicKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", model.ErrInvalidArgument, err)
	}

	return pkg, nil
}

// VerificationKey returns the hex ed25519 key packages are signed with.
func (s *Authority) VerificationKey(_ context.Context) string {
	return s.issuer.VerificationKey()
}
