package service

import (
	"context"
	"fmt"

	"github.com/dtroode/notekeeper/internal/logger"
	"github.com/dtroode/notekeeper/internal/model"
)

// TokenService issues and resolves bearer tokens whose subject is the owner.
type TokenService struct {
	manager model.TokenManager
	logger  *logger.Logger
}

// NewTokenService creates a TokenService.
func NewTokenService(manager model.TokenManager, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, logger: logger}
}

// Issue mints an access token for owner.
func (s *TokenService) Issue(_ context.Context, owner string) (string, error) {
	access, err := s.manager.GenerateAccessToken(owner)
	if err != nil {
		return "", fmt.Errorf("issue access: %w", err)
	}
	return access, nil
}

// GetOwner resolves the owner principal of an access token.
func (s *TokenService) GetOwner(_ context.Context, token string) (string, error) {
	return s.manager.ParseAccessToken(token)
}
