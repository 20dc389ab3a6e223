package middleware

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dtroode/notekeeper/internal/logger"
	"github.com/dtroode/notekeeper/internal/model"
)

var (
	errMissingToken = errors.New("missing authorization token")
	errInvalidToken = errors.New("invalid authorization token")
)

// TokenService resolves the owner from bearer tokens.
type TokenService interface {
	GetOwner(ctx context.Context, token string) (string, error)
}

// Authenticate validates bearer tokens and injects the owner into context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// AuthFunc parses Authorization header, validates token and returns a context with the owner.
func (m *Authenticate) AuthFunc(ctx context.Context) (context.Context, error) {
	var tokenString string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if authHeaders := md.Get("authorization"); len(authHeaders) > 0 {
			tokenString = strings.TrimPrefix(authHeaders[0], "Bearer ")
		}
	}

	owner, authErr := m.authenticateOwner(ctx, tokenString)
	if authErr != nil {
		m.logger.Debug("Authentication failed", "error", authErr.Error())
		return nil, status.Error(codes.Unauthenticated, authErr.Error())
	}

	return m.contextManager.SetOwnerToContext(ctx, owner), nil
}

func (m *Authenticate) authenticateOwner(ctx context.Context, tokenString string) (string, error) {
	if tokenString == "" {
		return "", errMissingToken
	}

	owner, err := m.tokenService.GetOwner(ctx, tokenString)
	if err != nil {
		return "", errInvalidToken
	}

	if owner == "" {
		return "", errInvalidToken
	}

	return owner, nil
}
