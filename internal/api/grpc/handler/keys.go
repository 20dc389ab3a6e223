package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/notekeeper/api/proto"
	"github.com/dtroode/notekeeper/internal/logger"
	"github.com/dtroode/notekeeper/internal/model"
)

// AuthorityService defines key issuance operations.
type AuthorityService interface {
	RequestEncryptedKey(ctx context.Context, caller string, id model.DocumentID, owner string, transportPublicKey []byte) (string, error)
	VerificationKey(ctx context.Context) string
}

// Keys handles gRPC endpoints of the key issuance service.
type Keys struct {
	proto.UnimplementedKeyIssuanceServer

	authority      AuthorityService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewKeys creates a new Keys handler.
func NewKeys(authority AuthorityService, contextManager model.ContextManager, logger *logger.Logger) *Keys {
	return &Keys{
		authority:      authority,
		contextManager: contextManager,
		logger:         logger,
	}
}

// RequestEncryptedKey issues a sealed key package for a document of the caller.
func (h *Keys) RequestEncryptedKey(ctx context.Context, req *proto.RequestEncryptedKeyRequest) (*proto.RequestEncryptedKeyResponse, error) {
	caller, ok := h.contextManager.GetOwnerFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "owner not found in context")
	}

	id, err := model.DocumentIDFromBytes(req.GetDocumentId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid document ID")
	}

	pkg, err := h.authority.RequestEncryptedKey(ctx, caller, id, req.GetOwner(), req.GetTransportPublicKey())
	if err != nil {
		h.logger.Warn("Keys handler: key request rejected",
			"caller", caller,
			"document_id", id.String(),
			"error", err.Error())
		return nil, handleError(err)
	}

	return &proto.RequestEncryptedKeyResponse{Package: pkg}, nil
}

// RequestVerificationKey returns the authority's public verification key.
func (h *Keys) RequestVerificationKey(ctx context.Context, _ *proto.RequestVerificationKeyRequest) (*proto.RequestVerificationKeyResponse, error) {
	return &proto.RequestVerificationKeyResponse{VerificationKey: h.authority.VerificationKey(ctx)}, nil
}
