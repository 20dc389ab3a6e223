package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dtroode/notekeeper/api/proto"
	"github.com/dtroode/notekeeper/internal/logger"
	"github.com/dtroode/notekeeper/internal/model"
)

// VaultService defines the note store operations.
type VaultService interface {
	PutNote(ctx context.Context, owner string, id model.DocumentID, blob string) (model.StoredNote, error)
	GetNotes(ctx context.Context, owner string) ([]model.StoredNote, error)
	PutSearchIndex(ctx context.Context, owner string, blob string) error
	GetSearchIndex(ctx context.Context, owner string) (string, error)
	DeleteSearchIndex(ctx context.Context, owner string) error
}

// Notes handles gRPC endpoints of the note store.
type Notes struct {
	proto.UnimplementedNoteStoreServer

	vault          VaultService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewNotes creates a new Notes handler.
func NewNotes(vault VaultService, contextManager model.ContextManager, logger *logger.Logger) *Notes {
	return &Notes{
		vault:          vault,
		contextManager: contextManager,
		logger:         logger,
	}
}

// PutNote stores or replaces one note of the caller.
func (h *Notes) PutNote(ctx context.Context, req *proto.PutNoteRequest) (*proto.PutNoteResponse, error) {
	owner, ok := h.contextManager.GetOwnerFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "owner not found in context")
	}

	id, err := model.DocumentIDFromBytes(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid document ID")
	}

	h.logger.Debug("Notes handler: processing put note request",
		"owner", owner,
		"document_id", id.String())

	note, err := h.vault.PutNote(ctx, owner, id, req.GetBlob())
	if err != nil {
		h.logger.Error("Notes handler: put note failed",
			"owner", owner,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &proto.PutNoteResponse{Note: noteToProto(note)}, nil
}

// GetNotes returns every note of the caller.
func (h *Notes) GetNotes(ctx context.Context, _ *proto.GetNotesRequest) (*proto.GetNotesResponse, error) {
	owner, ok := h.contextManager.GetOwnerFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "owner not found in context")
	}

	notes, err := h.vault.GetNotes(ctx, owner)
	if err != nil {
		h.logger.Error("Notes handler: get notes failed",
			"owner", owner,
			"error", err.Error())
		return nil, handleError(err)
	}

	resp := &proto.GetNotesResponse{Notes: make([]*proto.Note, 0, len(notes))}
	for _, n := range notes {
		resp.Notes = append(resp.Notes, noteToProto(n))
	}

	return resp, nil
}

// PutSearchIndex replaces the caller's search index blob.
func (h *Notes) PutSearchIndex(ctx context.Context, req *proto.PutSearchIndexRequest) (*proto.PutSearchIndexResponse, error) {
	owner, ok := h.contextManager.GetOwnerFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "owner not found in context")
	}

	if err := h.vault.PutSearchIndex(ctx, owner, req.GetBlob()); err != nil {
		h.logger.Error("Notes handler: put search index failed",
			"owner", owner,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &proto.PutSearchIndexResponse{}, nil
}

// GetSearchIndex returns the caller's search index blob or NotFound.
func (h *Notes) GetSearchIndex(ctx context.Context, _ *proto.GetSearchIndexRequest) (*proto.GetSearchIndexResponse, error) {
	owner, ok := h.contextManager.GetOwnerFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "owner not found in context")
	}

	blob, err := h.vault.GetSearchIndex(ctx, owner)
	if err != nil {
		return nil, handleError(err)
	}

	return &proto.GetSearchIndexResponse{Blob: blob}, nil
}

// DeleteSearchIndex drops the caller's search index blob.
func (h *Notes) DeleteSearchIndex(ctx context.Context, _ *proto.DeleteSearchIndexRequest) (*proto.DeleteSearchIndexResponse, error) {
	owner, ok := h.contextManager.GetOwnerFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "owner not found in context")
	}

	if err := h.vault.DeleteSearchIndex(ctx, owner); err != nil {
		h.logger.Error("Notes handler: delete search index failed",
			"owner", owner,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &proto.DeleteSearchIndexResponse{}, nil
}

func noteToProto(n model.StoredNote) *proto.Note {
	return &proto.Note{
		Id:        n.ID.Bytes(),
		Owner:     n.Owner,
		Blob:      n.Blob,
		Timestamp: timestamppb.New(n.Timestamp),
	}
}
