package context

import (
	"context"

	"google.golang.org/grpc/metadata"
)

// ownerKey is the metadata key used to store and retrieve the owner in gRPC context.
const (
	ownerKey string = "x-notekeeper-owner"
)

// Manager represents a gRPC context manager for the authenticated owner.
// It provides methods to set and retrieve the owner from gRPC metadata.
type Manager struct{}

// NewManager creates a new gRPC context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetOwnerToContext sets the owner in the incoming gRPC metadata and
// returns the derived context. An owner sent by the client is replaced.
func (m *Manager) SetOwnerToContext(ctx context.Context, owner string) context.Context {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		md = metadata.New(map[string]string{ownerKey: owner})
	} else {
		md = md.Copy()
		md.Set(ownerKey, owner)
	}

	return metadata.NewIncomingContext(ctx, md)
}

// GetOwnerFromContext retrieves the owner from gRPC context metadata.
func (m *Manager) GetOwnerFromContext(ctx context.Context) (string, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", false
	}

	owners := md.Get(ownerKey)
	if len(owners) == 0 || owners[0] == "" {
		return "", false
	}

	return owners[0], true
}
