package context

import (
	stdctx "context"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/metadata"
)

func TestManager_SetAndGetOwner(t *testing.T) {
	m := NewManager()
	ctx := m.SetOwnerToContext(stdctx.Background(), "alice")

	got, ok := m.GetOwnerFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "alice", got)
}

func TestManager_GetOwner_NotFound(t *testing.T) {
	m := NewManager()
	_, ok := m.GetOwnerFromContext(stdctx.Background())
	assert.False(t, ok)

	ctx := metadata.NewIncomingContext(stdctx.Background(), metadata.New(map[string]string{"x-trace-id": "t"}))
	_, ok = m.GetOwnerFromContext(ctx)
	assert.False(t, ok)
}

func TestManager_SetOwner_WithExistingMetadata(t *testing.T) {
	m := NewManager()
	baseMD := metadata.New(map[string]string{"x-trace-id": "t"})
	ctxWithMD := metadata.NewIncomingContext(stdctx.Background(), baseMD)

	ctx := m.SetOwnerToContext(ctxWithMD, "alice")
	got, ok := m.GetOwnerFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "alice", got)

	md, _ := metadata.FromIncomingContext(ctx)
	assert.Equal(t, []string{"t"}, md.Get("x-trace-id"))
}

func TestManager_SetOwner_ReplacesClientValue(t *testing.T) {
	m := NewManager()
	spoofed := metadata.NewIncomingContext(stdctx.Background(), metadata.New(map[string]string{ownerKey: "mallory"}))

	ctx := m.SetOwnerToContext(spoofed, "alice")
	got, ok := m.GetOwnerFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "alice", got)

	md, _ := metadata.FromIncomingContext(spoofed)
	assert.Equal(t, []string{"mallory"}, md.Get(ownerKey))
}
