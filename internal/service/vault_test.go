package service

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/notekeeper/internal/encryption"
	servermocks "github.com/dtroode/notekeeper/internal/mocks"
	"github.com/dtroode/notekeeper/internal/model"
	"github.com/dtroode/notekeeper/internal/testutil"
)

func validBlob(t *testing.T) string {
	t.Helper()
	key, err := encryption.GenerateKey()
	require.NoError(t, err)
	blob, err := encryption.Encrypt(key, []byte("payload"))
	require.NoError(t, err)
	return blob.String()
}

func TestVault_PutNote(t *testing.T) {
	ctx := context.Background()
	noteStore := servermocks.NewNoteRepository(t)
	storage := servermocks.NewStorage(t)
	svc := NewVault(noteStore, storage, testutil.MakeNoopLogger())
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	id := model.DocumentIDFromUint64(42)
	blob := validBlob(t)
	want := model.StoredNote{ID: id, Owner: "alice", Blob: blob, Timestamp: fixed}

	noteStore.On("Upsert", ctx, want).Return(want, nil).Once()

	got, err := svc.PutNote(ctx, "alice", id, blob)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestVault_PutNote_Validation(t *testing.T) {
	svc := NewVault(servermocks.NewNoteRepository(t), servermocks.NewStorage(t), testutil.MakeNoopLogger())
	blob := validBlob(t)

	tests := []struct {
		name  string
		owner string
		id    model.DocumentID
		blob  string
	}{
		{name: "empty owner", owner: "", id: model.DocumentIDFromUint64(1), blob: blob},
		{name: "reserved id", owner: "alice", id: model.IndexDocumentID, blob: blob},
		{name: "not base64", owner: "alice", id: model.DocumentIDFromUint64(1), blob: "%%%"},
		{name: "too short", owner: "alice", id: model.DocumentIDFromUint64(1), blob: "AAAA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.PutNote(context.Background(), tt.owner, tt.id, tt.blob)
			require.ErrorIs(t, err, model.ErrInvalidArgument)
		})
	}
}

func TestVault_PutNote_StoreError(t *testing.T) {
	ctx := context.Background()
	noteStore := servermocks.NewNoteRepository(t)
	svc := NewVault(noteStore, servermocks.NewStorage(t), testutil.MakeNoopLogger())

	noteStore.On("Upsert", ctx, mock.Anything).Return(model.StoredNote{}, assert.AnError).Once()

	_, err := svc.PutNote(ctx, "alice", model.DocumentIDFromUint64(1), validBlob(t))
	require.ErrorIs(t, err, assert.AnError)
}

func TestVault_GetNotes(t *testing.T) {
	ctx := context.Background()
	noteStore := servermocks.NewNoteRepository(t)
	svc := NewVault(noteStore, servermocks.NewStorage(t), testutil.MakeNoopLogger())

	notes := []model.StoredNote{{ID: model.DocumentIDFromUint64(1), Owner: "alice", Blob: "x"}}
	noteStore.On("GetByOwner", ctx, "alice").Return(notes, nil).Once()
	noteStore.On("GetByOwner", ctx, "bob").Return(nil, assert.AnError).Once()

	got, err := svc.GetNotes(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, notes, got)

	_, err = svc.GetNotes(ctx, "bob")
	require.ErrorIs(t, err, assert.AnError)

	_, err = svc.GetNotes(ctx, "")
	require.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestVault_PutSearchIndex(t *testing.T) {
	ctx := context.Background()
	storage := servermocks.NewStorage(t)
	svc := NewVault(servermocks.NewNoteRepository(t), storage, testutil.MakeNoopLogger())
	blob := validBlob(t)

	storage.On("Upload", ctx, IndexObjectKey("alice"), mock.Anything, int64(len(blob))).
		Run(func(args mock.Arguments) {
			data, err := io.ReadAll(args.Get(2).(io.Reader))
			require.NoError(t, err)
			assert.Equal(t, blob, string(data))
		}).
		Return(nil).Once()

	require.NoError(t, svc.PutSearchIndex(ctx, "alice", blob))
	require.ErrorIs(t, svc.PutSearchIndex(ctx, "alice", "%%%"), model.ErrInvalidArgument)
}

func TestVault_GetSearchIndex(t *testing.T) {
	ctx := context.Background()

	t.Run("stored", func(t *testing.T) {
		storage := servermocks.NewStorage(t)
		svc := NewVault(servermocks.NewNoteRepository(t), storage, testutil.MakeNoopLogger())

		storage.On("Exists", ctx, IndexObjectKey("alice")).Return(true, nil).Once()
		storage.On("Download", ctx, IndexObjectKey("alice")).
			Return(io.NopCloser(strings.NewReader("blob")), nil).Once()

		got, err := svc.GetSearchIndex(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "blob", got)
	})

	t.Run("missing", func(t *testing.T) {
		storage := servermocks.NewStorage(t)
		svc := NewVault(servermocks.NewNoteRepository(t), storage, testutil.MakeNoopLogger())

		storage.On("Exists", ctx, IndexObjectKey("alice")).Return(false, nil).Once()

		_, err := svc.GetSearchIndex(ctx, "alice")
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("storage error", func(t *testing.T) {
		storage := servermocks.NewStorage(t)
		svc := NewVault(servermocks.NewNoteRepository(t), storage, testutil.MakeNoopLogger())

		storage.On("Exists", ctx, IndexObjectKey("alice")).Return(false, assert.AnError).Once()

		_, err := svc.GetSearchIndex(ctx, "alice")
		require.ErrorIs(t, err, assert.AnError)
	})
}

func TestVault_DeleteSearchIndex(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		storage := servermocks.NewStorage(t)
		svc := NewVault(servermocks.NewNoteRepository(t), storage, testutil.MakeNoopLogger())

		storage.On("Delete", ctx, IndexObjectKey("alice")).Return(nil).Once()

		require.NoError(t, svc.DeleteSearchIndex(ctx, "alice"))
	})

	t.Run("storage error", func(t *testing.T) {
		storage := servermocks.NewStorage(t)
		svc := NewVault(servermocks.NewNoteRepository(t), storage, testutil.MakeNoopLogger())

		storage.On("Delete", ctx, IndexObjectKey("alice")).Return(assert.AnError).Once()

		require.ErrorIs(t, svc.DeleteSearchIndex(ctx, "alice"), assert.AnError)
	})

	t.Run("empty owner", func(t *testing.T) {
		svc := NewVault(servermocks.NewNoteRepository(t), servermocks.NewStorage(t), testutil.MakeNoopLogger())

		require.ErrorIs(t, svc.DeleteSearchIndex(ctx, ""), model.ErrInvalidArgument)
	})
}

func TestIndexObjectKey(t *testing.T) {
	key := IndexObjectKey("alice@example.com")
	assert.True(t, strings.HasPrefix(key, "index/"))
	assert.Len(t, key, len("index/")+64)
	assert.NotContains(t, key, "alice")
	assert.NotEqual(t, key, IndexObjectKey("bob@example.com"))
}
