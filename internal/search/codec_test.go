package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/notekeeper/internal/encryption"
	"github.com/dtroode/notekeeper/internal/model"
	"github.com/dtroode/notekeeper/internal/service"
	"github.com/dtroode/notekeeper/internal/testutil"
)

func newCodec(t *testing.T) (*IndexCodec, *testutil.NoteStore) {
	t.Helper()
	keys := service.NewKeys(testutil.NewAuthority(t), testutil.NewKeyCache(), testutil.MakeNoopLogger())
	store := testutil.NewNoteStore("alice")
	return NewIndexCodec(store, keys), store
}

func TestIndexCodec_RoundTrip(t *testing.T) {
	codec, store := newCodec(t)

	b := NewBuilder(nil, testutil.MakeNoopLogger())
	b.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	index := b.BuildIndex([]model.Document{meetingNotes()})

	require.NoError(t, codec.Save(context.Background(), "alice", index))
	assert.NotContains(t, store.Index(), "budget")

	loaded, err := codec.Load(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, index.Version, loaded.Version)
	assert.True(t, index.BuiltAt.Equal(loaded.BuiltAt))
	require.Len(t, loaded.Entries, 1)
	assert.Equal(t, index.Entries[0].DocumentID, loaded.Entries[0].DocumentID)
	assert.Equal(t, index.Entries[0].TermFrequency, loaded.Entries[0].TermFrequency)
	assert.True(t, index.Entries[0].Timestamp.Equal(loaded.Entries[0].Timestamp))
}

func TestIndexCodec_Load_NotFound(t *testing.T) {
	codec, _ := newCodec(t)

	_, err := codec.Load(context.Background(), "alice")
	assert.ErrorIs(t, err, model.ErrIndexNotFound)
}

func TestIndexCodec_Load_WrongOwner(t *testing.T) {
	codec, _ := newCodec(t)
	index := NewBuilder(nil, testutil.MakeNoopLogger()).BuildIndex([]model.Document{meetingNotes()})
	require.NoError(t, codec.Save(context.Background(), "alice", index))

	_, err := codec.Load(context.Background(), "bob")
	assert.ErrorIs(t, err, encryption.ErrInvalidCiphertext)
}

func TestIndexCodec_Load_Garbage(t *testing.T) {
	codec, store := newCodec(t)
	require.NoError(t, store.PutSearchIndex(context.Background(), "%%%"))

	_, err := codec.Load(context.Background(), "alice")
	assert.ErrorIs(t, err, encryption.ErrInvalidCiphertext)
}
