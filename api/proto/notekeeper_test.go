package proto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gproto "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestFileDescriptor(t *testing.T) {
	fd := File_notekeeper_proto
	require.NotNil(t, fd)
	assert.Equal(t, "notekeeper", string(fd.Package()))
	assert.Equal(t, 15, fd.Messages().Len())

	require.Equal(t, 2, fd.Services().Len())
	notes := fd.Services().ByName("NoteStore")
	require.NotNil(t, notes)
	assert.Equal(t, 5, notes.Methods().Len())
	keys := fd.Services().ByName("KeyIssuance")
	require.NotNil(t, keys)
	assert.Equal(t, "RequestEncryptedKeyRequest", string(keys.Methods().ByName("RequestEncryptedKey").Input().Name()))
}

func TestNote_WireRoundTrip(t *testing.T) {
	ts := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)
	in := &GetNotesResponse{Notes: []*Note{{
		Id:        []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 7},
		Owner:     "alice",
		Blob:      "AAAA",
		Timestamp: timestamppb.New(ts),
	}}}

	data, err := gproto.Marshal(in)
	require.NoError(t, err)

	out := &GetNotesResponse{}
	require.NoError(t, gproto.Unmarshal(data, out))
	require.Len(t, out.GetNotes(), 1)
	assert.True(t, gproto.Equal(in, out))
	assert.Equal(t, ts, out.GetNotes()[0].GetTimestamp().AsTime())
}
