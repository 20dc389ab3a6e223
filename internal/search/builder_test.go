package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/notekeeper/internal/model"
	"github.com/dtroode/notekeeper/internal/testutil"
)

type fakeDecrypter struct {
	fail map[model.DocumentID]bool
	docs map[model.DocumentID]model.Document
}

func (f *fakeDecrypter) DecryptAll(_ context.Context, notes []model.StoredNote) []model.DecryptedNote {
	out := make([]model.DecryptedNote, len(notes))
	for i, n := range notes {
		if f.fail[n.ID] {
			out[i] = model.DecryptedNote{
				Document: model.Document{ID: n.ID, Title: model.UndecryptableTitle},
				Err:      model.ErrDecryptionFailed,
			}
			continue
		}
		out[i] = model.DecryptedNote{Document: f.docs[n.ID]}
	}
	return out
}

func meetingNotes() model.Document {
	return model.Document{
		ID:        model.DocumentIDFromUint64(1),
		Owner:     "alice",
		Timestamp: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Title:     "Meeting Notes",
		Content:   "We discussed the budget and budget again",
		Tags:      []string{"work"},
	}
}

func TestBuilder_BuildEntry(t *testing.T) {
	b := NewBuilder(nil, testutil.MakeNoopLogger())

	entry := b.BuildEntry(meetingNotes())

	assert.Equal(t, model.DocumentIDFromUint64(1), entry.DocumentID)
	assert.Equal(t, "Meeting Notes", entry.Title)
	assert.Equal(t, []string{"work"}, entry.Tags)
	assert.Equal(t, map[string]int{
		"meeting":   1,
		"notes":     1,
		"discussed": 1,
		"budget":    2,
		"work":      1,
	}, entry.TermFrequency)
	assert.Equal(t, 6, entry.WordCount)
}

func TestBuilder_BuildIndex_Deterministic(t *testing.T) {
	b := NewBuilder(nil, testutil.MakeNoopLogger())
	docs := []model.Document{
		meetingNotes(),
		{ID: model.DocumentIDFromUint64(2), Title: "Trip", Content: "Pack passport, tickets and tickets", Tags: []string{"travel"}},
		{ID: model.DocumentIDFromUint64(3), Title: "Resep", Content: "Nasi goreng dengan telur", Tags: nil},
	}

	first := b.BuildIndex(docs)
	second := b.BuildIndex(docs)

	require.Len(t, first.Entries, 3)
	assert.Equal(t, model.SearchIndexVersion, first.Version)
	for i := range docs {
		assert.Equal(t, docs[i].ID, first.Entries[i].DocumentID)
		assert.Equal(t, first.Entries[i].TermFrequency, second.Entries[i].TermFrequency)
		assert.Equal(t, first.Entries[i].WordCount, second.Entries[i].WordCount)
	}
}

func TestBuilder_Rebuild_SkipsUndecryptable(t *testing.T) {
	ids := []model.DocumentID{model.DocumentIDFromUint64(1), model.DocumentIDFromUint64(2), model.DocumentIDFromUint64(3)}
	dec := &fakeDecrypter{
		fail: map[model.DocumentID]bool{ids[1]: true},
		docs: map[model.DocumentID]model.Document{
			ids[0]: {ID: ids[0], Title: "first"},
			ids[2]: {ID: ids[2], Title: "third"},
		},
	}
	b := NewBuilder(dec, testutil.MakeNoopLogger())

	notes := []model.StoredNote{{ID: ids[0]}, {ID: ids[1]}, {ID: ids[2]}}
	index, report := b.Rebuild(context.Background(), notes)

	require.Len(t, index.Entries, 2)
	assert.Equal(t, ids[0], index.Entries[0].DocumentID)
	assert.Equal(t, ids[2], index.Entries[1].DocumentID)
	assert.Equal(t, 2, report.Indexed)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, ids[1], report.Failures[0].ID)
	assert.True(t, errors.Is(report.Failures[0].Err, model.ErrDecryptionFailed))
}
