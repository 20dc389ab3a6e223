package search

import (
	"context"
	"strings"
	"time"

	"github.com/dtroode/notekeeper/internal/logger"
	"github.com/dtroode/notekeeper/internal/model"
)

// NoteDecrypter opens stored notes in bulk.
type NoteDecrypter interface {
	DecryptAll(ctx context.Context, notes []model.StoredNote) []model.DecryptedNote
}

// Builder turns decrypted documents into index entries.
type Builder struct {
	notes  NoteDecrypter
	logger *logger.Logger
	now    func() time.Time
}

// NewBuilder creates an index builder.
func NewBuilder(notes NoteDecrypter, logger *logger.Logger) *Builder {
	return &Builder{
		notes:  notes,
		logger: logger,
		now:    time.Now,
	}
}

// BuildEntry computes the term frequencies of one document.
func (b *Builder) BuildEntry(doc model.Document) model.IndexEntry {
	text := doc.Title + " " + doc.Content + " " + strings.Join(doc.Tags, " ")
	terms := Tokenize(text)

	tf := make(map[string]int, len(terms))
	for _, term := range terms {
		tf[term]++
	}

	return model.IndexEntry{
		DocumentID:    doc.ID,
		Title:         doc.Title,
		Tags:          append([]string(nil), doc.Tags...),
		Timestamp:     doc.Timestamp,
		TermFrequency: tf,
		WordCount:     len(terms),
	}
}

// BuildIndex builds a fresh index with one entry per document, in input order.
func (b *Builder) BuildIndex(docs []model.Document) model.SearchIndex {
	entries := make([]model.IndexEntry, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, b.BuildEntry(doc))
	}

	return model.SearchIndex{
		Version: model.SearchIndexVersion,
		BuiltAt: b.now().UTC(),
		Entries: entries,
	}
}

// Rebuild decrypts notes and indexes the ones that open. Notes that fail are
// reported in the BuildReport and left out of the index.
func (b *Builder) Rebuild(ctx context.Context, notes []model.StoredNote) (model.SearchIndex, model.BuildReport) {
	decrypted := b.notes.DecryptAll(ctx, notes)

	var report model.BuildReport
	docs := make([]model.Document, 0, len(decrypted))
	for _, n := range decrypted {
		if n.Undecryptable() {
			report.Failures = append(report.Failures, model.DocumentFailure{ID: n.ID, Err: n.Err})
			continue
		}
		docs = append(docs, n.Document)
	}

	index := b.BuildIndex(docs)
	report.Indexed = len(index.Entries)

	if len(report.Failures) > 0 {
		b.logger.Warn("Index built with skipped notes",
			"indexed", report.Indexed,
			"skipped", len(report.Failures))
	}

	return index, report
}
