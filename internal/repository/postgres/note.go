package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/notekeeper/internal/model"
)

var _ model.NoteRepository = (*NoteRepository)(nil)

type NoteRepository struct {
	db querier
}

func NewNoteRepository(db *Connection) *NoteRepository {
	return &NoteRepository{
		db: db,
	}
}

// Upsert inserts the note or replaces the blob of an existing (owner, id).
func (r *NoteRepository) Upsert(ctx context.Context, note model.StoredNote) (model.StoredNote, error) {
	query := `
		INSERT INTO notes (owner, id, blob, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (owner, id) DO UPDATE
		SET blob = EXCLUDED.blob, updated_at = EXCLUDED.updated_at
		RETURNING owner, id, blob, updated_at`

	saved, err := scanNote(r.db.QueryRow(ctx, query, note.Owner, note.ID.Bytes(), note.Blob, note.Timestamp))
	if err != nil {
		return model.StoredNote{}, fmt.Errorf("failed to upsert note: %w", err)
	}

	return saved, nil
}

// GetByOwner returns every note of owner, oldest first.
func (r *NoteRepository) GetByOwner(ctx context.Context, owner string) ([]model.StoredNote, error) {
	query := `
		SELECT owner, id, blob, updated_at
		FROM notes
		WHERE owner = $1
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	notes := make([]model.StoredNote, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}

	return notes, nil
}

func scanNote(row pgx.Row) (model.StoredNote, error) {
	var (
		note model.StoredNote
		id   []byte
	)
	if err := row.Scan(&note.Owner, &id, &note.Blob, &note.Timestamp); err != nil {
		return model.StoredNote{}, err
	}

	docID, err := model.DocumentIDFromBytes(id)
	if err != nil {
		return model.StoredNote{}, fmt.Errorf("failed to decode note id: %w", err)
	}
	note.ID = docID

	return note, nil
}
