//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/notekeeper/internal/model"
	repo "github.com/dtroode/notekeeper/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "notekeeper_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/notekeeper_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestNoteRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	notes := repo.NewNoteRepository(conn)
	first := model.NewDocumentID()
	second := model.NewDocumentID()
	now := time.Now().UTC().Truncate(time.Microsecond)

	saved, err := notes.Upsert(ctx, model.StoredNote{ID: first, Owner: "alice", Blob: "one", Timestamp: now})
	require.NoError(t, err)
	require.Equal(t, first, saved.ID)
	require.True(t, now.Equal(saved.Timestamp))

	_, err = notes.Upsert(ctx, model.StoredNote{ID: second, Owner: "alice", Blob: "two", Timestamp: now})
	require.NoError(t, err)
	_, err = notes.Upsert(ctx, model.StoredNote{ID: first, Owner: "bob", Blob: "bobs", Timestamp: now})
	require.NoError(t, err)

	later := now.Add(time.Minute)
	updated, err := notes.Upsert(ctx, model.StoredNote{ID: first, Owner: "alice", Blob: "one-v2", Timestamp: later})
	require.NoError(t, err)
	require.Equal(t, "one-v2", updated.Blob)

	got, err := notes.GetByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, first, got[0].ID)
	require.Equal(t, "one-v2", got[0].Blob)
	require.Equal(t, second, got[1].ID)

	none, err := notes.GetByOwner(ctx, "carol")
	require.NoError(t, err)
	require.Empty(t, none)
}
