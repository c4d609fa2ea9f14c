//go:build integration

package db_test

import (
	"click-updater/updater/adapters/db"
	"click-updater/updater/core"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) string {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "user",
			"POSTGRES_PASSWORD": "password",
			"POSTGRES_DB":       "test_db",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	}

	psqlC, err := testcontainers.GenericContainer(context.TODO(), testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, testcontainers.TerminateContainer(psqlC))
	})

	host, err := psqlC.Host(context.TODO())
	require.NoError(t, err)
	mappedPort, err := psqlC.MappedPort(context.TODO(), "5432")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://user:password@%s:%s/test_db?sslmode=disable", host, mappedPort.Port())
}

func TestPostgresStore(t *testing.T) {
	storage, err := db.New(slog.Default(), startPostgres(t), nil)
	require.NoError(t, err)
	defer storage.Close()
	require.NoError(t, storage.Migrate())
	require.NoError(t, storage.Migrate())

	installed := sampleUpdate("a", 1)
	installed.Installed = true
	installed.UpdatedAt = time.Now().Add(-40 * 24 * time.Hour)
	pending := sampleUpdate("b", 2)

	require.NoError(t, storage.Add(context.TODO(), installed))
	require.NoError(t, storage.Add(context.TODO(), pending))
	pending.Token = "T2"
	require.NoError(t, storage.Add(context.TODO(), pending))

	got, err := storage.Get(context.TODO(), "b", 2)
	require.NoError(t, err)
	require.Equal(t, pending, got)

	require.NoError(t, storage.PruneDB(context.TODO()))
	_, err = storage.Get(context.TODO(), "a", 1)
	require.ErrorIs(t, err, core.ErrNotFound)

	date := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, storage.SetLastCheckDate(context.TODO(), date))
	last, err := storage.LastCheckDate(context.TODO())
	require.NoError(t, err)
	require.Equal(t, date, last)

	require.NoError(t, storage.Drop(context.TODO()))
	updates, err := storage.List(context.TODO(), core.KindPackage)
	require.NoError(t, err)
	require.Empty(t, updates)
}
