//go:build integration

package journal

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/hashicorp-forge/taskcloud/pkg/cloud"
	"github.com/hashicorp-forge/taskcloud/pkg/database"
)

func TestJournal_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("taskcloud"),
		postgres.WithUsername("taskcloud"),
		postgres.WithPassword("taskcloud"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}()

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	j, err := Open(database.Config{Driver: database.DriverPostgres, DSN: dsn}, nil)
	require.NoError(t, err)
	defer j.Close()

	id := uuid.NewString()
	req := &cloud.Request{Method: http.MethodPost, URI: "https://api.example.com/tasks/a.mpp/tasks?taskName=x&beforeTaskId=1", Document: "a.mpp", RequestID: id}
	j.BeforeCommand(ctx, req)
	j.AfterCommand(ctx, req, &cloud.Response{StatusCode: http.StatusOK, Elapsed: time.Second}, nil)

	entries, err := j.ForDocument(ctx, "a.mpp", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, id, entries[0].RequestID.String())
	assert.Equal(t, int64(1000), entries[0].ElapsedMs)
}
