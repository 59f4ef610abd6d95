//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/folio-labs/portfolio/internal/models"
	"github.com/folio-labs/portfolio/pkg/database"
)

func TestPostgresRoundTrip(t *testing.T) {
	ctx := context.Background()

	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("portfolio"),
		postgres.WithUsername("portfolio"),
		postgres.WithPassword("portfolio"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	conn := database.NewConn(dsn, database.Options{AppEnv: "test", Retries: 3})
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, Migrate(ctx, conn))

	projects := NewProjectRepository(conn)
	base := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	for i, title := range []string{"Epic Adventure Quest", "Mobile Racing Game", "Indie Horror Experience"} {
		p := models.Project{
			Title:        title,
			Description:  "sample",
			Category:     "Unity",
			Technologies: []string{"Unity", "C#"},
			Featured:     i%2 == 0,
			CreatedAt:    base.AddDate(0, 0, i),
		}
		require.NoError(t, projects.Create(ctx, &p))
	}

	out, err := projects.List(ctx)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "Indie Horror Experience", out[0].Title)

	featured, err := projects.ListFeatured(ctx)
	require.NoError(t, err)
	assert.Len(t, featured, 2)

	untimed := models.Project{Title: "Puzzle Master 3D", Description: "sample", Category: "Unity", Technologies: []string{"Unity"}}
	require.NoError(t, projects.Create(ctx, &untimed))
	var stored models.Project
	require.NoError(t, projects.GetByID(ctx, untimed.ID, &stored))
	assert.True(t, untimed.CreatedAt.Equal(stored.CreatedAt), "in memory %s, stored %s", untimed.CreatedAt, stored.CreatedAt)

	contacts := NewContactRepository(conn)
	issued := time.Now().UTC().Truncate(time.Microsecond)
	id, err := contacts.Insert(ctx, "Ana", "ana@x.com", "Hi")
	require.NoError(t, err)

	var got models.ContactMessage
	require.NoError(t, contacts.GetByID(ctx, id, &got))
	assert.False(t, got.CreatedAt.Before(issued))
}
