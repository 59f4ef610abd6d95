package seed

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-labs/portfolio/internal/repository"
	"github.com/folio-labs/portfolio/pkg/database"
)

func TestSampleProjectsAreValid(t *testing.T) {
	v := validator.New(validator.WithRequiredStructEnabled())
	featured := 0
	for _, p := range Projects() {
		require.NoError(t, v.Struct(p), p.Title)
		if p.Featured {
			featured++
		}
	}
	assert.Equal(t, 3, featured)
}

func TestRunIsIdempotent(t *testing.T) {
	ctx := context.Background()
	conn := database.NewConn("sqlite://"+filepath.Join(t.TempDir(), "seed.db"), database.Options{AppEnv: "test"})
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, repository.Migrate(ctx, conn))
	repo := repository.NewProjectRepository(conn)

	n, err := Run(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = Run(ctx, repo)
	require.NoError(t, err)
	assert.Zero(t, n)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "Indie Horror Experience", all[0].Title)
	assert.Equal(t, "Epic Adventure Quest", all[4].Title)

	featured, err := repo.ListFeatured(ctx)
	require.NoError(t, err)
	assert.Len(t, featured, 3)
}
