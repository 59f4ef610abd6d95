package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/folio-labs/portfolio/internal/models"
	"github.com/folio-labs/portfolio/pkg/database"
	appErr "github.com/folio-labs/portfolio/pkg/errors"
)

// Migrate creates or updates the projects and contacts tables.
func Migrate(ctx context.Context, conn *database.Conn) error {
	h, err := db(ctx, conn)
	if err != nil {
		return err
	}
	if err := h.AutoMigrate(models.All()...); err != nil {
		return appErr.Storage(err, "auto migrate failed")
	}
	return runCustomMigrations(h)
}

// runCustomMigrations handles schema changes AutoMigrate can't express.
// Every statement must be valid on both PostgreSQL and SQLite.
func runCustomMigrations(h *gorm.DB) error {
	migrations := []func(*gorm.DB) error{
		addFeaturedListingIndex,
	}
	for _, migration := range migrations {
		if err := migration(h); err != nil {
			return appErr.Storage(err, "custom migration failed")
		}
	}
	return nil
}

// addFeaturedListingIndex serves the featured listing, newest first.
func addFeaturedListingIndex(h *gorm.DB) error {
	return h.Exec(`
		CREATE INDEX IF NOT EXISTS idx_projects_featured_created
		ON projects (created_at DESC)
		WHERE featured = true
	`).Error
}
