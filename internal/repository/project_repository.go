package repository

import (
	"context"

	"github.com/folio-labs/portfolio/internal/models"
	"github.com/folio-labs/portfolio/pkg/database"
	appErr "github.com/folio-labs/portfolio/pkg/errors"
)

type ProjectRepository interface {
	BaseRepository[models.Project]
	// List returns every project, newest first.
	List(ctx context.Context) ([]models.Project, error)
	// ListFeatured returns featured projects, newest first.
	ListFeatured(ctx context.Context) ([]models.Project, error)
}

type projectRepository struct {
	BaseRepository[models.Project]
	conn *database.Conn
}

func NewProjectRepository(conn *database.Conn) ProjectRepository {
	return &projectRepository{BaseRepository: NewBaseRepository[models.Project](conn), conn: conn}
}

func (r *projectRepository) List(ctx context.Context) ([]models.Project, error) {
	h, err := db(ctx, r.conn)
	if err != nil {
		return nil, err
	}
	out := make([]models.Project, 0)
	if err := h.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, appErr.Storage(err, "list projects failed")
	}
	return out, nil
}

func (r *projectRepository) ListFeatured(ctx context.Context) ([]models.Project, error) {
	h, err := db(ctx, r.conn)
	if err != nil {
		return nil, err
	}
	out := make([]models.Project, 0)
	if err := h.Where("featured = ?", true).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, appErr.Storage(err, "list featured projects failed")
	}
	return out, nil
}
