package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/folio-labs/portfolio/internal/models"
	"github.com/folio-labs/portfolio/internal/repository"
	"github.com/folio-labs/portfolio/pkg/logger"
)

// ProjectService exposes the project listing.
type ProjectService interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	ListFeaturedProjects(ctx context.Context) ([]models.Project, error)
}

type projectService struct {
	projectRepo repository.ProjectRepository
}

func NewProjectService(projectRepo repository.ProjectRepository) ProjectService {
	return &projectService{projectRepo: projectRepo}
}

var _ ProjectService = (*projectService)(nil)

func (s *projectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	out, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	logger.L().Debug("projects listed", zap.Int("count", len(out)))
	return out, nil
}

func (s *projectService) ListFeaturedProjects(ctx context.Context) ([]models.Project, error) {
	out, err := s.projectRepo.ListFeatured(ctx)
	if err != nil {
		return nil, err
	}
	logger.L().Debug("featured projects listed", zap.Int("count", len(out)))
	return out, nil
}
