// Package seed loads the sample projects shown on a fresh install.
package seed

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/folio-labs/portfolio/internal/models"
	"github.com/folio-labs/portfolio/internal/repository"
	"github.com/folio-labs/portfolio/pkg/logger"
)

const placeholderRepo = "https://github.com"

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

// Projects returns a fresh copy of the sample catalogue.
func Projects() []models.Project {
	return []models.Project{
		{
			Title:           "Epic Adventure Quest",
			Description:     "A thrilling action-adventure game with stunning graphics and immersive gameplay",
			LongDescription: "Epic Adventure Quest is a 3D action-adventure game featuring an open world, dynamic combat system, and engaging storyline. Built with Unity and featuring custom shaders for visual effects.",
			Category:        "Unity",
			Technologies:    []string{"Unity", "C#", "Blender", "Photoshop"},
			ImageURL:        "https://images.unsplash.com/photo-1550745165-9bc0b252726f?w=800",
			GithubURL:       placeholderRepo,
			Featured:        true,
			CreatedAt:       day(2024, time.January, 15),
		},
		{
			Title:           "Puzzle Master 3D",
			Description:     "Challenging 3D puzzle game with innovative mechanics",
			LongDescription: "A brain-teasing puzzle game that combines spatial reasoning with creative problem-solving. Features procedurally generated levels and a beautiful minimalist art style.",
			Category:        "Unity",
			Technologies:    []string{"Unity", "C#", "ProBuilder"},
			ImageURL:        "https://images.unsplash.com/photo-1511512578047-dfb367046420?w=800",
			GithubURL:       placeholderRepo,
			Featured:        true,
			CreatedAt:       day(2024, time.February, 1),
		},
		{
			Title:           "Retro Arcade Collection",
			Description:     "A collection of classic arcade games reimagined for modern platforms",
			LongDescription: "A web-based collection featuring remastered versions of classic arcade games. Built with modern web technologies while maintaining the nostalgic feel of retro gaming.",
			Category:        "Web",
			Technologies:    []string{"JavaScript", "HTML5 Canvas", "WebGL"},
			ImageURL:        "https://images.unsplash.com/photo-1493711662062-fa541adb3fc8?w=800",
			GithubURL:       placeholderRepo,
			LiveURL:         "https://example.com",
			CreatedAt:       day(2024, time.February, 20),
		},
		{
			Title:           "Mobile Racing Game",
			Description:     "Fast-paced mobile racing game with multiplayer support",
			LongDescription: "An exciting mobile racing game optimized for touch controls. Features local and online multiplayer modes, customizable vehicles, and multiple race tracks.",
			Category:        "Mobile",
			Technologies:    []string{"Unity", "C#", "Photon"},
			ImageURL:        "https://images.unsplash.com/photo-1552820728-8b83bb6b773f?w=800",
			GithubURL:       placeholderRepo,
			CreatedAt:       day(2024, time.March, 10),
		},
		{
			Title:           "Indie Horror Experience",
			Description:     "Atmospheric horror game with psychological elements",
			LongDescription: "A first-person horror game focusing on atmosphere and storytelling. Features dynamic lighting, sound design, and a narrative-driven experience that keeps players on edge.",
			Category:        "Indie",
			Technologies:    []string{"Unity", "C#", "FMOD"},
			ImageURL:        "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=800",
			GithubURL:       placeholderRepo,
			Featured:        true,
			CreatedAt:       day(2024, time.March, 25),
		},
	}
}

// Run inserts every sample project whose title is not stored yet and returns
// how many were added. Running it twice is a no-op.
func Run(ctx context.Context, repo repository.ProjectRepository) (int, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return 0, err
	}
	have := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		have[p.Title] = struct{}{}
	}

	inserted := 0
	for _, p := range Projects() {
		if _, ok := have[p.Title]; ok {
			logger.L().Debug("seed project exists", zap.String("title", p.Title))
			continue
		}
		if err := repo.Create(ctx, &p); err != nil {
			return inserted, err
		}
		inserted++
		logger.L().Info("seed project inserted", zap.String("title", p.Title), zap.String("category", p.Category))
	}
	return inserted, nil
}
