package client

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/folio-labs/portfolio/internal/models"
	"github.com/folio-labs/portfolio/pkg/logger"
)

// CategoryAll disables filtering.
const CategoryAll = "All"

// Categories are the filter choices offered to the visitor.
var Categories = []string{CategoryAll, "Unity", "Web", "Mobile", "Indie"}

type LoadState int

const (
	StateLoading LoadState = iota
	StateLoaded
	StateError
)

func (s LoadState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// ProjectSource fetches the full project list.
type ProjectSource interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
}

// ProjectsView holds the gallery: the fetched list, the selected category and
// the list derived from the two.
type ProjectsView struct {
	src ProjectSource

	mu       sync.RWMutex
	state    LoadState
	err      error
	all      []models.Project
	filtered []models.Project
	category string
}

func NewProjectsView(src ProjectSource) *ProjectsView {
	return &ProjectsView{src: src, state: StateLoading, category: CategoryAll}
}

// Load fetches the list once. On failure the gallery stays empty; the error
// is kept for logging only.
func (v *ProjectsView) Load(ctx context.Context) error {
	v.mu.Lock()
	v.state = StateLoading
	v.mu.Unlock()

	items, err := v.src.ListProjects(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		logger.L().Warn("error fetching projects", zap.Error(err))
		v.state, v.err = StateError, err
		v.all, v.filtered = nil, nil
		return err
	}
	v.state, v.err = StateLoaded, nil
	v.all = items
	v.filtered = FilterByCategory(items, v.category)
	return nil
}

// SetCategory changes the filter and recomputes the visible list locally.
func (v *ProjectsView) SetCategory(category string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.category = category
	v.filtered = FilterByCategory(v.all, category)
}

func (v *ProjectsView) Category() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.category
}

func (v *ProjectsView) State() LoadState {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state
}

func (v *ProjectsView) Err() error {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.err
}

// Visible returns a copy of the filtered list.
func (v *ProjectsView) Visible() []models.Project {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]models.Project(nil), v.filtered...)
}

// FilterByCategory keeps projects whose category equals the given one,
// ignoring case. "All" returns the input unchanged. Order is preserved.
func FilterByCategory(projects []models.Project, category string) []models.Project {
	if category == CategoryAll {
		return projects
	}
	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}
