package handlers

import (
	"net/http"

	"github.com/folio-labs/portfolio/internal/models"
	"github.com/folio-labs/portfolio/internal/services"
)

const projectsFailure = "Failed to fetch projects"

type ProjectsHandler struct {
	svc services.ProjectService
}

func NewProjectsHandler(svc services.ProjectService) *ProjectsHandler {
	return &ProjectsHandler{svc: svc}
}

// List godoc
// @Summary      List projects
// @Description  Every stored project, newest first.
// @Tags         projects
// @Produce      json
// @Success      200  {array}   models.Project
// @Failure      500  {object}  types.ErrorResponse
// @Router       /api/projects [get]
func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListProjects(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, projectsFailure, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(items))
}

// Featured godoc
// @Summary      List featured projects
// @Tags         projects
// @Produce      json
// @Success      200  {array}   models.Project
// @Failure      500  {object}  types.ErrorResponse
// @Router       /api/projects/featured [get]
func (h *ProjectsHandler) Featured(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListFeaturedProjects(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, projectsFailure, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(items))
}

// An empty listing is [] on the wire, never null.
func nonNil(items []models.Project) []models.Project {
	if items == nil {
		return []models.Project{}
	}
	return items
}
