package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-labs/portfolio/internal/api/handlers"
	"github.com/folio-labs/portfolio/internal/models"
	"github.com/folio-labs/portfolio/internal/services"
)

type stubProjects struct{ items []models.Project }

func (s stubProjects) ListProjects(context.Context) ([]models.Project, error) { return s.items, nil }

func (s stubProjects) ListFeaturedProjects(context.Context) ([]models.Project, error) {
	var out []models.Project
	for _, p := range s.items {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out, nil
}

type stubContact struct{ got []services.ContactInput }

func (s *stubContact) Submit(_ context.Context, in services.ContactInput) (services.ContactResult, error) {
	s.got = append(s.got, in)
	return services.ContactResult{Stored: true, Notified: true}, nil
}

func newTestRouter(contact *stubContact) http.Handler {
	projects := stubProjects{items: []models.Project{
		{Title: "Indie Horror Experience", Category: "Indie", Featured: true},
		{Title: "Mobile Racing Game", Category: "Mobile"},
	}}
	return NewRouter(Dependencies{
		CORSOrigin:      "*",
		ProjectsHandler: handlers.NewProjectsHandler(projects),
		ContactHandler:  handlers.NewContactHandler(contact),
	})
}

func TestRouterServesProjects(t *testing.T) {
	r := newTestRouter(&stubContact{})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/projects", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Mobile Racing Game")
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/projects/featured", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Indie Horror Experience")
	assert.NotContains(t, rr.Body.String(), "Mobile Racing Game")
}

func TestRouterContact(t *testing.T) {
	contact := &stubContact{}
	r := newTestRouter(contact)

	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":"Ana","email":"ana@x.com","message":"Hi"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Message sent successfully"}`, rr.Body.String())
	require.Len(t, contact.got, 1)
	assert.Equal(t, "Ana", contact.got[0].Name)
}

func TestRouterRejectsWrongMethod(t *testing.T) {
	r := newTestRouter(&stubContact{})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/contact", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestRouterHealth(t *testing.T) {
	r := newTestRouter(&stubContact{})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}
