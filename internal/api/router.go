package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/folio-labs/portfolio/internal/api/handlers"
	mw "github.com/folio-labs/portfolio/internal/api/middleware"
)

type Dependencies struct {
	CORSOrigin      string
	HealthHandler   *handlers.HealthHandler
	ProjectsHandler *handlers.ProjectsHandler
	ContactHandler  *handlers.ContactHandler
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.CORS(dep.CORSOrigin))
	r.Use(chimid.Compress(5))

	hh := dep.HealthHandler
	if hh == nil {
		hh = handlers.NewHealthHandler(nil)
	}
	r.Get("/healthz", hh.Liveness)
	r.Get("/readyz", hh.Readiness)

	// Relative so the UI works behind any host or prefix.
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("doc.json")))

	r.Route("/api", func(api chi.Router) {
		api.Route("/projects", func(pr chi.Router) {
			pr.Get("/", dep.ProjectsHandler.List)
			pr.Get("/featured", dep.ProjectsHandler.Featured)
		})
		api.Post("/contact", dep.ContactHandler.Submit)
	})

	return r
}
