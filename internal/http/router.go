package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ritamartins/budgie/internal/http/auth"
	budgetHandler "github.com/ritamartins/budgie/internal/http/budget"
	"github.com/ritamartins/budgie/internal/http/importcsv"
)

// New assembles the API router. authSecret empty means the API runs open,
// which is the local single-user default.
func New(
	budgetV1 *budgetHandler.Handler,
	importV1 *importcsv.Handler,
	authSecret string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// The browser UI is served from a different origin.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		if authSecret != "" {
			r.Use(auth.Middleware(authSecret))
		}

		budgetV1.Routes(r)

		r.Route("/import", importV1.Routes)
	})

	return router
}
