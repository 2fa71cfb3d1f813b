package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/jobdocs/internal/http/document"
	"github.com/MrJamesThe3rd/jobdocs/internal/http/template"
)

func New(
	documentsV1 *document.Handler,
	templatesV1 *template.Handler,
	authenticate func(http.Handler) http.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", templatesV1.Routes)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			r.Post("/session", documentsV1.InitSession)

			r.Route("/documents", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				documentsV1.Routes(r)
			})
		})
	})

	return router
}
