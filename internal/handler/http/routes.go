package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	if h.corsOrigin != "" {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{h.corsOrigin},
			AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
			AllowCredentials: true,
		}))
	}

	router.Route("/api/v1/users", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
		})

		// routes behind the session middleware
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/logout", h.logout)
			r.Post("/change-password", h.changePassword)
			r.Get("/me", h.currentUser)
			r.Patch("/me", h.updateDetails)
			r.Patch("/avatar", h.updateAvatar)
		})
	})

	return router
}
