package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(h.session)

		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)

		r.Get("/api/practice", h.practice)
		r.Post("/api/practice", h.practice)
		r.Post("/api/mark-learned", h.markLearned)
		r.Get("/api/stats", h.getStats)
	})

	// curated vocabulary routes require an authenticated account
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/words/bulk", h.bulkWords)
		r.Get("/api/words", h.listWords)
		r.Get("/api/words/random", h.randomWord)
		r.Put("/api/words/{id}", h.updateWord)
		r.Delete("/api/words/{id}", h.deleteWord)
	})

	return router
}
