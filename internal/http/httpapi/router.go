package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"lookbook/internal/http/handlers"
	"lookbook/internal/middleware"
)

func NewRouter(app *handlers.App) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Logger),
	)

	r.Get("/healthz", app.Health)
	r.Get("/", app.Home)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", app.Generate)
		r.Post("/history", app.History)
	})

	return r
}
