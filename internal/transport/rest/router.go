package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/heartmarshall/readlog-backend/internal/transport/middleware"
)

// Handlers groups the API handlers mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Books     *BookHandler
	UserBooks *UserBookHandler
	Goals     *GoalHandler
}

// NewRouter builds the HTTP routing tree. mws run on every request, in
// order, before routing; metrics may be nil. Trailing slashes are optional
// on every path.
func NewRouter(h Handlers, metrics http.Handler, mws ...middleware.Middleware) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.StripSlashes)
	for _, mw := range mws {
		r.Use(mw)
	}

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.Auth.Register)
		r.Post("/auth/login", h.Auth.Login)

		r.Route("/books", func(r chi.Router) {
			r.Get("/", h.Books.List)
			r.Post("/", h.Books.Create)
			r.Get("/search_google_books", h.Books.SearchGoogleBooks)
			r.Post("/add_from_google", h.Books.AddFromGoogle)
			r.Get("/{id}", h.Books.Get)
			r.Put("/{id}", h.Books.Replace)
			r.Patch("/{id}", h.Books.Patch)
			r.Delete("/{id}", h.Books.Delete)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser)

			r.Route("/user-books", func(r chi.Router) {
				r.Get("/", h.UserBooks.List)
				r.Post("/", h.UserBooks.Create)
				r.Get("/currently_reading", h.UserBooks.CurrentlyReading)
				r.Get("/completed", h.UserBooks.Completed)
				r.Get("/want_to_read", h.UserBooks.WantToRead)
				r.Get("/statistics", h.UserBooks.Statistics)
				r.Get("/recommendations", h.UserBooks.Recommendations)
				r.Get("/{id}", h.UserBooks.Get)
				r.Put("/{id}", h.UserBooks.Replace)
				r.Patch("/{id}", h.UserBooks.Patch)
				r.Delete("/{id}", h.UserBooks.Delete)
			})

			r.Route("/reading-goals", func(r chi.Router) {
				r.Get("/", h.Goals.List)
				r.Post("/", h.Goals.Create)
				r.Get("/current_year", h.Goals.CurrentYear)
				r.Get("/{id}", h.Goals.Get)
				r.Put("/{id}", h.Goals.Replace)
				r.Patch("/{id}", h.Goals.Patch)
				r.Delete("/{id}", h.Goals.Delete)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
