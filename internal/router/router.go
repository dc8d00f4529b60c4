package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/robinroyhansen/maler-christensen-api/internal/api/audit"
	"github.com/robinroyhansen/maler-christensen-api/internal/api/blog"
	"github.com/robinroyhansen/maler-christensen-api/internal/api/gallery"
	"github.com/robinroyhansen/maler-christensen-api/internal/api/leads"
	"github.com/robinroyhansen/maler-christensen-api/internal/api/overrides"
	"github.com/robinroyhansen/maler-christensen-api/internal/api/pages"
	"github.com/robinroyhansen/maler-christensen-api/internal/api/redirects"
	"github.com/robinroyhansen/maler-christensen-api/internal/api/reviews"
)

// Config contains the handler dependencies needed for the router setup.
type Config struct {
	PagesHandler     *pages.Handler
	OverridesHandler *overrides.Handler
	LeadsHandler     *leads.Handler
	ReviewsHandler   *reviews.Handler
	BlogHandler      *blog.Handler
	GalleryHandler   *gallery.Handler
	RedirectsHandler *redirects.Handler
	AuditHandler     *audit.Handler

	RedirectResolver *redirects.Resolver
	RequireAdmin     func(http.Handler) http.Handler
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (logger, requestID, recoverer) are expected to be
// applied before mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000", "https://maler-christensen.dk"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.RedirectResolver != nil {
		r.Use(cfg.RedirectResolver.Middleware)
	}

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// Public site routes
		r.Group(func(r chi.Router) {
			r.Get("/byer", cfg.PagesHandler.ListCities)
			r.Get("/byer/{slug}", cfg.PagesHandler.GetCity)
			r.Get("/byer/{slug}/faq", cfg.PagesHandler.GetCityFAQs)
			r.Get("/ydelser", cfg.PagesHandler.ListServices)
			r.Get("/ydelser/{slug}", cfg.PagesHandler.GetService)

			r.Get("/blog", cfg.BlogHandler.ListPublished)
			r.Get("/blog/{slug}", cfg.BlogHandler.GetBySlug)
			r.Get("/anmeldelser", cfg.ReviewsHandler.ListPublished)
			r.Get("/galleri", cfg.GalleryHandler.List)

			r.Post("/kontakt", cfg.LeadsHandler.Submit)
		})

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Use(cfg.RequireAdmin)

			r.Get("/cities", cfg.OverridesHandler.ListCities)
			r.Get("/services", cfg.OverridesHandler.ListServices)
			r.Route("/overrides/{kind}", func(r chi.Router) {
				r.Get("/{slug}", cfg.OverridesHandler.Get)
				r.Put("/{slug}", cfg.OverridesHandler.Save)
				r.Delete("/{slug}", cfg.OverridesHandler.Delete)
			})

			r.Get("/leads", cfg.LeadsHandler.List)
			r.Put("/leads/{id}/status", cfg.LeadsHandler.SetStatus)
			r.Delete("/leads/{id}", cfg.LeadsHandler.Delete)

			r.Get("/reviews", cfg.ReviewsHandler.ListAll)
			r.Post("/reviews", cfg.ReviewsHandler.Create)
			r.Put("/reviews/{id}", cfg.ReviewsHandler.Update)
			r.Delete("/reviews/{id}", cfg.ReviewsHandler.Delete)

			r.Get("/blog", cfg.BlogHandler.ListAll)
			r.Post("/blog", cfg.BlogHandler.Create)
			r.Put("/blog/{id}", cfg.BlogHandler.Update)
			r.Delete("/blog/{id}", cfg.BlogHandler.Delete)

			r.Post("/gallery", cfg.GalleryHandler.Create)
			r.Put("/gallery/{id}", cfg.GalleryHandler.Update)
			r.Delete("/gallery/{id}", cfg.GalleryHandler.Delete)

			r.Get("/redirects", cfg.RedirectsHandler.List)
			r.Post("/redirects", cfg.RedirectsHandler.Create)
			r.Delete("/redirects/{id}", cfg.RedirectsHandler.Delete)

			r.Get("/seo-audit", cfg.AuditHandler.Run)
		})
	})

	return r
}
