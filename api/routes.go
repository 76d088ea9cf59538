package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/sleeklegal-backend/services"
)

// setupPublicRoutes sets up the routes the site reads from
func setupPublicRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(LogRequests)

		r.Get("/health", handlers.healthHandler.check())

		r.Get("/attorneys", handlers.attorneyHandler.list())
		r.Get("/attorney/{attorneyID}", handlers.attorneyHandler.get())

		r.Get("/blog-posts", handlers.blogPostHandler.list())
		r.Get("/blog-post/{blogPostID}", handlers.blogPostHandler.get())

		r.Get("/testimonials", handlers.testimonialHandler.list())
		r.Get("/testimonial/{testimonialID}", handlers.testimonialHandler.get())

		r.Post("/contact", handlers.contactHandler.submit())
	})
}

// setupAdminRoutes sets up login and the token-protected management routes
func setupAdminRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, feed *services.Feed) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(LogRequests)

		r.Post("/login", handlers.authHandler.login())

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Get("/me", handlers.authHandler.me())
			r.Get("/notifications", notificationsHandler(feed))

			r.Post("/attorney", handlers.attorneyHandler.create())
			r.Put("/attorney/{attorneyID}", handlers.attorneyHandler.update())
			r.Delete("/attorney/{attorneyID}", handlers.attorneyHandler.remove())
			r.Get("/attorneys/state", handlers.attorneyHandler.state())
			r.Post("/attorneys/seed", handlers.attorneyHandler.seed())
			r.Post("/attorneys/refresh", handlers.attorneyHandler.refresh())

			r.Post("/blog-post", handlers.blogPostHandler.create())
			r.Put("/blog-post/{blogPostID}", handlers.blogPostHandler.update())
			r.Delete("/blog-post/{blogPostID}", handlers.blogPostHandler.remove())
			r.Get("/blog-posts/state", handlers.blogPostHandler.state())
			r.Post("/blog-posts/seed", handlers.blogPostHandler.seed())
			r.Post("/blog-posts/refresh", handlers.blogPostHandler.refresh())

			r.Post("/testimonial", handlers.testimonialHandler.create())
			r.Put("/testimonial/{testimonialID}", handlers.testimonialHandler.update())
			r.Delete("/testimonial/{testimonialID}", handlers.testimonialHandler.remove())

			r.Post("/images", handlers.imageHandler.upload())
		})
	})
}

func notificationsHandler(feed *services.Feed) http.HandlerFunc {
	responder := NewResponder(log.With().Str("handlerName", "notificationsHandler").Logger())
	return func(w http.ResponseWriter, r *http.Request) {
		if feed == nil {
			responder.WriteJSON(w, []services.FeedEntry{})
			return
		}
		responder.WriteJSON(w, feed.Recent())
	}
}
