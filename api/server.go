package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/sleeklegal-backend/config"
	"github.com/rpupo63/sleeklegal-backend/content"
	"github.com/rpupo63/sleeklegal-backend/models"
	"github.com/rpupo63/sleeklegal-backend/services"
)

// Dependencies are the collaborators the HTTP surface serves. Images,
// Feed and Backend may be nil.
type Dependencies struct {
	Attorneys    *content.Attorneys
	BlogPosts    *content.BlogPosts
	Testimonials *content.Testimonials
	Contact      *services.ContactService
	Images       *services.ImageStore
	Feed         *services.Feed
	Backend      pinger
}

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(c map[string]string, deps Dependencies) (Server, error) {
	if deps.Attorneys == nil || deps.BlogPosts == nil || deps.Testimonials == nil {
		return Server{}, fmt.Errorf("all content providers are required")
	}

	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	startupTime := time.Now()

	router := newRouter(deps, withConfig(c), withStartupTime(startupTime))

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  config.GetDuration(c, "READ_TIMEOUT_SECONDS", 180*time.Second),  // Timeout for reading the entire request
		WriteTimeout: config.GetDuration(c, "WRITE_TIMEOUT_SECONDS", 180*time.Second), // Timeout for writing the response
		IdleTimeout:  config.GetDuration(c, "IDLE_TIMEOUT_SECONDS", 180*time.Second),  // Timeout for idle connections
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(deps Dependencies, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(middleware.RequestID)
	chiRouter.Use(RecoverPanics)

	auth := authConfigFromEnv(router.config)
	handlers := initializeHandlers(deps, auth, router)
	authMiddleware := newAuthMiddleware(auth)

	acceptedOrigins := config.GetList(router.config, "ACCEPTED_ORIGINS")
	if len(acceptedOrigins) == 0 {
		acceptedOrigins = []string{"http://localhost:5173"}
	}
	chiRouter.Use(RejectUnknownPreflight(acceptedOrigins))
	chiRouter.Use(corsHeaders(acceptedOrigins))

	setupPublicRoutes(chiRouter, handlers)
	setupAdminRoutes(chiRouter, handlers, authMiddleware, deps.Feed)

	return chiRouter
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(deps Dependencies, auth authConfig, r router) *routeHandlers {
	timeout := config.GetDuration(r.config, "REQUEST_TIMEOUT_SECONDS", 15*time.Second)

	var images imageUploader
	if deps.Images != nil {
		images = deps.Images
	}

	return &routeHandlers{
		attorneyHandler: newCollectionHandler("attorneyHandler", deps.Attorneys, "attorneyID", timeout),
		blogPostHandler: newCollectionHandler("blogPostHandler", deps.BlogPosts, "blogPostID", timeout).
			withFilter(func(req *http.Request, posts []models.BlogPost) []models.BlogPost {
				return content.FilterByCategory(posts, strings.TrimSpace(req.URL.Query().Get("category")))
			}),
		testimonialHandler: newCollectionHandler("testimonialHandler", deps.Testimonials, "testimonialID", timeout),
		contactHandler:     newContactHandler(deps.Contact),
		authHandler:        newAuthHandler(auth),
		imageHandler:       newImageHandler(images),
		healthHandler:      newHealthHandler(deps.Backend, r.startupTime, deps.Attorneys, deps.BlogPosts, deps.Testimonials),
	}
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
