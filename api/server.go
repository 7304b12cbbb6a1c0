package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/config"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/drafts"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/showcase"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/submissions"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// AdminStore lists raw table rows for administrators.
type AdminStore interface {
	ListTable(ctx context.Context, table string) (any, error)
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependencies are the services the HTTP surface is built on.
type Dependencies struct {
	Showcase    *showcase.Service
	Drafts      *drafts.Manager
	Submissions *submissions.Service
	Admin       AdminStore
	Health      Pinger

	AdminJWTSecret  string
	AcceptedOrigins []string
}

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(deps Dependencies) (Server, error) {
	if deps.Showcase == nil || deps.Drafts == nil || deps.Submissions == nil {
		return Server{}, fmt.Errorf("showcase, drafts and submissions services are required")
	}
	c := config.New()

	// Ensure correct port is set
	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	// Capture startup time
	startupTime := time.Now()

	router := newRouter(deps, withConfig(c), withStartupTime(startupTime))

	// Get timeout values from config with sensible defaults
	readTimeout := time.Duration(config.GetInt(c, "READ_TIMEOUT_SECONDS", 180)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, "WRITE_TIMEOUT_SECONDS", 180)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, "IDLE_TIMEOUT_SECONDS", 180)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,  // Timeout for reading the entire request
		WriteTimeout: writeTimeout, // Timeout for writing the response
		IdleTimeout:  idleTimeout,  // Timeout for idle connections
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
	chiRouter.Use(LogInternalServerErrors)

	// Apply CORS middleware
	chiRouter.Use(CORSCheckMiddleware(deps.AcceptedOrigins))
	chiRouter.Use(corsMiddleware(deps.AcceptedOrigins))

	// Initialize all handlers
	handlers := initializeHandlers(deps, router.startupTime)

	// Initialize auth middleware
	authMiddleware := newAuthMiddleware(deps.AdminJWTSecret)

	requestLogging := config.GetBool(router.config, "LOG_HTTP_REQUESTS", true)
	setupRoutes(chiRouter, handlers, authMiddleware, requestLogging)

	return chiRouter
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
