package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/freezing-point/fp-core/internal/core/ports/driving"
)

// Pinger is a simple health check interface
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	router     *http.ServeMux
	version    string

	// Services
	authService       driving.AuthService
	contentService    driving.ContentService
	taxonomyService   driving.TaxonomyService
	typographyService driving.TypographyService
	renderService     driving.RenderService
	assetService      driving.AssetService

	// Infrastructure
	db          Pinger // PostgreSQL health check
	redisClient Pinger // Redis health check (optional)
}

// Config holds server configuration
type Config struct {
	Host           string
	Port           int
	Version        string
	AllowedOrigins []string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Host:           "0.0.0.0",
		Port:           8080,
		Version:        "dev",
		AllowedOrigins: []string{"*"},
	}
}

// NewServer creates a new HTTP server
func NewServer(
	cfg Config,
	authService driving.AuthService,
	contentService driving.ContentService,
	taxonomyService driving.TaxonomyService,
	typographyService driving.TypographyService,
	renderService driving.RenderService,
	assetService driving.AssetService,
	db Pinger,
	redisClient Pinger, // can be nil
) *Server {
	s := &Server{
		router:            http.NewServeMux(),
		version:           cfg.Version,
		authService:       authService,
		contentService:    contentService,
		taxonomyService:   taxonomyService,
		typographyService: typographyService,
		renderService:     renderService,
		assetService:      assetService,
		db:                db,
		redisClient:       redisClient,
	}

	s.setupRoutes()

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	handler := NewRecoveryMiddleware().Handler(
		NewLoggingMiddleware().Handler(
			NewCORSMiddleware(origins).Handler(s.router)))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	// Create middleware
	authMiddleware := NewAuthMiddleware(s.authService)

	// Health endpoints (no auth)
	s.router.HandleFunc("GET /health", s.handleHealth)
	s.router.HandleFunc("GET /ready", s.handleReady)
	s.router.HandleFunc("GET /version", s.handleVersion)

	// Auth endpoints
	s.router.HandleFunc("POST /api/v1/auth/login", s.handleLogin)
	s.router.Handle("POST /api/v1/auth/logout",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleLogout)))

	// Public site reads
	s.router.HandleFunc("GET /api/v1/home", s.handleHome)
	s.router.HandleFunc("GET /api/v1/content/{kind}", s.handleListContent)
	s.router.HandleFunc("GET /api/v1/content/{kind}/{id}", s.handleGetContent)
	s.router.HandleFunc("GET /api/v1/content/{kind}/{id}/render", s.handleRenderContent)
	s.router.HandleFunc("GET /api/v1/tags", s.handleListTags)
	s.router.HandleFunc("GET /api/v1/domains", s.handleListDomains)
	s.router.HandleFunc("GET /api/v1/typography", s.handleGetTypography)

	// Content authoring (admin)
	s.router.Handle("POST /api/v1/content",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleCreateContent)))
	s.router.Handle("POST /api/v1/content/validate-blocks",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleValidateBlocks)))
	s.router.Handle("PUT /api/v1/content/{kind}/{id}",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleUpdateContent)))
	s.router.Handle("DELETE /api/v1/content/{kind}/{id}",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleDeleteContent)))

	// Authoring preview (admin)
	s.router.Handle("POST /api/v1/render/preview",
		authMiddleware.Authenticate(http.HandlerFunc(s.handlePreview)))

	// Taxonomy management (admin)
	s.router.Handle("POST /api/v1/tags",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleCreateTag)))
	s.router.Handle("PUT /api/v1/tags/{id}",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleUpdateTag)))
	s.router.Handle("DELETE /api/v1/tags/{id}",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleDeleteTag)))
	s.router.Handle("POST /api/v1/domains",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleCreateDomain)))
	s.router.Handle("PUT /api/v1/domains/{id}",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleUpdateDomain)))
	s.router.Handle("DELETE /api/v1/domains/{id}",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleDeleteDomain)))

	// Typography (admin for writes)
	s.router.Handle("PUT /api/v1/typography",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleUpdateTypography)))

	// Asset uploads (admin)
	s.router.Handle("POST /api/v1/uploads",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleUpload)))
}

// Start starts the HTTP server with graceful shutdown
func (s *Server) Start() error {
	// Channel to listen for OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-stop
	log.Println("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// Stop stops the server
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
