package api

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/killallgit/search-api/api/types"
	"github.com/killallgit/search-api/internal/services/cache"
	"github.com/killallgit/search-api/internal/services/google"
	"github.com/killallgit/search-api/internal/services/search"
	"github.com/killallgit/search-api/internal/services/youtube"
	"github.com/killallgit/search-api/pkg/config"
)

// Server represents the HTTP server
type Server struct {
	engine             *gin.Engine
	httpServer         *http.Server
	cfg                *config.Config
	searchCache        *cache.MemoryCache
	rateLimiters       *sync.Map
	cleanupInitialized sync.Once
	cleanupStop        chan struct{}
	stopOnce           sync.Once

	// Dependencies for handlers
	dependencies *types.Dependencies
}

// NewServer creates a new HTTP server from cfg
func NewServer(cfg *config.Config) *Server {
	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	return &Server{
		engine:       engine,
		cfg:          cfg,
		rateLimiters: &sync.Map{},
		cleanupStop:  make(chan struct{}),
		httpServer: &http.Server{
			Addr:           address,
			Handler:        engine,
			ReadTimeout:    cfg.Server.ReadTimeout,
			WriteTimeout:   cfg.Server.WriteTimeout,
			IdleTimeout:    cfg.Server.ReadTimeout,
			MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		},
	}
}

// SetDependencies sets all handler dependencies
func (s *Server) SetDependencies(deps *types.Dependencies) {
	s.dependencies = deps
}

// Engine returns the Gin engine for testing
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Initialize sets up middleware, the search service and routes
func (s *Server) Initialize() error {
	if s.dependencies == nil {
		s.dependencies = &types.Dependencies{}
	}
	if s.dependencies.Search == nil {
		s.dependencies.Search = s.initializeSearchService()
	}

	s.setupMiddleware()

	return RegisterRoutes(s.engine, s.dependencies, RouteOptions{
		RateLimit:          s.cfg.RateLimiting,
		RateLimiters:       s.rateLimiters,
		CleanupStop:        s.cleanupStop,
		CleanupInitialized: &s.cleanupInitialized,
	})
}

// setupMiddleware configures global middleware
func (s *Server) setupMiddleware() {
	s.engine.Use(RequestLogger())
	s.engine.Use(Recovery())

	if s.cfg.Security.EnableCORS {
		s.engine.Use(CORS(s.cfg.Security.CORSOrigins))
	}

	if s.cfg.Security.MaxBodyBytes > 0 {
		s.engine.Use(RequestSizeLimitWithSize(s.cfg.Security.MaxBodyBytes))
	} else {
		s.engine.Use(RequestSizeLimit())
	}
}

// initializeSearchService wires the Google and YouTube clients behind the
// caching search service
func (s *Server) initializeSearchService() *search.Service {
	web := google.NewClient(google.Config{
		BaseURL:   s.cfg.Google.BaseURL,
		UserAgent: s.cfg.Search.UserAgent,
		Language:  s.cfg.Google.Language,
		Timeout:   s.cfg.Search.Timeout,
	})
	video := youtube.NewClient(youtube.Config{
		BaseURL:   s.cfg.YouTube.BaseURL,
		UserAgent: s.cfg.Search.UserAgent,
		Timeout:   s.cfg.Search.Timeout,
	})

	opts := []search.Option{search.WithTimeout(s.cfg.Search.Timeout)}
	if s.cfg.Cache.SearchTTL > 0 {
		s.searchCache = cache.NewMemoryCache(s.cfg.Cache.MaxEntries, s.cfg.Cache.CleanupInterval)
		opts = append(opts, search.WithCache(s.searchCache, s.cfg.Cache.SearchTTL))
	}

	log.Info().
		Str("web", web.Name()).
		Str("video", video.Name()).
		Dur("timeout", s.cfg.Search.Timeout).
		Dur("cache_ttl", s.cfg.Cache.SearchTTL).
		Msg("Search service initialized")

	return search.NewService(web, video, opts...)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.stopBackground()
	return s.httpServer.Shutdown(ctx)
}

// stopBackground stops the cache and rate limiter cleanup goroutines
func (s *Server) stopBackground() {
	s.stopOnce.Do(func() {
		if s.searchCache != nil {
			s.searchCache.Stop()
		}
		close(s.cleanupStop)
	})
}
