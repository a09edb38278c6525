package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/cipherlab-go/internal/config"
	"github.com/cipherlab-go/internal/dao"
	"github.com/cipherlab-go/internal/handler"
	"github.com/cipherlab-go/internal/storage"
)

// Server represents the HTTP server
type Server struct {
	cfg        *config.Config
	store      *storage.Store
	engine     *gin.Engine
	httpServer *http.Server
	userDAO    *dao.UserDAO
	historyDAO *dao.HistoryDAO
	padKeyDAO  *dao.PadKeyDAO
}

// New creates a new server instance
func New(cfg *config.Config) (*Server, error) {
	store, err := storage.NewStore(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:        cfg,
		store:      store,
		engine:     gin.New(),
		userDAO:    dao.NewUserDAO(store),
		historyDAO: dao.NewHistoryDAO(store, cfg.Limits.HistoryPerUser),
		padKeyDAO:  dao.NewPadKeyDAO(store),
	}

	// Ensure default admin user exists
	if err := s.userDAO.EnsureDefaultUser(); err != nil {
		log.Warn().Err(err).Msg("Failed to ensure default user")
	}

	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	r := s.engine

	// Middleware
	r.Use(TraceMiddleware())
	r.Use(LoggerMiddleware())
	r.Use(gin.Recovery())
	r.Use(CORSMiddleware())
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.GET("/health", HealthHandler)
	r.GET("/ready", ReadyHandler)

	apiHandler := handler.NewAPIHandler(s.cfg, s.userDAO)
	cipherHandler := handler.NewCipherHandler(s.cfg, s.historyDAO)
	analysisHandler := handler.NewAnalysisHandler(s.cfg)
	historyHandler := handler.NewHistoryHandler(s.historyDAO, s.padKeyDAO)

	api := r.Group("/api")
	{
		api.POST("/login", apiHandler.Login)

		// Cipher and analysis routes are open; a valid token adds
		// history recording.
		open := api.Group("")
		open.Use(OptionalAuthMiddleware(apiHandler.JWT()))
		{
			open.GET("/cipher/families", cipherHandler.Families)
			open.POST("/cipher/:family/encode", cipherHandler.Encode)
			open.POST("/cipher/:family/decode", cipherHandler.Decode)
			open.POST("/cipher/:family/visualize", cipherHandler.Visualize)
			open.POST("/analyze", analysisHandler.AnalyzeText)
			open.POST("/analyze/lcg", analysisHandler.AnalyzeLCG)
			open.GET("/lcg/presets", analysisHandler.Presets)
		}

		// Account-bound routes require auth.
		protected := api.Group("")
		protected.Use(AuthMiddleware(apiHandler.JWT()))
		{
			protected.GET("/user", apiHandler.GetUserInfo)
			protected.POST("/user/password", apiHandler.UpdatePassword)
			protected.GET("/history", historyHandler.List)
			protected.POST("/otp/check-reuse", historyHandler.CheckPadReuse)
		}
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := s.cfg.GetHTTPAddr()

	var httpHandler http.Handler = s.engine

	// Enable h2c (HTTP/2 cleartext) if configured
	if s.cfg.IsH2CEnabled() {
		h2s := &http2.Server{
			MaxConcurrentStreams: 1000,
			IdleTimeout:          120 * time.Second,
		}
		httpHandler = h2c.NewHandler(s.engine, h2s)
		log.Info().Msg("HTTP/2 cleartext (h2c) enabled")
	}

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      httpHandler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Info().Str("addr", addr).Msg("Starting HTTP server")

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("Shutting down server...")

	var lastErr error
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			lastErr = err
		}
	}
	if err := s.store.Close(); err != nil {
		lastErr = err
	}
	return lastErr
}
