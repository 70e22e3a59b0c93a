package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Ansh3878/matrix-jobs/internal/models"
)

// Searcher runs one aggregation query. Satisfied by aggregate.Aggregator.
type Searcher interface {
	Search(ctx context.Context, query models.Query) (models.Page, error)
}

// Server exposes the aggregation pipeline over HTTP.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	searcher   Searcher
	logger     zerolog.Logger
}

func New(addr string, searcher Searcher, logger zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(requestLogger(logger), gin.Recovery())

	s := &Server{
		router:   router,
		searcher: searcher,
		logger:   logger,
	}
	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)
	s.router.GET("/api/jobs", s.handleJobs)
}

func (s *Server) Run() error {
	s.logger.Info().Str("addr", s.httpServer.Addr).Msg("http server listening")
	if err := s.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}
