package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"oes-harmonize/internal/dialectfile"
	"oes-harmonize/internal/oes"
	"oes-harmonize/internal/registry"
)

// Server serves the harmonization API.
type Server struct {
	config Config
	logger *slog.Logger
	engine *gin.Engine

	reg      atomic.Pointer[registry.Registry]
	reloadMu sync.Mutex
}

// New builds the registry and the route table.
func New(config Config, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{config: config, logger: logger}

	reg, err := s.buildRegistry()
	if err != nil {
		return nil, err
	}

	s.reg.Store(reg)
	s.engine = s.routes()

	return s, nil
}

func (s *Server) buildRegistry() (*registry.Registry, error) {
	reg, err := oes.NewRegistry()
	if err != nil {
		return nil, err
	}

	if s.config.DialectDir != "" {
		if err := dialectfile.RegisterDir(reg, s.config.DialectDir); err != nil {
			return nil, fmt.Errorf("loading dialects from %s: %w", s.config.DialectDir, err)
		}
	}

	return reg, nil
}

// Registry returns the registry current requests resolve against.
func (s *Server) Registry() *registry.Registry {
	return s.reg.Load()
}

// Reload rebuilds the registry and swaps it in. On failure the previous
// registry stays active.
func (s *Server) Reload() error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	reg, err := s.buildRegistry()
	if err != nil {
		return err
	}

	s.reg.Store(reg)

	return nil
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = 32 << 20

	r.Use(withRequestID(), withLogging(s.logger), gin.Recovery())

	r.GET("/healthz", s.handleHealth)
	r.GET("/dialects", s.handleDialects)
	r.POST("/harmonize", s.limitBody, s.handleHarmonize)
	r.POST("/inspect", s.limitBody, s.handleInspect)

	return r
}

func (s *Server) limitBody(c *gin.Context) {
	if limit := s.config.MaxUploadBytes; limit > 0 {
		if c.Request.ContentLength > limit {
			abort(c, &http.MaxBytesError{Limit: limit}, nil)

			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
	}

	c.Next()
}

// Run serves until ctx is cancelled, then shuts down gracefully. When
// configured it also watches the dialect directory.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.config.Addr,
		Handler: s.engine,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("listening", slog.String("addr", s.config.Addr))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	if s.config.Watch && s.config.DialectDir != "" {
		g.Go(func() error {
			return s.Watch(ctx)
		})
	}

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()

		s.logger.Info("shutting down")

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
