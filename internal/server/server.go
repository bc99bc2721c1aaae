// Package server serves the portfolio page over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sdorani/portfolio/internal/config"
	"github.com/sdorani/portfolio/internal/content"
	"github.com/sdorani/portfolio/web"
)

// Server wraps the gin engine and its http.Server.
type Server struct {
	cfg        config.Config
	site       *content.Site
	renderer   *Renderer
	engine     *gin.Engine
	httpServer *http.Server
	log        *zerolog.Logger
}

// New wires the routes for the given content.
func New(cfg config.Config, site *content.Site, log *zerolog.Logger) (*Server, error) {
	renderer, err := NewRenderer(site)
	if err != nil {
		return nil, err
	}
	salt, err := newSalt()
	if err != nil {
		return nil, err
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	s := &Server{
		cfg:      cfg,
		site:     site,
		renderer: renderer,
		engine:   gin.New(),
		log:      log,
	}
	s.engine.Use(gin.Recovery(), requestID(), accessLog(log, salt), securityHeaders())
	s.engine.SetHTMLTemplate(renderer.Template())
	if err := s.setupRoutes(); err != nil {
		return nil, err
	}

	s.httpServer = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.engine,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s, nil
}

func (s *Server) setupRoutes() error {
	static, err := fs.Sub(web.FS, "static")
	if err != nil {
		return fmt.Errorf("opening static assets: %w", err)
	}
	s.engine.StaticFS("/static", http.FS(static))
	s.engine.Static("/images", s.cfg.ImagesDir)
	s.engine.Static("/wasm", s.cfg.WasmDir)

	s.engine.GET("/", s.handlePage)
	s.engine.GET("/graph", s.handleGraph)
	s.engine.GET("/api/layout", s.handleLayout)
	s.engine.GET("/healthz", s.handleHealth)
	return nil
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.httpServer.Addr).Msg("starting HTTP server")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server failed: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	s.log.Info().Msg("shutting down HTTP server")
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return <-errCh
}
