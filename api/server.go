package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meghashyamc/ecssnav/backend"
	"github.com/meghashyamc/ecssnav/config"
	"github.com/meghashyamc/ecssnav/logger"
	"github.com/meghashyamc/ecssnav/services/catalog"
	"github.com/meghashyamc/ecssnav/services/search"
	"github.com/meghashyamc/ecssnav/validation"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	cfg            *config.Config
	router         *gin.Engine
	httpServer     *http.Server
	backend        *backend.HTTPClient
	searchService  *search.Service
	catalogService *catalog.Service
	validator      *validation.Validator
	logger         logger.Logger
}

// Run serves the API until ctx is cancelled or the process is interrupted.
func Run(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)

	defer cancel()

	s := &server{
		cfg:    cfg,
		logger: logger.NewWithLevel(cfg.GetLogLevel()),
	}
	if err := s.setupDependencies(); err != nil {
		return err
	}
	s.setupRouter()

	serverErrC := s.setupHTTPServer()

	return s.waitForShutdown(ctx, serverErrC)
}

func (s *server) setupDependencies() error {
	var err error
	s.backend = backend.New(s.logger, s.cfg)

	corpus, err := search.LoadCorpus(s.cfg.GetFallbackCorpusPath())
	if err != nil {
		s.logger.Error("error loading fallback corpus", "err", err.Error())
		return err
	}

	s.searchService = search.New(s.logger, s.backend, corpus)
	s.catalogService = catalog.New(s.logger, s.backend)

	s.validator, err = validation.New(s.logger)
	if err != nil {
		s.logger.Error("error creating validator", "err", err.Error())
		return err
	}

	s.logger.Info("dependencies ready", "backend", s.backend.BaseURL(), "fallback_entries", len(corpus))

	return nil

}

func (s *server) setupRouter() {
	router := newRouter(s.cfg)

	router.Use(loggingMiddleware(s.logger))

	setupRoutes(router, s.logger, s.searchService, s.catalogService, s.validator)

	s.router = router
}

func (s *server) setupHTTPServer() <-chan error {

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", s.cfg.GetPort()),
		Handler: s.router.Handler(),
	}
	s.httpServer = httpServer

	serverErrC := make(chan error, 1)
	go func() {
		s.logger.Info("starting http server", "addr", httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrC <- fmt.Errorf("listen: %w", err)
		}
		close(serverErrC)
	}()

	return serverErrC
}

func (s *server) waitForShutdown(ctx context.Context, serverErrC <-chan error) error {

	select {
	case err, ok := <-serverErrC:
		if ok && err != nil {
			s.logger.Error("http server stopped", "err", err.Error())
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("starting to shut down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("error shutting down http server", "err", err)
		return err
	}
	s.logger.Info("shut down http server successfully")

	return nil
}
