package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/tweetsink/ingest-service/internal/config"
)

type Server struct {
	httpServer *http.Server
}

func New(cfg config.ServerConfig) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:           ":" + cfg.Port,
			Handler:        cfg.Handler,
			MaxHeaderBytes: cfg.MaxHeaderBytes,
			ReadTimeout:    cfg.ReadTimeout,
			WriteTimeout:   cfg.WriteTimeout,
		},
	}
}

// Run blocks until the server stops. A graceful Shutdown, including one that
// happens before Run, is not reported as an error.
func (s *Server) Run() error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
