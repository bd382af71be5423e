package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"unit-service/internal/config"
	"unit-service/internal/http"
	"unit-service/internal/repository/postgres"
)

const (
	serverAddrPrefix = ":"
	signalBufferSize = 1
)

var shutdownSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
}

// Service owns the process lifecycle: the HTTP server plus the postgres
// and redis connections it depends on.
type Service struct {
	config *config.Config
	logger *zap.Logger
	db     *postgres.DB
	redis  *redis.Client
	server *http.Server
}

// NewService creates and initializes a new Service instance.
// This is a convenience wrapper around InitializeService.
func NewService() (*Service, error) {
	return InitializeService()
}

// Run starts the HTTP server and blocks until a shutdown signal arrives,
// then drains in-flight requests and closes the backing connections.
func (s *Service) Run() error {
	errCh := make(chan error, signalBufferSize)

	go func() {
		s.logger.Info("starting http server", zap.String("port", s.config.Server.Port))
		errCh <- s.server.Start(serverAddrPrefix + s.config.Server.Port)
	}()

	quit := make(chan os.Signal, signalBufferSize)
	signal.Notify(quit, shutdownSignals...)

	select {
	case err := <-errCh:
		s.close()
		return err
	case sig := <-quit:
		s.logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.close()
	return err
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Service) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) close() {
	s.db.Close()
	if err := s.redis.Close(); err != nil {
		s.logger.Warn("redis close failed", zap.Error(err))
	}
	_ = s.logger.Sync()
}
