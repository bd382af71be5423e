package app

import (
	"fmt"

	"go.uber.org/zap"

	"unit-service/internal/audit"
	"unit-service/internal/auth"
	"unit-service/internal/authz"
	"unit-service/internal/config"
	"unit-service/internal/http"
	"unit-service/internal/infra/cache"
	"unit-service/internal/repository/postgres"
)

// InitializeService wires up all dependencies and returns a configured Service.
func InitializeService() (*Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := postgres.New(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	redisClient, err := cache.NewClient(&cfg.Redis)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	userRepo := postgres.NewUserRepository(db)
	unitRepo := postgres.NewUnitRepository(db)
	accessLogRepo := postgres.NewAccessLogRepository(db)
	sessionStore := cache.NewSessionStore(redisClient)

	tokenService := auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.ExpiryDuration, userRepo)

	resolver, err := authz.NewResolver(DefaultRouteTable())
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to compile route table: %w", err)
	}

	public, err := authz.NewAllowlist(DefaultPublicRoutes())
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to compile public allowlist: %w", err)
	}

	auditLogger := audit.NewLogger(accessLogRepo, tokenService, logger, cfg.Access.AuditWriteTimeout)
	guard := auth.NewGuard(tokenService, userRepo, sessionStore, resolver, public, auditLogger, logger)
	scopeResolver := auth.NewFilterResolver(tokenService, cfg.Access.PrivilegedRoleID)

	server := http.NewServer(&http.ServerDependencies{
		Config:        cfg,
		UserRepo:      userRepo,
		UnitRepo:      unitRepo,
		AccessLogRepo: accessLogRepo,
		Guard:         guard,
		ScopeResolver: scopeResolver,
	})

	return &Service{
		config: cfg,
		logger: logger,
		db:     db,
		redis:  redisClient,
		server: server,
	}, nil
}
