package http

import (
	"context"
	stdhttp "net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"unit-service/internal/auth"
	"unit-service/internal/config"
	"unit-service/internal/http/handler"
	"unit-service/internal/http/middleware"
	"unit-service/internal/repository"
)

const (
	jsonKeyStatus    = "status"
	statusOK         = "ok"
	requestBodyLimit = "1M"
)

type ServerDependencies struct {
	Config        *config.Config
	UserRepo      repository.UserDirectory
	UnitRepo      repository.UnitRepository
	AccessLogRepo repository.AccessLogRepository
	Guard         *auth.Guard
	ScopeResolver *auth.FilterResolver
}

type Server struct {
	echo *echo.Echo
	deps *ServerDependencies
}

// NewServer builds the echo server. The request guard runs on every route:
// public endpoints pass through its allowlist bypass, everything else goes
// through the full credential/session/permission pipeline, and every
// request gets one audit entry either way.
func NewServer(deps *ServerDependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = CustomHTTPErrorHandler

	e.Server.ReadTimeout = deps.Config.Server.ReadTimeout
	e.Server.WriteTimeout = deps.Config.Server.WriteTimeout

	// Request ID middleware (first, so all logs have request ID)
	e.Use(middleware.RequestID())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.BodyLimit(requestBodyLimit))

	globalRateLimiter := middleware.NewGlobalRateLimiter()
	e.Use(globalRateLimiter.Middleware())

	e.Use(deps.Guard.Middleware())

	unitHandler := handler.NewUnitHandler(deps.UnitRepo)
	residentHandler := handler.NewResidentHandler(deps.UserRepo, deps.ScopeResolver)
	accessLogHandler := handler.NewAccessLogHandler(deps.AccessLogRepo)

	e.GET("/health", healthCheck)

	e.GET("/units", unitHandler.ListUnits)
	e.GET("/units/:id", unitHandler.GetUnit)
	e.GET("/residents", residentHandler.ListResidents)
	e.GET("/access-logs", accessLogHandler.ListAccessLogs)

	return &Server{
		echo: e,
		deps: deps,
	}
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func healthCheck(c echo.Context) error {
	return c.JSON(stdhttp.StatusOK, map[string]string{
		jsonKeyStatus: statusOK,
	})
}
