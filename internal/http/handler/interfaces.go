package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"unit-service/internal/authz"
	"unit-service/internal/domain/accesslog"
	"unit-service/internal/domain/unit"
	"unit-service/internal/domain/user"
)

// Consumer-side interfaces defined by handlers
// Each interface contains only the methods needed by the specific handler

type UnitReader interface {
	List(ctx context.Context) ([]*unit.Unit, error)
	GetByID(ctx context.Context, id uuid.UUID) (*unit.Unit, error)
}

type ResidentLister interface {
	ListScoped(ctx context.Context, filter authz.ScopeFilter) ([]*user.User, error)
}

type AccessLogLister interface {
	List(ctx context.Context, filter accesslog.QueryFilter) ([]*accesslog.Entry, error)
}

// ScopeResolver narrows resident queries to the caller's role and unit.
type ScopeResolver interface {
	ResolveScope(c echo.Context) (authz.ScopeFilter, error)
}
