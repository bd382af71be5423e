package repository

import (
	"context"

	"github.com/google/uuid"

	"unit-service/internal/authz"
	"unit-service/internal/domain/accesslog"
	"unit-service/internal/domain/session"
	"unit-service/internal/domain/unit"
	"unit-service/internal/domain/user"
)

// Repository interfaces used by the auth, audit and handler packages.
// These are provider-side interfaces that concrete implementations must satisfy.

type UserDirectory interface {
	FindWithRole(ctx context.Context, personalKey uuid.UUID) (*user.UserWithRole, error)
	GetByPersonalKey(ctx context.Context, personalKey uuid.UUID) (*user.UserWithRole, error)
	ListScoped(ctx context.Context, filter authz.ScopeFilter) ([]*user.User, error)
}

type SessionStore interface {
	HasActiveSession(ctx context.Context, token string) (bool, error)
	Save(ctx context.Context, s *session.Session) error
	Revoke(ctx context.Context, token string) error
}

type AccessLogRepository interface {
	Create(ctx context.Context, entry *accesslog.Entry) error
	List(ctx context.Context, filter accesslog.QueryFilter) ([]*accesslog.Entry, error)
}

type UnitRepository interface {
	List(ctx context.Context) ([]*unit.Unit, error)
	GetByID(ctx context.Context, id uuid.UUID) (*unit.Unit, error)
}
