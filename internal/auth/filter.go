package auth

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"unit-service/internal/authz"
	apperrors "unit-service/pkg/errors"
)

// FilterResolver derives a query-scoping filter from the caller's peeked
// role and unit claims. It performs no authorization and trusts unverified
// claims, so it must only run behind the request guard, which has already
// verified the same credential.
type FilterResolver struct {
	tokens           *TokenService
	privilegedRoleID uuid.UUID
}

func NewFilterResolver(tokens *TokenService, privilegedRoleID uuid.UUID) *FilterResolver {
	return &FilterResolver{
		tokens:           tokens,
		privilegedRoleID: privilegedRoleID,
	}
}

// ResolveScope returns a filter scoped by unit alone for the privileged
// role, and by both role and unit for everyone else.
func (f *FilterResolver) ResolveScope(c echo.Context) (authz.ScopeFilter, error) {
	token := ExtractBearerToken(c)
	if token == "" {
		return authz.ScopeFilter{}, apperrors.Unauthorized(msgUserNotAuthenticated)
	}

	claims, err := f.tokens.Peek(token)
	if err != nil {
		return authz.ScopeFilter{}, apperrors.Unauthorized(msgUserNotAuthenticated)
	}

	if claims.RoleID == f.privilegedRoleID {
		return authz.ScopeFilter{UnitID: claims.UnitID}, nil
	}

	roleID := claims.RoleID
	return authz.ScopeFilter{RoleID: &roleID, UnitID: claims.UnitID}, nil
}
