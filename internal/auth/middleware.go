package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"unit-service/internal/authz"
	"unit-service/internal/domain/user"
	apperrors "unit-service/pkg/errors"
)

// Directory resolves a verified subject key to the full user+role record.
type Directory interface {
	FindWithRole(ctx context.Context, personalKey uuid.UUID) (*user.UserWithRole, error)
}

// SessionChecker confirms that the exact token string is bound to an
// active login.
type SessionChecker interface {
	HasActiveSession(ctx context.Context, token string) (bool, error)
}

// AccessRecorder persists one authorization decision. Implementations are
// best-effort: a failed write must not surface here.
type AccessRecorder interface {
	Record(c echo.Context, accepted bool, message *string)
}

// Guard is the per-request authentication and authorization gate. Every
// request passes through it; every request produces exactly one access log
// entry, accepted or not.
type Guard struct {
	tokens    *TokenService
	directory Directory
	sessions  SessionChecker
	resolver  *authz.Resolver
	public    *authz.Allowlist
	recorder  AccessRecorder
	logger    *zap.Logger
}

func NewGuard(
	tokens *TokenService,
	directory Directory,
	sessions SessionChecker,
	resolver *authz.Resolver,
	public *authz.Allowlist,
	recorder AccessRecorder,
	logger *zap.Logger,
) *Guard {
	return &Guard{
		tokens:    tokens,
		directory: directory,
		sessions:  sessions,
		resolver:  resolver,
		public:    public,
		recorder:  recorder,
		logger:    logger,
	}
}

// verdict is the fully computed outcome of one request. It is logged
// before it is acted on; message is nil on acceptance.
type verdict struct {
	accepted bool
	message  *string
	user     *user.UserWithRole
}

func reject(message string) verdict {
	return verdict{message: &message}
}

// Middleware runs the full decision pipeline: public-route bypass,
// credential verification, directory lookup, session check, permission
// check, audit logging, and the accept/reject response. Stages run in
// strict order and the pipeline stops at the first failure.
func (g *Guard) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			v := g.evaluate(c)

			g.recorder.Record(c, v.accepted, v.message)

			if !v.accepted {
				return c.JSON(http.StatusUnauthorized, map[string]string{jsonKeyMessage: *v.message})
			}

			if v.user != nil {
				c.Set(ContextKeyPersonalKey, v.user.PersonalKey)
				c.Set(ContextKeyRoleID, v.user.RoleID)
				c.Set(ContextKeyUnitID, v.user.UnitID)
				c.Set(ContextKeyUser, v.user)
			}

			return next(c)
		}
	}
}

func (g *Guard) evaluate(c echo.Context) verdict {
	req := c.Request()
	path := req.URL.Path
	method := req.Method

	if g.public.Contains(path, method) {
		return verdict{accepted: true}
	}

	token := ExtractBearerToken(c)
	if token == "" {
		return reject(MsgNoToken)
	}

	claims, err := g.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, apperrors.ErrTokenExpired) {
			return reject(MsgTokenExpired)
		}
		return reject(MsgAuthFailed)
	}

	u, err := g.directory.FindWithRole(req.Context(), claims.PersonalKey)
	if err != nil || u == nil || !u.Accepted {
		// Unknown and disabled accounts collapse to the same message as a
		// malformed token: account existence must not leak.
		return reject(MsgAuthFailed)
	}

	active, err := g.sessions.HasActiveSession(req.Context(), token)
	if err != nil {
		g.logger.Warn("session store check failed",
			zap.String("endpoint", path),
			zap.Error(err))
		return reject(MsgNoActiveSession)
	}
	if !active {
		return reject(MsgNoActiveSession)
	}

	for _, required := range g.resolver.Resolve(path, method) {
		if !u.CanPerform(required) {
			return reject(MsgPermissionDenied)
		}
	}

	return verdict{accepted: true, user: u}
}

// ExtractBearerToken pulls the token out of the Authorization header.
// Returns "" when the header is absent or not a Bearer credential.
func ExtractBearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(headerAuthorization)
	if authHeader == "" {
		return ""
	}

	parts := strings.Fields(authHeader)
	if len(parts) != authHeaderParts || strings.ToLower(parts[0]) != bearerScheme {
		return ""
	}

	return parts[1]
}

// GetUser returns the authenticated user stashed by the guard.
func GetUser(c echo.Context) (*user.UserWithRole, error) {
	raw := c.Get(ContextKeyUser)
	if raw == nil {
		return nil, apperrors.Unauthorized(msgUserNotAuthenticated)
	}

	u, ok := raw.(*user.UserWithRole)
	if !ok || u == nil {
		return nil, apperrors.InternalServer(msgInvalidPersonalKeyCtx, nil)
	}

	return u, nil
}

// GetPersonalKey returns the authenticated subject key from the context.
func GetPersonalKey(c echo.Context) (uuid.UUID, error) {
	raw := c.Get(ContextKeyPersonalKey)
	if raw == nil {
		return uuid.Nil, apperrors.Unauthorized(msgUserNotAuthenticated)
	}

	key, ok := raw.(uuid.UUID)
	if !ok {
		return uuid.Nil, apperrors.InternalServer(msgInvalidPersonalKeyCtx, nil)
	}

	return key, nil
}
