package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"unit-service/internal/auth"
	"unit-service/internal/domain/accesslog"
	"unit-service/internal/repository"
)

const (
	// ServiceTag labels every entry written by this process.
	ServiceTag = "unit-service"

	defaultWriteTimeout = 2 * time.Second
)

// Logger records every authorization decision, best-effort. A failed write
// is reported on the operator channel only; it never reaches the HTTP
// caller and never changes a verdict that has already been computed.
type Logger struct {
	repo    repository.AccessLogRepository
	tokens  *auth.TokenService
	log     *zap.Logger
	timeout time.Duration
}

func NewLogger(repo repository.AccessLogRepository, tokens *auth.TokenService, log *zap.Logger, timeout time.Duration) *Logger {
	if timeout <= 0 {
		timeout = defaultWriteTimeout
	}
	return &Logger{
		repo:    repo,
		tokens:  tokens,
		log:     log,
		timeout: timeout,
	}
}

// Record writes one access log entry for the request. The subject key is
// taken from a non-verifying peek so that rejected and even unauthenticated
// requests still get labeled when the token is readable; a peek failure
// just leaves the key nil. The write happens before the response is sent
// and is bounded by the configured timeout.
func (l *Logger) Record(c echo.Context, accepted bool, message *string) {
	entry := &accesslog.Entry{
		ID:          uuid.New(),
		Endpoint:    c.Request().URL.Path,
		Method:      c.Request().Method,
		PersonalKey: l.peekPersonalKey(c),
		Accepted:    accepted,
		Message:     message,
		Service:     ServiceTag,
		CreatedAt:   time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	if err := l.repo.Create(ctx, entry); err != nil {
		l.log.Error("access log write failed",
			zap.String("endpoint", entry.Endpoint),
			zap.String("method", entry.Method),
			zap.Bool("accepted", accepted),
			zap.Error(err))
	}
}

func (l *Logger) peekPersonalKey(c echo.Context) *uuid.UUID {
	token := auth.ExtractBearerToken(c)
	if token == "" {
		return nil
	}

	claims, err := l.tokens.Peek(token)
	if err != nil {
		return nil
	}

	key := claims.PersonalKey
	return &key
}
