package audit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"unit-service/internal/auth"
	"unit-service/internal/domain/accesslog"
)

const testSecret = "q9w8e7r6t5y4u3i2o1p0a9s8d7f6g5h4"

type fakeAccessLogRepo struct {
	entries []*accesslog.Entry
	err     error
}

func (r *fakeAccessLogRepo) Create(_ context.Context, entry *accesslog.Entry) error {
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeAccessLogRepo) List(_ context.Context, _ accesslog.QueryFilter) ([]*accesslog.Entry, error) {
	return r.entries, nil
}

func auditContext(token string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/units/42", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func TestRecordAcceptedRequest(t *testing.T) {
	repo := &fakeAccessLogRepo{}
	tokens := auth.NewTokenService(testSecret, time.Hour, nil)
	logger := NewLogger(repo, tokens, zap.NewNop(), time.Second)

	personalKey := uuid.New()
	token, err := tokens.Generate(personalKey, uuid.New(), uuid.New())
	require.NoError(t, err)

	logger.Record(auditContext(token), true, nil)

	require.Len(t, repo.entries, 1)
	entry := repo.entries[0]
	assert.Equal(t, "/units/42", entry.Endpoint)
	assert.Equal(t, http.MethodGet, entry.Method)
	assert.True(t, entry.Accepted)
	assert.Nil(t, entry.Message)
	assert.Equal(t, ServiceTag, entry.Service)
	require.NotNil(t, entry.PersonalKey)
	assert.Equal(t, personalKey, *entry.PersonalKey)
	assert.NotEqual(t, uuid.Nil, entry.ID)
}

func TestRecordRejectedRequest(t *testing.T) {
	repo := &fakeAccessLogRepo{}
	tokens := auth.NewTokenService(testSecret, time.Hour, nil)
	logger := NewLogger(repo, tokens, zap.NewNop(), time.Second)

	msg := auth.MsgPermissionDenied
	logger.Record(auditContext(""), false, &msg)

	require.Len(t, repo.entries, 1)
	entry := repo.entries[0]
	assert.False(t, entry.Accepted)
	require.NotNil(t, entry.Message)
	assert.Equal(t, auth.MsgPermissionDenied, *entry.Message)
	assert.Nil(t, entry.PersonalKey)
}

func TestRecordLabelsExpiredToken(t *testing.T) {
	repo := &fakeAccessLogRepo{}
	tokens := auth.NewTokenService(testSecret, time.Hour, nil)
	logger := NewLogger(repo, tokens, zap.NewNop(), time.Second)

	// An expired token fails verification but still labels the entry.
	expired := auth.NewTokenService(testSecret, -time.Minute, nil)
	personalKey := uuid.New()
	token, err := expired.Generate(personalKey, uuid.New(), uuid.New())
	require.NoError(t, err)

	msg := auth.MsgTokenExpired
	logger.Record(auditContext(token), false, &msg)

	require.Len(t, repo.entries, 1)
	require.NotNil(t, repo.entries[0].PersonalKey)
	assert.Equal(t, personalKey, *repo.entries[0].PersonalKey)
}

func TestRecordUnreadableTokenLeavesKeyNil(t *testing.T) {
	repo := &fakeAccessLogRepo{}
	tokens := auth.NewTokenService(testSecret, time.Hour, nil)
	logger := NewLogger(repo, tokens, zap.NewNop(), time.Second)

	msg := auth.MsgAuthFailed
	logger.Record(auditContext("garbage"), false, &msg)

	require.Len(t, repo.entries, 1)
	assert.Nil(t, repo.entries[0].PersonalKey)
}

func TestRecordWriteFailureDoesNotPanic(t *testing.T) {
	repo := &fakeAccessLogRepo{err: errors.New("connection refused")}
	tokens := auth.NewTokenService(testSecret, time.Hour, nil)
	logger := NewLogger(repo, tokens, zap.NewNop(), time.Second)

	assert.NotPanics(t, func() {
		logger.Record(auditContext(""), true, nil)
	})
}
