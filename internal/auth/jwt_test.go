package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unit-service/internal/domain/role"
	"unit-service/internal/domain/user"
	apperrors "unit-service/pkg/errors"
)

const testSecret = "k4j5h2g9f8d7s6a1p0o9i8u7y6t5r4e3"

type stubUserStore struct {
	user *user.UserWithRole
	err  error
}

func (s *stubUserStore) GetByPersonalKey(_ context.Context, _ uuid.UUID) (*user.UserWithRole, error) {
	return s.user, s.err
}

func acceptedUser(personalKey uuid.UUID) *user.UserWithRole {
	return &user.UserWithRole{
		User: user.User{
			ID:          uuid.New(),
			PersonalKey: personalKey,
			Name:        "Ana Souza",
			Accepted:    true,
			RoleID:      uuid.New(),
			UnitID:      uuid.New(),
		},
		Role: role.Role{ID: uuid.New(), Name: "resident"},
	}
}

func TestGenerateAndVerify(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour, nil)

	personalKey := uuid.New()
	roleID := uuid.New()
	unitID := uuid.New()

	token, err := svc.Generate(personalKey, roleID, unitID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, personalKey, claims.PersonalKey)
	assert.Equal(t, roleID, claims.RoleID)
	assert.Equal(t, unitID, claims.UnitID)
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := NewTokenService(testSecret, -time.Minute, nil)

	token, err := svc.Generate(uuid.New(), uuid.New(), uuid.New())
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrTokenExpired))
	assert.False(t, errors.Is(err, apperrors.ErrTokenInvalid))
}

func TestVerifyWrongSecret(t *testing.T) {
	signer := NewTokenService(testSecret, time.Hour, nil)
	verifier := NewTokenService("x1c2v3b4n5m6a7s8d9f0g1h2j3k4l5q6", time.Hour, nil)

	token, err := signer.Generate(uuid.New(), uuid.New(), uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrTokenInvalid))
}

func TestVerifyGarbage(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour, nil)

	_, err := svc.Verify("not.a.token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrTokenInvalid))
}

func TestPeekIgnoresSignatureAndExpiry(t *testing.T) {
	signer := NewTokenService(testSecret, -time.Minute, nil)
	peeker := NewTokenService("completely-different-secret-value-00", time.Hour, nil)

	personalKey := uuid.New()
	token, err := signer.Generate(personalKey, uuid.New(), uuid.New())
	require.NoError(t, err)

	claims, err := peeker.Peek(token)
	require.NoError(t, err)
	assert.Equal(t, personalKey, claims.PersonalKey)
}

func TestPeekUnreadableToken(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour, nil)

	_, err := svc.Peek("garbage")
	assert.Error(t, err)
}

func TestTokenToUser(t *testing.T) {
	personalKey := uuid.New()
	u := acceptedUser(personalKey)

	svc := NewTokenService(testSecret, time.Hour, &stubUserStore{user: u})

	token, err := svc.Generate(personalKey, u.RoleID, u.UnitID)
	require.NoError(t, err)

	got, err := svc.TokenToUser(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, personalKey, got.PersonalKey)
}

func TestTokenToUserDisabledAccount(t *testing.T) {
	personalKey := uuid.New()
	u := acceptedUser(personalKey)
	u.Accepted = false

	svc := NewTokenService(testSecret, time.Hour, &stubUserStore{user: u})

	token, err := svc.Generate(personalKey, u.RoleID, u.UnitID)
	require.NoError(t, err)

	_, err = svc.TokenToUser(context.Background(), token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}
