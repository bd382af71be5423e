package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"unit-service/internal/domain/user"
	apperrors "unit-service/pkg/errors"
)

// Claims are authorization-grade: they only ever come out of Verify, after
// the signature and expiry have been checked.
type Claims struct {
	PersonalKey uuid.UUID `json:"personal_key"`
	RoleID      uuid.UUID `json:"role_id"`
	UnitID      uuid.UUID `json:"unit_id"`
	jwt.RegisteredClaims
}

// PeekedClaims are read without signature or expiry verification. The
// distinct type keeps them out of any code path that authorizes: peeked
// claims may label an audit entry or scope a query, never grant access.
type PeekedClaims struct {
	PersonalKey uuid.UUID `json:"personal_key"`
	RoleID      uuid.UUID `json:"role_id"`
	UnitID      uuid.UUID `json:"unit_id"`
	jwt.RegisteredClaims
}

// UserStore is the primary-store lookup used by TokenToUser.
type UserStore interface {
	GetByPersonalKey(ctx context.Context, personalKey uuid.UUID) (*user.UserWithRole, error)
}

type TokenService struct {
	secret []byte
	expiry time.Duration
	users  UserStore
}

func NewTokenService(secret string, expiry time.Duration, users UserStore) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		expiry: expiry,
		users:  users,
	}
}

func (s *TokenService) Generate(personalKey, roleID, unitID uuid.UUID) (string, error) {
	claims := Claims{
		PersonalKey: personalKey,
		RoleID:      roleID,
		UnitID:      unitID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry. Expiry failures wrap
// apperrors.ErrTokenExpired; every other failure wraps
// apperrors.ErrTokenInvalid so callers can pick the right message without
// inspecting parser internals.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf(msgUnexpectedSigningMethod, token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf(msgTokenParseFailed, apperrors.ErrTokenExpired)
		}
		return nil, fmt.Errorf(msgTokenParseFailed, apperrors.ErrTokenInvalid)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: %w", msgInvalidTokenClaims, apperrors.ErrTokenInvalid)
	}

	return claims, nil
}

// Peek decodes the payload without checking signature or expiry. It fails
// only when the token is structurally unreadable.
func (s *TokenService) Peek(tokenString string) (*PeekedClaims, error) {
	claims := &PeekedClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf(msgTokenParseFailed, err)
	}
	return claims, nil
}

// TokenToUser verifies the token and loads the canonical subject record
// from the primary store, applying the same disabled-account rule as the
// request guard. Callers get the resolved record instead of a verdict.
func (s *TokenService) TokenToUser(ctx context.Context, tokenString string) (*user.UserWithRole, error) {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	u, err := s.users.GetByPersonalKey(ctx, claims.PersonalKey)
	if err != nil {
		return nil, err
	}

	if !u.Accepted {
		return nil, apperrors.Unauthorized(MsgAuthFailed)
	}

	return u, nil
}
