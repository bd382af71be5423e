package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"unit-service/internal/config"
	"unit-service/internal/domain/session"
)

const (
	sessionKeyPrefix = "session:"

	redisPingTimeout = 5 * time.Second

	errFailedPingRedisFmt     = "failed to ping redis: %w"
	errFailedSaveSessionFmt   = "failed to save session: %w"
	errFailedCheckSessionFmt  = "failed to check session: %w"
	errFailedRevokeSessionFmt = "failed to revoke session: %w"
	errSessionAlreadyExpired  = "session is already expired"
	errFailedEncodeSessionFmt = "failed to encode session: %w"
)

// SessionStore tracks which token strings are bound to an active login.
// The gate only reads it; the login flow owns the writes. Tokens are
// hashed before use as keys so the raw credential never sits in redis.
type SessionStore struct {
	client *redis.Client
}

// NewClient connects to redis and verifies the connection.
func NewClient(cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf(errFailedPingRedisFmt, err)
	}

	return client, nil
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

type sessionPayload struct {
	PersonalKey string    `json:"personal_key"`
	CreatedAt   time.Time `json:"created_at"`
}

// Save binds the session's token to an active login until it expires.
func (s *SessionStore) Save(ctx context.Context, sess *session.Session) error {
	ttl := sess.TTL(time.Now())
	if ttl <= 0 {
		return fmt.Errorf(errSessionAlreadyExpired)
	}

	payload, err := json.Marshal(sessionPayload{
		PersonalKey: sess.PersonalKey.String(),
		CreatedAt:   sess.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf(errFailedEncodeSessionFmt, err)
	}

	if err := s.client.Set(ctx, sessionKey(sess.Token), payload, ttl).Err(); err != nil {
		return fmt.Errorf(errFailedSaveSessionFmt, err)
	}

	return nil
}

// HasActiveSession reports whether the exact token string is currently
// bound to an active session. Existence is binary: a missing or expired
// key simply reads as false.
func (s *SessionStore) HasActiveSession(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, sessionKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf(errFailedCheckSessionFmt, err)
	}
	return n > 0, nil
}

// Revoke drops the session bound to the token, if any.
func (s *SessionStore) Revoke(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf(errFailedRevokeSessionFmt, err)
	}
	return nil
}

func sessionKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return sessionKeyPrefix + hex.EncodeToString(sum[:])
}
