package auth

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/airline-reservation/internal/domain"
)

const sessionKeyPrefix = "session:"

// ErrSessionNotFound is returned when a token does not resolve to a live session.
var ErrSessionNotFound = errors.New("session not found")

// Session is the server-side record behind a session cookie. Exactly one of
// the customer or staff identity field groups is populated, depending on Role.
type Session struct {
	Role        domain.Role `json:"role"`
	Email       string      `json:"email,omitempty"`
	DisplayName string      `json:"display_name,omitempty"`
	Username    string      `json:"username,omitempty"`
	AirlineName string      `json:"airline_name,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// SessionStore persists sessions for the configured TTL.
type SessionStore interface {
	Create(ctx context.Context, session Session) (string, error)
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore returns a Redis-backed session store.
func NewSessionStore(client *redis.Client, ttl time.Duration) SessionStore {
	return &redisSessionStore{client: client, ttl: ttl}
}

func (s *redisSessionStore) Create(ctx context.Context, session Session) (string, error) {
	session.CreatedAt = time.Now().UTC()
	payload, err := json.Marshal(session)
	if err != nil {
		return "", err
	}

	token := uuid.NewString()
	if err := s.client.Set(ctx, sessionKeyPrefix+token, payload, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *redisSessionStore) Get(ctx context.Context, token string) (*Session, error) {
	payload, err := s.client.Get(ctx, sessionKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKeyPrefix+token).Err()
}
