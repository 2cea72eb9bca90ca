// Package redis caches session views in Redis in front of the SQLite store.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/louisbranch/atrium/internal/services/auth/storage"
	"github.com/louisbranch/atrium/internal/services/auth/user"
)

const defaultPrefix = "atrium:session:"

// ErrUnavailable wraps transport failures so callers can fall back to SQLite.
var ErrUnavailable = errors.New("redis unavailable")

// Cache implements storage.SessionCache over a Redis client.
type Cache struct {
	client goredis.UniversalClient
	prefix string
}

var _ storage.SessionCache = (*Cache)(nil)

// NewCache builds a cache using keys under prefix (defaults to "atrium:session:").
func NewCache(client goredis.UniversalClient, prefix string) *Cache {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &Cache{client: client, prefix: prefix}
}

// Dial parses a redis:// URL, connects, and verifies the server answers.
func Dial(ctx context.Context, rawURL string) (*goredis.Client, error) {
	options, err := goredis.ParseURL(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := goredis.NewClient(options)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: ping: %v", ErrUnavailable, err)
	}
	return client, nil
}

type cachedView struct {
	SessionID     string    `json:"sid"`
	UserID        string    `json:"uid"`
	CreatedAt     time.Time `json:"created_at"`
	ExpiresAt     time.Time `json:"expires_at"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Image         string    `json:"image,omitempty"`
	EmailVerified bool      `json:"email_verified"`
}

func (c *Cache) key(sessionID string) string {
	return c.prefix + sessionID
}

// GetSessionView returns a cached view or storage.ErrNotFound on a miss.
func (c *Cache) GetSessionView(ctx context.Context, sessionID string) (storage.SessionView, error) {
	raw, err := c.client.Get(ctx, c.key(sessionID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return storage.SessionView{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.SessionView{}, fmt.Errorf("%w: get: %v", ErrUnavailable, err)
	}
	var cached cachedView
	if err := json.Unmarshal(raw, &cached); err != nil {
		_ = c.client.Del(ctx, c.key(sessionID)).Err()
		return storage.SessionView{}, storage.ErrNotFound
	}
	return storage.SessionView{
		Session: storage.Session{
			ID:        cached.SessionID,
			UserID:    cached.UserID,
			CreatedAt: cached.CreatedAt.UTC(),
			ExpiresAt: cached.ExpiresAt.UTC(),
		},
		User: user.User{
			ID:            cached.UserID,
			Name:          cached.Name,
			Email:         cached.Email,
			Image:         cached.Image,
			EmailVerified: cached.EmailVerified,
		},
	}, nil
}

// PutSessionView stores view for ttl. Non-positive ttl is a no-op.
func (c *Cache) PutSessionView(ctx context.Context, view storage.SessionView, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	payload, err := json.Marshal(cachedView{
		SessionID:     view.Session.ID,
		UserID:        view.Session.UserID,
		CreatedAt:     view.Session.CreatedAt,
		ExpiresAt:     view.Session.ExpiresAt,
		Name:          view.User.Name,
		Email:         view.User.Email,
		Image:         view.User.Image,
		EmailVerified: view.User.EmailVerified,
	})
	if err != nil {
		return fmt.Errorf("encode session view: %w", err)
	}
	if err := c.client.Set(ctx, c.key(view.Session.ID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("%w: set: %v", ErrUnavailable, err)
	}
	return nil
}

// DeleteSessionView drops a cached view. Deleting a missing key succeeds.
func (c *Cache) DeleteSessionView(ctx context.Context, sessionID string) error {
	if err := c.client.Del(ctx, c.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("%w: del: %v", ErrUnavailable, err)
	}
	return nil
}
