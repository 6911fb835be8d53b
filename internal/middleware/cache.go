package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "cache:"

// ErrCacheMiss is returned by Storage when key is absent.
var ErrCacheMiss = errors.New("cache miss")

// Storage keeps cached responses.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, content []byte, ttl time.Duration) error
}

type redisStorage struct {
	client redis.UniversalClient
}

// NewRedisStorage returns Storage over redis.
func NewRedisStorage(client redis.UniversalClient) Storage {
	return redisStorage{client: client}
}

func (s redisStorage) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.client.Get(ctx, cacheKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get cached content: %w", err)
	}

	return b, nil
}

func (s redisStorage) Set(ctx context.Context, key string, content []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, cacheKeyPrefix+key, content, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cached content: %w", err)
	}

	return nil
}

// Cached caches successful responses of handler by request uri. Nil storage disables caching.
// Storage failures are logged and the request is served by handler.
func Cached(storage Storage, ttl time.Duration, handler http.HandlerFunc) http.HandlerFunc {
	if storage == nil {
		return handler
	}

	return func(w http.ResponseWriter, r *http.Request) {
		content, err := storage.Get(r.Context(), r.RequestURI)
		switch {
		case err == nil:
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(content)
			return
		case !errors.Is(err, ErrCacheMiss):
			log.WithError(err).Warn("failed to get cached response")
		}

		c := httptest.NewRecorder()
		handler(c, r)

		for k, v := range c.Header() {
			w.Header()[k] = v
		}

		w.WriteHeader(c.Code)
		content = c.Body.Bytes()

		if c.Code == http.StatusOK {
			if err := storage.Set(r.Context(), r.RequestURI, content, ttl); err != nil {
				log.WithError(err).Warn("failed to cache response")
			}
		}

		_, _ = w.Write(content)
	}
}
