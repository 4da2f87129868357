package auth

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore tracks tokens revoked before their natural expiry (logout).
type TokenStore interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

const revokedKeyPrefix = "revoked_token:"

// RedisTokenStore keeps revocations in Redis so they survive restarts and
// are shared between instances. Entries expire together with the token.
type RedisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

// OpenRedis initializes a Redis connection pool and verifies it with a ping.
func OpenRedis(dsn string) (*redis.Client, error) {
	opt, err := redis.ParseURL(dsn)
	if err != nil {
		return nil, err
	}

	opt.DialTimeout = 5 * time.Second
	opt.MinIdleConns = 2
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *RedisTokenStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // already expired, nothing to track
	}
	return s.client.Set(ctx, revokedKeyPrefix+token, "1", ttl).Err()
}

func (s *RedisTokenStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MemoryTokenStore is the in-process fallback used when no Redis address is
// configured. Good enough for a single instance.
type MemoryTokenStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{revoked: make(map[string]time.Time)}
}

func (s *MemoryTokenStore) Revoke(_ context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[token] = time.Now().Add(ttl)
	return nil
}

func (s *MemoryTokenStore) IsRevoked(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.revoked[token]
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		delete(s.revoked, token)
		return false, nil
	}
	return true, nil
}
