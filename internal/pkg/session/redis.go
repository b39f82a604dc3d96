package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/postline/internal/pkg/clock"
)

// DefaultRedisPrefix namespaces session keys when no prefix is configured.
const DefaultRedisPrefix = "session:"

// ErrNilSession is returned by Save when asked to store a nil session.
var ErrNilSession = errors.New("session: cannot save a nil session")

// RedisConfig configures RedisBackend.
type RedisConfig struct {
	// Client is the shared Redis connection. The backend never closes it.
	Client redis.UniversalClient
	// Prefix is prepended to the token to form the key.
	Prefix string
	// Clock decides whether a stored record has expired.
	Clock clock.Clocker
}

// RedisBackend treats the credential as an opaque token and reads the session
// stored under <prefix><token> as JSON.
type RedisBackend struct {
	client redis.UniversalClient
	prefix string
	clock  clock.Clocker
}

// NewRedisBackend builds a RedisBackend.
func NewRedisBackend(cfg RedisConfig) *RedisBackend {
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &RedisBackend{client: cfg.Client, prefix: prefix, clock: clk}
}

// Session loads the record for the token in ctx.
func (b *RedisBackend) Session(ctx context.Context) (*Session, error) {
	token := TokenFrom(ctx)
	if token == "" {
		return nil, nil
	}

	raw, err := b.client.Get(ctx, b.prefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var s *Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	// A JSON null record carries no session.
	if s == nil {
		return nil, nil
	}

	if !s.ExpiresAt.IsZero() && !b.clock.Now().Before(s.ExpiresAt) {
		return nil, nil
	}

	return s, nil
}

// Save stores s under token. A zero ttl keeps the key until Delete.
func (b *RedisBackend) Save(ctx context.Context, token string, s *Session, ttl time.Duration) error {
	if s == nil {
		return ErrNilSession
	}

	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return b.client.Set(ctx, b.prefix+token, raw, ttl).Err()
}

// Delete removes the record for token. Missing keys are not an error.
func (b *RedisBackend) Delete(ctx context.Context, token string) error {
	return b.client.Del(ctx, b.prefix+token).Err()
}
