package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shandysiswandi/postline/internal/pkg/jwt"
)

const (
	// DriverJWT selects HS512 access tokens.
	DriverJWT = "jwt"
	// DriverRedis selects opaque tokens backed by Redis.
	DriverRedis = "redis"
	// DriverOIDC selects OpenID Connect ID tokens.
	DriverOIDC = "oidc"
)

// ErrUnknownDriver indicates an unsupported session driver.
var ErrUnknownDriver = errors.New("session: unknown driver")

// FactoryOptions groups configuration for session drivers.
type FactoryOptions struct {
	// JWT verifies tokens for the jwt driver.
	JWT jwt.JWT
	// Redis configures the redis driver.
	Redis RedisConfig
	// OIDC configures the oidc driver.
	OIDC OIDCConfig
}

// NormalizeDriver returns driver in the form NewFromDriver matches on.
func NormalizeDriver(driver string) string {
	return strings.ToLower(strings.TrimSpace(driver))
}

// NewFromDriver constructs a Backend by driver name.
func NewFromDriver(ctx context.Context, driver string, opts FactoryOptions) (Backend, error) {
	switch NormalizeDriver(driver) {
	case DriverJWT:
		if opts.JWT == nil {
			return nil, errors.New("session: jwt driver requires a verifier")
		}
		return NewJWTBackend(opts.JWT), nil
	case DriverRedis:
		if opts.Redis.Client == nil {
			return nil, errors.New("session: redis driver requires a client")
		}
		return NewRedisBackend(opts.Redis), nil
	case DriverOIDC:
		backend, err := NewOIDCBackend(ctx, opts.OIDC)
		if err != nil {
			return nil, err
		}
		return backend, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}
}
