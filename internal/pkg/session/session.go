package session

import (
	"context"
	"time"
)

// Session is the record an authentication backend returns for an active login.
type Session struct {
	ID         string         `json:"id"`
	Subject    string         `json:"subject"`
	Email      string         `json:"email,omitempty"`
	Name       string         `json:"name,omitempty"`
	IssuedAt   time.Time      `json:"issued_at"`
	ExpiresAt  time.Time      `json:"expires_at"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// Backend resolves the session for the credential found in ctx.
//
// A nil *Session with a nil error means there is no active session.
type Backend interface {
	Session(ctx context.Context) (*Session, error)
}

// BackendFunc adapts an ordinary function to Backend.
type BackendFunc func(ctx context.Context) (*Session, error)

// Session calls f(ctx).
func (f BackendFunc) Session(ctx context.Context) (*Session, error) {
	return f(ctx)
}

type tokenContextKey struct{}

// WithToken returns a copy of ctx carrying the caller's raw credential.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, token)
}

// TokenFrom returns the credential stored by WithToken, or "".
func TokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey{}).(string)
	return token
}
