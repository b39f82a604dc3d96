package session

import (
	"context"
	"errors"

	"github.com/shandysiswandi/postline/internal/pkg/jwt"
)

// JWTBackend treats the credential as an HS512 access token.
type JWTBackend struct {
	verifier jwt.JWT
}

// NewJWTBackend returns a Backend that verifies tokens with verifier.
func NewJWTBackend(verifier jwt.JWT) *JWTBackend {
	return &JWTBackend{verifier: verifier}
}

// Session verifies the token in ctx and maps its claims to a Session.
func (b *JWTBackend) Session(ctx context.Context) (*Session, error) {
	token := TokenFrom(ctx)
	if token == "" {
		return nil, nil
	}

	claims, err := b.verifier.Verify(token)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:      claims.ID,
		Subject: claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
	}
	if claims.IssuedAt != nil {
		s.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	if len(claims.Audience) > 0 {
		s.Attributes = map[string]any{"aud": []string(claims.Audience)}
	}

	return s, nil
}
