package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
)

// OIDCConfig configures discovery for OIDCBackend.
type OIDCConfig struct {
	// IssuerURL is the OpenID provider; its discovery document is fetched once.
	IssuerURL string
	// ClientID is the expected audience of ID tokens.
	ClientID string
}

// OIDCBackend treats the credential as an OpenID Connect ID token.
type OIDCBackend struct {
	verifier *oidc.IDTokenVerifier
}

type oidcClaims struct {
	SID   string `json:"sid"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// NewOIDCBackend discovers the provider at cfg.IssuerURL and verifies ID
// tokens issued for cfg.ClientID.
func NewOIDCBackend(ctx context.Context, cfg OIDCConfig) (*OIDCBackend, error) {
	if cfg.IssuerURL == "" || cfg.ClientID == "" {
		return nil, errors.New("session: oidc issuer url and client id are required")
	}

	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to discover OIDC provider: %w", err)
	}

	return NewOIDCBackendWithVerifier(provider.Verifier(&oidc.Config{ClientID: cfg.ClientID})), nil
}

// NewOIDCBackendWithVerifier uses an already configured verifier.
func NewOIDCBackendWithVerifier(verifier *oidc.IDTokenVerifier) *OIDCBackend {
	return &OIDCBackend{verifier: verifier}
}

// Session verifies the ID token in ctx.
func (b *OIDCBackend) Session(ctx context.Context) (*Session, error) {
	rawToken := TokenFrom(ctx)
	if rawToken == "" {
		return nil, nil
	}

	idToken, err := b.verifier.Verify(ctx, rawToken)
	if err != nil {
		var expired *oidc.TokenExpiredError
		if errors.As(err, &expired) {
			return nil, nil
		}
		return nil, err
	}

	var claims oidcClaims
	if err := idToken.Claims(&claims); err != nil {
		return nil, err
	}

	return &Session{
		ID:        claims.SID,
		Subject:   idToken.Subject,
		Email:     claims.Email,
		Name:      claims.Name,
		IssuedAt:  idToken.IssuedAt,
		ExpiresAt: idToken.Expiry,
		Attributes: map[string]any{
			"iss": idToken.Issuer,
			"aud": idToken.Audience,
		},
	}, nil
}
