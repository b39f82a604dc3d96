package session

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	libJWT "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer   = "https://idp.postline.test"
	testClientID = "postline"
)

func newTestOIDC(t *testing.T, now time.Time) (*OIDCBackend, *rsa.PrivateKey) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	verifier := oidc.NewVerifier(testIssuer,
		&oidc.StaticKeySet{PublicKeys: []crypto.PublicKey{&key.PublicKey}},
		&oidc.Config{ClientID: testClientID, Now: func() time.Time { return now }},
	)

	return NewOIDCBackendWithVerifier(verifier), key
}

func signIDToken(t *testing.T, key *rsa.PrivateKey, claims libJWT.MapClaims) string {
	t.Helper()

	token, err := libJWT.NewWithClaims(libJWT.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestOIDCBackend_Session(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	backend, key := newTestOIDC(t, now)

	baseClaims := func(exp time.Time) libJWT.MapClaims {
		return libJWT.MapClaims{
			"iss":   testIssuer,
			"aud":   testClientID,
			"sub":   "user-42",
			"sid":   "sess-9",
			"email": "a@x.com",
			"name":  "Ada",
			"iat":   now.Add(-time.Minute).Unix(),
			"exp":   exp.Unix(),
		}
	}

	t.Run("no token", func(t *testing.T) {
		got, err := backend.Session(context.Background())

		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("valid token", func(t *testing.T) {
		raw := signIDToken(t, key, baseClaims(now.Add(time.Hour)))

		got, err := backend.Session(WithToken(context.Background(), raw))

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "sess-9", got.ID)
		assert.Equal(t, "user-42", got.Subject)
		assert.Equal(t, "a@x.com", got.Email)
		assert.Equal(t, "Ada", got.Name)
		assert.Equal(t, testIssuer, got.Attributes["iss"])
		assert.True(t, now.Add(time.Hour).Equal(got.ExpiresAt))
	})

	t.Run("expired token is no session", func(t *testing.T) {
		raw := signIDToken(t, key, baseClaims(now.Add(-time.Second)))

		got, err := backend.Session(WithToken(context.Background(), raw))

		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("wrong audience is an error", func(t *testing.T) {
		claims := baseClaims(now.Add(time.Hour))
		claims["aud"] = "someone-else"

		got, err := backend.Session(WithToken(context.Background(), signIDToken(t, key, claims)))

		assert.Error(t, err)
		assert.Nil(t, got)
	})

	t.Run("foreign key is an error", func(t *testing.T) {
		other, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)

		got, err := backend.Session(WithToken(context.Background(), signIDToken(t, other, baseClaims(now.Add(time.Hour)))))

		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestNewOIDCBackend_RequiresConfig(t *testing.T) {
	_, err := NewOIDCBackend(context.Background(), OIDCConfig{IssuerURL: testIssuer})
	assert.Error(t, err)
}
