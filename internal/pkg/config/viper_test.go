package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
mail:
  from: "  ops@example.com  "
  admin_emails: "a@x.com, b@y.com,,  "
  strict_addresses: true
app:
  server:
    cors:
      - http://localhost:3000
      - " "
      - https://example.com
    http:
      read_timeout_seconds: 7
session:
  jwt:
    ttl_minutes: 15
`

func TestViper_FromBytes(t *testing.T) {
	cfg, err := NewViperFromBytes("yaml", []byte(sampleYAML))
	require.NoError(t, err)
	t.Cleanup(func() { _ = cfg.Close() })

	assert.Equal(t, "ops@example.com", cfg.GetString("mail.from"))
	assert.Equal(t, []string{"a@x.com", "b@y.com"}, cfg.GetArray("mail.admin_emails"))
	assert.Equal(t, []string{"http://localhost:3000", "https://example.com"}, cfg.GetArray("app.server.cors"))
	assert.True(t, cfg.GetBool("mail.strict_addresses"))
	assert.Equal(t, 7*time.Second, cfg.GetSecond("app.server.http.read_timeout_seconds"))
	assert.Equal(t, 15*time.Minute, cfg.GetMinute("session.jwt.ttl_minutes"))
}

func TestViper_MissingKeys(t *testing.T) {
	cfg, err := NewViperFromBytes("yaml", []byte(sampleYAML))
	require.NoError(t, err)

	assert.False(t, cfg.IsSet("mail.api_key"))
	assert.Empty(t, cfg.GetString("mail.api_key"))

	admins := cfg.GetArray("mail.unknown")
	assert.NotNil(t, admins)
	assert.Empty(t, admins)
}

func TestViper_EnvOverridesFile(t *testing.T) {
	t.Setenv("MAIL_FROM", "  env@example.com ")
	t.Setenv("MAIL_ADMIN_EMAILS", "c@z.com")

	cfg, err := NewViperFromBytes("yaml", []byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "env@example.com", cfg.GetString("mail.from"))
	assert.Equal(t, []string{"c@z.com"}, cfg.GetArray("mail.admin_emails"))
}

func TestViper_FromEnv(t *testing.T) {
	t.Setenv("MAIL_API_KEY", "SG.key")

	cfg := NewViperFromEnv()

	assert.Equal(t, "SG.key", cfg.GetString("mail.api_key"))
	assert.Empty(t, cfg.GetString("mail.from"))
}

func TestNewViper(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

		cfg, err := NewViper(path)
		require.NoError(t, err)

		assert.Equal(t, "ops@example.com", cfg.GetString("mail.from"))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewViper(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("missing type", func(t *testing.T) {
		_, err := NewViperFromBytes(" ", []byte(sampleYAML))
		assert.Error(t, err)
	})
}
