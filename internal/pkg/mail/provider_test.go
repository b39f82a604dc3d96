package mail

import (
	"context"
	"errors"
	"testing"

	"github.com/shandysiswandi/postline/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMail struct {
	sent   []Message
	err    error
	closed bool
}

func (r *recordingMail) Send(_ context.Context, msg Message) error {
	r.sent = append(r.sent, msg)
	return r.err
}

func (r *recordingMail) Close() error {
	r.closed = true
	return nil
}

func TestNewProvider_Resolves(t *testing.T) {
	client := &recordingMail{}

	p, err := NewProvider(client, ProviderConfig{AdminEmails: "a@x.com, b@y.com,,  "})

	require.NoError(t, err)
	assert.Same(t, client, p.Client())
	assert.Equal(t, DefaultFrom, p.From())
	assert.Equal(t, []string{"a@x.com", "b@y.com"}, p.Admins())
}

func TestNewProvider_NoAdmins(t *testing.T) {
	p, err := NewProvider(&recordingMail{}, ProviderConfig{From: "ops@postline.dev"})

	require.NoError(t, err)
	assert.Equal(t, "ops@postline.dev", p.From())
	assert.NotNil(t, p.Admins())
	assert.Empty(t, p.Admins())
}

func TestProvider_AdminsIsACopy(t *testing.T) {
	p, err := NewProvider(&recordingMail{}, ProviderConfig{AdminEmails: "a@x.com"})
	require.NoError(t, err)

	admins := p.Admins()
	admins[0] = "mallory@evil.test"

	assert.Equal(t, []string{"a@x.com"}, p.Admins())
}

func TestNewProvider_Strict(t *testing.T) {
	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	_, err = NewProvider(&recordingMail{}, ProviderConfig{AdminEmails: "a@x.com,not-an-address", Strict: true, Validator: v})
	var verr validator.V10ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Values(), "admins[1]")

	_, err = NewProvider(&recordingMail{}, ProviderConfig{AdminEmails: "a@x.com", Strict: true, Validator: v})
	assert.NoError(t, err)

	_, err = NewProvider(&recordingMail{}, ProviderConfig{Strict: true})
	assert.Error(t, err)
}

func TestProvider_Send(t *testing.T) {
	client := &recordingMail{}
	p, err := NewProvider(client, ProviderConfig{From: "ops@postline.dev"})
	require.NoError(t, err)

	require.NoError(t, p.Send(context.Background(), Message{To: []string{"a@x.com"}}))
	require.NoError(t, p.Send(context.Background(), Message{From: "other@postline.dev", To: []string{"a@x.com"}}))

	require.Len(t, client.sent, 2)
	assert.Equal(t, "ops@postline.dev", client.sent[0].From)
	assert.Equal(t, "other@postline.dev", client.sent[1].From)
}

func TestProvider_Send_PassesClientError(t *testing.T) {
	errBoom := errors.New("boom")
	p, err := NewProvider(&recordingMail{err: errBoom}, ProviderConfig{})
	require.NoError(t, err)

	err = p.Send(context.Background(), Message{To: []string{"a@x.com"}})

	assert.Equal(t, errBoom, err)
}

func TestProvider_SendToAdmins(t *testing.T) {
	client := &recordingMail{}
	p, err := NewProvider(client, ProviderConfig{AdminEmails: "a@x.com,b@y.com"})
	require.NoError(t, err)

	err = p.SendToAdmins(context.Background(), "deploy", "done", "<b>done</b>")

	require.NoError(t, err)
	require.Len(t, client.sent, 1)
	assert.Equal(t, []string{"a@x.com", "b@y.com"}, client.sent[0].To)
	assert.Equal(t, DefaultFrom, client.sent[0].From)
	assert.Equal(t, "deploy", client.sent[0].Subject)
}

func TestProvider_SendToAdmins_NoAdmins(t *testing.T) {
	client := &recordingMail{}
	p, err := NewProvider(client, ProviderConfig{})
	require.NoError(t, err)

	err = p.SendToAdmins(context.Background(), "deploy", "done", "")

	assert.ErrorIs(t, err, ErrNoAdmins)
	assert.Empty(t, client.sent)
}

func TestProvider_Close(t *testing.T) {
	client := &recordingMail{}
	p, err := NewProvider(client, ProviderConfig{})
	require.NoError(t, err)

	require.NoError(t, p.Close())
	assert.True(t, client.closed)
}
