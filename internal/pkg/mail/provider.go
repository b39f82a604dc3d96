package mail

import (
	"context"
	"errors"
	"slices"

	"github.com/shandysiswandi/postline/internal/pkg/instrument"
	"github.com/shandysiswandi/postline/internal/pkg/validator"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ErrNoAdmins is returned by SendToAdmins when no administrator address is configured.
var ErrNoAdmins = errors.New("mail: no admin recipients configured")

// ProviderConfig configures NewProvider.
type ProviderConfig struct {
	// From is the configured sender; empty falls back to DefaultFrom.
	From string
	// AdminEmails is the raw comma-separated administrator list.
	AdminEmails string
	// Strict validates the sender and every admin entry as an email address.
	Strict bool
	// Validator is required when Strict is set.
	Validator validator.Validator
	// Instrument traces sends; nil means a noop.
	Instrument instrument.Instrumentation
}

type providerAddresses struct {
	From   string   `validate:"required,email"`
	Admins []string `validate:"dive,email"`
}

// Provider bundles one mail client with the resolved sender and administrator
// list. It is built once at startup and never mutated afterwards, so a single
// value can be shared by every goroutine.
type Provider struct {
	client Mail
	from   string
	admins []string
	ins    instrument.Instrumentation
}

// NewProvider resolves the sender and admin list and binds them to client.
//
// Unless cfg.Strict is set no address is validated here, matching the
// client's own construction which checks nothing either.
func NewProvider(client Mail, cfg ProviderConfig) (*Provider, error) {
	addrs := providerAddresses{
		From:   ResolveFrom(cfg.From),
		Admins: ParseAddressList(cfg.AdminEmails),
	}

	if cfg.Strict {
		if cfg.Validator == nil {
			return nil, errors.New("mail: strict provider requires a validator")
		}
		if err := cfg.Validator.Validate(addrs); err != nil {
			return nil, err
		}
	}

	ins := cfg.Instrument
	if ins == nil {
		ins = instrument.NewNoop()
	}

	return &Provider{
		client: client,
		from:   addrs.From,
		admins: addrs.Admins,
		ins:    ins,
	}, nil
}

// Client returns the underlying delivery client.
func (p *Provider) Client() Mail {
	return p.client
}

// From returns the resolved sender address.
func (p *Provider) From() string {
	return p.from
}

// Admins returns a copy of the administrator address list. It is never nil.
func (p *Provider) Admins() []string {
	return slices.Clone(p.admins)
}

// Send delivers msg, using the provider's sender when msg.From is empty.
func (p *Provider) Send(ctx context.Context, msg Message) error {
	ctx, span := p.ins.Tracer("pkg.mail").Start(ctx, "Provider.Send")
	defer span.End()

	if msg.From == "" {
		msg.From = p.from
	}
	span.SetAttributes(attribute.Int("mail.recipients", len(msg.Recipients())))

	if err := p.client.Send(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// SendToAdmins sends one message addressed to every administrator.
func (p *Provider) SendToAdmins(ctx context.Context, subject, text, html string) error {
	if len(p.admins) == 0 {
		return ErrNoAdmins
	}

	return p.Send(ctx, Message{
		To:       p.Admins(),
		Subject:  subject,
		TextBody: text,
		HTMLBody: html,
	})
}

// Close releases the underlying client.
func (p *Provider) Close() error {
	return p.client.Close()
}
