package mail

import (
	"cmp"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sethvargo/go-retry"
)

const (
	sendGridEndpoint = "/v3/mail/send"

	defaultSendGridRetries   uint64 = 2
	defaultSendGridBaseDelay        = 200 * time.Millisecond
	defaultSendGridTimeout          = 10 * time.Second
)

// APIError is returned when the mail API answers with a non-2xx status.
type APIError struct {
	// StatusCode is the HTTP status returned by the API.
	StatusCode int
	// Body is the raw response body.
	Body string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("sendgrid: unexpected status %d: %s", e.StatusCode, e.Body)
}

// Temporary reports whether the failure is worth retrying.
func (e *APIError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// SendGridConfig configures the SendGrid implementation.
type SendGridConfig struct {
	// APIKey authenticates requests. It is not checked until a send happens.
	APIKey string
	// Host overrides the API host (tests, regional endpoints). Empty means the public API.
	Host string
	// From is the default sender when Message.From is empty.
	From string
	// MaxRetries is how many times a 429/5xx answer is retried. Nil means the default.
	MaxRetries *uint64
	// RetryBaseDelay is the first backoff step.
	RetryBaseDelay time.Duration
	// HTTPClient is used for requests; nil means a client with a 10s timeout.
	HTTPClient *http.Client
}

// SendGrid is a Mail implementation backed by the SendGrid v3 HTTP API.
//
// The base request is never mutated after construction; every Send works on a
// copy, which makes a single SendGrid value safe for concurrent use.
type SendGrid struct {
	request     rest.Request
	client      *rest.Client
	defaultFrom string
	maxRetries  uint64
	baseDelay   time.Duration
}

// NewSendGrid builds a SendGrid client bound to cfg.APIKey.
//
// No validation or network I/O happens here: an empty or invalid key only
// surfaces as an *APIError from Send.
func NewSendGrid(cfg SendGridConfig) *SendGrid {
	request := sendgrid.GetRequest(cfg.APIKey, sendGridEndpoint, cfg.Host)
	request.Method = rest.Post

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultSendGridTimeout}
	}

	maxRetries := defaultSendGridRetries
	if cfg.MaxRetries != nil {
		maxRetries = *cfg.MaxRetries
	}

	return &SendGrid{
		request:     request,
		client:      &rest.Client{HTTPClient: httpClient},
		defaultFrom: cfg.From,
		maxRetries:  maxRetries,
		baseDelay:   cmp.Or(cfg.RetryBaseDelay, defaultSendGridBaseDelay),
	}
}

// Send posts the message to the SendGrid API.
func (s *SendGrid) Send(ctx context.Context, msg Message) error {
	if len(msg.Recipients()) == 0 {
		return ErrNoRecipients
	}

	from := cmp.Or(msg.From, s.defaultFrom)
	if from == "" {
		return ErrNoSender
	}

	req := s.request
	req.Body = sgmail.GetRequestBody(toSendGridMail(from, msg))

	backoff := retry.WithMaxRetries(s.maxRetries, retry.NewExponential(s.baseDelay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		resp, err := s.client.SendWithContext(ctx, req)
		if err != nil {
			return err
		}

		if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
			return nil
		}

		apiErr := &APIError{StatusCode: resp.StatusCode, Body: resp.Body}
		if apiErr.Temporary() {
			return retry.RetryableError(apiErr)
		}

		return apiErr
	})
}

// Close implements io.Closer for interface compatibility.
func (s *SendGrid) Close() error {
	s.client.HTTPClient.CloseIdleConnections()
	return nil
}

func toSendGridMail(from string, msg Message) *sgmail.SGMailV3 {
	m := sgmail.NewV3Mail()
	m.SetFrom(sgmail.NewEmail("", from))
	m.Subject = msg.Subject

	p := sgmail.NewPersonalization()
	p.AddTos(toSendGridEmails(msg.To)...)
	p.AddCCs(toSendGridEmails(msg.Cc)...)
	p.AddBCCs(toSendGridEmails(msg.Bcc)...)
	m.AddPersonalizations(p)

	// SendGrid requires text/plain to come before text/html.
	if msg.TextBody != "" {
		m.AddContent(sgmail.NewContent("text/plain", msg.TextBody))
	}
	if msg.HTMLBody != "" {
		m.AddContent(sgmail.NewContent("text/html", msg.HTMLBody))
	}

	return m
}

func toSendGridEmails(addrs []string) []*sgmail.Email {
	out := make([]*sgmail.Email, 0, len(addrs))
	for _, a := range addrs {
		out = append(out, sgmail.NewEmail("", a))
	}
	return out
}
