package mail

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// DriverSendGrid selects the SendGrid HTTP API backend.
	DriverSendGrid = "sendgrid"
	// DriverSMTP selects the plain SMTP backend.
	DriverSMTP = "smtp"
)

// ErrUnknownDriver indicates an unsupported mail driver.
var ErrUnknownDriver = errors.New("mail: unknown driver")

// FactoryOptions groups configuration for mail drivers.
type FactoryOptions struct {
	// SendGrid configures the SendGrid backend.
	SendGrid SendGridConfig
	// SMTP configures the SMTP backend.
	SMTP SMTPConfig
}

// NewFromDriver constructs a Mail implementation by driver name.
// An empty driver selects SendGrid.
func NewFromDriver(driver string, opts FactoryOptions) (Mail, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case DriverSendGrid, "":
		return NewSendGrid(opts.SendGrid), nil
	case DriverSMTP:
		client, err := NewSMTP(opts.SMTP)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}
}
