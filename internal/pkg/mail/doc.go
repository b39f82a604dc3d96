// Package mail defines the contracts for sending email messages and the
// process-wide mail provider.
//
// Handlers and use cases work with the Mail interface and the Message payload.
// The concrete delivery mechanism (SendGrid's HTTP API or plain SMTP) is picked
// by driver name at startup. Provider bundles that client with the resolved
// sender address and administrator recipients so it can be built once and
// injected everywhere it is needed.
package mail
