// Package clock supplies the current time to token and session expiry checks.
//
// Production wiring uses New; tests pin time with NewManual.
package clock
