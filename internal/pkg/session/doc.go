// Package session retrieves the caller's current authenticated session.
//
// A Backend answers one question for the credential carried by the request
// context: which session, if any, is active. Fetcher is the single entry point
// the rest of the application calls; it forwards the backend's answer as is.
//
// Every backend reports "no credential" and "expired credential" as a nil
// session with a nil error. Only genuine failures (bad signature, unreachable
// store, malformed record) are errors.
package session
