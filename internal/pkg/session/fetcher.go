package session

import "context"

// Fetcher returns the current session from a Backend.
//
// It holds no mutable state and is safe for concurrent use.
type Fetcher struct {
	backend Backend
}

// NewFetcher binds a Fetcher to backend.
func NewFetcher(backend Backend) *Fetcher {
	return &Fetcher{backend: backend}
}

// Fetch returns exactly what the backend returned: the same session pointer,
// nil when there is no session, or the backend's error value untouched.
func (f *Fetcher) Fetch(ctx context.Context) (*Session, error) {
	return f.backend.Session(ctx)
}
