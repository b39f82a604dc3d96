package inbound

import (
	"encoding/json"
	"time"

	"github.com/shandysiswandi/postline/internal/pkg/session"
)

type SessionData struct {
	ID         string         `json:"id"`
	Subject    string         `json:"subject"`
	Email      string         `json:"email,omitempty"`
	Name       string         `json:"name,omitempty"`
	IssuedAt   *time.Time     `json:"issued_at,omitempty"`
	ExpiresAt  *time.Time     `json:"expires_at,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// SessionResponse encodes as the session object, or JSON null when anonymous.
type SessionResponse struct {
	data *SessionData
}

func newSessionResponse(s *session.Session) SessionResponse {
	if s == nil {
		return SessionResponse{}
	}

	return SessionResponse{data: &SessionData{
		ID:         s.ID,
		Subject:    s.Subject,
		Email:      s.Email,
		Name:       s.Name,
		IssuedAt:   optionalTime(s.IssuedAt),
		ExpiresAt:  optionalTime(s.ExpiresAt),
		Attributes: s.Attributes,
	}}
}

func (r SessionResponse) Message() string {
	if r.data == nil {
		return "No active session"
	}
	return "Active session"
}

func (r SessionResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.data)
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
