package inbound

import (
	"github.com/shandysiswandi/postline/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for session lookups.
type HTTPEndpoint struct {
	uc uc
}

// CurrentSession returns the caller's active session, or null when the
// request carries no valid credential.
// @Summary Current session
// @Description Resolves the bearer credential through the configured session backend.
// @Tags Identity
// @Produce json
// @Success 200 {object} router.successResponse{data=SessionData} "Session or null"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/session [get]
func (h *HTTPEndpoint) CurrentSession(r *router.Request) (any, error) {
	out, err := h.uc.CurrentSession(r.Context())
	if err != nil {
		return nil, err
	}

	return newSessionResponse(out.Session), nil
}
