package inbound

import (
	"context"

	"github.com/shandysiswandi/postline/internal/identity/usecase"
	"github.com/shandysiswandi/postline/internal/pkg/router"
)

type uc interface {
	CurrentSession(ctx context.Context) (*usecase.CurrentSessionOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/v1/identity/session", end.CurrentSession)
}
