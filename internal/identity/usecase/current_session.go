package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/postline/internal/pkg/goerror"
	"github.com/shandysiswandi/postline/internal/pkg/session"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type CurrentSessionOutput struct {
	// Session is nil for anonymous callers.
	Session *session.Session
}

func (s *Usecase) CurrentSession(ctx context.Context) (*CurrentSessionOutput, error) {
	ctx, span := s.startSpan(ctx, "CurrentSession")
	defer span.End()

	sess, err := s.fetcher.Fetch(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.ErrorContext(ctx, "failed to fetch current session", "error", err)
		return nil, goerror.NewServer(err)
	}

	span.SetAttributes(attribute.Bool("session.active", sess != nil))

	return &CurrentSessionOutput{Session: sess}, nil
}
