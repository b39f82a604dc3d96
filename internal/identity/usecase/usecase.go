package usecase

import (
	"context"

	"github.com/shandysiswandi/postline/internal/pkg/instrument"
	"github.com/shandysiswandi/postline/internal/pkg/session"
	"go.opentelemetry.io/otel/trace"
)

type sessionFetcher interface {
	Fetch(ctx context.Context) (*session.Session, error)
}

type Usecase struct {
	fetcher sessionFetcher
	ins     instrument.Instrumentation
}

type Dependency struct {
	Fetcher    sessionFetcher
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		fetcher: dep.Fetcher,
		ins:     dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}
