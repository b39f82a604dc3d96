package identity

import (
	"github.com/shandysiswandi/postline/internal/identity/inbound"
	"github.com/shandysiswandi/postline/internal/identity/usecase"
	"github.com/shandysiswandi/postline/internal/pkg/instrument"
	"github.com/shandysiswandi/postline/internal/pkg/router"
	"github.com/shandysiswandi/postline/internal/pkg/session"
	"github.com/shandysiswandi/postline/internal/pkg/validator"
)

// Dependency lists what the identity module needs from the application.
type Dependency struct {
	Router     *router.Router             `validate:"required"`
	Fetcher    *session.Fetcher           `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

// New validates dep and registers the module's HTTP endpoints.
func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	uc := usecase.New(usecase.Dependency{
		Fetcher:    dep.Fetcher,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
