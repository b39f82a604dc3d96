package app

import (
	"context"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/postline/internal/pkg/clock"
	"github.com/shandysiswandi/postline/internal/pkg/config"
	"github.com/shandysiswandi/postline/internal/pkg/instrument"
	"github.com/shandysiswandi/postline/internal/pkg/jwt"
	"github.com/shandysiswandi/postline/internal/pkg/mail"
	"github.com/shandysiswandi/postline/internal/pkg/router"
	"github.com/shandysiswandi/postline/internal/pkg/session"
	"github.com/shandysiswandi/postline/internal/pkg/uid"
	"github.com/shandysiswandi/postline/internal/pkg/validator"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	validator validator.Validator
	clock     clock.Clocker
	uuid      uid.StringID
	jwt       jwt.JWT

	// resources
	cacheConn *redis.Client
	mail      *mail.Provider
	session   *session.Fetcher

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	cfg := loadConfig()
	return NewWithConfig(cfg)
}

// NewWithConfig wires the application around an already loaded config.
func NewWithConfig(cfg config.Config) *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
		config: cfg,
	}

	app.initInstrument()
	app.initLibraries()
	app.initMail()
	app.initCache()
	app.initJWT()
	app.initSession()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
