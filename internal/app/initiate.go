package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
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

func loadConfig() config.Config {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "/config/config.yaml"
		if os.Getenv("LOCAL") == "true" {
			path = "./config/config.yaml"
		}
	}

	cfg, err := config.NewViper(path)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	if tz := cfg.GetString("app.tz"); tz != "" {
		//nolint:errcheck,gosec // ignore error
		os.Setenv("TZ", tz)
	}

	return cfg
}

func (a *App) initInstrument() {
	ins, err := instrument.New(a.ctx, &instrument.Config{
		Enabled:          a.config.GetBool("instrument.enabled"),
		ServiceName:      a.config.GetString("instrument.service_name"),
		ServiceVersion:   a.config.GetString("instrument.service_version"),
		Environment:      a.config.GetString("instrument.env"),
		OTLPEndpoint:     a.config.GetString("instrument.otlp_endpoint"),
		OTLPSecure:       a.config.GetBool("instrument.otlp_secure"),
		TraceSampleRatio: a.config.GetFloat64("instrument.trace_sample_ratio"),
		MetricsInterval:  a.config.GetSecond("instrument.metric_interval_seconds"),
		MaskFields:       a.config.GetArray("instrument.log_mask_fields"),
		LogLevel:         a.config.GetString("instrument.log_level"),
	})
	if err != nil {
		slog.Error("failed to init instrumentation", "error", err)
		os.Exit(1)
	}
	a.ins = ins
}

func (a *App) initLibraries() {
	a.clock = clock.New()
	a.uuid = uid.NewUUID()

	validator, err := validator.NewV10Validator()
	if err != nil {
		slog.Error("failed to init validation v10 validator", "error", err)
		os.Exit(1)
	}
	a.validator = validator
}

func (a *App) initMail() {
	driver := a.config.GetString("mail.driver")
	client, err := mail.NewFromDriver(driver, mail.FactoryOptions{
		SendGrid: mail.SendGridConfig{
			APIKey: a.config.GetString("mail.api_key"),
			Host:   a.config.GetString("mail.sendgrid.host"),
		},
		SMTP: mail.SMTPConfig{
			Host:        a.config.GetString("mail.smtp.host"),
			Port:        a.config.GetInt("mail.smtp.port"),
			Username:    a.config.GetString("mail.smtp.username"),
			Password:    a.config.GetString("mail.smtp.password"),
			DialTimeout: a.config.GetSecond("mail.smtp.dial_timeout_seconds"),
		},
	})
	if err != nil {
		slog.Error("failed to init mail client", "error", err, "driver", driver)
		os.Exit(1)
	}

	provider, err := mail.NewProvider(client, mail.ProviderConfig{
		From:        a.config.GetString("mail.from"),
		AdminEmails: strings.Join(a.config.GetArray("mail.admin_emails"), ","),
		Strict:      a.config.GetBool("mail.strict_addresses"),
		Validator:   a.validator,
		Instrument:  a.ins,
	})
	if err != nil {
		slog.Error("failed to init mail provider", "error", err)
		os.Exit(1)
	}

	slog.Info("mail provider ready", "driver", driver, "from", provider.From(), "admins", len(provider.Admins()))

	a.mail = provider
}

func (a *App) sessionDriver() string {
	return session.NormalizeDriver(a.config.GetString("session.driver"))
}

func (a *App) initCache() {
	if a.sessionDriver() != session.DriverRedis {
		return
	}

	opt, err := redis.ParseURL(a.config.GetString("session.redis.url"))
	if err != nil {
		slog.Error("failed to parse redis url", "error", err)
		os.Exit(1)
	}

	rdb := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(a.ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		slog.Error("failed to init redis", "error", err)
		os.Exit(1)
	}

	a.cacheConn = rdb
}

func (a *App) initJWT() {
	if a.sessionDriver() != session.DriverJWT {
		return
	}

	defaultJWT, err := jwt.NewHS512(jwt.Config{
		Secret:    []byte(a.config.GetString("session.jwt.secret")),
		Issuer:    a.config.GetString("session.jwt.issuer"),
		Audiences: a.config.GetArray("session.jwt.audiences"),
		TTL:       a.config.GetMinute("session.jwt.ttl_minutes"),
		Clock:     a.clock,
		UUID:      a.uuid,
	})
	if err != nil {
		slog.Error("failed to init jwt token", "error", err)
		os.Exit(1)
	}
	a.jwt = defaultJWT
}

func (a *App) initSession() {
	driver := a.sessionDriver()
	opts := session.FactoryOptions{
		JWT: a.jwt,
		Redis: session.RedisConfig{
			Prefix: a.config.GetString("session.redis.prefix"),
			Clock:  a.clock,
		},
		OIDC: session.OIDCConfig{
			IssuerURL: a.config.GetString("session.oidc.issuer_url"),
			ClientID:  a.config.GetString("session.oidc.client_id"),
		},
	}
	if a.cacheConn != nil {
		opts.Redis.Client = a.cacheConn
	}

	backend, err := session.NewFromDriver(a.ctx, driver, opts)
	if err != nil {
		slog.Error("failed to init session backend", "error", err, "driver", driver)
		os.Exit(1)
	}

	a.session = session.NewFetcher(backend)
}

func (a *App) initHTTPServer() {
	a.router = router.NewRouter(router.Config{
		Config:     a.config,
		UUID:       a.uuid,
		Instrument: a.ins,
	})

	routerWithCORS := cors.New(cors.Options{
		AllowedOrigins: a.config.GetArray("app.server.cors"),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(a.router)

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("app.server.http.address"),
		Handler:           routerWithCORS,
		ReadTimeout:       a.config.GetSecond("app.server.http.read_timeout_seconds"),
		ReadHeaderTimeout: a.config.GetSecond("app.server.http.read_header_timeout_seconds"),
		WriteTimeout:      a.config.GetSecond("app.server.http.write_timeout_seconds"),
		IdleTimeout:       a.config.GetSecond("app.server.http.idle_timeout_seconds"),
	}
}

func (a *App) initClosers() {
	a.closers = []struct {
		name string
		fn   func(context.Context) error
	}{
		{
			name: "Instrument",
			fn: func(ctx context.Context) error {
				return a.ins.Shutdown(ctx)
			},
		},
		{
			name: "Mail",
			fn: func(context.Context) error {
				return a.mail.Close()
			},
		},
		{
			name: "Redis",
			fn: func(context.Context) error {
				if a.cacheConn == nil {
					return nil
				}
				return a.cacheConn.Close()
			},
		},
		{
			name: "Config",
			fn: func(context.Context) error {
				return a.config.Close()
			},
		},
	}
}
