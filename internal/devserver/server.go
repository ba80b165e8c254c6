// Package devserver runs a local stand-in for the PawMart backend on one
// Echo instance. It serves the listings and orders API with its Swagger UI,
// a fake identity provider, health probes and Prometheus metrics.
package devserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pawmart/pawmart/api/openapi"
	"github.com/pawmart/pawmart/internal/api/auth"
	"github.com/pawmart/pawmart/internal/api/handlers"
	mw "github.com/pawmart/pawmart/internal/api/middleware"
	"github.com/pawmart/pawmart/internal/store"
	"github.com/pawmart/pawmart/pkg/logger"
)

// IdentityPath is the route prefix of the fake identity provider. Point the
// identity client's base URL at it.
const IdentityPath = "/identity/v1"

// Options configures a Server.
type Options struct {
	Addr        string
	TokenSecret string
	Store       store.Store // required
	Logger      *slog.Logger
	Now         func() time.Time
	Version     string
}

// Server is the dev backend.
type Server struct {
	echo   *echo.Echo
	api    huma.API
	tokens *auth.Tokens
	addr   string
	log    *slog.Logger
}

// New wires the routes of the dev server.
func New(opts Options) (*Server, error) {
	if opts.Store == nil {
		return nil, errors.New("devserver: store is required")
	}
	if opts.TokenSecret == "" {
		return nil, errors.New("devserver: token secret is required")
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}

	tokens := auth.NewTokens(opts.TokenSecret, opts.Now)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(mw.Recovery(opts.Logger), mw.Metrics(), mw.RequestLog(opts.Logger))

	health := handlers.NewHealthHandler(opts.Store)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	idp := NewIdentityProvider(tokens, opts.Now)
	e.POST(IdentityPath+"/:method", idp.Handle)

	api := humaecho.New(e, huma.DefaultConfig("PawMart Dev API", opts.Version))
	handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(opts.Store, tokens))
	handlers.RegisterOrderRoutes(api, handlers.NewOrdersHandler(opts.Store, tokens, opts.Now))
	openapi.RegisterRoutes(e, api)

	return &Server{
		echo:   e,
		api:    api,
		tokens: tokens,
		addr:   opts.Addr,
		log:    opts.Logger,
	}, nil
}

// Handler returns the root HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.echo }

// API returns the Huma API, e.g. to dump its OpenAPI document.
func (s *Server) API() huma.API { return s.api }

// Tokens returns the ID token issuer shared by the identity provider and
// the write endpoints.
func (s *Server) Tokens() *auth.Tokens { return s.tokens }

// Start listens on the configured address and blocks until Shutdown.
func (s *Server) Start() error {
	s.log.Info("starting dev server", "addr", s.addr)
	if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("dev server: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down dev server")
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down dev server: %w", err)
	}
	return nil
}
