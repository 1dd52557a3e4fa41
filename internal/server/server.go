package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kizuna-dev/teambuilder/internal/auth"
	"github.com/kizuna-dev/teambuilder/internal/constellation"
	"github.com/kizuna-dev/teambuilder/internal/database"
	"github.com/kizuna-dev/teambuilder/internal/handler"
	"github.com/kizuna-dev/teambuilder/internal/logger"
	"github.com/kizuna-dev/teambuilder/internal/metrics"
	"github.com/kizuna-dev/teambuilder/internal/summon"
	"github.com/kizuna-dev/teambuilder/internal/user"
)

// Tokens issues and verifies player bearer tokens
type Tokens interface {
	handler.TokenIssuer
	auth.Verifier
}

// Options are the transport settings of the server
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Version        string
}

// Dependencies are the services the routes call into
type Dependencies struct {
	DBPool         database.Pool
	Users          user.Service
	Constellations constellation.Service
	Summons        summon.Service
	Tokens         Tokens
}

type Server struct {
	httpServer *http.Server
}

// NewServer builds the router and wraps it in an http.Server
func NewServer(opts Options, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
			ReadTimeout:       ReadTimeout,
			WriteTimeout:      WriteTimeout,
			IdleTimeout:       IdleTimeout,
		},
	}
}

// NewRouter wires middleware and routes.
// Operator routes take the API key; player routes take a bearer token.
func NewRouter(opts Options, deps Dependencies) http.Handler {
	r := chi.NewRouter()

	detector := NewSuspiciousActivityDetector()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.DBPool, deps.Constellations))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	constellations := handler.NewConstellationHandler(deps.Constellations)
	gacha := handler.NewGachaHandler(deps.Summons)
	operatorOnly := APIKeyMiddleware(opts.APIKey, opts.TrustedProxies, detector)

	r.Route("/api/v1", func(r chi.Router) {
		r.With(operatorOnly).Post("/users/register", handler.HandleRegisterUser(deps.Users, deps.Tokens))

		r.Route("/admin", func(r chi.Router) {
			r.Use(operatorOnly)
			r.Post("/users/{id}/stars", handler.HandleGrantStars(deps.Users))
			r.Post("/constellations/reload", constellations.HandleReload)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.BearerMiddleware(deps.Tokens))

			r.Get("/me", handler.HandleGetMe(deps.Users))

			r.Route("/constellations", func(r chi.Router) {
				r.Get("/", constellations.HandleList)
				r.Get("/{id}", constellations.HandleGet)
				r.Get("/{id}/rates", constellations.HandlePreviewRates)
			})

			r.Route("/gacha", func(r chi.Router) {
				r.Post("/pull", gacha.HandlePull)
				r.Get("/history", gacha.HandleHistory)
			})
		})
	})

	return r
}

// Start listens until Stop is called. It returns http.ErrServerClosed after
// a graceful stop.
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop drains in-flight requests until ctx expires
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
