package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/specwave/spec-core/internal/infrastructure/config"
	"github.com/specwave/spec-core/internal/infrastructure/logging"
	"github.com/specwave/spec-core/internal/spec"
)

// gracefulShutdownTimeout is the maximum time to wait for in-flight requests
// to complete during shutdown.
const gracefulShutdownTimeout = 10 * time.Second

// Rediscoverer re-runs spec discovery on demand and releases spec
// ownership on removal. Implemented by the discovery loader; declared
// here so the API does not depend on loader wiring details.
type Rediscoverer interface {
	Run() *spec.Report
	Release(id string)
}

// Notifier publishes registry change events to the announcement bus.
// Satisfied by *announce.Announcer; declared here so the API does not
// depend on the bus transport.
type Notifier interface {
	SpecRegistered(s *spec.DeviceSpec) error
	SpecRemoved(id string) error
}

// Deps holds the dependencies required by the API server.
type Deps struct {
	Config   config.APIConfig
	Security config.SecurityConfig
	Logger   *logging.Logger
	Store    *spec.Store
	Resolver *spec.Resolver
	Query    *spec.Query
	Loader   Rediscoverer    // optional: enables POST /discovery/run
	Repo     spec.Repository // optional: enables persisting custom specs
	Notifier Notifier        // optional: announces register/remove events
	Version  string
}

// Server is the HTTP API server for SpecWave Core.
//
// It manages the HTTP listener, routes, and middleware. The server is
// created with New() and started with Start().
type Server struct {
	cfg      config.APIConfig
	secCfg   config.SecurityConfig
	logger   *logging.Logger
	store    *spec.Store
	resolver *spec.Resolver
	query    *spec.Query
	loader   Rediscoverer
	repo     spec.Repository
	notifier Notifier
	version  string
	server   *http.Server
}

// New creates a new API server with the given dependencies.
//
// The server is not started until Start() is called.
func New(deps Deps) (*Server, error) {
	if deps.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if deps.Store == nil {
		return nil, fmt.Errorf("spec store is required")
	}
	if deps.Resolver == nil {
		return nil, fmt.Errorf("resolver is required")
	}
	if deps.Query == nil {
		return nil, fmt.Errorf("query facade is required")
	}

	return &Server{
		cfg:      deps.Config,
		secCfg:   deps.Security,
		logger:   deps.Logger,
		store:    deps.Store,
		resolver: deps.Resolver,
		query:    deps.Query,
		loader:   deps.Loader,
		repo:     deps.Repo,
		notifier: deps.Notifier,
		version:  deps.Version,
	}, nil
}

// Start begins listening for HTTP connections.
//
// It builds the router and launches the HTTP listener in a background
// goroutine. The server can be stopped with Close().
func (s *Server) Start(_ context.Context) error {
	router := s.buildRouter()

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		Handler:           router,
		ReadTimeout:       time.Duration(s.cfg.Timeouts.Read) * time.Second,
		ReadHeaderTimeout: time.Duration(s.cfg.Timeouts.Read) * time.Second,
		WriteTimeout:      time.Duration(s.cfg.Timeouts.Write) * time.Second,
		IdleTimeout:       time.Duration(s.cfg.Timeouts.Idle) * time.Second,
	}

	go func() {
		s.logger.Info("API server starting", "address", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("API server error", "error", err)
		}
	}()

	return nil
}

// Close gracefully shuts down the API server.
//
// It waits up to 10 seconds for in-flight requests to complete, then
// forcefully closes remaining connections.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	s.logger.Info("API server shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down API server: %w", err)
	}
	return nil
}

// HealthCheck verifies the API server is running and responsive.
func (s *Server) HealthCheck(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("api health check: %w", ctx.Err())
	default:
	}

	if s.server == nil {
		return fmt.Errorf("api server not started")
	}

	return nil
}
