package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/TraineeHub/notify/config"
	"github.com/TraineeHub/notify/pkg/logger"
)

const healthCheckTimeout = 5 * time.Second

// Pinger checks one backing store's reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to the Pinger interface.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// namedCheck pairs a store name with its pinger. A slice keeps the response
// order stable.
type namedCheck struct {
	name   string
	pinger Pinger
}

// HealthHandler reports readiness of the backing stores.
type HealthHandler struct {
	checks []namedCheck
	logger logger.Logger
}

func NewHealthHandler(logger logger.Logger) *HealthHandler {
	return &HealthHandler{logger: logger}
}

// AddCheck registers a named store check. Checks run in registration order.
func (h *HealthHandler) AddCheck(name string, pinger Pinger) *HealthHandler {
	h.checks = append(h.checks, namedCheck{name: name, pinger: pinger})
	return h
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Handle answers GET /health: 200 when every store responds to a ping
// within the timeout, 503 otherwise.
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	response := healthResponse{Status: "UP", Checks: make(map[string]string, len(h.checks))}
	for _, check := range h.checks {
		if err := check.pinger.Ping(ctx); err != nil {
			h.logger.WithField("check", check.name).Warn(fmt.Sprintf("Health check failed: %v", err))
			response.Status = "DOWN"
			response.Checks[check.name] = "DOWN"
			continue
		}
		response.Checks[check.name] = "UP"
	}

	status := http.StatusOK
	if response.Status != "UP" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, response)
}

// Server is the service's only HTTP surface: the health endpoint plus the
// metrics exporter when one is configured.
type Server struct {
	server *http.Server
	logger logger.Logger
}

func New(cfg *config.ServerConfig, health *HealthHandler, metrics http.Handler, logger logger.Logger) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", health.Handle)
	if metrics != nil {
		mux.Handle("/metrics", metrics)
	}

	return &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler: mux,
		},
		logger: logger,
	}
}

// Start serves until Shutdown is called. A closed listener is a normal
// return, not an error.
func (s *Server) Start() error {
	s.logger.WithField("address", s.server.Addr).Info("Health server starting")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("health server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
