// Package http exposes the dispatcher over a webhook endpoint: the
// platform POSTs interactions to /interactions and receives the
// interaction response in the body.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/roost-chat/roost/internal/logging"
	"github.com/roost-chat/roost/pkg/command"
	"github.com/roost-chat/roost/pkg/component"
	"github.com/roost-chat/roost/pkg/dispatch"
	"github.com/roost-chat/roost/pkg/interaction"
)

// Dispatcher is the slice of dispatch.Dispatcher the gateway needs.
type Dispatcher interface {
	Dispatch(ctx context.Context, ic *interaction.Interaction) (*component.InteractionResponse, error)
}

type ctxKey int

const requestIDKey ctxKey = 0

// RequestID returns the correlation ID assigned to the request, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// Server handles inbound interaction webhooks.
type Server struct {
	dispatcher Dispatcher
	logger     *slog.Logger
	metrics    http.Handler
}

// ServerOption configures the Server.
type ServerOption func(*Server)

// WithLogger sets the request logger. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) { s.logger = logger }
}

// WithMetricsHandler mounts a metrics endpoint at /metrics, typically
// promhttp.Handler() or a handler bound to a private registry.
func WithMetricsHandler(h http.Handler) ServerOption {
	return func(s *Server) { s.metrics = h }
}

// WithDefaultMetrics mounts promhttp's default-registry handler at /metrics.
func WithDefaultMetrics() ServerOption {
	return WithMetricsHandler(promhttp.Handler())
}

// NewHandler builds the HTTP handler for the gateway.
func NewHandler(d Dispatcher, opts ...ServerOption) http.Handler {
	s := &Server{
		dispatcher: d,
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(s.requestID)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}
	r.Post("/interactions", s.handleInteraction)

	return r
}

// requestID assigns a correlation ID to every request.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func (s *Server) handleInteraction(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ic, err := interaction.Decode(r.Body)
	if err != nil {
		s.logger.Warn("invalid interaction payload", "request_id", RequestID(r.Context()), "err", err)
		http.Error(w, "invalid interaction payload", http.StatusBadRequest)
		return
	}

	resp, err := s.dispatcher.Dispatch(r.Context(), ic)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, dispatch.ErrUnknownComponent), errors.Is(err, command.ErrCommandNotFound):
			status = http.StatusNotFound
		case errors.Is(err, dispatch.ErrUnsupportedInteraction):
			status = http.StatusBadRequest
		}
		s.logger.Warn("dispatch failed",
			"request_id", RequestID(r.Context()),
			"interaction_id", ic.ID,
			"status", status,
			"err", err,
		)
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("response encode failed", "request_id", RequestID(r.Context()), "err", err)
		return
	}

	s.logger.Info("interaction handled",
		"request_id", RequestID(r.Context()),
		"interaction_id", ic.ID,
		"kind", int(ic.Kind),
		"duration", time.Since(start),
	)
}
