package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/aretw0/turing/pkg/runner"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes a Simulator over HTTP.
type Server struct {
	Engine   ports.Simulator
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

// Option configures the HTTP server.
type Option func(*Server)

// WithGatherer mounts GET /metrics for the given gatherer.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.Gatherer = g
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine ports.Simulator, opts ...Option) http.Handler {
	server := &Server{
		Engine: engine,
		Logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/simulate", server.Simulate)
	r.Get("/table", server.GetTable)
	r.Get("/graph", server.GetGraph)
	r.Get("/healthz", server.Health)
	r.Get("/version", server.GetVersion)
	if server.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(server.Gatherer, promhttp.HandlerOpts{}))
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Simulate handles the POST /simulate request.
func (s *Server) Simulate(w http.ResponseWriter, r *http.Request) {
	var req runner.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.Logger.Warn("Simulate: Invalid request body", "error", err)
		writeJSON(w, http.StatusBadRequest, runner.NewErrorResponse(fmt.Errorf("invalid request: %w", err)))
		return
	}

	a, b, err := req.Operands()
	if err != nil {
		s.Logger.Warn("Simulate: Invalid operand", "error", err)
		writeJSON(w, http.StatusBadRequest, runner.NewErrorResponse(err))
		return
	}

	res, err := s.Engine.Run(r.Context(), a, b)
	if err != nil {
		s.writeRunError(w, err)
		return
	}
	if err := res.Err(); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrNonConvergent) {
			status = http.StatusUnprocessableEntity
		}
		writeJSON(w, status, runner.NewErrorResponse(err))
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// GetTable handles the GET /table request.
func (s *Server) GetTable(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Engine.Table())
}

// GetGraph handles the GET /graph request and returns a Mermaid diagram.
// When the unary query parameters a or b are present, the diagram highlights the
// states visited by that run and the state it stopped in.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	var overlay *graph.GraphOverlay

	query := r.URL.Query()
	if query.Has("a") || query.Has("b") {
		a, err := domain.ParseOperand("a", query.Get("a"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, runner.NewErrorResponse(err))
			return
		}
		b, err := domain.ParseOperand("b", query.Get("b"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, runner.NewErrorResponse(err))
			return
		}

		res, err := s.Engine.Run(r.Context(), a, b)
		if err != nil {
			s.writeRunError(w, err)
			return
		}
		overlay = graph.OverlayFromResult(res)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := io.WriteString(w, graph.GenerateMermaid(domain.States(), s.Engine.Table(), overlay)); err != nil {
		s.Logger.Error("GetGraph write failed", "error", err)
	}
}

// writeRunError maps an engine error to a status: rejected operands are the
// caller's fault, anything else is a server failure.
func (s *Server) writeRunError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInvalidOperand) {
		s.Logger.Warn("Run rejected operands", "error", err)
		writeJSON(w, http.StatusBadRequest, runner.NewErrorResponse(err))
		return
	}
	s.Logger.Error("Run failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, runner.NewErrorResponse(err))
}

// Health handles the GET /healthz request.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetVersion handles the GET /version request.
func (s *Server) GetVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": strings.TrimSpace(turing.Version)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
