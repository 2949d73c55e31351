// Package gateway exposes the orchestrator over HTTP. Requests are folded
// into gateway-shaped events so the HTTP surface and the event surface
// share one processing path.
package gateway

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/foliohq/folio/job"
)

// maxBodyBytes caps inbound request bodies; jobs carry locators, not
// documents, so requests are small.
const maxBodyBytes = 1 << 20

// Server handles HTTP traffic for the processing service.
type Server struct {
	Orchestrator *job.Orchestrator
	Logger       zerolog.Logger
}

// NewServer creates an HTTP server front for the orchestrator.
func NewServer(o *job.Orchestrator, logger zerolog.Logger) *Server {
	return &Server{Orchestrator: o, Logger: logger}
}

// Router builds the HTTP route table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"folio"}`))
	})

	r.Post("/v1/process", s.handleProcess)

	return r
}

// gatewayEvent is the event shape an HTTP request is folded into.
type gatewayEvent struct {
	Headers map[string]string `json:"headers"`
	Body    string            `json:"body"`
}

func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, `{"error":"unreadable request body"}`, http.StatusBadRequest)
		return
	}

	headers := make(map[string]string, len(r.Header))
	for name := range r.Header {
		headers[name] = r.Header.Get(name)
	}

	raw, err := json.Marshal(gatewayEvent{Headers: headers, Body: string(body)})
	if err != nil {
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}

	resp := s.Orchestrator.Handle(r.Context(), raw)

	for name, value := range resp.Headers {
		w.Header().Set(name, value)
	}
	w.WriteHeader(resp.StatusCode)
	if _, err := io.WriteString(w, resp.Body); err != nil {
		s.Logger.Error().Err(err).Msg("failed to write response")
	}
}
