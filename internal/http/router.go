package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"polls-api/internal/domain/poll"
	"polls-api/internal/platform/apperr"
	"polls-api/internal/worker"
)

const maxBodyBytes = 1 << 20

type RouterConfig struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

type Handler struct {
	pollSvc *poll.Service
	voteCh  chan<- worker.VoteEvent
}

func NewRouter(pollSvc *poll.Service, voteCh chan<- worker.VoteEvent, cfg RouterConfig) http.Handler {
	h := &Handler{
		pollSvc: pollSvc,
		voteCh:  voteCh,
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 60 * time.Second
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(RequestLogger)
	r.Use(Recoverer)
	r.Use(chimw.Timeout(cfg.RequestTimeout))
	r.Use(CORSMiddleware(cfg.AllowedOrigins))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		errorResponse(w, r, apperr.NotFound("route_not_found", "Route not found", nil))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		errorResponse(w, r, apperr.MethodNotAllowed("method_not_allowed", "Method not allowed", nil))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "status": "ok"})
	})
	r.Get("/ready", h.handleReady)
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Route("/api/polls", func(r chi.Router) {
		r.Get("/", h.handleListPolls)
		r.Post("/create", h.handleCreatePoll)
		r.Get("/{pollId}", h.handleGetPoll)
		r.Delete("/{pollId}", h.handleDeletePoll)
		r.Post("/{pollId}/vote", h.handleVote)
		r.Get("/{pollId}/results", h.handlePollResults)
		r.Put("/{pollId}/close", h.handleClosePoll)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slogLogger.Error("failed to encode JSON response", "error", err)
	}
}

var errTrailingData = errors.New("request body must contain a single JSON object")

// decodeJSON decodes exactly one JSON value; anything after it is rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}

func pollIDParam(r *http.Request) string {
	return chi.URLParam(r, "pollId")
}

func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if _, err := h.pollSvc.List(ctx); err != nil {
		errorResponse(w, r, apperr.Unavailable("store_unavailable", "poll store not ready", err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "status": "ready"})
}
