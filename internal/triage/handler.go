package triage

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/reina-tokumaru/clinic-reservation-system/internal/observability/metrics"
	"github.com/reina-tokumaru/clinic-reservation-system/pkg/logging"
)

// Handler wires HTTP requests to the triage classifier.
type Handler struct {
	classifier *Classifier
	metrics    *metrics.TriageMetrics
	logger     *logging.Logger
}

// NewHandler creates a triage handler.
func NewHandler(classifier *Classifier, m *metrics.TriageMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		classifier: classifier,
		metrics:    m,
		logger:     logger,
	}
}

type chatRequest struct {
	Message string `json:"message"`
}

// HandleChat handles POST /api/chat.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req chatRequest
	// A missing or malformed body classifies the same as a blank message.
	_ = json.NewDecoder(r.Body).Decode(&req)

	result, err := h.classifier.Classify(r.Context(), req.Message)
	if err != nil {
		h.respondError(w, err, start)
		return
	}

	h.metrics.ObserveRequest("ok", time.Since(start).Seconds())
	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) respondError(w http.ResponseWriter, err error, start time.Time) {
	elapsed := time.Since(start).Seconds()

	var formatErr *FormatError
	var unavailableErr *UnavailableError
	switch {
	case errors.Is(err, ErrEmptyMessage):
		h.metrics.ObserveRequest("empty_message", elapsed)
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "empty message"})
	case errors.As(err, &formatErr):
		h.metrics.ObserveRequest("format_error", elapsed)
		h.logger.Error("triage reply had no parseable JSON",
			"kind", string(formatErr.Kind),
			"raw", formatErr.Raw,
		)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "invalid json format",
			"raw":   formatErr.Raw,
		})
	case errors.As(err, &unavailableErr):
		h.metrics.ObserveRequest("unavailable", elapsed)
		h.logger.Error("triage model call failed", "error", unavailableErr.Err)
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "triage unavailable"})
	default:
		h.metrics.ObserveRequest("internal_error", elapsed)
		h.logger.Error("triage classification failed", "error", err)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

// HandleChatPage handles GET /chat, serving the chat UI shell.
func (h *Handler) HandleChatPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(chatPageHTML))
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", "error", err)
	}
}
