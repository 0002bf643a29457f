package ledger

import (
	"encoding/json"
	"net/http"

	"github.com/reina-tokumaru/clinic-reservation-system/pkg/logging"
)

// Handler serves the shared reservation ledger on the top page.
type Handler struct {
	store  Store
	logger *logging.Logger
}

// NewHandler creates a ledger handler.
func NewHandler(store Store, logger *logging.Logger) *Handler {
	if store == nil {
		panic("ledger: store cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{store: store, logger: logger}
}

// ListPage handles GET /: the full ledger in insertion order.
func (h *Handler) ListPage(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list reservations", "error", err)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	if reservations == nil {
		reservations = []Reservation{}
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"reservations": reservations})
}

// CreateSubmit handles POST /: appends a reservation and redirects back
// to the ledger. Fields are recorded as given, blanks included.
func (h *Handler) CreateSubmit(w http.ResponseWriter, r *http.Request) {
	res, err := h.store.Append(r.Context(),
		r.FormValue("patient_name"),
		r.FormValue("reservation_date"),
		r.FormValue("time_slot"),
	)
	if err != nil {
		h.logger.Error("failed to append reservation", "error", err)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	h.logger.Info("reservation recorded",
		"reservation_id", res.ID,
		"date", res.Date,
		"time", res.Time,
	)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", "error", err)
	}
}
