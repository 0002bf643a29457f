package wizard

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/reina-tokumaru/clinic-reservation-system/internal/clinic"
	"github.com/reina-tokumaru/clinic-reservation-system/internal/http/middleware"
	"github.com/reina-tokumaru/clinic-reservation-system/internal/observability/metrics"
	"github.com/reina-tokumaru/clinic-reservation-system/internal/session"
	"github.com/reina-tokumaru/clinic-reservation-system/pkg/logging"
)

// Handler drives the booking wizard over HTTP. Each POST is a state
// machine transition on the caller's session; GETs are permissive
// projections that render whatever the session holds.
type Handler struct {
	store     session.Store
	directory *clinic.Directory
	machine   *Machine
	metrics   *metrics.WizardMetrics
	logger    *logging.Logger
}

// NewHandler creates a wizard handler.
func NewHandler(store session.Store, directory *clinic.Directory, m *metrics.WizardMetrics, logger *logging.Logger) *Handler {
	if store == nil {
		panic("wizard: session store cannot be nil")
	}
	if directory == nil {
		directory = clinic.NewDirectory()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		store:     store,
		directory: directory,
		machine:   NewMachine(),
		metrics:   m,
		logger:    logger,
	}
}

// SearchPage handles GET /search.
func (h *Handler) SearchPage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("clinic")
	results := h.directory.Search(query)
	if results == nil {
		results = []clinic.Clinic{}
	}
	h.writeJSON(w, http.StatusOK, searchView{
		Step:    StepSearch,
		Clinic:  query,
		Results: results,
	})
}

// SearchSubmit handles POST /search: stores the clinic name and moves
// to the schedule step.
func (h *Handler) SearchSubmit(w http.ResponseWriter, r *http.Request) {
	b, sid, ok := h.loadBooking(w, r)
	if !ok {
		return
	}

	b = h.machine.SelectClinic(b, 0, r.FormValue("clinic"))
	if !h.saveBooking(w, r, sid, b) {
		return
	}
	h.metrics.ObserveTransition("select_clinic", "ok")
	http.Redirect(w, r, "/schedule", http.StatusSeeOther)
}

// SchedulePage handles GET /schedule. Query parameters may carry a
// clinic ID and department picked on the previous page; they are
// applied permissively, matching the documented read-path contract.
func (h *Handler) SchedulePage(w http.ResponseWriter, r *http.Request) {
	b, sid, ok := h.loadBooking(w, r)
	if !ok {
		return
	}

	dirty := false
	if idStr := r.URL.Query().Get("clinic_id"); idStr != "" {
		if id, err := strconv.Atoi(idStr); err == nil {
			if cat, found := h.directory.ByID(id); found {
				b = h.machine.SelectClinic(b, cat.ID, cat.Name)
			} else if b.Clinic != nil {
				b = h.machine.SelectClinic(b, id, b.Clinic.Name)
			}
			dirty = true
		}
	}
	if dept := r.URL.Query().Get("dept"); dept != "" {
		if next, err := h.machine.SelectDepartment(b, dept); err == nil {
			b = next
			dirty = true
		}
	}
	if dirty && !h.saveBooking(w, r, sid, b) {
		return
	}

	h.writeJSON(w, http.StatusOK, scheduleView{
		Step:       StepSchedule,
		Clinic:     b.Clinic,
		Department: b.Department,
		Date:       b.Date,
	})
}

// ScheduleSubmit handles POST /schedule. A department submission keeps
// the flow on the schedule step; a date submission advances it.
func (h *Handler) ScheduleSubmit(w http.ResponseWriter, r *http.Request) {
	b, sid, ok := h.loadBooking(w, r)
	if !ok {
		return
	}

	if dept := r.FormValue("dept"); dept != "" {
		next, err := h.machine.SelectDepartment(b, dept)
		if err != nil {
			h.metrics.ObserveTransition("select_department", "missing_prerequisite")
			h.respondStateError(w, err)
			return
		}
		if !h.saveBooking(w, r, sid, next) {
			return
		}
		h.metrics.ObserveTransition("select_department", "ok")
		http.Redirect(w, r, "/schedule", http.StatusSeeOther)
		return
	}

	if date := r.FormValue("date"); date != "" {
		next, err := h.machine.SelectDate(b, date)
		if err != nil {
			h.metrics.ObserveTransition("select_date", "missing_prerequisite")
			h.respondStateError(w, err)
			return
		}
		if !h.saveBooking(w, r, sid, next) {
			return
		}
		h.metrics.ObserveTransition("select_date", "ok")
		http.Redirect(w, r, "/patient", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/schedule", http.StatusSeeOther)
}

// ScheduleDetailPage handles GET /schedule/{id}: the clinic detail
// variant of the schedule step.
func (h *Handler) ScheduleDetailPage(w http.ResponseWriter, r *http.Request) {
	view := scheduleView{Step: StepSchedule}
	if cat, found := h.lookupPathClinic(r); found {
		view.Clinic = &session.ClinicRef{ID: cat.ID, Name: cat.Name}
	}
	h.writeJSON(w, http.StatusOK, view)
}

// ScheduleDetailSubmit handles POST /schedule/{id}: the quick-reserve
// flow that renders a completion view without touching the session.
func (h *Handler) ScheduleDetailSubmit(w http.ResponseWriter, r *http.Request) {
	view := quickReserveView{
		Date: r.FormValue("date"),
		Time: r.FormValue("time"),
	}
	if cat, found := h.lookupPathClinic(r); found {
		view.Clinic = &cat
	}
	h.writeJSON(w, http.StatusOK, view)
}

// ClinicDetailPage handles GET /clinic/{id}: stores the chosen clinic
// and renders the department list.
func (h *Handler) ClinicDetailPage(w http.ResponseWriter, r *http.Request) {
	b, sid, ok := h.loadBooking(w, r)
	if !ok {
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid clinic id"})
		return
	}
	name := r.URL.Query().Get("name")

	b = h.machine.SelectClinic(b, id, name)
	if !h.saveBooking(w, r, sid, b) {
		return
	}
	h.metrics.ObserveTransition("select_clinic", "ok")

	h.writeJSON(w, http.StatusOK, clinicDetailView{
		Step:        StepSearch,
		Clinic:      b.Clinic,
		Departments: clinic.Departments,
	})
}

// PatientPage handles GET /patient.
func (h *Handler) PatientPage(w http.ResponseWriter, r *http.Request) {
	b, _, ok := h.loadBooking(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, patientView{
		Step:    StepPatient,
		Patient: b.Patient,
	})
}

// PatientSubmit handles POST /patient.
func (h *Handler) PatientSubmit(w http.ResponseWriter, r *http.Request) {
	b, sid, ok := h.loadBooking(w, r)
	if !ok {
		return
	}

	next, err := h.machine.SubmitPatient(b, r.FormValue("name"), r.FormValue("email"))
	if err != nil {
		h.metrics.ObserveTransition("submit_patient", "missing_prerequisite")
		h.respondStateError(w, err)
		return
	}
	if !h.saveBooking(w, r, sid, next) {
		return
	}
	h.metrics.ObserveTransition("submit_patient", "ok")
	http.Redirect(w, r, "/confirm", http.StatusSeeOther)
}

// ConfirmPage handles GET /confirm: a read-only projection of the
// session, never guarded.
func (h *Handler) ConfirmPage(w http.ResponseWriter, r *http.Request) {
	b, _, ok := h.loadBooking(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, confirmView{
		Step:    StepConfirm,
		Clinic:  b.Clinic,
		Date:    b.Date,
		Patient: b.Patient,
	})
}

// CompleteSubmit handles POST /complete: the terminal transition,
// destroying the session record in full.
func (h *Handler) CompleteSubmit(w http.ResponseWriter, r *http.Request) {
	b, sid, ok := h.loadBooking(w, r)
	if !ok {
		return
	}

	_, receipt, err := h.machine.Complete(b)
	if err != nil {
		h.metrics.ObserveTransition("complete", "missing_prerequisite")
		h.respondStateError(w, err)
		return
	}
	if err := h.store.Clear(r.Context(), sid); err != nil {
		h.logger.Error("failed to clear booking session", "error", err)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	h.metrics.ObserveTransition("complete", "ok")

	h.writeJSON(w, http.StatusOK, completeView{
		Step:      StepComplete,
		Completed: true,
		Receipt:   receipt,
	})
}

// Suggest handles GET /suggest: autocomplete over the clinic catalog.
func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	names := h.directory.Suggest(r.URL.Query().Get("q"))
	if names == nil {
		names = []string{}
	}
	h.writeJSON(w, http.StatusOK, names)
}

func (h *Handler) lookupPathClinic(r *http.Request) (clinic.Clinic, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return clinic.Clinic{}, false
	}
	return h.directory.ByID(id)
}

func (h *Handler) loadBooking(w http.ResponseWriter, r *http.Request) (session.Booking, string, bool) {
	sid := middleware.SessionID(r.Context())
	b, err := h.store.Load(r.Context(), sid)
	if err != nil {
		h.logger.Error("failed to load booking session", "error", err)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return session.Booking{}, "", false
	}
	return b, sid, true
}

func (h *Handler) saveBooking(w http.ResponseWriter, r *http.Request, sid string, b session.Booking) bool {
	if err := h.store.Save(r.Context(), sid, b); err != nil {
		h.logger.Error("failed to save booking session", "error", err)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return false
	}
	return true
}

func (h *Handler) respondStateError(w http.ResponseWriter, err error) {
	var perr *MissingPrerequisiteError
	if errors.As(err, &perr) {
		h.writeJSON(w, http.StatusConflict, map[string]string{
			"error":   "missing prerequisite",
			"missing": perr.Missing,
		})
		return
	}
	h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", "error", err)
	}
}
