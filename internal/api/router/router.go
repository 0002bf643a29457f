package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	httpmiddleware "github.com/reina-tokumaru/clinic-reservation-system/internal/http/middleware"
	"github.com/reina-tokumaru/clinic-reservation-system/internal/ledger"
	"github.com/reina-tokumaru/clinic-reservation-system/internal/session"
	"github.com/reina-tokumaru/clinic-reservation-system/internal/triage"
	"github.com/reina-tokumaru/clinic-reservation-system/internal/wizard"
	"github.com/reina-tokumaru/clinic-reservation-system/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger        *logging.Logger
	SessionCodec  *session.CookieCodec
	WizardHandler *wizard.Handler
	TriageHandler *triage.Handler
	LedgerHandler *ledger.Handler

	// MetricsHandler is mounted at /metrics when set.
	MetricsHandler http.Handler
}

// New creates a chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", handleHealth)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	// The reservation ledger on the top page is shared across visitors
	// and needs no session.
	if cfg.LedgerHandler != nil {
		r.Get("/", cfg.LedgerHandler.ListPage)
		r.Post("/", cfg.LedgerHandler.CreateSubmit)
	}

	if cfg.TriageHandler != nil {
		r.Get("/chat", cfg.TriageHandler.HandleChatPage)
		r.Post("/api/chat", cfg.TriageHandler.HandleChat)
	}

	// Every wizard route runs behind the session cookie middleware so
	// handlers always find a session ID in the request context.
	if cfg.WizardHandler != nil {
		r.Group(func(wiz chi.Router) {
			if cfg.SessionCodec != nil {
				wiz.Use(httpmiddleware.Session(cfg.SessionCodec))
			}
			wiz.Get("/search", cfg.WizardHandler.SearchPage)
			wiz.Post("/search", cfg.WizardHandler.SearchSubmit)
			wiz.Get("/suggest", cfg.WizardHandler.Suggest)
			wiz.Get("/schedule", cfg.WizardHandler.SchedulePage)
			wiz.Post("/schedule", cfg.WizardHandler.ScheduleSubmit)
			wiz.Get("/schedule/{id}", cfg.WizardHandler.ScheduleDetailPage)
			wiz.Post("/schedule/{id}", cfg.WizardHandler.ScheduleDetailSubmit)
			wiz.Get("/clinic/{id}", cfg.WizardHandler.ClinicDetailPage)
			wiz.Get("/patient", cfg.WizardHandler.PatientPage)
			wiz.Post("/patient", cfg.WizardHandler.PatientSubmit)
			wiz.Get("/confirm", cfg.WizardHandler.ConfirmPage)
			wiz.Post("/complete", cfg.WizardHandler.CompleteSubmit)
		})
	}

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
