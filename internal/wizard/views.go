package wizard

import (
	"github.com/reina-tokumaru/clinic-reservation-system/internal/clinic"
	"github.com/reina-tokumaru/clinic-reservation-system/internal/session"
)

// View models returned by the wizard endpoints. Template rendering is
// owned by the front end; each step renders as a JSON projection
// carrying the step number the progress bar keys off.

type searchView struct {
	Step    int             `json:"step"`
	Clinic  string          `json:"clinic,omitempty"`
	Results []clinic.Clinic `json:"results"`
}

type scheduleView struct {
	Step       int                `json:"step"`
	Clinic     *session.ClinicRef `json:"clinic"`
	Department string             `json:"department,omitempty"`
	Date       string             `json:"date,omitempty"`
}

type clinicDetailView struct {
	Step        int                `json:"step"`
	Clinic      *session.ClinicRef `json:"clinic"`
	Departments []string           `json:"departments"`
}

type patientView struct {
	Step    int              `json:"step"`
	Patient *session.Patient `json:"patient"`
}

type confirmView struct {
	Step    int                `json:"step"`
	Clinic  *session.ClinicRef `json:"clinic"`
	Date    string             `json:"date,omitempty"`
	Patient *session.Patient   `json:"patient"`
}

type completeView struct {
	Step      int     `json:"step"`
	Completed bool    `json:"completed"`
	Receipt   Receipt `json:"receipt"`
}

// quickReserveView renders the detail-page shortcut flow, which never
// touches the session.
type quickReserveView struct {
	Clinic *clinic.Clinic `json:"clinic"`
	Date   string         `json:"date,omitempty"`
	Time   string         `json:"time,omitempty"`
}
