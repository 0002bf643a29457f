package wizard

import (
	"fmt"
	"time"

	"github.com/reina-tokumaru/clinic-reservation-system/internal/session"
)

// Step numbers match the front end's progress indicator.
const (
	StepSearch   = 1
	StepSchedule = 2
	StepPatient  = 3
	StepConfirm  = 4
	StepComplete = 5
)

// MissingPrerequisiteError reports a transition attempted before an
// earlier step stored its data.
type MissingPrerequisiteError struct {
	Transition string
	Missing    string
}

func (e *MissingPrerequisiteError) Error() string {
	return fmt.Sprintf("wizard: %s requires %s", e.Transition, e.Missing)
}

// Receipt is the completion snapshot returned by Complete.
type Receipt struct {
	Clinic      *session.ClinicRef `json:"clinic"`
	Department  string             `json:"department"`
	Date        string             `json:"date"`
	Patient     *session.Patient   `json:"patient"`
	CompletedAt time.Time          `json:"completed_at"`
}

// Machine advances a Booking through the reservation flow. Transitions
// take and return the record explicitly; the machine itself is
// stateless and safe to share.
//
// Forward transitions are guarded: attempting one before its
// prerequisite step returns *MissingPrerequisiteError. Read projections
// are never guarded and render whatever fields are present.
type Machine struct{}

// NewMachine creates a booking state machine.
func NewMachine() *Machine {
	return &Machine{}
}

// SelectClinic stores the chosen clinic. Always permitted; picking a
// different clinic restarts the flow from the schedule step.
func (m *Machine) SelectClinic(b session.Booking, id int, name string) session.Booking {
	b.Clinic = &session.ClinicRef{ID: id, Name: name}
	return b
}

// SelectDepartment stores the department. The flow stays on the
// schedule step so the department can be edited repeatedly before a
// date is chosen; repeating the same selection is a no-op.
func (m *Machine) SelectDepartment(b session.Booking, department string) (session.Booking, error) {
	if b.Clinic == nil {
		return b, &MissingPrerequisiteError{Transition: "select_department", Missing: "clinic"}
	}
	b.Department = department
	return b, nil
}

// SelectDate stores the visit date and advances to the patient step.
func (m *Machine) SelectDate(b session.Booking, date string) (session.Booking, error) {
	if b.Clinic == nil {
		return b, &MissingPrerequisiteError{Transition: "select_date", Missing: "clinic"}
	}
	b.Date = date
	return b, nil
}

// SubmitPatient stores the patient contact details and advances to the
// confirm step. Name and email are accepted as-is.
func (m *Machine) SubmitPatient(b session.Booking, name, email string) (session.Booking, error) {
	if b.Date == "" {
		return b, &MissingPrerequisiteError{Transition: "submit_patient", Missing: "date"}
	}
	b.Patient = &session.Patient{Name: name, Email: email}
	return b, nil
}

// Complete finishes the flow: it returns a completion receipt and the
// zero Booking, destroying the session record in full.
func (m *Machine) Complete(b session.Booking) (session.Booking, Receipt, error) {
	if b.Patient == nil {
		return b, Receipt{}, &MissingPrerequisiteError{Transition: "complete", Missing: "patient"}
	}
	receipt := Receipt{
		Clinic:      b.Clinic,
		Department:  b.Department,
		Date:        b.Date,
		Patient:     b.Patient,
		CompletedAt: time.Now().UTC(),
	}
	return session.Booking{}, receipt, nil
}
