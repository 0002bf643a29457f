package session

// ClinicRef identifies the clinic chosen during the booking flow.
type ClinicRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Patient holds the contact details entered on the patient step. Both
// fields are free text and deliberately unvalidated.
type Patient struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Booking is the typed per-session record tracked across the multi-step
// reservation flow. Every field is optional until its step has run; the
// zero value means "no booking in progress".
type Booking struct {
	Clinic     *ClinicRef `json:"clinic,omitempty"`
	Department string     `json:"department,omitempty"`
	Date       string     `json:"date,omitempty"`
	Patient    *Patient   `json:"patient,omitempty"`
}

// IsZero reports whether no step has stored anything yet.
func (b Booking) IsZero() bool {
	return b.Clinic == nil && b.Department == "" && b.Date == "" && b.Patient == nil
}
