// Package ledger keeps the shared, append-only reservation list shown
// on the top page. It is a standalone record book: completing the
// booking wizard does not write here, and posting here does not touch
// any wizard session.
package ledger

import "time"

// StatusBooked is the status assigned to every new reservation.
const StatusBooked = "booked"

// Reservation is one row in the shared ledger.
type Reservation struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
