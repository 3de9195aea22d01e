package model

// Reservation statuses.  A reservation starts Active when the customer
// submits the booking form and is moved through the remaining states by
// an operator from the dashboard.
const (
	ReservationActive    = "Active"
	ReservationCompleted = "Completed"
	ReservationCancelled = "Cancelled"
	ReservationNoShow    = "No Show"
)

// Reservation mirrors one data row of the normal reservation sheet.
// Rows are produced by the customer-facing booking form; the dashboard
// only ever rewrites the status column and, on an approved change
// request, the date/time/party-size columns.
//
// Fields:
//  RowPosition – 1-based row in the sheet (header is row 1, first data
//                row is 2).  This is the only identity the record has
//                and it is stable only while no rows are inserted or
//                deleted above it.
//  Timestamp   – form submission time as written by the form backend.
//  GuestName   – name entered on the form.
//  Email       – contact email.
//  Phone       – contact phone number.
//  Date        – reserved date, zero-padded YYYY-MM-DD.
//  Time        – reserved seating time, e.g. "17:30".
//  PartySize   – number of guests.
//  Remarks     – free-form note from the customer.
//  Status      – one of the Reservation* constants above.
type Reservation struct {
	RowPosition int    `json:"row_position"`
	Timestamp   string `json:"timestamp"`
	GuestName   string `json:"guest_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	PartySize   int    `json:"party_size"`
	Remarks     string `json:"remarks"`
	Status      string `json:"status"`
}

// ValidReservationStatus reports whether s is one of the four statuses
// an operator may set from the dashboard.
func ValidReservationStatus(s string) bool {
	switch s {
	case ReservationActive, ReservationCompleted, ReservationCancelled, ReservationNoShow:
		return true
	}
	return false
}
