package model

// ChangeRequest statuses.  Pending is the initial state; Approved and
// Rejected are terminal.  There is no transition back to Pending and no
// automatic expiry — only an operator decision moves a request on.
const (
	ChangePending  = "Pending"
	ChangeApproved = "Approved"
	ChangeRejected = "Rejected"
)

// ChangeRequest is a customer-submitted amendment to an existing
// reservation.  The customer identifies the original booking only by
// name and claimed date; there is no key linking the request to a
// reservation row, so the link is inferred at read time (see
// service.Matcher).
//
// Fields:
//  RowPosition  – 1-based row in the change request sheet.
//  Timestamp    – form submission time.
//  GuestName    – name the customer says the original booking is under.
//  OriginalDate – date the customer says the original booking is on.
//  NewDate      – requested replacement date, YYYY-MM-DD.
//  NewTime      – requested replacement seating time.
//  NewCount     – requested party size.
//  Reason       – free-form reason for the change.
//  Status       – one of the Change* constants above.
type ChangeRequest struct {
	RowPosition  int    `json:"row_position"`
	Timestamp    string `json:"timestamp"`
	GuestName    string `json:"guest_name"`
	OriginalDate string `json:"original_date"`
	NewDate      string `json:"new_date"`
	NewTime      string `json:"new_time"`
	NewCount     int    `json:"new_count"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
}

// Resolved reports whether the request has reached a terminal state.
func (r ChangeRequest) Resolved() bool {
	return r.Status == ChangeApproved || r.Status == ChangeRejected
}
