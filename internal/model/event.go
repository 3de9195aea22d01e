package model

// Event statuses.  Inactive events stay on the sheet for the record but
// are hidden from most dashboard views.  Note that the date generator
// excludes the dates of all events regardless of status, so an Inactive
// event still blocks its calendar day.
const (
	EventActive   = "Active"
	EventInactive = "Inactive"
)

// Event is a calendar-blocking occasion (a live night, a private
// booking, a closure) with its own registration form.  Events are the
// one record type that carries a surrogate key: an opaque ID generated
// when the event is created, stored in column A alongside the row.
//
// Fields:
//  ID      – UUID assigned at creation.
//  Title   – display name, also used as the registration form title.
//  Date    – event date, zero-padded YYYY-MM-DD.  This is the exclusion
//            key consumed by the date generator.
//  Time    – start time.
//  FormURL – public responder URL of the registration form.
//  FormID  – Forms API identifier of the registration form.
//  Status  – EventActive or EventInactive.
type Event struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	FormURL string `json:"form_url"`
	FormID  string `json:"form_id"`
	Status  string `json:"status"`
}
