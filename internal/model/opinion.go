package model

// Opinion statuses.
const (
	OpinionUnread = "Unread"
	OpinionRead   = "Read"
)

// Opinion is a feedback entry from the anonymous opinion box form.
// The dashboard lists opinions and lets an operator mark them read;
// nothing else operates on them.
type Opinion struct {
	RowPosition int    `json:"row_position"`
	Timestamp   string `json:"timestamp"`
	Content     string `json:"content"`
	Attributes  string `json:"attributes"` // optional demographics, e.g. age band
	Status      string `json:"status"`
}
