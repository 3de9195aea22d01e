// Package service holds the dashboard's domain logic: matching change
// requests to reservations, reconciling approved changes into the
// reservation store, syncing offerable dates onto the booking form and
// creating events with their registration forms.
package service

import "github.com/hkr-miura/moonloop-admin/internal/model"

// Matcher locates the reservation a change request refers to.  There is
// no key linking the two stores, so every strategy is a heuristic over
// the fields the customer typed in.  Absence of a match is a normal
// outcome, reported through the boolean; the UI then disables Approve.
type Matcher interface {
	Match(req model.ChangeRequest, reservations []model.Reservation) (model.Reservation, bool)
}

// LooseMatcher accepts a reservation on guest-name equality OR claimed-
// date equality.  Either signal alone qualifies, so two unrelated
// guests sharing a name, or two bookings on the same date, can produce
// a wrong match.  This is the behavior operators have been working
// with and it stays the default; the first qualifying reservation in
// store order wins when several qualify.
type LooseMatcher struct{}

// Match implements Matcher.
func (LooseMatcher) Match(req model.ChangeRequest, reservations []model.Reservation) (model.Reservation, bool) {
	for _, r := range reservations {
		if r.GuestName == req.GuestName || r.Date == req.OriginalDate {
			return r, true
		}
	}
	return model.Reservation{}, false
}

// StrictMatcher requires guest-name equality AND claimed-date equality.
// Stricter matching finds fewer wrong reservations but also fails to
// match when the customer mistypes either field, leaving the request
// unapprovable from the dashboard.  Selected with MATCH_STRATEGY=strict.
type StrictMatcher struct{}

// Match implements Matcher.
func (StrictMatcher) Match(req model.ChangeRequest, reservations []model.Reservation) (model.Reservation, bool) {
	for _, r := range reservations {
		if r.GuestName == req.GuestName && r.Date == req.OriginalDate {
			return r, true
		}
	}
	return model.Reservation{}, false
}

// MatcherFor returns the strategy named by the configuration value,
// defaulting to loose matching for any unrecognized name.
func MatcherFor(strategy string) Matcher {
	if strategy == "strict" {
		return StrictMatcher{}
	}
	return LooseMatcher{}
}
