// Package schedule computes which reservation dates the café offers.
// The café takes normal reservations on Mondays only; event nights
// claim their date exclusively, so any date carried by an event row is
// withheld from the booking form.
package schedule

import (
	"time"

	"github.com/hkr-miura/moonloop-admin/internal/model"
)

// DateLayout is the zero-padded calendar date format used across all
// sheets and forms.  String comparison on this layout agrees with
// chronological order, which the filtering below relies on.
const DateLayout = "2006-01-02"

// Available returns the offerable reservation dates for the next
// weeksAhead weeks, ascending, as DateLayout strings.
//
// The reference time is a parameter rather than read from the clock so
// the computation stays deterministic under test.  Candidates are the
// Mondays of the current week and the following weeksAhead+1 weeks; the
// two extra weeks compensate for early Mondays dropped as already past.
// Kept candidates are capped at weeksAhead, then every date claimed by
// an event is removed — regardless of the event's status, and without
// backfilling, so the result may be shorter than weeksAhead.  An empty
// result is a valid outcome, distinct from a failed event fetch, which
// the caller must handle before calling here.
func Available(weeksAhead int, now time.Time, events []model.Event) []string {
	if weeksAhead <= 0 {
		return nil
	}

	// Monday of the reference week.  time.Weekday counts Sunday as 0,
	// so shift by six to make Monday the zero point.
	offset := (int(now.Weekday()) + 6) % 7
	weekStart := now.AddDate(0, 0, -offset)
	today := now.Format(DateLayout)

	candidates := make([]string, 0, weeksAhead)
	for i := 0; i < weeksAhead+2 && len(candidates) < weeksAhead; i++ {
		d := weekStart.AddDate(0, 0, 7*i).Format(DateLayout)
		if d >= today {
			candidates = append(candidates, d)
		}
	}

	blocked := make(map[string]struct{}, len(events))
	for _, ev := range events {
		if ev.Date != "" {
			blocked[ev.Date] = struct{}{}
		}
	}

	dates := make([]string, 0, len(candidates))
	for _, d := range candidates {
		if _, ok := blocked[d]; !ok {
			dates = append(dates, d)
		}
	}
	return dates
}
