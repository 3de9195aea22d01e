package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hkr-miura/moonloop-admin/internal/model"
	"github.com/hkr-miura/moonloop-admin/internal/repository"
	"github.com/hkr-miura/moonloop-admin/internal/schedule"
)

// ErrNoDates is returned when the generator produced an empty window,
// e.g. every candidate Monday is claimed by an event.  Publishing an
// empty option list would brick the booking form, so the sync refuses
// instead.  Distinct from a failed event fetch, which surfaces as the
// fetch error itself.
var ErrNoDates = errors.New("no available dates to publish")

// EventSource lists the event records whose dates block candidates.
type EventSource interface {
	List(ctx context.Context) ([]model.Event, error)
}

// ChoiceUpdater replaces the option list of a named dropdown question.
type ChoiceUpdater interface {
	ReplaceChoiceOptions(ctx context.Context, formID, questionTitle string, choices []string) error
}

// FormSync publishes the current offerable dates onto the booking
// form's date question.  Run on demand from the dashboard after event
// changes, and typically after creating an event so the new date stops
// being offered immediately.
type FormSync struct {
	events     EventSource
	forms      ChoiceUpdater
	formID     string
	question   string
	weeksAhead int
	now        func() time.Time
}

// NewFormSync constructs a FormSync.  formID may be empty, in which
// case SyncDates reports repository.ErrNotConfigured without I/O.
func NewFormSync(events EventSource, forms ChoiceUpdater, formID, question string, weeksAhead int) *FormSync {
	if events == nil || forms == nil {
		panic("nil collaborator passed to NewFormSync")
	}
	return &FormSync{
		events:     events,
		forms:      forms,
		formID:     formID,
		question:   question,
		weeksAhead: weeksAhead,
		now:        time.Now,
	}
}

// SyncDates computes the offerable dates and replaces the form's date
// options with them, returning the published dates.
func (s *FormSync) SyncDates(ctx context.Context) ([]string, error) {
	if s.formID == "" {
		return nil, repository.ErrNotConfigured
	}
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}
	dates := schedule.Available(s.weeksAhead, s.now(), events)
	if len(dates) == 0 {
		return nil, ErrNoDates
	}
	if err := s.forms.ReplaceChoiceOptions(ctx, s.formID, s.question, dates); err != nil {
		return nil, err
	}
	return dates, nil
}
