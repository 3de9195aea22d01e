package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hkr-miura/moonloop-admin/internal/model"
)

// EventAppender persists a newly created event row.
type EventAppender interface {
	Append(ctx context.Context, ev model.Event) error
}

// FormCreator creates a registration form and returns its ID and
// public URL.
type FormCreator interface {
	CreateEventForm(ctx context.Context, title string) (formID, formURL string, err error)
}

// EventCreator creates an event: first the registration form, then the
// event row pointing at it.  Events get a UUID at creation so they keep
// a stable identity even if sheet rows shift.
type EventCreator struct {
	events EventAppender
	forms  FormCreator
}

// NewEventCreator constructs an EventCreator.
func NewEventCreator(events EventAppender, forms FormCreator) *EventCreator {
	if events == nil || forms == nil {
		panic("nil collaborator passed to NewEventCreator")
	}
	return &EventCreator{events: events, forms: forms}
}

// Create builds the registration form and appends the event row.  If
// the row append fails after the form was created there is no form
// delete primitive in scope; the error names the orphaned form so an
// operator can remove it by hand.
func (s *EventCreator) Create(ctx context.Context, title, date, timeStr string) (model.Event, error) {
	formID, formURL, err := s.forms.CreateEventForm(ctx, title)
	if err != nil {
		return model.Event{}, fmt.Errorf("create registration form: %w", err)
	}
	ev := model.Event{
		ID:      uuid.NewString(),
		Title:   title,
		Date:    date,
		Time:    timeStr,
		FormURL: formURL,
		FormID:  formID,
		Status:  model.EventActive,
	}
	if err := s.events.Append(ctx, ev); err != nil {
		return model.Event{}, fmt.Errorf("save event row (form %s is now orphaned): %w", formID, err)
	}
	return ev, nil
}
