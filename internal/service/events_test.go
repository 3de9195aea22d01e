package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hkr-miura/moonloop-admin/internal/model"
)

type fakeEventAppender struct {
	appended []model.Event
	err      error
}

func (f *fakeEventAppender) Append(_ context.Context, ev model.Event) error {
	if f.err != nil {
		return f.err
	}
	f.appended = append(f.appended, ev)
	return nil
}

type fakeFormCreator struct {
	err error
}

func (f *fakeFormCreator) CreateEventForm(_ context.Context, title string) (string, string, error) {
	if f.err != nil {
		return "", "", f.err
	}
	return "form-xyz", "https://example.com/form-xyz", nil
}

func TestCreateEventAssignsIDAndForm(t *testing.T) {
	events := &fakeEventAppender{}
	creator := NewEventCreator(events, &fakeFormCreator{})

	ev, err := creator.Create(context.Background(), "Jazz Night", "2026-03-02", "19:00")
	if err != nil {
		t.Fatalf("Create returned %v", err)
	}
	if ev.ID == "" {
		t.Error("event has no generated ID")
	}
	if ev.FormID != "form-xyz" || ev.FormURL != "https://example.com/form-xyz" {
		t.Errorf("form reference not carried onto the event: %+v", ev)
	}
	if ev.Status != model.EventActive {
		t.Errorf("new event status = %s, want Active", ev.Status)
	}
	if len(events.appended) != 1 {
		t.Fatalf("appended %d rows, want 1", len(events.appended))
	}
}

func TestCreateEventFormFailureWritesNothing(t *testing.T) {
	events := &fakeEventAppender{}
	creator := NewEventCreator(events, &fakeFormCreator{err: errors.New("forms API rejected")})

	if _, err := creator.Create(context.Background(), "Jazz Night", "2026-03-02", "19:00"); err == nil {
		t.Fatal("Create succeeded although the form could not be created")
	}
	if len(events.appended) != 0 {
		t.Error("event row appended although no form exists")
	}
}

func TestCreateEventAppendFailureNamesOrphanForm(t *testing.T) {
	events := &fakeEventAppender{err: errors.New("store unreachable")}
	creator := NewEventCreator(events, &fakeFormCreator{})

	_, err := creator.Create(context.Background(), "Jazz Night", "2026-03-02", "19:00")
	if err == nil {
		t.Fatal("Create succeeded although the row append failed")
	}
	if !strings.Contains(err.Error(), "form-xyz") {
		t.Errorf("error %q does not name the orphaned form", err)
	}
}
