package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/hkr-miura/moonloop-admin/internal/model"
)

type write struct {
	sheetID string
	span    string
	values  []any
}

// fakeRowStore serves canned rows per span and records every write.
type fakeRowStore struct {
	lists   map[string][][]any
	listErr error
	writes  []write
	appends []write
}

func (f *fakeRowStore) ListRows(_ context.Context, sheetID, span string) ([][]any, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.lists[span], nil
}

func (f *fakeRowStore) WriteRow(_ context.Context, sheetID, span string, values []any) error {
	f.writes = append(f.writes, write{sheetID, span, values})
	return nil
}

func (f *fakeRowStore) AppendRow(_ context.Context, sheetID, span string, values []any) error {
	f.appends = append(f.appends, write{sheetID, span, values})
	return nil
}

func TestReservationListMapsRows(t *testing.T) {
	store := &fakeRowStore{lists: map[string][][]any{
		"A2:I": {
			{"2026-01-05 18:00", "Taro", "taro@example.com", "090-0000-0000", "2026-02-09", "17:30", "2", "Active", "window seat"},
			// Short row with no status or remarks: defaults apply.
			{"2026-01-06 10:00", "Hanako", "hanako@example.com", "090-1111-1111", "2026-02-16", "19:00", "x"},
		},
	}}
	repo := NewReservationRepo(store, "sheet-res")

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List returned %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d reservations, want 2", len(got))
	}
	if got[0].RowPosition != 2 || got[1].RowPosition != 3 {
		t.Errorf("row positions %d,%d, want 2,3 (header offset)", got[0].RowPosition, got[1].RowPosition)
	}
	if got[0].PartySize != 2 || got[0].Remarks != "window seat" {
		t.Errorf("row 2 parsed wrong: %+v", got[0])
	}
	if got[1].PartySize != 0 {
		t.Errorf("unparseable party size = %d, want 0", got[1].PartySize)
	}
	if got[1].Status != model.ReservationActive {
		t.Errorf("missing status defaulted to %q, want Active", got[1].Status)
	}
}

func TestReservationWritesTargetExactCells(t *testing.T) {
	store := &fakeRowStore{}
	repo := NewReservationRepo(store, "sheet-res")
	ctx := context.Background()

	if err := repo.UpdateStatus(ctx, 5, model.ReservationCancelled); err != nil {
		t.Fatalf("UpdateStatus returned %v", err)
	}
	if err := repo.ApplyChange(ctx, 5, "2026-03-01", "19:00", 4); err != nil {
		t.Fatalf("ApplyChange returned %v", err)
	}

	if len(store.writes) != 2 {
		t.Fatalf("recorded %d writes, want 2", len(store.writes))
	}
	if store.writes[0].span != "H5" {
		t.Errorf("status write span = %s, want H5", store.writes[0].span)
	}
	if store.writes[1].span != "E5:G5" {
		t.Errorf("change write span = %s, want E5:G5", store.writes[1].span)
	}
	if len(store.writes[1].values) != 3 {
		t.Errorf("change write carries %d values, want 3", len(store.writes[1].values))
	}
}

func TestUnconfiguredRepoShortCircuits(t *testing.T) {
	store := &fakeRowStore{listErr: errors.New("should never be called")}
	ctx := context.Background()

	if _, err := NewReservationRepo(store, "").List(ctx); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("reservation List: %v, want ErrNotConfigured", err)
	}
	if err := NewReservationRepo(store, "").UpdateStatus(ctx, 5, "Active"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("reservation UpdateStatus: %v, want ErrNotConfigured", err)
	}
	if _, err := NewEventRepo(store, "").List(ctx); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("event List: %v, want ErrNotConfigured", err)
	}
	if _, err := NewChangeRequestRepo(store, "").Get(ctx, 4); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("change Get: %v, want ErrNotConfigured", err)
	}
	if _, err := NewOpinionRepo(store, "").List(ctx); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("opinion List: %v, want ErrNotConfigured", err)
	}
}

func TestHeaderRowIsNotAddressable(t *testing.T) {
	store := &fakeRowStore{}
	if err := NewReservationRepo(store, "s").UpdateStatus(context.Background(), 1, "Active"); !errors.Is(err, ErrInvalidRow) {
		t.Errorf("row 1 write: %v, want ErrInvalidRow", err)
	}
	if err := NewChangeRequestRepo(store, "s").SetStatus(context.Background(), 0, "Approved"); !errors.Is(err, ErrInvalidRow) {
		t.Errorf("row 0 write: %v, want ErrInvalidRow", err)
	}
	if len(store.writes) != 0 {
		t.Error("invalid rows reached the store")
	}
}

func TestChangeRequestGetReadsSingleRow(t *testing.T) {
	store := &fakeRowStore{lists: map[string][][]any{
		"A4:H4": {
			{"2026-01-07 09:00", "Taro", "2026-02-09", "2026-03-01", "19:00", "4", "family visit", "Pending"},
		},
	}}
	repo := NewChangeRequestRepo(store, "sheet-chg")

	got, err := repo.Get(context.Background(), 4)
	if err != nil {
		t.Fatalf("Get returned %v", err)
	}
	if got.RowPosition != 4 {
		t.Errorf("row position = %d, want 4", got.RowPosition)
	}
	if got.NewDate != "2026-03-01" || got.NewTime != "19:00" || got.NewCount != 4 {
		t.Errorf("requested fields parsed wrong: %+v", got)
	}

	if _, err := repo.Get(context.Background(), 9); !errors.Is(err, ErrRowNotFound) {
		t.Errorf("missing row: %v, want ErrRowNotFound", err)
	}
}

func TestEventAppendLayout(t *testing.T) {
	store := &fakeRowStore{}
	repo := NewEventRepo(store, "sheet-ev")
	ev := model.Event{
		ID: "id-1", Title: "Jazz Night", Date: "2026-03-02", Time: "19:00",
		FormURL: "https://example.com/f", FormID: "f-1", Status: model.EventActive,
	}
	if err := repo.Append(context.Background(), ev); err != nil {
		t.Fatalf("Append returned %v", err)
	}
	if len(store.appends) != 1 {
		t.Fatalf("recorded %d appends, want 1", len(store.appends))
	}
	a := store.appends[0]
	if a.span != "A:G" {
		t.Errorf("append span = %s, want A:G", a.span)
	}
	want := []any{"id-1", "Jazz Night", "2026-03-02", "19:00", "https://example.com/f", "f-1", "Active"}
	if len(a.values) != len(want) {
		t.Fatalf("append carries %d values, want %d", len(a.values), len(want))
	}
	for i := range want {
		if a.values[i] != want[i] {
			t.Errorf("append value[%d] = %v, want %v", i, a.values[i], want[i])
		}
	}
}

func TestOpinionMarkRead(t *testing.T) {
	store := &fakeRowStore{}
	repo := NewOpinionRepo(store, "sheet-op")
	if err := repo.MarkRead(context.Background(), 3); err != nil {
		t.Fatalf("MarkRead returned %v", err)
	}
	if len(store.writes) != 1 || store.writes[0].span != "D3" {
		t.Fatalf("writes = %+v, want a single D3 write", store.writes)
	}
	if store.writes[0].values[0] != model.OpinionRead {
		t.Errorf("wrote %v, want Read", store.writes[0].values[0])
	}
}
