package repository

import (
	"context"

	"github.com/hkr-miura/moonloop-admin/internal/model"
)

// EventRepo reads and appends rows of the event master sheet.  Column
// layout: A id, B title, C date, D time, E form URL, F form ID,
// G status.  Events are never rewritten in place from the dashboard;
// retiring one means flipping its status column by hand in the sheet.
type EventRepo struct {
	store   RowStore
	sheetID string
}

// NewEventRepo returns a repo bound to the given store and spreadsheet.
func NewEventRepo(store RowStore, sheetID string) *EventRepo {
	return &EventRepo{store: store, sheetID: sheetID}
}

// List returns every event row in store order.
func (r *EventRepo) List(ctx context.Context) ([]model.Event, error) {
	if r.sheetID == "" {
		return nil, ErrNotConfigured
	}
	rows, err := r.store.ListRows(ctx, r.sheetID, "A2:G")
	if err != nil {
		return nil, err
	}
	out := make([]model.Event, 0, len(rows))
	for _, row := range rows {
		status := cell(row, 6)
		if status == "" {
			status = model.EventActive
		}
		out = append(out, model.Event{
			ID:      cell(row, 0),
			Title:   cell(row, 1),
			Date:    cell(row, 2),
			Time:    cell(row, 3),
			FormURL: cell(row, 4),
			FormID:  cell(row, 5),
			Status:  status,
		})
	}
	return out, nil
}

// Append adds a new event row at the end of the sheet.
func (r *EventRepo) Append(ctx context.Context, ev model.Event) error {
	if r.sheetID == "" {
		return ErrNotConfigured
	}
	values := []any{ev.ID, ev.Title, ev.Date, ev.Time, ev.FormURL, ev.FormID, ev.Status}
	return r.store.AppendRow(ctx, r.sheetID, "A:G", values)
}
