package repository

import (
	"context"
	"fmt"

	"github.com/hkr-miura/moonloop-admin/internal/model"
)

// ReservationRepo reads and mutates the normal reservation sheet.
// Column layout, fixed by the booking form plus two operator columns:
//
//	A timestamp, B name, C email, D phone, E date, F time,
//	G party size, H status, I remarks
//
// Only the status column and, for approved change requests, the E:G
// block are ever written; everything else belongs to the form backend.
type ReservationRepo struct {
	store   RowStore
	sheetID string
}

// NewReservationRepo returns a repo bound to the given store and
// spreadsheet.  An empty sheetID is allowed; operations then return
// ErrNotConfigured.
func NewReservationRepo(store RowStore, sheetID string) *ReservationRepo {
	return &ReservationRepo{store: store, sheetID: sheetID}
}

// List returns every reservation row in store order.  An empty sheet
// yields an empty slice, which callers must not confuse with a fetch
// failure (that surfaces as a non-nil error instead).
func (r *ReservationRepo) List(ctx context.Context) ([]model.Reservation, error) {
	if r.sheetID == "" {
		return nil, ErrNotConfigured
	}
	rows, err := r.store.ListRows(ctx, r.sheetID, "A2:I")
	if err != nil {
		return nil, err
	}
	out := make([]model.Reservation, 0, len(rows))
	for i, row := range rows {
		status := cell(row, 7)
		if status == "" {
			status = model.ReservationActive
		}
		out = append(out, model.Reservation{
			RowPosition: i + headerRows + 1,
			Timestamp:   cell(row, 0),
			GuestName:   cell(row, 1),
			Email:       cell(row, 2),
			Phone:       cell(row, 3),
			Date:        cell(row, 4),
			Time:        cell(row, 5),
			PartySize:   cellInt(row, 6),
			Status:      status,
			Remarks:     cell(row, 8),
		})
	}
	return out, nil
}

// UpdateStatus overwrites the status cell of the addressed row.
func (r *ReservationRepo) UpdateStatus(ctx context.Context, row int, status string) error {
	if r.sheetID == "" {
		return ErrNotConfigured
	}
	if err := checkRow(row); err != nil {
		return err
	}
	return r.store.WriteRow(ctx, r.sheetID, fmt.Sprintf("H%d", row), []any{status})
}

// ApplyChange overwrites the date, time and party size of the addressed
// row in a single write, leaving all other cells untouched.  This is
// the propagation half of an approved change request.
func (r *ReservationRepo) ApplyChange(ctx context.Context, row int, date, timeStr string, partySize int) error {
	if r.sheetID == "" {
		return ErrNotConfigured
	}
	if err := checkRow(row); err != nil {
		return err
	}
	span := fmt.Sprintf("E%d:G%d", row, row)
	return r.store.WriteRow(ctx, r.sheetID, span, []any{date, timeStr, partySize})
}
