package repository

import (
	"context"
	"fmt"

	"github.com/hkr-miura/moonloop-admin/internal/model"
)

// ChangeRequestRepo reads and mutates the change request sheet.  Column
// layout, fixed by the change request form plus one operator column:
//
//	A timestamp, B name, C original date, D new date, E new time,
//	F new count, G reason, H status
//
// The status column is the only cell the dashboard writes.
type ChangeRequestRepo struct {
	store   RowStore
	sheetID string
}

// NewChangeRequestRepo returns a repo bound to the given store and
// spreadsheet.
func NewChangeRequestRepo(store RowStore, sheetID string) *ChangeRequestRepo {
	return &ChangeRequestRepo{store: store, sheetID: sheetID}
}

func parseChangeRequest(row []any, position int) model.ChangeRequest {
	status := cell(row, 7)
	if status == "" {
		status = model.ChangePending
	}
	return model.ChangeRequest{
		RowPosition:  position,
		Timestamp:    cell(row, 0),
		GuestName:    cell(row, 1),
		OriginalDate: cell(row, 2),
		NewDate:      cell(row, 3),
		NewTime:      cell(row, 4),
		NewCount:     cellInt(row, 5),
		Reason:       cell(row, 6),
		Status:       status,
	}
}

// List returns every change request row in store order, resolved and
// pending alike; callers filter as needed.
func (r *ChangeRequestRepo) List(ctx context.Context) ([]model.ChangeRequest, error) {
	if r.sheetID == "" {
		return nil, ErrNotConfigured
	}
	rows, err := r.store.ListRows(ctx, r.sheetID, "A2:H")
	if err != nil {
		return nil, err
	}
	out := make([]model.ChangeRequest, 0, len(rows))
	for i, row := range rows {
		out = append(out, parseChangeRequest(row, i+headerRows+1))
	}
	return out, nil
}

// Get re-reads a single request row from the store.  The reconciler
// uses this both to guard the Pending precondition and to take the
// requested fields from the store rather than from a caller-held copy,
// so a concurrent edit of the request row is honored.
func (r *ChangeRequestRepo) Get(ctx context.Context, row int) (model.ChangeRequest, error) {
	if r.sheetID == "" {
		return model.ChangeRequest{}, ErrNotConfigured
	}
	if err := checkRow(row); err != nil {
		return model.ChangeRequest{}, err
	}
	span := fmt.Sprintf("A%d:H%d", row, row)
	rows, err := r.store.ListRows(ctx, r.sheetID, span)
	if err != nil {
		return model.ChangeRequest{}, err
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return model.ChangeRequest{}, fmt.Errorf("change request row %d: %w", row, ErrRowNotFound)
	}
	return parseChangeRequest(rows[0], row), nil
}

// SetStatus overwrites the status cell of the addressed row.
func (r *ChangeRequestRepo) SetStatus(ctx context.Context, row int, status string) error {
	if r.sheetID == "" {
		return ErrNotConfigured
	}
	if err := checkRow(row); err != nil {
		return err
	}
	return r.store.WriteRow(ctx, r.sheetID, fmt.Sprintf("H%d", row), []any{status})
}
