package repository

import (
	"context"
	"fmt"

	"github.com/hkr-miura/moonloop-admin/internal/model"
)

// OpinionRepo reads the opinion box sheet.  Column layout: A timestamp,
// B content, C attributes, D status.
type OpinionRepo struct {
	store   RowStore
	sheetID string
}

// NewOpinionRepo returns a repo bound to the given store and spreadsheet.
func NewOpinionRepo(store RowStore, sheetID string) *OpinionRepo {
	return &OpinionRepo{store: store, sheetID: sheetID}
}

// List returns every opinion row in store order.
func (r *OpinionRepo) List(ctx context.Context) ([]model.Opinion, error) {
	if r.sheetID == "" {
		return nil, ErrNotConfigured
	}
	rows, err := r.store.ListRows(ctx, r.sheetID, "A2:D")
	if err != nil {
		return nil, err
	}
	out := make([]model.Opinion, 0, len(rows))
	for i, row := range rows {
		status := cell(row, 3)
		if status == "" {
			status = model.OpinionUnread
		}
		out = append(out, model.Opinion{
			RowPosition: i + headerRows + 1,
			Timestamp:   cell(row, 0),
			Content:     cell(row, 1),
			Attributes:  cell(row, 2),
			Status:      status,
		})
	}
	return out, nil
}

// MarkRead sets the status cell of the addressed row to Read.
func (r *OpinionRepo) MarkRead(ctx context.Context, row int) error {
	if r.sheetID == "" {
		return ErrNotConfigured
	}
	if err := checkRow(row); err != nil {
		return err
	}
	return r.store.WriteRow(ctx, r.sheetID, fmt.Sprintf("D%d", row), []any{model.OpinionRead})
}
