package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// RowStore is the record store contract the repositories are built on.
// Spans are A1-notation column/row references without a sheet title
// ("A2:H", "H5", "A:G"); the implementation resolves the correct sheet.
// The production implementation is *google.Client.
type RowStore interface {
	ListRows(ctx context.Context, spreadsheetID, span string) ([][]any, error)
	WriteRow(ctx context.Context, spreadsheetID, span string, values []any) error
	AppendRow(ctx context.Context, spreadsheetID, span string, values []any) error
}

// headerRows is the number of rows occupied by the sheet header.  The
// first data row therefore sits at position headerRows+1.
const headerRows = 1

// cell returns the i-th cell of a row as a trimmed string, tolerating
// short rows and non-string values (the Sheets API returns any).
func cell(row []any, i int) string {
	if i >= len(row) {
		return ""
	}
	switch v := row[i].(type) {
	case string:
		return strings.TrimSpace(v)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// cellInt parses the i-th cell as an integer, defaulting to 0 when the
// cell is empty or unparseable.
func cellInt(row []any, i int) int {
	n, err := strconv.Atoi(cell(row, i))
	if err != nil {
		return 0
	}
	return n
}

// checkRow validates that row addresses a data row.
func checkRow(row int) error {
	if row <= headerRows {
		return fmt.Errorf("%w: %d", ErrInvalidRow, row)
	}
	return nil
}
