package repository

import "errors"

// ErrNotConfigured is returned by every repository operation whose
// backing spreadsheet ID was not supplied in the environment.  The
// check happens before any I/O so an unconfigured store fails fast and
// cheaply.
var ErrNotConfigured = errors.New("record store not configured")

// ErrRowNotFound is returned when an addressed row position has no data
// in the store, e.g. after an external row deletion.
var ErrRowNotFound = errors.New("row not found")

// ErrInvalidRow is returned for row positions that cannot address a
// data row.  Row 1 is the header; data rows start at 2.
var ErrInvalidRow = errors.New("invalid row position")
