package handler

// This file declares the store interfaces the handlers consume.  The
// production implementations are the sheet-backed repositories; tests
// substitute in-memory fakes.

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hkr-miura/moonloop-admin/internal/model"
	"github.com/hkr-miura/moonloop-admin/internal/repository"
)

// ReservationStore is what the reservation views need.
type ReservationStore interface {
	List(ctx context.Context) ([]model.Reservation, error)
	UpdateStatus(ctx context.Context, row int, status string) error
}

// ChangeRequestLister lists change request rows.
type ChangeRequestLister interface {
	List(ctx context.Context) ([]model.ChangeRequest, error)
}

// EventLister lists event rows.
type EventLister interface {
	List(ctx context.Context) ([]model.Event, error)
}

// OpinionStore is what the opinion views need.
type OpinionStore interface {
	List(ctx context.Context) ([]model.Opinion, error)
	MarkRead(ctx context.Context, row int) error
}

// rowParam parses the :row path parameter.  Row 1 is the header, so
// anything below 2 is rejected.
func rowParam(c echo.Context) (int, error) {
	row, err := strconv.Atoi(c.Param("row"))
	if err != nil || row < 2 {
		return 0, errors.New("invalid row")
	}
	return row, nil
}

// storeError maps common store failures onto HTTP responses.  It
// returns true when it wrote a response.
func storeError(c echo.Context, err error) bool {
	switch {
	case errors.Is(err, repository.ErrNotConfigured):
		_ = c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "record store not configured"})
		return true
	case errors.Is(err, repository.ErrInvalidRow):
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid row"})
		return true
	case errors.Is(err, repository.ErrRowNotFound):
		_ = c.JSON(http.StatusNotFound, echo.Map{"error": "row not found"})
		return true
	}
	return false
}
