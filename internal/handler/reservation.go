package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/hkr-miura/moonloop-admin/internal/config"
	"github.com/hkr-miura/moonloop-admin/internal/model"
)

// ReservationHandler serves the reservation list and status updates.
type ReservationHandler struct {
	Store ReservationStore
	Log   *logrus.Logger
}

// NewReservationHandler constructs a ReservationHandler.
func NewReservationHandler(store ReservationStore, log *logrus.Logger) *ReservationHandler {
	if store == nil {
		panic("nil store passed to NewReservationHandler")
	}
	return &ReservationHandler{Store: store, Log: log}
}

// List handles GET /v1/reservations.  An empty sheet yields an empty
// items array with count zero; fetch failures are reported as 5xx so
// the client can tell them apart from "legitimately no records".
func (h *ReservationHandler) List(c echo.Context) error {
	items, err := h.Store.List(c.Request().Context())
	if err != nil {
		if storeError(c, err) {
			return nil
		}
		config.LogError(h.Log, "handler", "ReservationHandler.List", nil, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reservations"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// UpdateStatus handles PATCH /v1/reservations/:row/status.  The body
// carries the new status, which must be one of the four operator
// statuses.
func (h *ReservationHandler) UpdateStatus(c echo.Context) error {
	row, err := rowParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid row"})
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if !model.ValidReservationStatus(body.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}
	if err := h.Store.UpdateStatus(c.Request().Context(), row, body.Status); err != nil {
		if storeError(c, err) {
			return nil
		}
		config.LogError(h.Log, "handler", "ReservationHandler.UpdateStatus", echo.Map{"row": row, "status": body.Status}, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update status"})
	}
	return c.JSON(http.StatusOK, echo.Map{"row": row, "status": body.Status})
}
