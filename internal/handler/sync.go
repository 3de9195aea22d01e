package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/hkr-miura/moonloop-admin/internal/config"
	"github.com/hkr-miura/moonloop-admin/internal/google"
	"github.com/hkr-miura/moonloop-admin/internal/service"
)

// SyncHandler triggers the date sync onto the booking form.
type SyncHandler struct {
	Sync *service.FormSync
	Log  *logrus.Logger
}

// NewSyncHandler constructs a SyncHandler.
func NewSyncHandler(sync *service.FormSync, log *logrus.Logger) *SyncHandler {
	if sync == nil {
		panic("nil sync service passed to NewSyncHandler")
	}
	return &SyncHandler{Sync: sync, Log: log}
}

// Dates handles POST /v1/sync/dates.  On success it returns the dates
// that were published to the form.
func (h *SyncHandler) Dates(c echo.Context) error {
	dates, err := h.Sync.SyncDates(c.Request().Context())
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, echo.Map{"synced_dates": dates, "count": len(dates)})
	case errors.Is(err, service.ErrNoDates):
		return c.JSON(http.StatusConflict, echo.Map{"error": "no available dates to publish"})
	case errors.Is(err, google.ErrQuestionNotFound):
		config.LogError(h.Log, "handler", "SyncHandler.Dates", nil, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "date question not found on form"})
	default:
		if storeError(c, err) {
			return nil
		}
		config.LogError(h.Log, "handler", "SyncHandler.Dates", nil, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to sync form dates"})
	}
}
