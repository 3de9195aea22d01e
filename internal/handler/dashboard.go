package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/hkr-miura/moonloop-admin/internal/config"
	"github.com/hkr-miura/moonloop-admin/internal/model"
	"github.com/hkr-miura/moonloop-admin/internal/repository"
)

// DashboardHandler serves the overview counts shown on the landing
// page.
type DashboardHandler struct {
	Reservations ReservationStore
	Requests     ChangeRequestLister
	Events       EventLister
	Log          *logrus.Logger
}

// NewDashboardHandler constructs a DashboardHandler.
func NewDashboardHandler(reservations ReservationStore, requests ChangeRequestLister, events EventLister, log *logrus.Logger) *DashboardHandler {
	if reservations == nil || requests == nil || events == nil {
		panic("nil dependency passed to NewDashboardHandler")
	}
	return &DashboardHandler{Reservations: reservations, Requests: requests, Events: events, Log: log}
}

// Overview handles GET /v1/dashboard.  Sections whose store is not
// configured report zero counts instead of failing the whole page; any
// other fetch failure is a 500.
func (h *DashboardHandler) Overview(c echo.Context) error {
	ctx := c.Request().Context()

	byStatus := map[string]int{}
	reservations, err := h.Reservations.List(ctx)
	if err != nil && !errors.Is(err, repository.ErrNotConfigured) {
		config.LogError(h.Log, "handler", "DashboardHandler.Overview", nil, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reservations"})
	}
	for _, r := range reservations {
		byStatus[r.Status]++
	}

	pending := 0
	requests, err := h.Requests.List(ctx)
	if err != nil && !errors.Is(err, repository.ErrNotConfigured) {
		config.LogError(h.Log, "handler", "DashboardHandler.Overview", nil, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load change requests"})
	}
	for _, req := range requests {
		if req.Status == model.ChangePending {
			pending++
		}
	}

	activeEvents := 0
	events, err := h.Events.List(ctx)
	if err != nil && !errors.Is(err, repository.ErrNotConfigured) {
		config.LogError(h.Log, "handler", "DashboardHandler.Overview", nil, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load events"})
	}
	for _, ev := range events {
		if ev.Status == model.EventActive {
			activeEvents++
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"reservations":    echo.Map{"total": len(reservations), "by_status": byStatus},
		"pending_changes": pending,
		"active_events":   activeEvents,
	})
}
