package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/hkr-miura/moonloop-admin/internal/config"
	"github.com/hkr-miura/moonloop-admin/internal/schedule"
	"github.com/hkr-miura/moonloop-admin/internal/service"
)

// EventHandler serves the event list and event creation.
type EventHandler struct {
	Events  EventLister
	Creator *service.EventCreator
	Log     *logrus.Logger
}

// NewEventHandler constructs an EventHandler.
func NewEventHandler(events EventLister, creator *service.EventCreator, log *logrus.Logger) *EventHandler {
	if events == nil || creator == nil {
		panic("nil dependency passed to NewEventHandler")
	}
	return &EventHandler{Events: events, Creator: creator, Log: log}
}

// List handles GET /v1/events.
func (h *EventHandler) List(c echo.Context) error {
	items, err := h.Events.List(c.Request().Context())
	if err != nil {
		if storeError(c, err) {
			return nil
		}
		config.LogError(h.Log, "handler", "EventHandler.List", nil, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load events"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// Create handles POST /v1/events.  It creates the registration form
// first and then the event row; see service.EventCreator for the
// partial-failure behavior when the second step fails.
func (h *EventHandler) Create(c echo.Context) error {
	var body struct {
		Title string `json:"title"`
		Date  string `json:"date"`
		Time  string `json:"time"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Title == "" || body.Date == "" || body.Time == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title, date and time are required"})
	}
	if _, err := time.Parse(schedule.DateLayout, body.Date); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	}

	ev, err := h.Creator.Create(c.Request().Context(), body.Title, body.Date, body.Time)
	if err != nil {
		if storeError(c, err) {
			return nil
		}
		config.LogError(h.Log, "handler", "EventHandler.Create", echo.Map{"title": body.Title, "date": body.Date}, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create event"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": ev})
}
