package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/hkr-miura/moonloop-admin/internal/config"
	"github.com/hkr-miura/moonloop-admin/internal/model"
	"github.com/hkr-miura/moonloop-admin/internal/service"
)

// ChangeHandler serves the change request review flow: the pending list
// with each request's matched reservation, and the approve/reject
// decisions.
type ChangeHandler struct {
	Requests     ChangeRequestLister
	Reservations ReservationStore
	Matcher      service.Matcher
	Reconciler   *service.Reconciler
	Log          *logrus.Logger
}

// NewChangeHandler constructs a ChangeHandler.
func NewChangeHandler(requests ChangeRequestLister, reservations ReservationStore, matcher service.Matcher, reconciler *service.Reconciler, log *logrus.Logger) *ChangeHandler {
	if requests == nil || reservations == nil || matcher == nil || reconciler == nil {
		panic("nil dependency passed to NewChangeHandler")
	}
	return &ChangeHandler{
		Requests:     requests,
		Reservations: reservations,
		Matcher:      matcher,
		Reconciler:   reconciler,
		Log:          log,
	}
}

// changeItem is one row of the review list.  Match is null when the
// matcher found nothing, and CanApprove mirrors that so the UI disables
// the Approve action without re-implementing the rule.
type changeItem struct {
	Request    model.ChangeRequest `json:"request"`
	Match      *model.Reservation  `json:"match"`
	CanApprove bool                `json:"can_approve"`
}

// List handles GET /v1/changes.  Only Pending requests are shown; each
// is paired with the reservation the configured matcher located for it.
// The matched reservation row is what the client sends back on approve,
// so the approval always targets the reservation the operator saw.
func (h *ChangeHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	requests, err := h.Requests.List(ctx)
	if err != nil {
		if storeError(c, err) {
			return nil
		}
		config.LogError(h.Log, "handler", "ChangeHandler.List", nil, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load change requests"})
	}
	reservations, err := h.Reservations.List(ctx)
	if err != nil {
		if storeError(c, err) {
			return nil
		}
		config.LogError(h.Log, "handler", "ChangeHandler.List", nil, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reservations"})
	}

	items := make([]changeItem, 0, len(requests))
	for _, req := range requests {
		if req.Status != model.ChangePending {
			continue
		}
		item := changeItem{Request: req}
		if match, ok := h.Matcher.Match(req, reservations); ok {
			item.Match = &match
			item.CanApprove = true
		}
		items = append(items, item)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// Approve handles POST /v1/changes/:row/approve.  The body names the
// reservation row the operator confirmed; the reconciler never
// re-derives it.
func (h *ChangeHandler) Approve(c echo.Context) error {
	row, err := rowParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid row"})
	}
	var body struct {
		ReservationRow int `json:"reservation_row"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	err = h.Reconciler.Approve(c.Request().Context(), row, body.ReservationRow)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, echo.Map{"row": row, "status": model.ChangeApproved})
	case errors.Is(err, service.ErrNoMatch):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "no matched reservation; approval refused"})
	case errors.Is(err, service.ErrAlreadyResolved):
		return c.JSON(http.StatusConflict, echo.Map{"error": "change request already resolved"})
	case errors.Is(err, service.ErrPropagationPending):
		// The request is Approved but the reservation was not updated.
		// Surface the inconsistency loudly so the operator repairs it.
		config.LogError(h.Log, "handler", "ChangeHandler.Approve", echo.Map{"row": row, "reservation_row": body.ReservationRow}, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error":               "request approved but reservation update failed",
			"propagation_pending": true,
		})
	default:
		if storeError(c, err) {
			return nil
		}
		config.LogError(h.Log, "handler", "ChangeHandler.Approve", echo.Map{"row": row}, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to approve change request"})
	}
}

// Reject handles POST /v1/changes/:row/reject.  The reservation is
// never touched on rejection.
func (h *ChangeHandler) Reject(c echo.Context) error {
	row, err := rowParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid row"})
	}
	err = h.Reconciler.Reject(c.Request().Context(), row)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, echo.Map{"row": row, "status": model.ChangeRejected})
	case errors.Is(err, service.ErrAlreadyResolved):
		return c.JSON(http.StatusConflict, echo.Map{"error": "change request already resolved"})
	default:
		if storeError(c, err) {
			return nil
		}
		config.LogError(h.Log, "handler", "ChangeHandler.Reject", echo.Map{"row": row}, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to reject change request"})
	}
}
