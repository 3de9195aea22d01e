package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/hkr-miura/moonloop-admin/internal/config"
	"github.com/hkr-miura/moonloop-admin/internal/model"
)

// OpinionHandler serves the opinion box views.
type OpinionHandler struct {
	Store OpinionStore
	Log   *logrus.Logger
}

// NewOpinionHandler constructs an OpinionHandler.
func NewOpinionHandler(store OpinionStore, log *logrus.Logger) *OpinionHandler {
	if store == nil {
		panic("nil store passed to NewOpinionHandler")
	}
	return &OpinionHandler{Store: store, Log: log}
}

// List handles GET /v1/opinions.
func (h *OpinionHandler) List(c echo.Context) error {
	items, err := h.Store.List(c.Request().Context())
	if err != nil {
		if storeError(c, err) {
			return nil
		}
		config.LogError(h.Log, "handler", "OpinionHandler.List", nil, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load opinions"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// MarkRead handles PATCH /v1/opinions/:row/read.
func (h *OpinionHandler) MarkRead(c echo.Context) error {
	row, err := rowParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid row"})
	}
	if err := h.Store.MarkRead(c.Request().Context(), row); err != nil {
		if storeError(c, err) {
			return nil
		}
		config.LogError(h.Log, "handler", "OpinionHandler.MarkRead", echo.Map{"row": row}, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to mark opinion read"})
	}
	return c.JSON(http.StatusOK, echo.Map{"row": row, "status": model.OpinionRead})
}
