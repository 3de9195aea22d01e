package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/hkr-miura/moonloop-admin/internal/handler"
)

// RegisterRoutes registers routes that need no dependencies.  Currently
// that is only the health check used by the hosting platform.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// AdminHandlers bundles the handlers of the admin API so registration
// stays a single call from main.
type AdminHandlers struct {
	Reservations *handler.ReservationHandler
	Events       *handler.EventHandler
	Changes      *handler.ChangeHandler
	Opinions     *handler.OpinionHandler
	Sync         *handler.SyncHandler
	Dashboard    *handler.DashboardHandler
}

// RegisterAdmin registers the admin API under /v1.  The cache
// middleware is applied to the list views only; mutations always hit
// the store.  Note that mutations do not invalidate cached lists — the
// cache TTL is short and the record store has no change feed to key an
// invalidation on.
func RegisterAdmin(e *echo.Echo, h AdminHandlers, cache echo.MiddlewareFunc) {
	g := e.Group("/v1")

	g.GET("/dashboard", h.Dashboard.Overview, cache)

	g.GET("/reservations", h.Reservations.List, cache)
	g.PATCH("/reservations/:row/status", h.Reservations.UpdateStatus)

	g.GET("/events", h.Events.List, cache)
	g.POST("/events", h.Events.Create)

	g.GET("/changes", h.Changes.List)
	g.POST("/changes/:row/approve", h.Changes.Approve)
	g.POST("/changes/:row/reject", h.Changes.Reject)

	g.GET("/opinions", h.Opinions.List, cache)
	g.PATCH("/opinions/:row/read", h.Opinions.MarkRead)

	g.POST("/sync/dates", h.Sync.Dates)
}
