package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/hkr-miura/moonloop-admin/internal/config"
	"github.com/hkr-miura/moonloop-admin/internal/google"
	"github.com/hkr-miura/moonloop-admin/internal/handler"
	"github.com/hkr-miura/moonloop-admin/internal/middleware"
	"github.com/hkr-miura/moonloop-admin/internal/repository"
	"github.com/hkr-miura/moonloop-admin/internal/router"
	"github.com/hkr-miura/moonloop-admin/internal/service"
)

func main() {
	// Load .env if present; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()
	logg := config.GetLogger()

	client, err := google.NewClient(context.Background())
	if err != nil {
		log.Fatalf("google client: %v", err)
	}

	reservations := repository.NewReservationRepo(client, cfg.ReservationSheetID)
	events := repository.NewEventRepo(client, cfg.EventSheetID)
	changes := repository.NewChangeRequestRepo(client, cfg.ChangeSheetID)
	opinions := repository.NewOpinionRepo(client, cfg.OpinionSheetID)

	reconciler := service.NewReconciler(changes, reservations)
	formSync := service.NewFormSync(events, client, cfg.ReservationFormID, cfg.DateQuestion, cfg.WeeksAhead)
	eventCreator := service.NewEventCreator(events, client)
	matcher := service.MatcherFor(cfg.MatchStrategy)

	e := echo.New()
	e.HideBanner = true

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Print("redis unavailable; response cache and rate limiting disabled")
	}
	e.Use(middleware.NewFixedWindow(config.LoadRateLimitConfig(), rdb))
	cache := middleware.CacheJSON(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAdmin(e, router.AdminHandlers{
		Reservations: handler.NewReservationHandler(reservations, logg),
		Events:       handler.NewEventHandler(events, eventCreator, logg),
		Changes:      handler.NewChangeHandler(changes, reservations, matcher, reconciler, logg),
		Opinions:     handler.NewOpinionHandler(opinions, logg),
		Sync:         handler.NewSyncHandler(formSync, logg),
		Dashboard:    handler.NewDashboardHandler(reservations, changes, events, logg),
	}, cache)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
