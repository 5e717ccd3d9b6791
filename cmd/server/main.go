package main // Entry point package

import (
	"context"
	"log" // Logging library

	"github.com/joho/godotenv" // Loads .env files in local development
	"github.com/labstack/echo/v4"

	"github.com/pangia/schedule-api/internal/availability"
	"github.com/pangia/schedule-api/internal/catalog"
	"github.com/pangia/schedule-api/internal/config"
	"github.com/pangia/schedule-api/internal/handler"
	"github.com/pangia/schedule-api/internal/repository"
	"github.com/pangia/schedule-api/internal/router"
	"github.com/pangia/schedule-api/internal/scheduler"
)

func main() {
	// Load .env if present; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	// Redis backs the snapshot, counters, community events and the rate
	// limiter.  When it is unreachable the service still starts: the
	// availability store falls back to memory and the limiter fails open.
	rdb := config.NewRedisClient()

	var store repository.AvailabilityStore
	if rdb != nil {
		store = repository.NewRedisAvailabilityStore(rdb)
	} else {
		log.Println("[main] redis unavailable, using in-memory availability store")
		store = repository.NewMemoryAvailabilityStore()
	}

	checker := availability.NewChecker(
		availability.NewFetcher(cfg.FetchTimeout),
		catalog.BookableEvents(),
	)

	h := router.Handlers{
		Availability: handler.NewAvailabilityHandler(store),
		Cron:         handler.NewCronHandler(checker, store),
		Interests:    handler.NewInterestHandler(repository.NewInterestRepo(rdb)),
		Emergent:     handler.NewEmergentEventHandler(repository.NewEmergentEventRepo(rdb)),
	}

	e := echo.New()
	router.RegisterRoutes(e, h, cfg, rdb)

	if cfg.SchedulerEnabled {
		s := scheduler.New(cfg.CheckSchedule, func(ctx context.Context) {
			_, summary := h.Cron.RunBatch(ctx)
			log.Printf("[scheduler] batch done: %d success, %d errors, %d sold out",
				summary.Success, summary.Errors, summary.SoldOut)
		})
		if err := s.Start(); err != nil {
			log.Fatalf("scheduler: %v", err)
		}
		defer s.Stop()
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err)
	}
}
