package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/pangia/schedule-api/internal/config"
	"github.com/pangia/schedule-api/internal/handler"
	"github.com/pangia/schedule-api/internal/middleware"
)

// Handlers bundles everything the route table needs.  Kept as a struct so
// main wires dependencies once and the router stays declarative.
type Handlers struct {
	Availability *handler.AvailabilityHandler
	Cron         *handler.CronHandler
	Interests    *handler.InterestHandler
	Emergent     *handler.EmergentEventHandler
}

// RegisterRoutes registers the full HTTP surface on the provided Echo
// instance.
//
// Layout:
//   - /healthz                      – liveness probe
//   - /v1/events                    – static catalog (read)
//   - /v1/availability              – availability snapshot + staleness (read)
//   - /v1/interests                 – interest counters (read + rate-limited write)
//   - /v1/emergent-events           – community events (read + rate-limited writes)
//   - /v1/cron/check-availability   – batch trigger, shared-secret gated
func RegisterRoutes(e *echo.Echo, h Handlers, cfg config.Config, rdb *redis.Client) {
	// Liveness probe for load balancers and uptime monitors.
	e.GET("/healthz", handler.Health)

	v1 := e.Group("/v1")

	// Public reads.  Deliberately unlimited: the UI polls these and every
	// one degrades to an empty payload rather than erroring.
	v1.GET("/events", handler.GetEvents)
	v1.GET("/availability", h.Availability.Get)
	v1.GET("/interests", h.Interests.GetCounts)
	v1.GET("/emergent-events", h.Emergent.List)

	// Public writes go through the Redis token bucket; with no Redis the
	// limiter fails open.
	limited := v1.Group("", middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	limited.POST("/interests", h.Interests.Toggle)
	limited.POST("/emergent-events", h.Emergent.Create)
	limited.DELETE("/emergent-events", h.Emergent.Delete)

	// Availability batch trigger.  GET is what hosted cron services issue;
	// POST is the natural verb for a manual run.  Both are gated on the
	// shared secret or the trusted-scheduler marker before any work starts.
	cron := v1.Group("/cron", middleware.CronAuth(cfg.CronSecret))
	cron.GET("/check-availability", h.Cron.CheckAvailability)
	cron.POST("/check-availability", h.Cron.CheckAvailability)
}
