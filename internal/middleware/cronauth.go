package middleware

import (
    "crypto/subtle"
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"
)

// SchedulerHeader is the trusted-scheduler marker.  Hosted cron services
// set it on the requests they originate; a reverse proxy must strip it from
// external traffic for the marker to stay trustworthy.
const SchedulerHeader = "X-Internal-Cron"

// CronAuth gates the availability trigger endpoint.  A request passes when
// it carries `Authorization: Bearer <secret>` matching the configured shared
// secret, or the trusted-scheduler marker header.  With no secret configured
// only the marker is accepted.  Rejections happen before any work begins.
func CronAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if secret != "" {
                auth := c.Request().Header.Get(echo.HeaderAuthorization)
                if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
                    if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) == 1 {
                        return next(c)
                    }
                }
            }
            if c.Request().Header.Get(SchedulerHeader) == "true" {
                return next(c)
            }
            return c.JSON(http.StatusUnauthorized, map[string]any{"error": "Unauthorized"})
        }
    }
}
