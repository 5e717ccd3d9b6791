package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/pangia/schedule-api/internal/catalog"
)

// GetEvents handles GET /v1/events: the static catalog of main-conference
// sessions and side events.  The data is compiled in, so this is a straight
// serialization; no store involved.
func GetEvents(c echo.Context) error {
    return c.JSON(http.StatusOK, map[string]any{"events": catalog.Events()})
}
