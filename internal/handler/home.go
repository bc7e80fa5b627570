package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// recentLimit is the number of venues and artists shown on the home page.
const recentLimit = 10

// Home handles GET / and returns the most recently listed venues and
// artists, newest first.
func (h *Handler) Home(c echo.Context) error {
	ctx := c.Request().Context()
	venues, err := h.Svc.ListRecentVenues(ctx, recentLimit)
	if err != nil {
		return h.fail(c, err, "")
	}
	artists, err := h.Svc.ListRecentArtists(ctx, recentLimit)
	if err != nil {
		return h.fail(c, err, "")
	}
	return c.JSON(http.StatusOK, echo.Map{"venues": venues, "artists": artists})
}
