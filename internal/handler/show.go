package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/MjedAl/Fyyur/internal/model"
)

// formTimeLayout is the date format of the show form's start_time field.
const formTimeLayout = "2006-01-02 15:04:05"

// showRequest is the body of POST /shows.  StartTime stays a string so
// both RFC 3339 and the form layout can be accepted.
type showRequest struct {
	ArtistID  uint64 `json:"artist_id" form:"artist_id"`
	VenueID   uint64 `json:"venue_id" form:"venue_id"`
	StartTime string `json:"start_time" form:"start_time"`
}

// parseStartTime accepts RFC 3339 or "YYYY-MM-DD HH:MM:SS" (read as UTC).
// An empty string yields the zero time, which validation rejects.
func parseStartTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.ParseInLocation(formTimeLayout, raw, time.UTC); err == nil {
		return t, nil
	}
	return time.Time{}, errors.New("start_time must be RFC 3339 or YYYY-MM-DD HH:MM:SS")
}

// ListShows handles GET /shows.
func (h *Handler) ListShows(c echo.Context) error {
	shows, err := h.Svc.ListShows(c.Request().Context())
	if err != nil {
		return h.fail(c, err, "")
	}
	return c.JSON(http.StatusOK, echo.Map{"shows": shows})
}

// CreateShow handles POST /shows.
func (h *Handler) CreateShow(c echo.Context) error {
	const failed = "An error occurred. Show could not be listed."
	var req showRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c, failed)
	}
	start, err := parseStartTime(req.StartTime)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error":   "validation failed",
			"message": failed,
			"fields":  []echo.Map{{"field": "start_time", "problem": err.Error()}},
		})
	}
	show, err := h.Svc.CreateShow(c.Request().Context(), &model.Show{
		ArtistID:  req.ArtistID,
		VenueID:   req.VenueID,
		StartTime: start,
	})
	if err != nil {
		return h.fail(c, err, failed)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Show was successfully listed!", "show": show})
}

// DeleteShow handles DELETE /shows/:id.
func (h *Handler) DeleteShow(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.Svc.DeleteShow(c.Request().Context(), id); err != nil {
		return h.fail(c, err, "An error occurred while deleting the show.")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Show was successfully deleted!"})
}
