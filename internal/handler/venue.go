package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MjedAl/Fyyur/internal/model"
)

// ListVenues handles GET /venues: venues grouped by (city, state).
func (h *Handler) ListVenues(c echo.Context) error {
	areas, err := h.Svc.GroupVenuesByArea(c.Request().Context())
	if err != nil {
		return h.fail(c, err, "")
	}
	return c.JSON(http.StatusOK, echo.Map{"areas": areas})
}

// SearchVenues handles GET and POST /venues/search.
func (h *Handler) SearchVenues(c echo.Context) error {
	res, err := h.Svc.SearchVenues(c.Request().Context(), searchTerm(c))
	if err != nil {
		return h.fail(c, err, "")
	}
	return c.JSON(http.StatusOK, res)
}

// ShowVenue handles GET /venues/:id with past and upcoming shows.
func (h *Handler) ShowVenue(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	d, err := h.Svc.GetVenueDetail(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err, "")
	}
	return c.JSON(http.StatusOK, d)
}

// CreateVenue handles POST /venues.
func (h *Handler) CreateVenue(c echo.Context) error {
	var v model.Venue
	if err := c.Bind(&v); err != nil {
		return invalidBody(c, "An error occurred. Venue could not be listed.")
	}
	v.ID = 0
	created, err := h.Svc.CreateVenue(c.Request().Context(), &v)
	if err != nil {
		return h.fail(c, err, "An error occurred. "+subject("Venue", v.Name)+" could not be listed.")
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Venue " + created.Name + " was successfully listed!",
		"venue":   created,
	})
}

// UpdateVenue handles PUT and PATCH /venues/:id.  Omitted fields keep
// their stored values.
func (h *Handler) UpdateVenue(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var patch model.VenuePatch
	if err := c.Bind(&patch); err != nil {
		return invalidBody(c, "An error occurred. Venue could not be edited.")
	}
	updated, err := h.Svc.UpdateVenue(c.Request().Context(), id, patch)
	if err != nil {
		return h.fail(c, err, "An error occurred. Venue could not be edited.")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Venue " + updated.Name + " was successfully edited!",
		"venue":   updated,
	})
}

// DeleteVenue handles DELETE /venues/:id.  The venue's shows go with it.
func (h *Handler) DeleteVenue(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid id"})
	}
	if err := h.Svc.DeleteVenue(c.Request().Context(), id); err != nil {
		return h.failWith(c, err, echo.Map{
			"success": false,
			"message": "An error occurred while deleting the venue.",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Venue was successfully deleted!"})
}

// EditVenue handles GET /venues/:id/edit and returns the stored record
// without show data.
func (h *Handler) EditVenue(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	v, err := h.Svc.GetVenue(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err, "")
	}
	return c.JSON(http.StatusOK, v)
}
