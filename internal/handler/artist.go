package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MjedAl/Fyyur/internal/model"
)

// ListArtists handles GET /artists.
func (h *Handler) ListArtists(c echo.Context) error {
	artists, err := h.Svc.ListArtists(c.Request().Context())
	if err != nil {
		return h.fail(c, err, "")
	}
	return c.JSON(http.StatusOK, echo.Map{"artists": artists})
}

// SearchArtists handles GET and POST /artists/search.
func (h *Handler) SearchArtists(c echo.Context) error {
	res, err := h.Svc.SearchArtists(c.Request().Context(), searchTerm(c))
	if err != nil {
		return h.fail(c, err, "")
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) ShowArtist(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	d, err := h.Svc.GetArtistDetail(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err, "")
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) CreateArtist(c echo.Context) error {
	var a model.Artist
	if err := c.Bind(&a); err != nil {
		return invalidBody(c, "An error occurred. Artist could not be listed.")
	}
	a.ID = 0
	created, err := h.Svc.CreateArtist(c.Request().Context(), &a)
	if err != nil {
		return h.fail(c, err, "An error occurred. "+subject("Artist", a.Name)+" could not be listed.")
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Artist " + created.Name + " was successfully listed!",
		"artist":  created,
	})
}

func (h *Handler) UpdateArtist(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var patch model.ArtistPatch
	if err := c.Bind(&patch); err != nil {
		return invalidBody(c, "An error occurred. Artist could not be edited.")
	}
	updated, err := h.Svc.UpdateArtist(c.Request().Context(), id, patch)
	if err != nil {
		return h.fail(c, err, "An error occurred. Artist could not be edited.")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Artist " + updated.Name + " was successfully edited!",
		"artist":  updated,
	})
}

// DeleteArtist handles DELETE /artists/:id and removes the artist's shows.
func (h *Handler) DeleteArtist(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.Svc.DeleteArtist(c.Request().Context(), id); err != nil {
		return h.fail(c, err, "An error occurred while deleting the artist.")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Artist was successfully deleted!"})
}

// EditArtist handles GET /artists/:id/edit.
func (h *Handler) EditArtist(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	a, err := h.Svc.GetArtist(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err, "")
	}
	return c.JSON(http.StatusOK, a)
}
