// Package handler exposes the booking directory over HTTP.  Handlers bind
// and parse requests, call booking.Service and translate its error kinds
// into status codes; they hold no state of their own.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/MjedAl/Fyyur/internal/booking"
	"github.com/MjedAl/Fyyur/internal/repository"
)

// Handler bundles the service used by every route.
type Handler struct {
	Svc *booking.Service
	log *logrus.Entry
}

// New constructs a Handler and panics if svc is nil.
func New(svc *booking.Service) *Handler {
	if svc == nil {
		panic("nil service passed to handler.New")
	}
	return &Handler{Svc: svc, log: logrus.WithField("component", "http")}
}

// parseID reads the :id path parameter.
func parseID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

func invalidID(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
}

func invalidBody(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body", "message": message})
}

// fail maps a service error onto a response.  message is the user-facing
// text for write routes and may be empty for reads.
func (h *Handler) fail(c echo.Context, err error, message string) error {
	body := echo.Map{}
	if message != "" {
		body["message"] = message
	}
	return h.failWith(c, err, body)
}

// failWith is fail with extra fields already set on body.
func (h *Handler) failWith(c echo.Context, err error, body echo.Map) error {

	var verr *booking.ValidationError
	switch {
	case errors.As(err, &verr):
		body["error"] = "validation failed"
		body["fields"] = verr.Fields
		return c.JSON(http.StatusUnprocessableEntity, body)
	case errors.Is(err, repository.ErrNotFound):
		body["error"] = "not found"
		return c.JSON(http.StatusNotFound, body)
	case errors.Is(err, repository.ErrConflict):
		body["error"] = "conflict, please retry"
		return c.JSON(http.StatusConflict, body)
	case errors.Is(err, booking.ErrIntegrityFault):
		body["error"] = err.Error()
		return c.JSON(http.StatusInternalServerError, body)
	}
	h.log.WithError(err).WithField("route", c.Path()).Error("store failure")
	body["error"] = "database error"
	return c.JSON(http.StatusInternalServerError, body)
}

// subject renders "Venue The Musical Hop", or just "Venue" when the name
// is blank.
func subject(kind, name string) string {
	if strings.TrimSpace(name) == "" {
		return kind
	}
	return kind + " " + name
}

// searchTerm reads search_term from the query string or a posted form.
func searchTerm(c echo.Context) string {
	if c.Request().Method == http.MethodPost {
		return c.FormValue("search_term")
	}
	return c.QueryParam("search_term")
}
