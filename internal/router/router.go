// Package router registers the HTTP routes on an Echo instance.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MjedAl/Fyyur/internal/handler"
)

// Middlewares groups the optional Redis-backed middlewares.  Nil fields
// are skipped.
type Middlewares struct {
	// Cache serves time-independent listings from Redis.
	Cache echo.MiddlewareFunc
	// Invalidate drops cached listings after a successful write.
	Invalidate echo.MiddlewareFunc
	// RateLimit throttles write routes per client.
	RateLimit echo.MiddlewareFunc
}

func (m Middlewares) reads() []echo.MiddlewareFunc {
	return compact(m.Cache)
}

func (m Middlewares) writes() []echo.MiddlewareFunc {
	return compact(m.RateLimit, m.Invalidate)
}

func compact(mws ...echo.MiddlewareFunc) []echo.MiddlewareFunc {
	out := make([]echo.MiddlewareFunc, 0, len(mws))
	for _, mw := range mws {
		if mw != nil {
			out = append(out, mw)
		}
	}
	return out
}

// Register maps every route onto e.  Detail and search routes classify
// shows against the current time and are never cached.
func Register(e *echo.Echo, h *handler.Handler, mw Middlewares) {
	read, write := mw.reads(), mw.writes()

	e.GET("/healthz", handler.Health)
	e.GET("/", h.Home, read...)

	e.GET("/venues", h.ListVenues, read...)
	e.Match([]string{http.MethodGet, http.MethodPost}, "/venues/search", h.SearchVenues)
	e.GET("/venues/:id", h.ShowVenue)
	e.GET("/venues/:id/edit", h.EditVenue)
	e.POST("/venues", h.CreateVenue, write...)
	e.Match([]string{http.MethodPut, http.MethodPatch}, "/venues/:id", h.UpdateVenue, write...)
	e.DELETE("/venues/:id", h.DeleteVenue, write...)

	e.GET("/artists", h.ListArtists, read...)
	e.Match([]string{http.MethodGet, http.MethodPost}, "/artists/search", h.SearchArtists)
	e.GET("/artists/:id", h.ShowArtist)
	e.GET("/artists/:id/edit", h.EditArtist)
	e.POST("/artists", h.CreateArtist, write...)
	e.Match([]string{http.MethodPut, http.MethodPatch}, "/artists/:id", h.UpdateArtist, write...)
	e.DELETE("/artists/:id", h.DeleteArtist, write...)

	e.GET("/shows", h.ListShows, read...)
	e.POST("/shows", h.CreateShow, write...)
	e.DELETE("/shows/:id", h.DeleteShow, write...)
}
