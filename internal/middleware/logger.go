package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// RequestLogger tags every request with an X-Request-ID (reusing the
// client's when present) and logs one line per request through logrus.
func RequestLogger(log *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			id := req.Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, id)

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			entry := log.WithFields(logrus.Fields{
				"request_id": id,
				"method":     req.Method,
				"path":       req.URL.Path,
				"route":      c.Path(),
				"status":     status,
				"latency":    time.Since(start).String(),
				"client_ip":  c.RealIP(),
				"bytes_out":  c.Response().Size,
			})
			switch {
			case status >= 500:
				entry.WithError(err).Error("request failed")
			case status >= 400:
				entry.Warn("request rejected")
			default:
				entry.Info("request handled")
			}
			return nil
		}
	}
}
