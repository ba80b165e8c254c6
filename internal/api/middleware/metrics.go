package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pawmart/pawmart/internal/metrics"
)

// unmatchedPath labels requests that hit no route, keeping label
// cardinality bounded.
const unmatchedPath = "unmatched"

// Metrics returns Echo middleware that records request duration and status
// by route pattern. /metrics is not recorded; /healthz only updates the
// healthz_up gauge.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Path()

			switch path {
			case "/metrics":
				return next(c)
			case "/healthz":
				err := next(c)
				if s := c.Response().Status; s >= http.StatusOK && s < http.StatusMultipleChoices {
					metrics.HealthzUp.Set(1)
				} else {
					metrics.HealthzUp.Set(0)
				}
				return err
			case "":
				path = unmatchedPath
			}

			start := time.Now()
			err := next(c)

			status := strconv.Itoa(c.Response().Status)
			method := c.Request().Method
			metrics.HTTPRequestDuration.
				WithLabelValues(method, path, status).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, path, status).
				Inc()

			return err
		}
	}
}
