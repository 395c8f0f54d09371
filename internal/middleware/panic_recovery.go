package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"claims-insights/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery converts panics anywhere below it into a SYSTEM_001 response,
// so a bad claim batch or report bug never takes the worker down mid-request.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				slog.Error("recovered from panic",
					"trace_id", traceID,
					"panic", r,
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"stack", string(debug.Stack()),
				)

				response := errors.NewErrorResponse(errors.SystemInternalError, traceID)
				if err := c.JSON(http.StatusInternalServerError, response); err != nil {
					slog.Error("could not write panic response", "trace_id", traceID, "error", err)
				}
			}()

			return next(c)
		}
	}
}
