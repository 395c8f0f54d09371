package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader carries the trace ID between the reporting API and its
	// callers.
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey stores the trace ID on the request context.
	TraceIDContextKey = "trace_id"
)

// RequestID tags every request with a trace ID. An inbound X-Trace-ID is
// reused when it parses as a UUID, so report requests can be correlated with
// the caller's own logs; anything else is replaced with a fresh one.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if _, err := uuid.Parse(traceID); err != nil {
				traceID = uuid.NewString()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID returns the request's trace ID, or "" before RequestID has run.
func GetTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}
