package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "lifeline/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// headerCloudTraceContext is set by Google front ends as "TRACE_ID/SPAN_ID;o=1".
const headerCloudTraceContext = "X-Cloud-Trace-Context"

// RequestIDMiddleware generates or extracts a unique Request ID for each request and creates a request-scoped logger
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process resolves the Request ID (header, then Cloud trace, then a new UUID)
// and stores it with a child logger in the request context
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := requestIDFromHeaders(c)

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx, _ := deliverycontext.Scope(c.Request().Context(), m.logger, requestID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func requestIDFromHeaders(c echo.Context) string {
	header := c.Request().Header
	if requestID := header.Get(deliverycontext.HeaderXRequestID); requestID != "" {
		return requestID
	}

	if trace := header.Get(headerCloudTraceContext); trace != "" {
		if traceID, _, _ := strings.Cut(trace, "/"); traceID != "" {
			return traceID
		}
	}

	return uuid.New().String()
}
