package middleware

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	deliverycontext "github.com/thebabumosai/PujoAtlasKol-Backend/internal/delivery/context"
)

// ContextMiddleware seeds each request with an id and a request-scoped logger.
type ContextMiddleware struct {
	logger *slog.Logger
}

// NewContextMiddleware is the constructor for ContextMiddleware.
func NewContextMiddleware(logger *slog.Logger) *ContextMiddleware {
	return &ContextMiddleware{logger: logger}
}

// Handle assigns the request id (honoring an incoming X-Request-Id header) and
// stores a logger carrying it in the request context, where the usecases pick
// it up.
func (m *ContextMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		requestLogger := m.logger.With(slog.String("requestID", requestID))
		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, requestLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
