package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/entity"
	domainerrors "github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/errors"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/repository"
)

const recorderTimeout = 5 * time.Second

// RecorderMiddleware persists one log row per request. These rows feed the
// daily backup job, so recording is best effort and never fails a request.
type RecorderMiddleware struct {
	logRepo repository.LogRepository
	logger  *slog.Logger
}

// NewRecorderMiddleware creates the request log recorder.
func NewRecorderMiddleware(logRepo repository.LogRepository, logger *slog.Logger) *RecorderMiddleware {
	return &RecorderMiddleware{logRepo: logRepo, logger: logger}
}

// Record runs the request and writes its outcome to the logs table.
func (m *RecorderMiddleware) Record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)

		status := statusFor(c, err)

		record := &entity.LogRecord{
			Level:   levelFor(status),
			Message: fmt.Sprintf("%s %s -> %d", c.Request().Method, c.Request().URL.Path, status),
			Module:  "http",
			UserID:  userIDFor(c),
		}

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), recorderTimeout)
			defer cancel()

			if createErr := m.logRepo.Create(ctx, record); createErr != nil {
				m.logger.Warn("Failed to record request log", slog.String("error", createErr.Error()))
			}
		}()

		return err
	}
}

// statusFor resolves the response status while the middleware chain is still
// unwinding. Echo only runs the HTTPErrorHandler after the chain returns, so
// when the handler errored the written status is not visible here yet and has
// to be derived from the error itself.
func statusFor(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}

func levelFor(status int) string {
	switch {
	case status >= 500:
		return "ERROR"
	case status >= 400:
		return "WARNING"
	default:
		return "INFO"
	}
}

func userIDFor(c echo.Context) *uuid.UUID {
	if actor, ok := ActorFromContext(c); ok {
		id := actor.ID

		return &id
	}

	return nil
}
