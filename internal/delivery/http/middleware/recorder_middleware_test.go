package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/entity"
	domainerrors "github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/errors"
)

type capturingLogRepo struct {
	records chan *entity.LogRecord
}

func newCapturingLogRepo() *capturingLogRepo {
	return &capturingLogRepo{records: make(chan *entity.LogRecord, 1)}
}

func (r *capturingLogRepo) Create(_ context.Context, record *entity.LogRecord) error {
	r.records <- record

	return nil
}

func (r *capturingLogRepo) FindOlderThan(context.Context, time.Time) ([]*entity.LogRecord, error) {
	return nil, nil
}

func (r *capturingLogRepo) DeleteByIDs(context.Context, []int64) error {
	return nil
}

func (r *capturingLogRepo) DeleteOlderThan(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func (r *capturingLogRepo) wait(t *testing.T) *entity.LogRecord {
	t.Helper()

	select {
	case record := <-r.records:
		return record
	case <-time.After(time.Second):
		t.Fatal("no log row was recorded")

		return nil
	}
}

func recordRequest(t *testing.T, handler echo.HandlerFunc) *entity.LogRecord {
	t.Helper()

	repo := newCapturingLogRepo()
	recorder := NewRecorderMiddleware(repo, slog.New(slog.DiscardHandler))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/pujos/trending", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := recorder.Record(handler)(c)
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}

	return repo.wait(t)
}

func TestRecorderMiddleware_SuccessLoggedAsInfo(t *testing.T) {
	record := recordRequest(t, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "success"})
	})

	require.NotNil(t, record)
	assert.Equal(t, "INFO", record.Level)
	assert.Equal(t, "GET /pujos/trending -> 200", record.Message)
	assert.Equal(t, "http", record.Module)
}

func TestRecorderMiddleware_AppErrorStatusResolvedBeforeErrorHandler(t *testing.T) {
	record := recordRequest(t, func(c echo.Context) error {
		return domainerrors.ErrTokenRevoked
	})

	require.NotNil(t, record)
	assert.Equal(t, "WARNING", record.Level)
	assert.Equal(t, "GET /pujos/trending -> 400", record.Message)
}

func TestRecorderMiddleware_WrappedAppErrorStatusResolved(t *testing.T) {
	record := recordRequest(t, func(c echo.Context) error {
		return errors.WithStack(domainerrors.ErrUserNotFound)
	})

	require.NotNil(t, record)
	assert.Equal(t, "WARNING", record.Level)
	assert.Equal(t, "GET /pujos/trending -> 404", record.Message)
}

func TestRecorderMiddleware_EchoHTTPErrorStatusResolved(t *testing.T) {
	record := recordRequest(t, func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
	})

	require.NotNil(t, record)
	assert.Equal(t, "WARNING", record.Level)
	assert.Equal(t, "GET /pujos/trending -> 401", record.Message)
}

func TestRecorderMiddleware_UnexpectedErrorLoggedAsError(t *testing.T) {
	record := recordRequest(t, func(c echo.Context) error {
		return errors.New("connection reset")
	})

	require.NotNil(t, record)
	assert.Equal(t, "ERROR", record.Level)
	assert.Equal(t, "GET /pujos/trending -> 500", record.Message)
}
