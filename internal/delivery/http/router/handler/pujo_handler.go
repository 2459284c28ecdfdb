package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/delivery/http/response"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/usecase"
)

// PujoHandler holds dependencies for pujo discovery handlers.
type PujoHandler struct {
	uc     usecase.PujoUsecase
	logger *slog.Logger
}

// NewPujoHandler is the constructor for PujoHandler, injected by Fx.
func NewPujoHandler(uc usecase.PujoUsecase, logger *slog.Logger) *PujoHandler {
	return &PujoHandler{uc: uc, logger: logger}
}

// Trending lists pujos ordered by search score.
func (h *PujoHandler) Trending(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "Invalid limit")
		}
		limit = parsed
	}

	pujos, err := h.uc.Trending(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pujos, "")
}

// Searched records one search hit against a pujo.
func (h *PujoHandler) Searched(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid pujo id")
	}

	if err := h.uc.RecordSearch(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Search recorded")
}

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
