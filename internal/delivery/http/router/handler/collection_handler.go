package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/delivery/http/middleware"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/delivery/http/response"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/entity"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/usecase"
)

// CollectionHandler serves all four per-user collections through one pair of
// kind-parameterized handlers.
type CollectionHandler struct {
	uc     usecase.CollectionUsecase
	logger *slog.Logger
}

// NewCollectionHandler is the constructor for CollectionHandler, injected by Fx.
func NewCollectionHandler(uc usecase.CollectionUsecase, logger *slog.Logger) *CollectionHandler {
	return &CollectionHandler{uc: uc, logger: logger}
}

type collectionRequest struct {
	UserID uuid.UUID `json:"user_id"`
	PujoID uuid.UUID `json:"pujo_id"`
}

// Add returns the POST handler for one collection kind.
func (h *CollectionHandler) Add(kind entity.CollectionKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, input, err := h.bind(c)
		if err != nil {
			return err
		}

		ids, err := h.uc.Add(c.Request().Context(), actor, kind, input)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, ids, "Added to "+string(kind))
	}
}

// Remove returns the DELETE handler for one collection kind.
func (h *CollectionHandler) Remove(kind entity.CollectionKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, input, err := h.bind(c)
		if err != nil {
			return err
		}

		ids, err := h.uc.Remove(c.Request().Context(), actor, kind, input)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, ids, "Removed from "+string(kind))
	}
}

func (h *CollectionHandler) bind(c echo.Context) (usecase.Actor, usecase.CollectionInput, error) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return usecase.Actor{}, usecase.CollectionInput{}, response.Unauthorized(c, "Authentication required")
	}

	var body collectionRequest
	if err := c.Bind(&body); err != nil {
		return usecase.Actor{}, usecase.CollectionInput{}, response.BadRequest(c, "Invalid collection input")
	}

	input := usecase.CollectionInput{UserID: body.UserID, PujoID: body.PujoID}
	if input.UserID == uuid.Nil {
		// Default to the caller's own collection.
		input.UserID = actor.ID
	}

	return actor, input, nil
}
