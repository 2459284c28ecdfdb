// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/delivery/http/middleware"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/delivery/http/router/handler"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/entity"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	UserHandler        *handler.UserHandler
	CollectionHandler  *handler.CollectionHandler
	PujoHandler        *handler.PujoHandler
	AuthMiddleware     *middleware.AuthMiddleware
	ContextMiddleware  *middleware.ContextMiddleware
	RecorderMiddleware *middleware.RecorderMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	userHandler        *handler.UserHandler
	collectionHandler  *handler.CollectionHandler
	pujoHandler        *handler.PujoHandler
	authMiddleware     *middleware.AuthMiddleware
	contextMiddleware  *middleware.ContextMiddleware
	recorderMiddleware *middleware.RecorderMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		userHandler:        params.UserHandler,
		collectionHandler:  params.CollectionHandler,
		pujoHandler:        params.PujoHandler,
		authMiddleware:     params.AuthMiddleware,
		contextMiddleware:  params.ContextMiddleware,
		recorderMiddleware: params.RecorderMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.contextMiddleware.Handle)
	e.Use(r.recorderMiddleware.Record)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	e.POST("/login", r.authHandler.Login)
	e.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
	e.POST("/token/refresh", r.authHandler.Refresh, r.authMiddleware.Authenticate)

	// User routes
	userGroup := e.Group("/users")
	{
		userGroup.POST("/", r.userHandler.Register)
		userGroup.GET("/:id", r.userHandler.Get, r.authMiddleware.Authenticate)
		userGroup.PUT("/:id", r.userHandler.Put, r.authMiddleware.Authenticate)
		userGroup.PATCH("/:id", r.userHandler.Patch, r.authMiddleware.Authenticate)
		userGroup.DELETE("/:id", r.userHandler.Delete, r.authMiddleware.Authenticate)

		// Collection routes, one POST/DELETE pair per kind
		for path, kind := range map[string]entity.CollectionKind{
			"/favorites": entity.CollectionFavorites,
			"/wishlist":  entity.CollectionWishlist,
			"/saves":     entity.CollectionSaves,
			"/visits":    entity.CollectionPandalVisits,
		} {
			userGroup.POST(path, r.collectionHandler.Add(kind), r.authMiddleware.Authenticate)
			userGroup.DELETE(path, r.collectionHandler.Remove(kind), r.authMiddleware.Authenticate)
		}
	}

	// Pujo discovery routes
	pujoGroup := e.Group("/pujos")
	{
		pujoGroup.GET("/trending", r.pujoHandler.Trending)
		pujoGroup.POST("/:id/searched", r.pujoHandler.Searched)
	}
}
