// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"accounts/internal/delivery/http/middleware"
	"accounts/internal/delivery/http/router/handler"
	"accounts/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler      *handler.AccountHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:      params.AccountHandler,
		notificationHandler: params.NotificationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// The :id parameter is the device id by which the caller addresses an account.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	auth := r.authMiddleware
	accounts := e.Group("/v1/accounts")

	// Public routes; add-device authenticates with the sync token itself
	accounts.POST("", r.accountHandler.CreateAccount)
	accounts.POST("/add-device", r.accountHandler.AddDeviceWithToken)

	accounts.GET("", r.accountHandler.ListAccounts, auth.Authenticate, auth.RequireRole(entity.RoleAdmin, entity.RoleOwner))

	// Account routes
	account := accounts.Group("/:id", auth.Authenticate)
	{
		account.GET("", r.accountHandler.GetAccount, auth.RequireSelfOrPrivileged)
		account.PUT("", r.accountHandler.UpdateAccount, auth.RequireSelfOrPrivileged)
		account.DELETE("", r.accountHandler.DeleteAccount, auth.RequireSelfOrPrivileged)

		account.POST("/sync-token", r.accountHandler.IssueSyncToken, auth.RequireSelf)
		account.POST("/add-device/:deviceId", r.accountHandler.MergeDevice, auth.RequireSelfOrPrivileged)
		account.DELETE("/remove-device/:deviceId", r.accountHandler.RemoveDevice, auth.RequireSelfOrPrivileged)

		account.POST("/favorite-lines/:lineId", r.accountHandler.ToggleFavoriteLine, auth.RequireSelf)
		account.POST("/favorite-stops/:stopId", r.accountHandler.ToggleFavoriteStop, auth.RequireSelf)
	}

	// Notification routes
	notifications := account.Group("/notifications", auth.RequireSelfOrPrivileged)
	{
		notifications.GET("", r.notificationHandler.ListNotifications)
		notifications.POST("", r.notificationHandler.CreateNotification)
		notifications.GET("/:notificationId", r.notificationHandler.GetNotification)
		notifications.PUT("/:notificationId", r.notificationHandler.UpdateNotification)
		notifications.DELETE("/:notificationId", r.notificationHandler.DeleteNotification)
	}
}
