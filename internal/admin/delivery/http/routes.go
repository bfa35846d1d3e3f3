package http

import (
	"github.com/labstack/echo/v4"
	"github.com/streamhive/streamhive/internal/admin"
	"github.com/streamhive/streamhive/internal/middleware"
	"github.com/streamhive/streamhive/internal/models"
)

func MapAdminRoutes(adminGroup *echo.Group, h admin.Handler, mw *middleware.MiddlewareManager) {
	adminGroup.Use(mw.AuthJWTMiddleware, mw.RequireRoles(models.AdminRole))
	adminGroup.GET("/users", h.ListUsers())
	adminGroup.GET("/users/search", h.SearchUsers())
	adminGroup.POST("/users", h.CreateUser())
	adminGroup.PUT("/users/:user_id", h.UpdateUser())
	adminGroup.DELETE("/users/:user_id", h.DeleteUser())
	adminGroup.GET("/stats", h.GetStats())
}
