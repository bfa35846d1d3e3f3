package http

import (
	"github.com/labstack/echo/v4"
	"github.com/streamhive/streamhive/internal/auth"
	"github.com/streamhive/streamhive/internal/middleware"
)

func MapAuthRoutes(authGroup *echo.Group, h auth.Handler, mw *middleware.MiddlewareManager) {
	authGroup.POST("/register", h.Register())
	authGroup.POST("/login", h.Login())
	authGroup.POST("/logout", h.Logout())
	authGroup.GET("/me", h.GetMe(), mw.AuthJWTMiddleware)
	authGroup.GET("/storage", h.GetStorageStats(), mw.AuthJWTMiddleware)
}
