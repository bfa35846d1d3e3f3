package http

import (
	"github.com/labstack/echo/v4"
	"github.com/streamhive/streamhive/internal/middleware"
	"github.com/streamhive/streamhive/internal/videos"
)

func MapVideoRoutes(videoGroup *echo.Group, h videos.Handler, mw *middleware.MiddlewareManager) {
	videoGroup.Use(mw.AuthJWTMiddleware)
	videoGroup.POST("/upload", h.UploadVideo())
	videoGroup.GET("", h.ListVideos())
	videoGroup.GET("/search", h.SearchVideos())
	videoGroup.GET("/events", h.Events())
	videoGroup.GET("/:video_id", h.GetVideoByID())
	videoGroup.GET("/:video_id/stream", h.StreamVideo())
	videoGroup.GET("/:video_id/thumbnail", h.GetThumbnailURL())
	videoGroup.DELETE("/:video_id", h.DeleteVideo())
}
