package videos

import "github.com/labstack/echo/v4"

type Handler interface {
	UploadVideo() echo.HandlerFunc
	ListVideos() echo.HandlerFunc
	SearchVideos() echo.HandlerFunc
	GetVideoByID() echo.HandlerFunc
	DeleteVideo() echo.HandlerFunc
	StreamVideo() echo.HandlerFunc
	GetThumbnailURL() echo.HandlerFunc
	Events() echo.HandlerFunc
}
