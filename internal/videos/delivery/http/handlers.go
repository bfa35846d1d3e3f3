package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/streamhive/streamhive/internal/models"
	"github.com/streamhive/streamhive/internal/notify"
	"github.com/streamhive/streamhive/internal/videos"
	"github.com/streamhive/streamhive/pkg/logger"
	"github.com/streamhive/streamhive/pkg/utils"
)

type videoHandler struct {
	videoUC    videos.UseCase
	subscriber notify.Subscriber
	logger     logger.Logger
}

func NewVideoHandler(videoUC videos.UseCase, subscriber notify.Subscriber, log logger.Logger) videos.Handler {
	return &videoHandler{
		videoUC:    videoUC,
		subscriber: subscriber,
		logger:     log,
	}
}

func (h *videoHandler) UploadVideo() echo.HandlerFunc {
	return func(c echo.Context) error {
		fileHeader, err := c.FormFile("video")
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "No video file provided"})
		}
		src, err := fileHeader.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Failed to read video file"})
		}
		defer src.Close()

		input := &models.VideoUploadInput{
			OriginalName: fileHeader.Filename,
			MimeType:     fileHeader.Header.Get("Content-Type"),
			FileSize:     fileHeader.Size,
			File:         src,
		}
		video, err := h.videoUC.UploadVideo(c.Request().Context(), input)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, video)
	}
}

func (h *videoHandler) ListVideos() echo.HandlerFunc {
	return func(c echo.Context) error {
		pagination, err := utils.GetPaginationFromCtx(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		status := models.ProcessingStatus(c.QueryParam("status"))
		list, err := h.videoUC.ListVideos(c.Request().Context(), status, pagination)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	}
}

func (h *videoHandler) SearchVideos() echo.HandlerFunc {
	return func(c echo.Context) error {
		query := c.QueryParam("query")
		if query == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Query param is required"})
		}
		pagination, err := utils.GetPaginationFromCtx(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		list, err := h.videoUC.SearchVideos(c.Request().Context(), query, pagination)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	}
}

func (h *videoHandler) GetVideoByID() echo.HandlerFunc {
	return func(c echo.Context) error {
		videoID, err := uuid.Parse(c.Param("video_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid video id"})
		}
		video, err := h.videoUC.GetVideo(c.Request().Context(), videoID)
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, video)
	}
}

func (h *videoHandler) DeleteVideo() echo.HandlerFunc {
	return func(c echo.Context) error {
		videoID, err := uuid.Parse(c.Param("video_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid video id"})
		}
		if err = h.videoUC.DeleteVideo(c.Request().Context(), videoID); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Video deleted successfully"})
	}
}

// StreamVideo proxies the stored asset, passing the Range header through
// so players can seek.
func (h *videoHandler) StreamVideo() echo.HandlerFunc {
	return func(c echo.Context) error {
		videoID, err := uuid.Parse(c.Param("video_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid video id"})
		}
		stream, err := h.videoUC.StreamVideo(c.Request().Context(), videoID, c.Request().Header.Get("Range"), c.QueryParam("source"))
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		defer stream.Body.Close()

		res := c.Response()
		res.Header().Set("Accept-Ranges", "bytes")
		if stream.ContentLength > 0 {
			res.Header().Set(echo.HeaderContentLength, fmt.Sprintf("%d", stream.ContentLength))
		}
		status := http.StatusOK
		if stream.Partial {
			res.Header().Set("Content-Range", stream.ContentRange)
			status = http.StatusPartialContent
		}
		return c.Stream(status, stream.ContentType, stream.Body)
	}
}

func (h *videoHandler) GetThumbnailURL() echo.HandlerFunc {
	return func(c echo.Context) error {
		videoID, err := uuid.Parse(c.Param("video_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid video id"})
		}
		url, err := h.videoUC.GetThumbnailURL(c.Request().Context(), videoID)
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"url": url})
	}
}

// Events bridges the user's notification channel onto a server-sent event
// stream. The subscription lives as long as the request context.
func (h *videoHandler) Events() echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		user, err := utils.GetUserFromCtx(ctx)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		}

		events, cancel, err := h.subscriber.Subscribe(ctx, user.UserID)
		if err != nil {
			h.logger.Errorf("Events - Subscribe: %v", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to subscribe to events"})
		}
		defer cancel()

		res := c.Response()
		res.Header().Set(echo.HeaderContentType, "text/event-stream")
		res.Header().Set("Cache-Control", "no-cache")
		res.Header().Set("Connection", "keep-alive")
		res.WriteHeader(http.StatusOK)
		res.Flush()

		for {
			select {
			case <-ctx.Done():
				return nil
			case env, ok := <-events:
				if !ok {
					return nil
				}
				data, merr := json.Marshal(env.Data)
				if merr != nil {
					h.logger.Errorf("Events - failed to marshal %s event: %v", env.Event, merr)
					continue
				}
				if _, werr := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", env.Event, data); werr != nil {
					return nil
				}
				res.Flush()
			}
		}
	}
}
