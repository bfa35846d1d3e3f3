package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	adminHttp "github.com/streamhive/streamhive/internal/admin/delivery/http"
	adminRepository "github.com/streamhive/streamhive/internal/admin/repository"
	adminUsecase "github.com/streamhive/streamhive/internal/admin/usecase"
	authHttp "github.com/streamhive/streamhive/internal/auth/delivery/http"
	authRepository "github.com/streamhive/streamhive/internal/auth/repository"
	authUsecase "github.com/streamhive/streamhive/internal/auth/usecase"
	"github.com/streamhive/streamhive/internal/middleware"
	"github.com/streamhive/streamhive/internal/notify"
	"github.com/streamhive/streamhive/internal/processing"
	videoHttp "github.com/streamhive/streamhive/internal/videos/delivery/http"
	videoRepository "github.com/streamhive/streamhive/internal/videos/repository"
	videoUsecase "github.com/streamhive/streamhive/internal/videos/usecase"
	"github.com/streamhive/streamhive/pkg/utils"
)

func (s *Server) MapHandlers(e *echo.Echo) error {
	aRepo := authRepository.NewAuthRepo(s.db)
	vRepo := videoRepository.NewVideoRepo(s.db)
	vAWSRepo := videoRepository.NewAwsRepository(s.s3Client, s.preSignClient)
	admRepo := adminRepository.NewAdminRepo(s.db)

	notifier := notify.NewRedisNotifier(s.redisClient, s.logger)
	transcoder := processing.NewFFmpegTranscoder(s.cfg, s.logger)
	worker := processing.NewTranscodeWorker(s.cfg, vRepo, vAWSRepo, transcoder, notifier, s.logger)
	s.queue = processing.NewQueue(worker, s.logger)

	authUC := authUsecase.NewAuthUseCase(s.cfg, aRepo, s.logger)
	videoUC := videoUsecase.NewVideoUseCase(s.cfg, vRepo, vAWSRepo, s.queue, s.logger)
	adminUC := adminUsecase.NewAdminUseCase(s.cfg, admRepo, s.logger)

	authHandlers := authHttp.NewAuthHandler(s.cfg, authUC, s.logger)
	videoHandlers := videoHttp.NewVideoHandler(videoUC, notifier, s.logger)
	adminHandlers := adminHttp.NewAdminHandler(adminUC, s.logger)

	mw := middleware.NewMiddlewareManager(authUC, s.cfg, []string{"*"}, s.logger)

	v1 := e.Group("/api/v1")
	health := v1.Group("/health")
	authGroup := v1.Group("/auth")
	videoGroup := v1.Group("/videos")
	adminGroup := v1.Group("/admin")

	authHttp.MapAuthRoutes(authGroup, authHandlers, mw)
	videoHttp.MapVideoRoutes(videoGroup, videoHandlers, mw)
	adminHttp.MapAdminRoutes(adminGroup, adminHandlers, mw)
	health.GET("", func(c echo.Context) error {
		s.logger.Infof("Health check RequestID: %s", utils.GetRequestID(c))
		status := map[string]interface{}{
			"status":         "OK",
			"queue_size":     s.queue.Size(),
			"queue_draining": s.queue.IsDraining(),
		}
		if cpuUsage, err := utils.CPUUsage(); err == nil {
			status["cpu_percent"] = cpuUsage
		}
		return c.JSON(http.StatusOK, status)
	})
	return nil
}
