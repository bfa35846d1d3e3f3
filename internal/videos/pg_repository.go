package videos

import (
	"context"

	"github.com/google/uuid"
	"github.com/streamhive/streamhive/internal/models"
	"github.com/streamhive/streamhive/pkg/utils"
)

// Repository persists video records. UpdateProcessing applies partial
// updates so the transcode worker can write status and progress without
// clobbering concurrent metadata.
type Repository interface {
	CreateVideo(ctx context.Context, video *models.Video) (*models.Video, error)
	GetVideos(ctx context.Context, userID uuid.UUID, status models.ProcessingStatus, pq *utils.Pagination) (*models.VideoList, error)
	GetVideosByQuery(ctx context.Context, userID uuid.UUID, query string, pq *utils.Pagination) (*models.VideoList, error)
	GetVideoByID(ctx context.Context, videoID uuid.UUID) (*models.Video, error)
	UpdateProcessing(ctx context.Context, videoID uuid.UUID, upd *models.ProcessingUpdate) error
	DeleteVideo(ctx context.Context, userID uuid.UUID, videoID uuid.UUID) error
	GetStorageUsage(ctx context.Context, userID uuid.UUID) (int64, error)
}
