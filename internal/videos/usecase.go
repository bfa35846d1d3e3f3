package videos

import (
	"context"

	"github.com/google/uuid"
	"github.com/streamhive/streamhive/internal/models"
	"github.com/streamhive/streamhive/pkg/utils"
)

type UseCase interface {
	UploadVideo(ctx context.Context, input *models.VideoUploadInput) (*models.Video, error)
	GetVideo(ctx context.Context, videoID uuid.UUID) (*models.Video, error)
	ListVideos(ctx context.Context, status models.ProcessingStatus, pq *utils.Pagination) (*models.VideoList, error)
	SearchVideos(ctx context.Context, query string, pq *utils.Pagination) (*models.VideoList, error)
	DeleteVideo(ctx context.Context, videoID uuid.UUID) error
	StreamVideo(ctx context.Context, videoID uuid.UUID, byteRange, source string) (*models.VideoStream, error)
	GetThumbnailURL(ctx context.Context, videoID uuid.UUID) (string, error)
}

// Enqueuer hands accepted uploads to the processing pipeline.
type Enqueuer interface {
	Enqueue(job *models.ProcessingJob)
}
