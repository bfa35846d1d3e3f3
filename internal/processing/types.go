package processing

import (
	"context"

	"github.com/google/uuid"
	"github.com/streamhive/streamhive/internal/models"
)

// Processor executes one job end-to-end.
type Processor interface {
	Process(ctx context.Context, job *models.ProcessingJob) error
}

// RecordStore is the slice of the video repository the worker writes through.
type RecordStore interface {
	GetVideoByID(ctx context.Context, videoID uuid.UUID) (*models.Video, error)
	UpdateProcessing(ctx context.Context, videoID uuid.UUID, upd *models.ProcessingUpdate) error
}

// BlobStore stages originals to scratch space and persists produced assets.
type BlobStore interface {
	DownloadToFile(ctx context.Context, bucket, key, localPath string) error
	UploadFromFile(ctx context.Context, bucket, key, contentType, localPath string) error
}

// Transcoder drives the external media tool. Available is a structured
// capability check so callers never have to inspect error text.
type Transcoder interface {
	Available() bool
	Transcode(ctx context.Context, inputPath, outputPath string, onProgress func(percent int)) error
	ExtractThumbnail(ctx context.Context, inputPath, outputPath string) error
	Probe(ctx context.Context, inputPath string) (*models.MediaInfo, error)
}
