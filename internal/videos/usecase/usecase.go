package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/streamhive/streamhive/internal/config"
	"github.com/streamhive/streamhive/internal/models"
	"github.com/streamhive/streamhive/internal/videos"
	"github.com/streamhive/streamhive/pkg/logger"
	"github.com/streamhive/streamhive/pkg/utils"
)

const thumbnailURLExpiry = 60 * time.Minute

type videoUC struct {
	cfg       *config.Config
	videoRepo videos.Repository
	awsRepo   videos.AWSRepository
	queue     videos.Enqueuer
	logger    logger.Logger
}

func NewVideoUseCase(
	cfg *config.Config,
	videoRepo videos.Repository,
	awsRepo videos.AWSRepository,
	queue videos.Enqueuer,
	log logger.Logger,
) videos.UseCase {
	return &videoUC{
		cfg:       cfg,
		videoRepo: videoRepo,
		awsRepo:   awsRepo,
		queue:     queue,
		logger:    log,
	}
}

// UploadVideo stores the original in the input bucket, creates the record
// in pending state and hands the job to the processing queue. The queue
// hand-off is the last step so a failed upload never leaves a ghost job.
func (v *videoUC) UploadVideo(ctx context.Context, input *models.VideoUploadInput) (*models.Video, error) {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		v.logger.Errorf("UploadVideo - GetUserFromCtx: %v", err)
		return nil, err
	}
	if !user.Role.CanUpload() {
		return nil, fmt.Errorf("role %s is not allowed to upload videos", user.Role)
	}
	if err = utils.ValidateStruct(ctx, input); err != nil {
		v.logger.Errorf("UploadVideo - ValidateStruct: %v", err)
		return nil, fmt.Errorf("invalid input: %v", err)
	}
	if !utils.IsAllowedFormat(input.MimeType, v.cfg.Upload.AllowedFormats) {
		return nil, fmt.Errorf("unsupported video format: %s", input.MimeType)
	}
	if v.cfg.Upload.MaxVideoSize > 0 && input.FileSize > v.cfg.Upload.MaxVideoSize {
		return nil, fmt.Errorf("file size %d exceeds the %d byte limit", input.FileSize, v.cfg.Upload.MaxVideoSize)
	}

	fileName, storageKey := utils.BuildStorageKey(user.UserID, input.OriginalName)
	if err = v.awsRepo.PutObject(ctx, v.cfg.S3.InputBucket, storageKey, input.MimeType, input.FileSize, input.File); err != nil {
		v.logger.Errorf("UploadVideo - PutObject: %v", err)
		return nil, fmt.Errorf("failed to store upload: %v", err)
	}

	video, err := v.videoRepo.CreateVideo(ctx, &models.Video{
		UserID:         user.UserID,
		OrganizationID: user.OrganizationID,
		FileName:       fileName,
		OriginalName:   input.OriginalName,
		MimeType:       input.MimeType,
		FileSize:       input.FileSize,
		StorageKey:     storageKey,
	})
	if err != nil {
		v.logger.Errorf("UploadVideo - CreateVideo: %v", err)
		return nil, err
	}

	v.queue.Enqueue(&models.ProcessingJob{
		VideoID:    video.VideoID,
		UserID:     video.UserID,
		StorageKey: video.StorageKey,
		FileName:   video.FileName,
	})
	return video, nil
}

func (v *videoUC) GetVideo(ctx context.Context, videoID uuid.UUID) (*models.Video, error) {
	video, err := v.ownedVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	return video, nil
}

func (v *videoUC) ListVideos(ctx context.Context, status models.ProcessingStatus, pq *utils.Pagination) (*models.VideoList, error) {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("unknown status filter: %s", status)
	}
	return v.videoRepo.GetVideos(ctx, user.UserID, status, pq)
}

func (v *videoUC) SearchVideos(ctx context.Context, query string, pq *utils.Pagination) (*models.VideoList, error) {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	return v.videoRepo.GetVideosByQuery(ctx, user.UserID, query, pq)
}

// DeleteVideo removes the record first, then sweeps stored objects.
// Object removal is best effort: an orphaned blob is preferable to a
// record pointing at deleted data.
func (v *videoUC) DeleteVideo(ctx context.Context, videoID uuid.UUID) error {
	video, err := v.ownedVideo(ctx, videoID)
	if err != nil {
		return err
	}
	if err = v.videoRepo.DeleteVideo(ctx, video.UserID, videoID); err != nil {
		return err
	}

	if err = v.awsRepo.RemoveObject(ctx, v.cfg.S3.InputBucket, video.StorageKey); err != nil {
		v.logger.Warnf("DeleteVideo - failed to remove original %s: %v", video.StorageKey, err)
	}
	if video.ProcessedKey != nil {
		if err = v.awsRepo.RemoveObject(ctx, v.cfg.S3.OutputBucket, *video.ProcessedKey); err != nil {
			v.logger.Warnf("DeleteVideo - failed to remove processed asset %s: %v", *video.ProcessedKey, err)
		}
	}
	if video.ThumbnailKey != nil {
		if err = v.awsRepo.RemoveObject(ctx, v.cfg.S3.OutputBucket, *video.ThumbnailKey); err != nil {
			v.logger.Warnf("DeleteVideo - failed to remove thumbnail %s: %v", *video.ThumbnailKey, err)
		}
	}
	return nil
}

// StreamVideo serves the transcoded asset when one exists, falling back
// to the original upload so degraded completions stay playable. The
// source argument pins one variant: "original", "processed", or empty
// for the default fallback behavior.
func (v *videoUC) StreamVideo(ctx context.Context, videoID uuid.UUID, byteRange, source string) (*models.VideoStream, error) {
	video, err := v.ownedVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}

	bucket := v.cfg.S3.InputBucket
	key := video.StorageKey
	contentType := video.MimeType
	switch source {
	case "", "auto":
		if video.ProcessedKey != nil {
			bucket = v.cfg.S3.OutputBucket
			key = *video.ProcessedKey
			contentType = "video/mp4"
		}
	case "original":
	case "processed":
		if video.ProcessedKey == nil {
			return nil, fmt.Errorf("video %s has no processed asset", videoID)
		}
		bucket = v.cfg.S3.OutputBucket
		key = *video.ProcessedKey
		contentType = "video/mp4"
	default:
		return nil, fmt.Errorf("unknown stream source: %s", source)
	}

	res, err := v.awsRepo.GetObjectRange(ctx, bucket, key, byteRange)
	if err != nil {
		v.logger.Errorf("StreamVideo - GetObjectRange: %v", err)
		return nil, fmt.Errorf("failed to open video stream: %v", err)
	}

	stream := &models.VideoStream{
		Body:        res.Body,
		ContentType: contentType,
	}
	if res.ContentType != nil && *res.ContentType != "" {
		stream.ContentType = *res.ContentType
	}
	if res.ContentLength != nil {
		stream.ContentLength = *res.ContentLength
	}
	if res.ContentRange != nil {
		stream.ContentRange = *res.ContentRange
		stream.Partial = true
	}
	return stream, nil
}

func (v *videoUC) GetThumbnailURL(ctx context.Context, videoID uuid.UUID) (string, error) {
	video, err := v.ownedVideo(ctx, videoID)
	if err != nil {
		return "", err
	}
	if video.ThumbnailKey == nil {
		return "", fmt.Errorf("video %s has no thumbnail", videoID)
	}
	url, err := v.awsRepo.PresignGetURL(ctx, v.cfg.S3.OutputBucket, *video.ThumbnailKey, thumbnailURLExpiry)
	if err != nil {
		v.logger.Errorf("GetThumbnailURL - PresignGetURL: %v", err)
		return "", fmt.Errorf("failed to presign thumbnail URL: %v", err)
	}
	return url, nil
}

// ownedVideo loads a video and enforces that the caller owns it. Admins
// can reach any video.
func (v *videoUC) ownedVideo(ctx context.Context, videoID uuid.UUID) (*models.Video, error) {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	video, err := v.videoRepo.GetVideoByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video.UserID != user.UserID && user.Role != models.AdminRole {
		return nil, fmt.Errorf("video %s does not belong to the current user", videoID)
	}
	return video, nil
}
