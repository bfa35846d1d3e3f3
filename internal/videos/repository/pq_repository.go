package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/streamhive/streamhive/internal/models"
	"github.com/streamhive/streamhive/internal/processing"
	"github.com/streamhive/streamhive/internal/videos"
	"github.com/streamhive/streamhive/pkg/utils"
)

type videoRepo struct {
	db *sqlx.DB
}

func NewVideoRepo(db *sqlx.DB) videos.Repository {
	return &videoRepo{
		db: db,
	}
}

func (v *videoRepo) CreateVideo(ctx context.Context, video *models.Video) (*models.Video, error) {
	created := &models.Video{}
	if err := v.db.QueryRowxContext(
		ctx,
		createVideoQuery,
		video.UserID,
		video.OrganizationID,
		video.FileName,
		video.OriginalName,
		video.MimeType,
		video.FileSize,
		video.StorageKey,
		models.StatusPending,
		0,
	).StructScan(created); err != nil {
		return nil, fmt.Errorf("failed to create video: %w", err)
	}
	return created, nil
}

func (v *videoRepo) GetVideoByID(ctx context.Context, videoID uuid.UUID) (*models.Video, error) {
	video := &models.Video{}
	if err := v.db.QueryRowxContext(
		ctx,
		getVideoByIDQuery,
		videoID,
	).StructScan(video); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, processing.ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to get video by id: %w", err)
	}
	return video, nil
}

func (v *videoRepo) GetVideos(ctx context.Context, userID uuid.UUID, status models.ProcessingStatus, pq *utils.Pagination) (*models.VideoList, error) {
	var totalCount int
	if err := v.db.GetContext(
		ctx,
		&totalCount,
		getTotalVideosByUserIDQuery,
		userID,
		status,
	); err != nil {
		return nil, fmt.Errorf("failed to get total videos count: %w", err)
	}
	if totalCount == 0 {
		return &models.VideoList{
			Videos:     make([]*models.Video, 0),
			TotalCount: 0,
			Page:       pq.GetPage(),
			PageSize:   pq.GetSize(),
			HasMore:    false,
		}, nil
	}
	rows, err := v.db.QueryxContext(
		ctx,
		getVideosByUserIDQuery,
		userID,
		status,
		pq.GetOffset(),
		pq.GetLimit(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get videos by user id: %w", err)
	}
	defer rows.Close()
	list := make([]*models.Video, 0, pq.GetSize())
	for rows.Next() {
		var video models.Video
		if err = rows.StructScan(&video); err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		list = append(list, &video)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan videos: %w", err)
	}
	return &models.VideoList{
		Videos:     list,
		TotalCount: totalCount,
		Page:       pq.GetPage(),
		PageSize:   pq.GetSize(),
		HasMore:    utils.GetHasMore(pq.GetPage(), totalCount, pq.GetSize()),
	}, nil
}

func (v *videoRepo) GetVideosByQuery(ctx context.Context, userID uuid.UUID, query string, pq *utils.Pagination) (*models.VideoList, error) {
	var totalCount int
	if err := v.db.GetContext(
		ctx,
		&totalCount,
		getTotalVideosBySearchQuery,
		userID,
		query,
	); err != nil {
		return nil, fmt.Errorf("failed to get total videos by query: %w", err)
	}
	if totalCount == 0 {
		return &models.VideoList{
			Videos:     make([]*models.Video, 0),
			TotalCount: 0,
			Page:       pq.GetPage(),
			PageSize:   pq.GetSize(),
			HasMore:    false,
		}, nil
	}
	rows, err := v.db.QueryxContext(
		ctx,
		getVideosBySearchQuery,
		userID,
		query,
		pq.GetOffset(),
		pq.GetLimit(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get videos by query: %w", err)
	}
	defer rows.Close()
	list := make([]*models.Video, 0, pq.GetSize())
	for rows.Next() {
		var video models.Video
		if err = rows.StructScan(&video); err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		list = append(list, &video)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan videos: %w", err)
	}
	return &models.VideoList{
		Videos:     list,
		TotalCount: totalCount,
		Page:       pq.GetPage(),
		PageSize:   pq.GetSize(),
		HasMore:    utils.GetHasMore(pq.GetPage(), totalCount, pq.GetSize()),
	}, nil
}

func (v *videoRepo) UpdateProcessing(ctx context.Context, videoID uuid.UUID, upd *models.ProcessingUpdate) error {
	res, err := v.db.ExecContext(
		ctx,
		updateProcessingQuery,
		upd.Status,
		upd.Progress,
		upd.ProcessedKey,
		upd.ThumbnailKey,
		upd.ProcessingError,
		upd.Duration,
		upd.Width,
		upd.Height,
		videoID,
	)
	if err != nil {
		return fmt.Errorf("failed to update video processing state: %w", err)
	}
	count, _ := res.RowsAffected()
	if count == 0 {
		return processing.ErrVideoNotFound
	}
	return nil
}

func (v *videoRepo) DeleteVideo(ctx context.Context, userID uuid.UUID, videoID uuid.UUID) error {
	res, err := v.db.ExecContext(
		ctx,
		deleteVideoQuery,
		videoID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	count, _ := res.RowsAffected()
	if count == 0 {
		return processing.ErrVideoNotFound
	}
	return nil
}

func (v *videoRepo) GetStorageUsage(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	if err := v.db.GetContext(ctx, &total, getStorageUsageQuery, userID); err != nil {
		return 0, fmt.Errorf("failed to get storage usage: %w", err)
	}
	return total, nil
}
