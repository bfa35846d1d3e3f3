package usecase

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/streamhive/streamhive/internal/config"
	"github.com/streamhive/streamhive/internal/models"
	"github.com/streamhive/streamhive/internal/videos"
	"github.com/streamhive/streamhive/pkg/utils"
)

type nopLogger struct{}

func (nopLogger) InitLogger()                                  {}
func (nopLogger) Debug(args ...interface{})                    {}
func (nopLogger) Debugf(template string, args ...interface{})  {}
func (nopLogger) Info(args ...interface{})                     {}
func (nopLogger) Infof(template string, args ...interface{})   {}
func (nopLogger) Warn(args ...interface{})                     {}
func (nopLogger) Warnf(template string, args ...interface{})   {}
func (nopLogger) Error(args ...interface{})                    {}
func (nopLogger) Errorf(template string, args ...interface{})  {}
func (nopLogger) Panic(args ...interface{})                    {}
func (nopLogger) Panicf(template string, args ...interface{})  {}
func (nopLogger) Fatal(args ...interface{})                    {}
func (nopLogger) Fatalf(template string, args ...interface{})  {}

type fakeVideoRepo struct {
	created *models.Video
	video   *models.Video
	deleted []uuid.UUID
}

func (f *fakeVideoRepo) CreateVideo(ctx context.Context, video *models.Video) (*models.Video, error) {
	created := *video
	created.VideoID = uuid.New()
	created.Status = models.StatusPending
	f.created = &created
	return &created, nil
}

func (f *fakeVideoRepo) GetVideos(ctx context.Context, userID uuid.UUID, status models.ProcessingStatus, pq *utils.Pagination) (*models.VideoList, error) {
	return &models.VideoList{Videos: []*models.Video{}}, nil
}

func (f *fakeVideoRepo) GetVideosByQuery(ctx context.Context, userID uuid.UUID, query string, pq *utils.Pagination) (*models.VideoList, error) {
	return &models.VideoList{Videos: []*models.Video{}}, nil
}

func (f *fakeVideoRepo) GetVideoByID(ctx context.Context, videoID uuid.UUID) (*models.Video, error) {
	return f.video, nil
}

func (f *fakeVideoRepo) UpdateProcessing(ctx context.Context, videoID uuid.UUID, upd *models.ProcessingUpdate) error {
	return nil
}

func (f *fakeVideoRepo) DeleteVideo(ctx context.Context, userID uuid.UUID, videoID uuid.UUID) error {
	f.deleted = append(f.deleted, videoID)
	return nil
}

func (f *fakeVideoRepo) GetStorageUsage(ctx context.Context, userID uuid.UUID) (int64, error) {
	return 0, nil
}

type objectRequest struct {
	bucket    string
	key       string
	byteRange string
}

type fakeAWSRepo struct {
	puts    []objectRequest
	gets    []objectRequest
	removed []objectRequest
}

func (f *fakeAWSRepo) PutObject(ctx context.Context, bucket, key, contentType string, size int64, body io.Reader) error {
	f.puts = append(f.puts, objectRequest{bucket: bucket, key: key})
	return nil
}

func (f *fakeAWSRepo) GetObjectRange(ctx context.Context, bucket, key, byteRange string) (*s3.GetObjectOutput, error) {
	f.gets = append(f.gets, objectRequest{bucket: bucket, key: key, byteRange: byteRange})
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader("payload"))}, nil
}

func (f *fakeAWSRepo) DownloadToFile(ctx context.Context, bucket, key, localPath string) error {
	return nil
}

func (f *fakeAWSRepo) UploadFromFile(ctx context.Context, bucket, key, contentType, localPath string) error {
	return nil
}

func (f *fakeAWSRepo) RemoveObject(ctx context.Context, bucket, key string) error {
	f.removed = append(f.removed, objectRequest{bucket: bucket, key: key})
	return nil
}

func (f *fakeAWSRepo) PresignGetURL(ctx context.Context, bucket, key string, expiry time.Duration) (string, error) {
	return "https://signed.example/" + key, nil
}

type fakeEnqueuer struct {
	jobs []*models.ProcessingJob
}

func (f *fakeEnqueuer) Enqueue(job *models.ProcessingJob) {
	f.jobs = append(f.jobs, job)
}

type ucHarness struct {
	repo  *fakeVideoRepo
	aws   *fakeAWSRepo
	queue *fakeEnqueuer
	uc    videos.UseCase
}

func newUCHarness() *ucHarness {
	cfg := &config.Config{
		S3: config.S3Config{
			InputBucket:  "uploads",
			OutputBucket: "assets",
		},
		Upload: config.UploadConfig{
			MaxVideoSize:   1 << 20,
			AllowedFormats: []string{"video/mp4", "video/webm"},
		},
	}
	h := &ucHarness{
		repo:  &fakeVideoRepo{},
		aws:   &fakeAWSRepo{},
		queue: &fakeEnqueuer{},
	}
	h.uc = NewVideoUseCase(cfg, h.repo, h.aws, h.queue, nopLogger{})
	return h
}

func ctxWithUser(role models.Role) (context.Context, *models.User) {
	user := &models.User{
		UserID:         uuid.New(),
		Email:          "user@test.local",
		Role:           role,
		OrganizationID: uuid.New(),
		IsActive:       true,
	}
	return context.WithValue(context.Background(), utils.UserCtxKey{}, user), user
}

func uploadInput() *models.VideoUploadInput {
	return &models.VideoUploadInput{
		OriginalName: "clip.mp4",
		MimeType:     "video/mp4",
		FileSize:     1024,
		File:         strings.NewReader("fake bytes"),
	}
}

func TestUploadVideoStoresAndEnqueues(t *testing.T) {
	h := newUCHarness()
	ctx, user := ctxWithUser(models.EditorRole)

	video, err := h.uc.UploadVideo(ctx, uploadInput())
	if err != nil {
		t.Fatalf("UploadVideo: %v", err)
	}
	if video.UserID != user.UserID {
		t.Errorf("video user = %s, want %s", video.UserID, user.UserID)
	}
	if len(h.aws.puts) != 1 || h.aws.puts[0].bucket != "uploads" {
		t.Fatalf("puts = %+v, want one object in uploads", h.aws.puts)
	}
	if h.repo.created == nil || h.repo.created.StorageKey != h.aws.puts[0].key {
		t.Errorf("record storage key does not match stored object")
	}
	if len(h.queue.jobs) != 1 {
		t.Fatalf("jobs = %d, want 1", len(h.queue.jobs))
	}
	job := h.queue.jobs[0]
	if job.VideoID != video.VideoID || job.StorageKey != video.StorageKey {
		t.Errorf("job = %+v does not reference the created record", job)
	}
}

func TestUploadVideoRejections(t *testing.T) {
	tests := []struct {
		name   string
		role   models.Role
		mutate func(in *models.VideoUploadInput)
	}{
		{
			name: "viewer role cannot upload",
			role: models.ViewerRole,
		},
		{
			name: "unsupported format",
			role: models.EditorRole,
			mutate: func(in *models.VideoUploadInput) {
				in.MimeType = "application/pdf"
			},
		},
		{
			name: "file exceeds size limit",
			role: models.EditorRole,
			mutate: func(in *models.VideoUploadInput) {
				in.FileSize = 2 << 20
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newUCHarness()
			ctx, _ := ctxWithUser(tt.role)
			in := uploadInput()
			if tt.mutate != nil {
				tt.mutate(in)
			}
			if _, err := h.uc.UploadVideo(ctx, in); err == nil {
				t.Fatal("UploadVideo succeeded, want error")
			}
			if len(h.aws.puts) != 0 {
				t.Errorf("rejected upload stored an object: %+v", h.aws.puts)
			}
			if len(h.queue.jobs) != 0 {
				t.Errorf("rejected upload enqueued a job")
			}
		})
	}
}

func TestStreamVideoSourceSelection(t *testing.T) {
	processedKey := "processed/abc.mp4"
	tests := []struct {
		name         string
		processedKey *string
		source       string
		wantBucket   string
		wantKey      string
		wantErr      bool
	}{
		{
			name:         "default prefers processed asset",
			processedKey: &processedKey,
			wantBucket:   "assets",
			wantKey:      processedKey,
		},
		{
			name:       "default falls back to original",
			wantBucket: "uploads",
			wantKey:    "uploads/u/orig.mov",
		},
		{
			name:         "original pins the upload",
			processedKey: &processedKey,
			source:       "original",
			wantBucket:   "uploads",
			wantKey:      "uploads/u/orig.mov",
		},
		{
			name:         "processed pins the transcode",
			processedKey: &processedKey,
			source:       "processed",
			wantBucket:   "assets",
			wantKey:      processedKey,
		},
		{
			name:    "processed without asset fails",
			source:  "processed",
			wantErr: true,
		},
		{
			name:    "unknown source fails",
			source:  "directors-cut",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newUCHarness()
			ctx, user := ctxWithUser(models.EditorRole)
			h.repo.video = &models.Video{
				VideoID:      uuid.New(),
				UserID:       user.UserID,
				StorageKey:   "uploads/u/orig.mov",
				MimeType:     "video/quicktime",
				ProcessedKey: tt.processedKey,
			}

			stream, err := h.uc.StreamVideo(ctx, h.repo.video.VideoID, "bytes=0-99", tt.source)
			if tt.wantErr {
				if err == nil {
					t.Fatal("StreamVideo succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("StreamVideo: %v", err)
			}
			defer stream.Body.Close()
			if len(h.aws.gets) != 1 {
				t.Fatalf("gets = %d, want 1", len(h.aws.gets))
			}
			got := h.aws.gets[0]
			if got.bucket != tt.wantBucket || got.key != tt.wantKey {
				t.Errorf("fetched %s/%s, want %s/%s", got.bucket, got.key, tt.wantBucket, tt.wantKey)
			}
			if got.byteRange != "bytes=0-99" {
				t.Errorf("range = %q, want bytes=0-99", got.byteRange)
			}
		})
	}
}

func TestStreamVideoOwnership(t *testing.T) {
	h := newUCHarness()
	ctx, _ := ctxWithUser(models.EditorRole)
	h.repo.video = &models.Video{
		VideoID:    uuid.New(),
		UserID:     uuid.New(),
		StorageKey: "uploads/other/orig.mp4",
		MimeType:   "video/mp4",
	}
	if _, err := h.uc.StreamVideo(ctx, h.repo.video.VideoID, "", ""); err == nil {
		t.Fatal("StreamVideo on another user's video succeeded, want error")
	}

	adminCtx, _ := ctxWithUser(models.AdminRole)
	stream, err := h.uc.StreamVideo(adminCtx, h.repo.video.VideoID, "", "")
	if err != nil {
		t.Fatalf("admin StreamVideo: %v", err)
	}
	stream.Body.Close()
}

func TestDeleteVideoSweepsStoredObjects(t *testing.T) {
	h := newUCHarness()
	ctx, user := ctxWithUser(models.EditorRole)
	processedKey := "processed/abc.mp4"
	thumbKey := "thumbnails/abc.jpg"
	h.repo.video = &models.Video{
		VideoID:      uuid.New(),
		UserID:       user.UserID,
		StorageKey:   "uploads/u/orig.mp4",
		ProcessedKey: &processedKey,
		ThumbnailKey: &thumbKey,
	}

	if err := h.uc.DeleteVideo(ctx, h.repo.video.VideoID); err != nil {
		t.Fatalf("DeleteVideo: %v", err)
	}
	if len(h.repo.deleted) != 1 {
		t.Fatalf("deleted records = %d, want 1", len(h.repo.deleted))
	}
	if len(h.aws.removed) != 3 {
		t.Fatalf("removed objects = %d, want original, processed and thumbnail", len(h.aws.removed))
	}
}
