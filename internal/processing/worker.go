package processing

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/streamhive/streamhive/internal/config"
	"github.com/streamhive/streamhive/internal/models"
	"github.com/streamhive/streamhive/internal/notify"
	"github.com/streamhive/streamhive/pkg/logger"
	"github.com/streamhive/streamhive/pkg/utils"
)

const defaultProgressStep = 5

type transcodeWorker struct {
	cfg        *config.Config
	records    RecordStore
	blobs      BlobStore
	transcoder Transcoder
	notifier   notify.Notifier
	logger     logger.Logger
}

func NewTranscodeWorker(
	cfg *config.Config,
	records RecordStore,
	blobs BlobStore,
	transcoder Transcoder,
	notifier notify.Notifier,
	logger logger.Logger,
) Processor {
	return &transcodeWorker{
		cfg:        cfg,
		records:    records,
		blobs:      blobs,
		transcoder: transcoder,
		notifier:   notifier,
		logger:     logger,
	}
}

// Process drives one job from pending to a terminal state. Scratch files
// are removed on every exit path.
func (w *transcodeWorker) Process(ctx context.Context, job *models.ProcessingJob) error {
	w.logger.Infof("starting video processing: %s", job.VideoID)

	video, err := w.records.GetVideoByID(ctx, job.VideoID)
	if err != nil {
		// Nothing to update: notify and abort before any transition. A
		// store outage is reported as such, not as a missing record.
		var cause error
		if errors.Is(err, ErrVideoNotFound) {
			cause = errors.Wrapf(err, "video %s", job.VideoID)
		} else {
			cause = errors.Wrapf(err, "failed to load video %s", job.VideoID)
		}
		w.notify(ctx, job.UserID, models.EventProcessingFailed, models.ProcessingFailedEvent{
			VideoID: job.VideoID.String(),
			Error:   cause.Error(),
		})
		return cause
	}

	if err = w.markProcessing(ctx, job); err != nil {
		return w.fail(ctx, job, err)
	}

	scratchDir := filepath.Join(w.scratchRoot(), job.VideoID.String())
	if err = os.MkdirAll(scratchDir, 0o755); err != nil {
		return w.fail(ctx, job, errors.Wrap(err, "failed to create scratch dir"))
	}
	defer func() {
		if rmErr := os.RemoveAll(scratchDir); rmErr != nil {
			w.logger.Errorf("failed to clean scratch dir %s: %v", scratchDir, rmErr)
		}
	}()

	inputPath := filepath.Join(scratchDir, "source"+filepath.Ext(job.FileName))
	if err = w.blobs.DownloadToFile(ctx, w.cfg.S3.InputBucket, job.StorageKey, inputPath); err != nil {
		return w.fail(ctx, job, errors.Wrap(err, "failed to stage input"))
	}

	if !w.transcoder.Available() {
		return w.completeDegraded(ctx, job)
	}

	w.persistMediaInfo(ctx, job, inputPath)

	outputPath := filepath.Join(scratchDir, "processed.mp4")
	if err = w.transcode(ctx, job, inputPath, outputPath); err != nil {
		if errors.Is(err, ErrTranscoderUnavailable) {
			return w.completeDegraded(ctx, job)
		}
		return w.fail(ctx, job, errors.Wrap(err, "transcode failed"))
	}

	// Thumbnail extraction is best-effort and must never fail the job.
	thumbnailPath := filepath.Join(scratchDir, "thumbnail.jpg")
	if err = w.transcoder.ExtractThumbnail(ctx, inputPath, thumbnailPath); err != nil {
		w.logger.Warnf("thumbnail extraction failed for video %s, continuing without it: %v", job.VideoID, err)
		thumbnailPath = ""
	}

	processedKey := utils.ProcessedKey(job.VideoID)
	if err = w.blobs.UploadFromFile(ctx, w.cfg.S3.OutputBucket, processedKey, "video/mp4", outputPath); err != nil {
		return w.fail(ctx, job, errors.Wrap(err, "failed to store transcoded asset"))
	}

	var thumbnailKey *string
	if thumbnailPath != "" {
		key := utils.ThumbnailKey(job.VideoID)
		if err = w.blobs.UploadFromFile(ctx, w.cfg.S3.OutputBucket, key, "image/jpeg", thumbnailPath); err != nil {
			w.logger.Warnf("thumbnail upload failed for video %s, continuing without it: %v", job.VideoID, err)
		} else {
			thumbnailKey = &key
		}
	}

	status := models.StatusCompleted
	progress := 100
	if err = w.records.UpdateProcessing(ctx, job.VideoID, &models.ProcessingUpdate{
		Status:       &status,
		Progress:     &progress,
		ProcessedKey: &processedKey,
		ThumbnailKey: thumbnailKey,
	}); err != nil {
		return w.fail(ctx, job, errors.Wrap(err, "failed to finalize record"))
	}

	w.notify(ctx, job.UserID, models.EventProcessingComplete, models.ProcessingCompleteEvent{
		VideoID:       job.VideoID.String(),
		ProcessedPath: &processedKey,
		ThumbnailPath: thumbnailKey,
	})

	w.logger.Infof("video processing completed: %s", video.VideoID)
	return nil
}

func (w *transcodeWorker) markProcessing(ctx context.Context, job *models.ProcessingJob) error {
	status := models.StatusProcessing
	progress := 0
	if err := w.records.UpdateProcessing(ctx, job.VideoID, &models.ProcessingUpdate{
		Status:   &status,
		Progress: &progress,
	}); err != nil {
		return errors.Wrap(err, "failed to mark video processing")
	}
	w.notify(ctx, job.UserID, models.EventProcessingStarted, models.ProcessingStartedEvent{
		VideoID: job.VideoID.String(),
		Status:  string(models.StatusProcessing),
	})
	return nil
}

// transcode runs the external tool relaying throttled progress. A sampled
// value is reported only when it exceeds the last reported value by more
// than the configured step; the final 100 is forced by the caller.
func (w *transcodeWorker) transcode(ctx context.Context, job *models.ProcessingJob, inputPath, outputPath string) error {
	if timeout := w.cfg.Worker.TranscodeTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	step := w.cfg.Worker.ProgressStep
	if step <= 0 {
		step = defaultProgressStep
	}

	last := 0
	onProgress := func(percent int) {
		if percent <= last+step {
			return
		}
		last = percent
		p := percent
		if err := w.records.UpdateProcessing(ctx, job.VideoID, &models.ProcessingUpdate{Progress: &p}); err != nil {
			w.logger.Errorf("failed to persist progress for video %s: %v", job.VideoID, err)
		}
		w.notify(ctx, job.UserID, models.EventProcessingProgress, models.ProcessingProgressEvent{
			VideoID:  job.VideoID.String(),
			Progress: percent,
		})
	}

	return w.transcoder.Transcode(ctx, inputPath, outputPath, onProgress)
}

// persistMediaInfo stores probed stream metadata on the record. Probe
// failures only cost the metadata, never the job.
func (w *transcodeWorker) persistMediaInfo(ctx context.Context, job *models.ProcessingJob, inputPath string) {
	info, err := w.transcoder.Probe(ctx, inputPath)
	if err != nil {
		w.logger.Warnf("probe failed for video %s: %v", job.VideoID, err)
		return
	}
	upd := &models.ProcessingUpdate{}
	if info.Duration > 0 {
		upd.Duration = &info.Duration
	}
	if info.Width > 0 {
		upd.Width = &info.Width
	}
	if info.Height > 0 {
		upd.Height = &info.Height
	}
	if upd.Duration == nil && upd.Width == nil && upd.Height == nil {
		return
	}
	if err = w.records.UpdateProcessing(ctx, job.VideoID, upd); err != nil {
		w.logger.Errorf("failed to persist media info for video %s: %v", job.VideoID, err)
	}
}

// completeDegraded finishes a job without transcoding: the original asset
// stays servable, the record carries a warning instead of a failure.
func (w *transcodeWorker) completeDegraded(ctx context.Context, job *models.ProcessingJob) error {
	w.logger.Warnf("transcoder unavailable, completing video %s without processing", job.VideoID)

	status := models.StatusCompleted
	progress := 100
	warning := TranscoderUnavailableWarning
	if err := w.records.UpdateProcessing(ctx, job.VideoID, &models.ProcessingUpdate{
		Status:          &status,
		Progress:        &progress,
		ProcessingError: &warning,
	}); err != nil {
		return w.fail(ctx, job, errors.Wrap(err, "failed to finalize degraded record"))
	}

	w.notify(ctx, job.UserID, models.EventProcessingComplete, models.ProcessingCompleteEvent{
		VideoID:       job.VideoID.String(),
		ProcessedPath: nil,
		ThumbnailPath: nil,
		Warning:       TranscoderUnavailableWarning,
	})
	return nil
}

func (w *transcodeWorker) fail(ctx context.Context, job *models.ProcessingJob, cause error) error {
	w.logger.Errorf("video processing failed: %s: %v", job.VideoID, cause)

	status := models.StatusFailed
	msg := cause.Error()
	if err := w.records.UpdateProcessing(ctx, job.VideoID, &models.ProcessingUpdate{
		Status:          &status,
		ProcessingError: &msg,
	}); err != nil {
		w.logger.Errorf("failed to persist failure for video %s: %v", job.VideoID, err)
	}

	w.notify(ctx, job.UserID, models.EventProcessingFailed, models.ProcessingFailedEvent{
		VideoID: job.VideoID.String(),
		Error:   msg,
	})
	return cause
}

// notify is fire-and-forget: publish errors are logged, never propagated.
func (w *transcodeWorker) notify(ctx context.Context, userID uuid.UUID, event string, data interface{}) {
	if err := w.notifier.Notify(ctx, userID, event, data); err != nil {
		w.logger.Errorf("failed to publish %s event: %v", event, err)
	}
}

func (w *transcodeWorker) scratchRoot() string {
	if w.cfg.Worker.ScratchDir != "" {
		return w.cfg.Worker.ScratchDir
	}
	return filepath.Join(os.TempDir(), "streamhive")
}
