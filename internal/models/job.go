package models

import "github.com/google/uuid"

// ProcessingJob is one unit of transcode work. It lives only in the
// in-process queue and is dropped once the worker settles.
type ProcessingJob struct {
	VideoID    uuid.UUID `json:"video_id"`
	UserID     uuid.UUID `json:"user_id"`
	StorageKey string    `json:"storage_key"`
	FileName   string    `json:"file_name"`
}
