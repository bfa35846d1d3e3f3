package models

import (
	"io"
	"time"

	"github.com/google/uuid"
)

type ProcessingStatus string

const (
	StatusPending    ProcessingStatus = "pending"
	StatusProcessing ProcessingStatus = "processing"
	StatusCompleted  ProcessingStatus = "completed"
	StatusFailed     ProcessingStatus = "failed"
)

func (s ProcessingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

type Video struct {
	VideoID         uuid.UUID        `json:"video_id" db:"video_id" validate:"omitempty"`
	UserID          uuid.UUID        `json:"user_id" db:"user_id" validate:"omitempty"`
	OrganizationID  uuid.UUID        `json:"organization_id" db:"organization_id" validate:"omitempty"`
	FileName        string           `json:"file_name" db:"file_name" validate:"required,lte=255"`
	OriginalName    string           `json:"original_name" db:"original_name" validate:"required,lte=255"`
	MimeType        string           `json:"mime_type" db:"mime_type" validate:"required,lte=100"`
	FileSize        int64            `json:"file_size" db:"file_size" validate:"required"`
	StorageKey      string           `json:"storage_key" db:"storage_key" validate:"required,lte=512"`
	ProcessedKey    *string          `json:"processed_key" db:"processed_key"`
	ThumbnailKey    *string          `json:"thumbnail_key" db:"thumbnail_key"`
	Status          ProcessingStatus `json:"status" db:"status" validate:"omitempty"`
	Progress        int              `json:"progress" db:"progress" validate:"omitempty,gte=0,lte=100"`
	ProcessingError *string          `json:"processing_error" db:"processing_error"`
	Duration        *float64         `json:"duration" db:"duration"`
	Width           *int             `json:"width" db:"width"`
	Height          *int             `json:"height" db:"height"`
	UploadedAt      time.Time        `json:"uploaded_at" db:"uploaded_at"`
	UpdatedAt       time.Time        `json:"updated_at" db:"updated_at"`
}

// ProcessingUpdate is a partial update of a video's processing fields.
// Nil fields are left untouched by the repository.
type ProcessingUpdate struct {
	Status          *ProcessingStatus
	Progress        *int
	ProcessedKey    *string
	ThumbnailKey    *string
	ProcessingError *string
	Duration        *float64
	Width           *int
	Height          *int
}

// VideoUploadInput carries one multipart upload from the handler to the
// use case. File is read exactly once.
type VideoUploadInput struct {
	OriginalName string    `json:"original_name" validate:"required,lte=255"`
	MimeType     string    `json:"mime_type" validate:"required,lte=100"`
	FileSize     int64     `json:"file_size" validate:"required,gt=0"`
	File         io.Reader `json:"-" validate:"required"`
}

// VideoStream is one response-ready slice of a stored asset.
type VideoStream struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64
	ContentRange  string
	Partial       bool
}

type VideoList struct {
	Videos     []*Video `json:"videos"`
	TotalCount int      `json:"total_count"`
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
	HasMore    bool     `json:"has_more"`
}

// MediaInfo holds probe results. All fields are best-effort and may be zero.
type MediaInfo struct {
	Duration float64 `json:"duration"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
}
