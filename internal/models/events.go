package models

// Processing events pushed to the owning user's channel. Delivery is
// best-effort; the videos table remains the source of truth.
const (
	EventProcessingStarted  = "video:processing:started"
	EventProcessingProgress = "video:processing:progress"
	EventProcessingComplete = "video:processing:complete"
	EventProcessingFailed   = "video:processing:failed"
)

type ProcessingStartedEvent struct {
	VideoID string `json:"videoId"`
	Status  string `json:"status"`
}

type ProcessingProgressEvent struct {
	VideoID  string `json:"videoId"`
	Progress int    `json:"progress"`
}

type ProcessingCompleteEvent struct {
	VideoID       string  `json:"videoId"`
	ProcessedPath *string `json:"processedPath"`
	ThumbnailPath *string `json:"thumbnailPath"`
	Warning       string  `json:"warning,omitempty"`
}

type ProcessingFailedEvent struct {
	VideoID string `json:"videoId"`
	Error   string `json:"error"`
}

// EventEnvelope is the wire format published to the notification channel.
type EventEnvelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}
