package utils

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// IsAllowedFormat reports whether mimeType is one of the configured
// upload formats. Matching is case-insensitive.
func IsAllowedFormat(mimeType string, allowed []string) bool {
	for _, f := range allowed {
		if strings.EqualFold(f, mimeType) {
			return true
		}
	}
	return false
}

// BuildStorageKey returns the object key for an uploaded original.
// The original filename only contributes its extension so keys stay
// unique and path-safe.
func BuildStorageKey(userID uuid.UUID, originalName string) (string, string) {
	ext := strings.ToLower(filepath.Ext(originalName))
	fileName := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	return fileName, fmt.Sprintf("uploads/%s/%s", userID.String(), fileName)
}

// ProcessedKey returns the output bucket key for the transcoded asset.
func ProcessedKey(videoID uuid.UUID) string {
	return fmt.Sprintf("processed/%s.mp4", videoID.String())
}

// ThumbnailKey returns the output bucket key for the thumbnail image.
func ThumbnailKey(videoID uuid.UUID) string {
	return fmt.Sprintf("thumbnails/%s.jpg", videoID.String())
}
