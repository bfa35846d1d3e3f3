package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestIsAllowedFormat(t *testing.T) {
	allowed := []string{"video/mp4", "video/webm"}

	cases := []struct {
		name string
		mime string
		want bool
	}{
		{"exact match", "video/mp4", true},
		{"case insensitive", "Video/MP4", true},
		{"not listed", "video/x-flv", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsAllowedFormat(tc.mime, allowed); got != tc.want {
				t.Errorf("IsAllowedFormat(%q) = %v, want %v", tc.mime, got, tc.want)
			}
		})
	}
}

func TestBuildStorageKey(t *testing.T) {
	userID := uuid.New()
	fileName, key := BuildStorageKey(userID, "My Vacation.MOV")

	if !strings.HasSuffix(fileName, ".mov") {
		t.Errorf("file name %q does not keep the lowercased extension", fileName)
	}
	if strings.Contains(fileName, "My Vacation") {
		t.Errorf("file name %q leaks the original name", fileName)
	}
	wantPrefix := "uploads/" + userID.String() + "/"
	if !strings.HasPrefix(key, wantPrefix) {
		t.Errorf("key %q does not start with %q", key, wantPrefix)
	}
	if !strings.HasSuffix(key, fileName) {
		t.Errorf("key %q does not end with the generated file name %q", key, fileName)
	}

	_, key2 := BuildStorageKey(userID, "My Vacation.MOV")
	if key == key2 {
		t.Error("two uploads of the same name produced the same key")
	}
}

func TestDerivedAssetKeys(t *testing.T) {
	videoID := uuid.New()
	if got, want := ProcessedKey(videoID), "processed/"+videoID.String()+".mp4"; got != want {
		t.Errorf("ProcessedKey = %q, want %q", got, want)
	}
	if got, want := ThumbnailKey(videoID), "thumbnails/"+videoID.String()+".jpg"; got != want {
		t.Errorf("ThumbnailKey = %q, want %q", got, want)
	}
}
