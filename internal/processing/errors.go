package processing

import "github.com/pkg/errors"

var (
	// ErrVideoNotFound aborts a job before any state transition is persisted.
	ErrVideoNotFound = errors.New("video record not found")

	// ErrTranscoderUnavailable marks the degraded-completion path: the
	// transcode tool is missing from the execution environment, the job
	// completes with the original asset only.
	ErrTranscoderUnavailable = errors.New("transcoder unavailable")
)

// TranscoderUnavailableWarning is persisted as the video's error message
// on the degraded-completion path.
const TranscoderUnavailableWarning = "transcoder unavailable - asset not transcoded"
