package processing

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/streamhive/streamhive/internal/config"
	"github.com/streamhive/streamhive/internal/models"
	"github.com/streamhive/streamhive/pkg/logger"
)

const (
	ffmpegBinary  = "ffmpeg"
	ffprobeBinary = "ffprobe"

	defaultThumbnailOffset = 1.0
	defaultThumbnailWidth  = 640
)

var ffmpegTimeRegexp = regexp.MustCompile(`time=(\d+):(\d+):(\d+\.?\d*)`)

type ffmpegTranscoder struct {
	cfg    *config.Config
	logger logger.Logger
}

func NewFFmpegTranscoder(cfg *config.Config, logger logger.Logger) Transcoder {
	return &ffmpegTranscoder{cfg: cfg, logger: logger}
}

// Available reports whether the ffmpeg binary can be resolved on PATH.
func (t *ffmpegTranscoder) Available() bool {
	_, err := exec.LookPath(ffmpegBinary)
	return err == nil
}

func (t *ffmpegTranscoder) Transcode(ctx context.Context, inputPath, outputPath string, onProgress func(percent int)) error {
	if !t.Available() {
		return ErrTranscoderUnavailable
	}

	durationSec := t.probeDurationSeconds(ctx, inputPath)

	cmd := exec.CommandContext(ctx, ffmpegBinary,
		"-y",
		"-i", inputPath,
		"-progress", "pipe:2",
		"-nostats",
		"-c:v", "libx264",
		"-preset", "medium",
		"-crf", "23",
		"-vf", "scale=-2:'min(1080,ih)'",
		"-c:a", "aac",
		"-b:a", "128k",
		"-movflags", "+faststart",
		outputPath,
	)

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return errors.Wrap(err, "ffmpegTranscoder.Transcode.StderrPipe")
	}
	if err = cmd.Start(); err != nil {
		return errors.Wrap(err, "ffmpegTranscoder.Transcode.Start")
	}

	tail := make([]string, 0, 50)
	scanDone := make(chan struct{})
	go func() {
		defer close(scanDone)
		t.scanProgress(ctx, stderr, durationSec, &tail, onProgress)
	}()

	err = cmd.Wait()
	<-scanDone
	if err != nil {
		if len(tail) > 0 {
			t.logger.Errorf("ffmpeg failed: %s", strings.Join(tail, "\n"))
		}
		return errors.Wrap(err, "ffmpegTranscoder.Transcode.Wait")
	}
	return nil
}

func (t *ffmpegTranscoder) ExtractThumbnail(ctx context.Context, inputPath, outputPath string) error {
	if !t.Available() {
		return ErrTranscoderUnavailable
	}

	offset := t.cfg.Worker.ThumbnailOffset
	if offset <= 0 {
		offset = defaultThumbnailOffset
	}
	width := t.cfg.Worker.ThumbnailWidth
	if width <= 0 {
		width = defaultThumbnailWidth
	}

	cmd := exec.CommandContext(ctx, ffmpegBinary,
		"-y",
		"-ss", strconv.FormatFloat(offset, 'f', -1, 64),
		"-i", inputPath,
		"-frames:v", "1",
		"-vf", fmt.Sprintf("scale=%d:-2", width),
		outputPath,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return errors.Wrapf(err, "ffmpegTranscoder.ExtractThumbnail: %s", lastLines(string(out), 5))
	}
	return nil
}

// Probe returns container duration and first-video-stream dimensions.
// Fields that cannot be read stay zero rather than failing the probe.
func (t *ffmpegTranscoder) Probe(ctx context.Context, inputPath string) (*models.MediaInfo, error) {
	if _, err := exec.LookPath(ffprobeBinary); err != nil {
		return nil, ErrTranscoderUnavailable
	}

	info := &models.MediaInfo{}

	out, err := exec.CommandContext(ctx, ffprobeBinary,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		inputPath,
	).Output()
	if err != nil {
		return nil, errors.Wrap(err, "ffmpegTranscoder.Probe.duration")
	}
	if d, perr := strconv.ParseFloat(strings.TrimSpace(string(out)), 64); perr == nil {
		info.Duration = d
	}

	out, err = exec.CommandContext(ctx, ffprobeBinary,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height",
		"-of", "csv=p=0",
		inputPath,
	).Output()
	if err == nil {
		parts := strings.Split(strings.TrimSpace(string(out)), ",")
		if len(parts) == 2 {
			if w, perr := strconv.Atoi(strings.TrimSpace(parts[0])); perr == nil {
				info.Width = w
			}
			if h, perr := strconv.Atoi(strings.TrimSpace(parts[1])); perr == nil {
				info.Height = h
			}
		}
	}

	return info, nil
}

// scanProgress reads ffmpeg stderr, converting out_time_ms and time= lines
// into percent callbacks capped at 99. Unrecognized lines are kept in a
// bounded tail for failure diagnostics.
func (t *ffmpegTranscoder) scanProgress(ctx context.Context, stderr io.ReadCloser, durationSec float64, tail *[]string, onProgress func(percent int)) {
	scanner := bufio.NewScanner(stderr)
	scanner.Buffer(make([]byte, 0, 1024), 1024*1024)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		default:
		}
		line := scanner.Text()

		if strings.HasPrefix(line, "out_time_ms=") {
			if ms, err := strconv.ParseFloat(strings.TrimPrefix(line, "out_time_ms="), 64); err == nil && durationSec > 0 {
				emitPercent(ms/1e6, durationSec, onProgress)
			}
			continue
		}

		if m := ffmpegTimeRegexp.FindStringSubmatch(line); len(m) == 4 && durationSec > 0 {
			hh, _ := strconv.ParseFloat(m[1], 64)
			mm, _ := strconv.ParseFloat(m[2], 64)
			ss, _ := strconv.ParseFloat(m[3], 64)
			emitPercent(hh*3600+mm*60+ss, durationSec, onProgress)
			continue
		}

		if tail != nil {
			b := *tail
			if len(b) >= 50 {
				b = b[1:]
			}
			b = append(b, line)
			*tail = b
		}
	}
}

func emitPercent(currentSec, totalSec float64, onProgress func(percent int)) {
	if onProgress == nil || totalSec <= 0 {
		return
	}
	pct := int((currentSec / totalSec) * 100)
	if pct > 99 {
		pct = 99
	}
	if pct < 0 {
		pct = 0
	}
	onProgress(pct)
}

func (t *ffmpegTranscoder) probeDurationSeconds(ctx context.Context, inputPath string) float64 {
	info, err := t.Probe(ctx, inputPath)
	if err != nil || info.Duration <= 0 {
		t.logger.Warnf("could not probe duration for %s, progress reporting disabled", inputPath)
		return 0
	}
	return info.Duration
}

func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
