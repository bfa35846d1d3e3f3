package processing

import (
	"context"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/streamhive/streamhive/internal/config"
)

func newTestTranscoder() *ffmpegTranscoder {
	return &ffmpegTranscoder{cfg: &config.Config{}, logger: nopLogger{}}
}

func TestScanProgressParsesOutTimeLines(t *testing.T) {
	stderr := io.NopCloser(strings.NewReader(strings.Join([]string{
		"frame=100",
		"out_time_ms=15000000",
		"out_time_ms=30000000",
		"out_time_ms=60000000",
		"progress=end",
	}, "\n")))

	var got []int
	newTestTranscoder().scanProgress(context.Background(), stderr, 60, nil, func(p int) {
		got = append(got, p)
	})

	want := []int{25, 50, 99}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("progress from out_time_ms = %v, want %v", got, want)
	}
}

func TestScanProgressParsesTimeLines(t *testing.T) {
	stderr := io.NopCloser(strings.NewReader(strings.Join([]string{
		"size=    1024kB time=00:00:30.00 bitrate= 279.6kbits/s speed=2.1x",
		"size=    2048kB time=00:01:00.00 bitrate= 279.6kbits/s speed=2.1x",
	}, "\n")))

	var got []int
	newTestTranscoder().scanProgress(context.Background(), stderr, 120, nil, func(p int) {
		got = append(got, p)
	})

	want := []int{25, 50}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("progress from time= lines = %v, want %v", got, want)
	}
}

func TestScanProgressIgnoresSamplesWithoutDuration(t *testing.T) {
	stderr := io.NopCloser(strings.NewReader("out_time_ms=15000000\n"))

	called := false
	newTestTranscoder().scanProgress(context.Background(), stderr, 0, nil, func(int) {
		called = true
	})
	if called {
		t.Error("progress emitted with unknown duration")
	}
}

func TestScanProgressCapturesDiagnosticTail(t *testing.T) {
	stderr := io.NopCloser(strings.NewReader(strings.Join([]string{
		"out_time_ms=15000000",
		"Error while decoding stream #0:0",
		"Conversion failed!",
	}, "\n")))

	tail := make([]string, 0, 50)
	newTestTranscoder().scanProgress(context.Background(), stderr, 60, &tail, nil)

	want := []string{"Error while decoding stream #0:0", "Conversion failed!"}
	if !reflect.DeepEqual(tail, want) {
		t.Errorf("captured tail = %v, want %v", tail, want)
	}
}

func TestEmitPercentCapsAt99(t *testing.T) {
	cases := []struct {
		name       string
		currentSec float64
		totalSec   float64
		want       int
	}{
		{"halfway", 30, 60, 50},
		{"at end", 60, 60, 99},
		{"overshoot", 90, 60, 99},
		{"negative clock", -5, 60, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := -1
			emitPercent(tc.currentSec, tc.totalSec, func(p int) { got = p })
			if got != tc.want {
				t.Errorf("emitPercent(%v, %v) = %d, want %d", tc.currentSec, tc.totalSec, got, tc.want)
			}
		})
	}
}

func TestLastLines(t *testing.T) {
	in := "a\nb\nc\nd\ne"
	if got := lastLines(in, 3); got != "c\nd\ne" {
		t.Errorf("lastLines = %q, want %q", got, "c\nd\ne")
	}
	if got := lastLines("a\nb", 5); got != "a\nb" {
		t.Errorf("lastLines short input = %q, want %q", got, "a\nb")
	}
}
