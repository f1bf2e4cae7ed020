package audio

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/youpy/go-wav"
)

const probeTimeLayout = "2006-01-02T15:04:05.000000Z"

// Duration returns the length in seconds of a WAV file.
func Duration(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open wav: %w", err)
	}
	defer f.Close()

	d, err := wav.NewReader(f).Duration()
	if err != nil {
		return 0, fmt.Errorf("wav duration %s: %w", path, err)
	}
	return d.Seconds(), nil
}

// WAVDuration is Duration as a method, so consumers can take it behind an
// interface together with the ffmpeg operations.
func (c *Converter) WAVDuration(path string) (float64, error) {
	return Duration(path)
}

// RecordingDate returns the recording date (YYYY-MM-DD) of an audio file,
// preferring the container's creation_time tag, then the file's modification
// time, then today.
func (c *Converter) RecordingDate(ctx context.Context, path string) string {
	args := []string{
		"-v", "error",
		"-show_entries", "format_tags=creation_time",
		"-of", "default=nw=1:nk=1",
		path,
	}

	out, err := c.executor.Execute(ctx, c.cfg.ProbePath, args...)
	if err == nil {
		if ts, perr := time.Parse(probeTimeLayout, strings.TrimSpace(out)); perr == nil {
			return ts.Format("2006-01-02")
		}
	} else {
		c.logger.Warn(ctx, "ffprobe metadata for %s failed: %v, trying file system date", path, err)
	}

	if info, serr := os.Stat(path); serr == nil {
		return info.ModTime().Format("2006-01-02")
	}

	return time.Now().Format("2006-01-02")
}
