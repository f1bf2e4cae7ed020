// Package audio wraps the ffmpeg/ffprobe tooling and WAV handling the
// pipeline needs: format conversion, duration and metadata probing, waveform
// rendering, and cutting a recording into per-speaker-turn chunks.
package audio

import (
	"context"
	"fmt"
	"strconv"

	"github.com/nguyentantai21042004/meeting-scribe/internal/config"
	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
	"github.com/nguyentantai21042004/meeting-scribe/pkg/executor"
)

type Converter struct {
	cfg      config.FFmpegConfig
	executor executor.Executor
	logger   logger.Logger
}

func NewConverter(cfg config.FFmpegConfig, exec executor.Executor, log logger.Logger) *Converter {
	return &Converter{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}

// ToWAV converts inputPath to a mono PCM WAV at the configured sample rate.
// Speech models expect single-channel 16kHz input.
func (c *Converter) ToWAV(ctx context.Context, inputPath, outputPath string) error {
	c.logger.Info(ctx, "Converting to WAV: %s -> %s", inputPath, outputPath)

	args := []string{
		"-i", inputPath,
		"-acodec", "pcm_s16le",
		"-ac", strconv.Itoa(c.cfg.NumChannels),
		"-ar", strconv.Itoa(c.cfg.SampleRate),
		"-y",
		outputPath,
	}

	if _, err := c.executor.Execute(ctx, c.cfg.BinaryPath, args...); err != nil {
		return fmt.Errorf("ffmpeg convert %s: %w", inputPath, err)
	}

	c.logger.Debug(ctx, "Converted %s", outputPath)
	return nil
}
