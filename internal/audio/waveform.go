package audio

import (
	"context"
	"fmt"
)

// PlotWaveform renders a waveform image of wavPath into outPath. Failures are
// the caller's to tolerate; the figure is a convenience artifact.
func (c *Converter) PlotWaveform(ctx context.Context, wavPath, outPath string) error {
	args := []string{
		"-i", wavPath,
		"-filter_complex", "showwavespic=s=1024x320:colors=steelblue",
		"-frames:v", "1",
		"-y",
		outPath,
	}

	if _, err := c.executor.Execute(ctx, c.cfg.BinaryPath, args...); err != nil {
		return fmt.Errorf("ffmpeg waveform %s: %w", wavPath, err)
	}

	c.logger.Info(ctx, "Waveform plot saved to %s", outPath)
	return nil
}
