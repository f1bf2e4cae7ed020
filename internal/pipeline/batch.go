package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
)

// BatchSummary reports what a sequential run over a set of jobs achieved.
// Only fully processed files count toward the size and length totals.
type BatchSummary struct {
	Processed    int
	Failed       int
	TotalBytes   int64
	TotalSeconds float64
	Elapsed      time.Duration
}

// RunBatch processes jobs strictly one at a time, in listing order. A file's
// failure is logged and the run continues with the next file.
func RunBatch(ctx context.Context, proc Processor, jobs []Job, log logger.Logger) BatchSummary {
	start := time.Now()
	var summary BatchSummary

	for i, job := range jobs {
		log.Info(ctx, "[%d/%d] %s", i+1, len(jobs), job.AudioPath)

		res, err := proc.Process(ctx, job)
		if err != nil {
			log.Error(ctx, "Error processing file %s: %v", job.AudioPath, err)
			summary.Failed++
			continue
		}

		summary.Processed++
		summary.TotalBytes += res.SizeBytes
		summary.TotalSeconds += res.AudioSeconds
	}

	summary.Elapsed = time.Since(start)
	return summary
}

// FormatSeconds renders a duration in seconds as HH:MM:SS.
func FormatSeconds(seconds float64) string {
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}
