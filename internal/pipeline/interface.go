package pipeline

import (
	"context"
	"time"
)

// Job is one fully-resolved input file. All interactive or metadata-derived
// settings are decided before a Job reaches the processor.
type Job struct {
	AudioPath      string
	RecordingDate  string // YYYY-MM-DD
	RecordingName  string
	PromptTemplate string
}

// Result reports what one successful file produced.
type Result struct {
	MergedPath     string
	SummaryPath    string
	SizeBytes      int64
	AudioSeconds   float64
	StageDurations map[Stage]time.Duration
}

// Processor drives one file end to end.
type Processor interface {
	Process(ctx context.Context, job Job) (*Result, error)
}
