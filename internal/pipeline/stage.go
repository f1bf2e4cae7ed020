package pipeline

// Stage identifies one step of the per-file state machine. Stages run
// strictly in order; any stage can transition to the errored terminal state.
type Stage string

const (
	StageQueued       Stage = "queued"
	StageConverting   Stage = "converting"
	StageDiarizing    Stage = "diarizing"
	StageSplitting    Stage = "splitting"
	StageTranscribing Stage = "transcribing"
	StageMerging      Stage = "merging"
	StageSummarizing  Stage = "summarizing"
	StagePlotting     Stage = "plotting_waveform"
	StageDone         Stage = "done"
)

// ProgressFunc receives coarse progress notifications between stages. It is
// for observability only and must not block.
type ProgressFunc func(stage Stage, fraction float64)
